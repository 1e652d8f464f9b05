package contract

// Request is the part of an inbound request the synchronous transport reads.
type Request interface {
	// Accept returns the raw Accept header, or "" when the client sent none.
	Accept() string
}

// Response is the surface the synchronous transport writes to.
//
// SetStatus and SetHeader must be called before any Send operation.
type Response interface {
	SetStatus(code int)
	SetHeader(name, value string)
	SendJSON(payload any) error
	SendText(body string) error
	// NotAcceptable writes status 406 with the plain-text body "Not Acceptable".
	NotAcceptable() error
}
