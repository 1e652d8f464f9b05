package handler

import (
	"strings"

	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/munnerz/goautoneg"
	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-errhandler/contract"
)

const (
	HeaderContentTypeOptions = "X-Content-Type-Options"
	NoSniff                  = "nosniff"

	MIMEText = "text/plain"
	MIMEJSON = "application/json"
)

// offers are tried in order; the first wins when the client accepts both equally.
var offers = []string{MIMEText, MIMEJSON}

// Respond runs the pipeline for raw and writes the outcome to res.
//
// On OutcomeNormal it sets the failure's status and the nosniff header, then
// negotiates the body against req.Accept(): text/plain gets the JSON-encoded payload
// as text, application/json gets the payload as JSON, anything else gets 406.
// On OutcomeFallback nothing is written and the *UnexpectedError is returned for
// the caller's own error path. Other returned errors come from res.
func (h *Handler) Respond(req contract.Request, res contract.Response, raw any) error {
	r := h.Handle(raw)
	if r.Outcome == OutcomeFallback {
		return r.Unexpected
	}

	_ = level.Debug(h.debug).Log("msg", "submitting HTTP response", "status", r.Status())

	res.SetStatus(r.Status())
	res.SetHeader(HeaderContentTypeOptions, NoSniff)

	switch Negotiate(req.Accept()) {
	case MIMEText:
		body, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(r.Payload)
		if err != nil {
			return pkgerrors.Wrap(err, "failed to encode payload")
		}

		return res.SendText(body)
	case MIMEJSON:
		return res.SendJSON(r.Payload)
	default:
		return res.NotAcceptable()
	}
}

// Negotiate picks the response media type for an Accept header, or "" when the
// client accepts neither text/plain nor application/json. A missing header
// accepts anything. Each offer takes the q value of the most specific clause
// matching it, so "text/plain;q=0, */*" refuses text/plain; ties go to the
// first offer.
func Negotiate(accept string) string {
	if strings.TrimSpace(accept) == "" {
		accept = "*/*"
	}

	clauses := goautoneg.ParseAccept(accept)

	var (
		best  string
		bestQ float64
	)

	for _, offer := range offers {
		if q := quality(clauses, offer); q > bestQ {
			best, bestQ = offer, q
		}
	}

	return best
}

// quality returns the q value the most specific matching clause assigns to
// offer, 0 when no clause matches.
func quality(clauses []goautoneg.Accept, offer string) float64 {
	typ, sub, _ := strings.Cut(offer, "/")

	q, rank := 0.0, 0

	for _, c := range clauses {
		r := 0

		switch {
		case strings.EqualFold(c.Type, typ) && strings.EqualFold(c.SubType, sub):
			r = 3
		case strings.EqualFold(c.Type, typ) && c.SubType == "*":
			r = 2
		case c.Type == "*" && c.SubType == "*":
			r = 1
		}

		if r > rank {
			q, rank = c.Q, r
		}
	}

	return q
}
