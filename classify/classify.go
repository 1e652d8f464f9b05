// Package classify maps a canonical error's HTTP status to a severity category and
// the logging policy that goes with it.
package classify

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-errhandler/contract"
)

// ErrUnclassifiable is returned by Elect for statuses outside 400–599.
var ErrUnclassifiable = errors.New("the HTTP status code is neither 4xx nor 5xx, refusing to treat as error")

// Category is the severity of a failure.
type Category int

const (
	Unclassifiable Category = iota
	Client
	Server
)

func (c Category) String() string {
	switch c {
	case Client:
		return "client"
	case Server:
		return "server"
	default:
		return "unclassifiable"
	}
}

// Of returns the category for status using the 400-499 and 500-599 ranges,
// not the leading digit: 42, 4000 and negative values are Unclassifiable even
// though their first digit is 4. net/http refuses to write codes outside
// 100-999, so only real status codes may reach a Policy.
func Of(status int) Category {
	switch status / 100 {
	case 4:
		return Client
	case 5:
		return Server
	}

	return Unclassifiable
}

// Policy is what the pipeline does with a classified error before rendering it.
type Policy struct {
	Category Category
	format   string
}

var (
	clientPolicy = Policy{Category: Client, format: "Client Error. %s"}
	serverPolicy = Policy{Category: Server, format: "Internal Server Error. %s"}
)

// Elect selects the policy for status, or returns an error wrapping ErrUnclassifiable.
func Elect(status int) (Policy, error) {
	switch Of(status) {
	case Client:
		return clientPolicy, nil
	case Server:
		return serverPolicy, nil
	default:
		return Policy{}, pkgerrors.Wrapf(ErrUnclassifiable, "status %d", status)
	}
}

// Log reports err to the sink at the policy's level. A nil sink is ignored.
func (p Policy) Log(sink contract.Logger, err error) {
	if sink == nil || p.format == "" {
		return
	}

	sink.Errorf(p.format, err.Error())
}
