package error_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiError "github.com/next-trace/scg-errhandler/error"
)

func TestNewAndGetters(t *testing.T) {
	t.Parallel()

	e := apiError.New("customer 42 not found", http.StatusNotFound)

	assert.Equal(t, apiError.DefaultName, e.Name())
	assert.Equal(t, "customer 42 not found", e.Message())
	assert.Equal(t, http.StatusNotFound, e.HTTPStatus())
	assert.Equal(t, "ExecutionError: customer 42 not found", e.Error())
	assert.Nil(t, e.Unwrap())
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	for _, status := range []int{0, -1, -404} {
		e := apiError.New("", status)
		assert.Equal(t, apiError.DefaultMessage, e.Message(), "status %d", status)
		assert.Equal(t, apiError.DefaultHTTPStatus, e.HTTPStatus(), "status %d", status)
	}
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	cause := errors.New("sql: no rows in result set")
	e := apiError.New("not found", 500,
		apiError.WithName("LookupError"),
		apiError.WithHTTPStatus(404),
		apiError.WithCause(cause),
	)

	assert.Equal(t, "LookupError", e.Name())
	assert.Equal(t, 404, e.HTTPStatus())
	assert.ErrorIs(t, e, cause)
	assert.Same(t, cause, e.Unwrap())
}

func TestNew_GenericNameFallsBack(t *testing.T) {
	t.Parallel()

	e := apiError.New("x", 400, apiError.WithName("Error"))
	assert.Equal(t, apiError.DefaultName, e.Name())
}

func TestNamed(t *testing.T) {
	t.Parallel()

	notFound := apiError.Named("NotFoundError")
	e := notFound("customer 42 not found", http.StatusNotFound)

	assert.Equal(t, "NotFoundError", e.Name())
	assert.Equal(t, http.StatusNotFound, e.HTTPStatus())
	assert.True(t, strings.HasPrefix(e.Detail(), "NotFoundError: customer 42 not found"))

	// options passed at the call site win over the bound name
	e = notFound("gone", http.StatusGone, apiError.WithName("GoneError"))
	assert.Equal(t, "GoneError", e.Name())
}

func TestDetail_IncludesStack(t *testing.T) {
	t.Parallel()

	e := apiError.New("boom", 500)
	detail := e.Detail()

	assert.True(t, strings.HasPrefix(detail, "ExecutionError: boom\n"), detail)
	assert.Contains(t, detail, "TestDetail_IncludesStack")
	assert.Equal(t, detail, fmt.Sprintf("%+v", e))
	assert.Equal(t, "ExecutionError: boom", fmt.Sprintf("%v", e))
	assert.Equal(t, `"ExecutionError: boom"`, fmt.Sprintf("%q", e))
}

func TestWithCause_InheritsPkgErrorsStack(t *testing.T) {
	t.Parallel()

	cause := pkgerrors.New("driver: bad connection")
	e := apiError.New("db failure", 503, apiError.WithCause(cause))

	var st interface{ StackTrace() pkgerrors.StackTrace }
	require.True(t, errors.As(cause, &st))
	assert.Equal(t, st.StackTrace(), e.StackTrace())
}

func TestRenamed_ReturnsCopy(t *testing.T) {
	t.Parallel()

	e := apiError.New("boom", 500)
	r := e.Renamed("PaymentError")

	assert.Equal(t, "PaymentError", r.Name())
	assert.Equal(t, apiError.DefaultName, e.Name())
	assert.NotSame(t, e, r)
	assert.Equal(t, "PaymentError", r.Renamed("").Name())
}

func TestNilReceiverBehaviors(t *testing.T) {
	t.Parallel()

	var e *apiError.Error

	assert.Equal(t, "<nil>", e.Error())
	assert.Equal(t, "", e.Detail())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("row not found")
	e := apiError.Wrap(cause, http.StatusNotFound, "customer not found")

	assert.ErrorIs(t, e, cause)

	var out *apiError.Error
	require.True(t, errors.As(e, &out))
	assert.Same(t, e, out)

	opaque := apiError.Wrap(nil, 500, "x")
	require.Error(t, opaque.Unwrap())
	assert.Equal(t, "unknown", opaque.Unwrap().Error())
}
