package classify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-errhandler/classify"
)

type recordingSink struct{ lines []string }

func (s *recordingSink) Errorf(format string, args ...any) {
	s.lines = append(s.lines, fmt.Sprintf(format, args...))
}

func TestOf_Ranges(t *testing.T) {
	t.Parallel()

	for status := 400; status <= 499; status++ {
		assert.Equal(t, classify.Client, classify.Of(status), "status %d", status)
	}

	for status := 500; status <= 599; status++ {
		assert.Equal(t, classify.Server, classify.Of(status), "status %d", status)
	}

	for _, status := range []int{0, 1, 42, 51, 100, 200, 204, 301, 399, 600, 999, 4000, 5000, -404, -500} {
		assert.Equal(t, classify.Unclassifiable, classify.Of(status), "status %d", status)
	}
}

func TestElect(t *testing.T) {
	t.Parallel()

	p, err := classify.Elect(404)
	require.NoError(t, err)
	assert.Equal(t, classify.Client, p.Category)

	p, err = classify.Elect(503)
	require.NoError(t, err)
	assert.Equal(t, classify.Server, p.Category)

	p, err = classify.Elect(200)
	require.Error(t, err)
	assert.True(t, errors.Is(err, classify.ErrUnclassifiable))
	assert.Contains(t, err.Error(), "status 200")
	assert.Equal(t, classify.Unclassifiable, p.Category)
}

func TestPolicy_Log(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}

	p, _ := classify.Elect(404)
	p.Log(sink, errors.New("NotFoundError: gone"))

	p, _ = classify.Elect(500)
	p.Log(sink, errors.New("ExecutionError: boom"))

	assert.Equal(t, []string{
		"Client Error. NotFoundError: gone",
		"Internal Server Error. ExecutionError: boom",
	}, sink.lines)

	// zero policy and nil sink are no-ops
	classify.Policy{}.Log(sink, errors.New("x"))
	p.Log(nil, errors.New("x"))
	assert.Len(t, sink.lines, 2)
}

func TestCategory_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "client", classify.Client.String())
	assert.Equal(t, "server", classify.Server.String())
	assert.Equal(t, "unclassifiable", classify.Unclassifiable.String())
	assert.Equal(t, "unclassifiable", classify.Category(42).String())
}
