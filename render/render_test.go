package render_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiError "github.com/next-trace/scg-errhandler/error"
	"github.com/next-trace/scg-errhandler/render"
)

func decode(t *testing.T, p render.Payload) map[string]any {
	t.Helper()

	b, err := jsoniter.Marshal(p)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, jsoniter.Unmarshal(b, &out))

	return out
}

func TestPayload_HidesInternals(t *testing.T) {
	t.Parallel()

	e := apiError.New("boom", 500)
	body := decode(t, render.Renderer{}.Payload(e))

	assert.Equal(t, map[string]any{"success": false, "message": "boom"}, body)
	assert.NotContains(t, body, "error")
}

func TestPayload_ExposesInternals(t *testing.T) {
	t.Parallel()

	e := apiError.Named("SomeError")("Some error", 404)
	p := render.Renderer{ExposeInternals: true}.Payload(e)

	assert.False(t, p.Success)
	assert.Equal(t, "Some error", p.Message)
	assert.Equal(t, e.Detail(), p.Error)

	body := decode(t, p)
	require.Contains(t, body, "error")
	assert.Equal(t, "SomeError", body["error"].(string)[:9])
}

func TestUnexpected(t *testing.T) {
	t.Parallel()

	e := apiError.New("Some error", 200)

	p := render.Renderer{}.Unexpected(e)
	assert.Equal(t, "An unexpected exception has occurred. Some error", p.Message)
	assert.NotContains(t, decode(t, p), "error")

	p = render.Renderer{ExposeInternals: true}.Unexpected(e)
	assert.Equal(t, e.Detail(), p.Error)
}
