// (c) Copyright Tracewire Labs 2026

package jaegerprop_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracewire/jaegerprop"
)

func TestTracingHandlerFunc(t *testing.T) {
	var sc jaegerprop.SpanContext
	var found bool

	h := jaegerprop.TracingHandlerFunc(jaegerprop.New(), func(w http.ResponseWriter, req *http.Request) {
		sc, found = jaegerprop.SpanContextFromContext(req.Context())
		w.Write([]byte("Ok"))
	})

	resp := httptest.NewRecorder()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("uber-trace-id", exampleTraceID+":"+exampleSpanID+":0:01")

	h(resp, req)
	require.Equal(t, http.StatusOK, resp.Result().StatusCode)
	assert.Equal(t, "Ok", resp.Body.String())

	require.True(t, found)
	assert.Equal(t, jaegerprop.SpanContext{
		TraceID: exampleTraceID,
		SpanID:  exampleSpanID,
		Flags:   1,
		Remote:  true,
	}, sc)
}

func TestTracingHandlerFunc_NoContext(t *testing.T) {
	var found bool

	h := jaegerprop.TracingHandlerFunc(jaegerprop.New(), func(w http.ResponseWriter, req *http.Request) {
		_, found = jaegerprop.SpanContextFromContext(req.Context())
		w.Write([]byte("Ok"))
	})

	resp := httptest.NewRecorder()

	h(resp, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, http.StatusOK, resp.Result().StatusCode)
	assert.False(t, found)
}
