// (c) Copyright Tracewire Labs 2026

package jaegerprop

import "net/http"

// TracingHandlerFunc is an HTTP middleware that picks up the trace context
// and baggage found in the incoming request headers and makes them available
// via the request context
func TracingHandlerFunc(p *Propagator, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := p.Extract(req.Context(), HeaderCarrier(req.Header))

		handler(w, req.WithContext(ctx))
	}
}
