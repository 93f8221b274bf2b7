package http

import (
	"net/http"
	"regexp"
)

const traceIDHeader = "X-Trace-ID"

// traceIDPattern limits client supplied trace ids to a safe charset.
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// withTraceID tags the request logger with the X-Trace-ID of the request,
// generating one when the client sent none or an unusable one, and echoes it
// back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !traceIDPattern.MatchString(traceID) {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
