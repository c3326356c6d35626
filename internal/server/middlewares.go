package server

import (
	"context"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"
)

const maxRequestBytes = 1 << 16

type traceContextKey struct{}
type traceContext struct {
	traceID string
}

func setTraceContext(ctx context.Context, tc traceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, tc)
}
func getTraceContext(ctx context.Context) traceContext {
	tc, _ := ctx.Value(traceContextKey{}).(traceContext)
	return tc
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

func (s Server) maxBytesMw(next http.Handler) http.Handler {
	return http.MaxBytesHandler(next, maxRequestBytes)
}

func (s Server) loggingMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		traceID := uuid.NewString()
		route := routeName(r)
		s.Logger.Debugf("loggingMw: New incoming request %s %s from %s, UA: %s, Host: %#v, TraceID: %s",
			r.Method, r.URL.Path, r.RemoteAddr, r.UserAgent(), r.Host, traceID)

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if re := recover(); re != nil {
				s.Logger.Errorf("loggingMw: Handler crashed, err: %v, TraceID: %s, stack trace:\n%s", re, traceID, debug.Stack())
				http.Error(sr, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			elapsed := time.Since(start)
			httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(sr.status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
			s.Logger.Tracef("loggingMw: Incoming request %s %s took %dms, status: %d, TraceID: %s",
				r.Method, r.URL.Path, elapsed.Milliseconds(), sr.status, traceID)
		}()

		tc := traceContext{traceID: traceID}
		next.ServeHTTP(sr, r.WithContext(setTraceContext(r.Context(), tc)))
	})
}
