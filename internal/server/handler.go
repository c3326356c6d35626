package server

import (
	"encoding/json"
	"github.com/pkg/errors"
	"net/http"
	"pricecomparator/internal/misc"
	"pricecomparator/internal/model"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLimit   = 10
	maxLoggedBytes = 200
)

func (s Server) writeJsonResponse(w http.ResponseWriter, response any, statusCode int) {
	if resp, err := json.Marshal(response); err != nil {
		s.Logger.Errorf("Error encoding response: %+v, err: %v", response, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	} else {
		s.writeRawJsonResponse(w, resp, statusCode)
	}
}

func (s Server) writeRawJsonResponse(w http.ResponseWriter, resp []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(resp); err != nil {
		s.Logger.Errorf("Error writing JSON response: %s, err: %v", misc.BytesLimit(resp, maxLoggedBytes), err)
	}
}

// writeCachedJsonResponse serves the response stored under key when the cache
// has it, otherwise it computes, stores and writes a fresh one.
func (s Server) writeCachedJsonResponse(w http.ResponseWriter, r *http.Request, key string, compute func() any) {
	if s.Cache == nil {
		s.writeJsonResponse(w, compute(), http.StatusOK)
		return
	}
	var cached json.RawMessage
	if s.Cache.Get(r.Context(), key, &cached) {
		cacheLookups.WithLabelValues("hit").Inc()
		s.writeRawJsonResponse(w, cached, http.StatusOK)
		return
	}
	cacheLookups.WithLabelValues("miss").Inc()
	resp := compute()
	s.Cache.Set(r.Context(), key, resp)
	s.writeJsonResponse(w, resp, http.StatusOK)
}

func (s Server) notFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tc := getTraceContext(r.Context())
		s.Logger.Debugf("notFoundHandler: Requested resource not found %s %s, TraceID: %s", r.Method, r.URL.Path, tc.traceID)
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

func cacheKey(r *http.Request) string {
	return r.Method + " " + r.URL.RequestURI()
}

// dateParam parses the YYYY-MM-DD query parameter name. An absent parameter
// yields the zero time unless it is required.
func dateParam(r *http.Request, name string, required bool) (time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		if required {
			return time.Time{}, errors.Errorf("missing required parameter: %s", name)
		}
		return time.Time{}, nil
	}
	d, err := time.Parse(model.DateLayout, v)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid %s: %q, expected YYYY-MM-DD", name, v)
	}
	return d, nil
}

func limitParam(r *http.Request) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get("limit"))
	if v == "" {
		return defaultLimit, nil
	}
	l, err := strconv.Atoi(v)
	if err != nil || l < 0 {
		return 0, errors.Errorf("invalid limit: %q", v)
	}
	return l, nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
