package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"strings"

	"ewintr.nl/ytchecklist/metrics"
	"ewintr.nl/ytchecklist/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type Server struct {
	apis    map[string]http.Handler
	metrics http.Handler
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewServer routes /api/youtube to the checklist api. A nil limiter
// disables rate limiting.
func NewServer(builder Builder, lookupRepo storage.LookupRepository, limiter *rate.Limiter, logger *slog.Logger) *Server {
	return &Server{
		apis: map[string]http.Handler{
			"api": NewChecklistAPI(builder, lookupRepo, logger),
		},
		metrics: promhttp.Handler(),
		limiter: limiter,
		logger:  logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	originalPath := r.URL.Path
	rec := httptest.NewRecorder() // records the response to be able to mix writing headers and content

	rec.Header().Set("Content-Type", "application/json")

	// route to api
	head, tail := ShiftPath(r.URL.Path)
	label := head
	switch {
	case len(head) == 0:
		label = "index"
		Index(rec)
	case head == "metrics":
		s.metrics.ServeHTTP(w, r)
		return
	default:
		api, ok := s.apis[head]
		switch {
		case !ok:
			label = "unknown"
			Error(rec, http.StatusNotFound, "Not found")
		case s.limiter != nil && !s.limiter.Allow():
			Error(rec, http.StatusTooManyRequests, "Too many requests")
		default:
			r.URL.Path = tail
			api.ServeHTTP(rec, r)
		}
	}

	returnResponse(w, rec)
	metrics.RequestsTotal.WithLabelValues(label, strconv.Itoa(rec.Code)).Inc()
	s.logger.Info("request served", slog.String("path", originalPath), slog.Int("status", rec.Code))
}

func returnResponse(w http.ResponseWriter, rec *httptest.ResponseRecorder) {
	for k, v := range rec.Header() {
		w.Header()[k] = v
	}
	w.WriteHeader(rec.Code)
	w.Write(rec.Body.Bytes())
}

// ShiftPath splits off the first component of p, which will be cleaned of
// relative components before processing. head will never contain a slash and
// tail will always be a rooted path without trailing slash.
// See https://blog.merovius.de/posts/2017-06-18-how-not-to-use-an-http-router/
func ShiftPath(p string) (string, string) {
	p = path.Clean("/" + p)

	// restore iri prefixes that might be mangled by path.Clean
	for k, v := range map[string]string{
		"http:/":  "http://",
		"https:/": "https://",
	} {
		p = strings.Replace(p, k, v, -1)
	}

	i := strings.Index(p[1:], "/") + 1
	if i <= 0 {
		return p[1:], "/"
	}
	return p[1:i], p[i:]
}
