package templatesvc

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

func httpMid(h http.Handler, log zerolog.Logger, m *Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/metrics", "/health":
			h.ServeHTTP(w, r)
			return
		}

		t := time.Now()
		remote := r.Header.Get("x-forwarded-for")
		if remote == "" {
			remote = r.RemoteAddr
		}
		ua := r.Header.Get("user-agent")

		defer func() {
			d := time.Since(t)
			if m != nil {
				m.http.WithLabelValues(routeLabel(r)).Observe(d.Seconds())
			}
			log.Debug().
				Str("src", remote).
				Str("url", r.URL.String()).
				Str("user-agent", ua).
				Dur("dur", d).
				Msg("served")
		}()

		h.ServeHTTP(w, r)
	})
}

// routeLabel is the mux pattern that served r,
// keeping label cardinality bounded by the registered routes.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "other"
	}
	return r.Pattern
}

// healthHandler reports 200 while ready returns true, 503 otherwise.
func healthHandler(ready func() bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
