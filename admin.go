package templatesvc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Admin serves the operational http endpoints:
// /health, /metrics and /debug/pprof/
type Admin struct {
	log zerolog.Logger
	srv *http.Server
}

// NewAdmin builds the admin server. ready backs /health,
// gatherer backs /metrics.
func NewAdmin(addr string, log zerolog.Logger, gatherer prometheus.Gatherer, m *Metrics, ready func() bool) *Admin {
	log = log.With().Str("component", "admin").Logger()

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/health", healthHandler(ready))
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &Admin{
		log: log,
		srv: &http.Server{
			Addr:              addr,
			Handler:           httpMid(mux, log, m),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}
}

func (a *Admin) Handler() http.Handler {
	return a.srv.Handler
}

// Run serves until ctx is cancelled, then shuts down. It is a Runner.
func (a *Admin) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", a.srv.Addr)
	if err != nil {
		return &BindError{Addr: a.srv.Addr, Err: err}
	}
	a.log.Info().Str("addr", lis.Addr().String()).Msg("started admin http server")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.srv.Shutdown(cctx)
	})
	g.Go(func() error {
		err := a.srv.Serve(lis)
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return g.Wait()
}
