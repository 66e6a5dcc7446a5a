// Command templatesvc serves templatesvc.v1.TemplateService.
//
// Configuration is read from the environment (SERVER_*, LOGGING_*, APP_*,
// REPOSITORY_*, ADMIN_*, TRACE_*) and may be overridden by flags.
// It exits 0 after a requested shutdown and 1 on any startup or runtime error.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/grpclog"

	"go.seankhliao.com/templatesvc"
	"go.seankhliao.com/templatesvc/service"
	"go.seankhliao.com/templatesvc/store"
	"go.seankhliao.com/templatesvc/templatepb"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("templatesvc", flag.ContinueOnError)
	cfg, err := templatesvc.NewConfig(
		templatesvc.WithEnv(),
		templatesvc.WithFlags(fs),
		templatesvc.ParseFlags(fs, args),
	)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		lg := zerolog.New(os.Stderr).With().Timestamp().Logger()
		lg.Error().Err(err).Msg("invalid configuration")
		return 1
	}

	log := cfg.Logger()
	grpclog.SetLoggerV2(templatesvc.GRPCLogger(log))
	log.Info().
		Str("app_name", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Msg("starting application")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := cfg.InstallTracer(ctx)
	if err != nil {
		log.Error().Err(err).Msg("install tracer")
		return 1
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := shutdownTracer(sctx); err != nil {
			log.Warn().Err(err).Msg("flush traces")
		}
	}()

	records, err := store.Open(ctx, store.Config{
		Kind:          cfg.Repository.Kind,
		RedisAddr:     cfg.Repository.RedisAddr,
		RedisPassword: cfg.Repository.RedisPassword,
		RedisDB:       cfg.Repository.RedisDB,
		RedisPrefix:   cfg.Repository.RedisPrefix,
	})
	if err != nil {
		log.Error().Err(err).Msg("open repository")
		return 1
	}
	defer records.Close()

	lc, err := newLifecycle(cfg, log, records, prometheus.NewRegistry())
	if err != nil {
		log.Error().Err(err).Msg("configure server")
		return 1
	}

	err = templatesvc.Run(ctx, lc.lifecycle, lc.runners...)
	if err != nil {
		log.Error().Err(err).Msg("application error")
		return 1
	}
	log.Info().Msg("application shutdown complete")
	return 0
}

type assembled struct {
	lifecycle *templatesvc.Lifecycle
	runners   []templatesvc.Runner
}

func newLifecycle(cfg *templatesvc.Config, log zerolog.Logger, records store.Repository, reg *prometheus.Registry) (*assembled, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	metrics := templatesvc.NewMetrics(reg)
	svc := service.New(log, records)

	opts := []templatesvc.LifecycleOption{
		templatesvc.WithMetrics(metrics),
		templatesvc.WithServerOptions(templatesvc.TraceServerOption()),
		templatesvc.WithRegistrar(func(s grpc.ServiceRegistrar) {
			templatepb.RegisterTemplateServiceServer(s, svc)
		}),
	}
	if cfg.Server.TLSCertFile != "" {
		creds, err := templatesvc.LoadTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, templatesvc.WithTLS(creds))
	}
	lc := templatesvc.NewLifecycle(settings, log, opts...)

	bridge := templatesvc.NewSignalBridge(log, lc)
	a := &assembled{
		lifecycle: lc,
		runners:   []templatesvc.Runner{bridge.Listen},
	}
	if cfg.Admin.Addr != "" {
		admin := templatesvc.NewAdmin(cfg.Admin.Addr, log, reg, metrics, func() bool {
			return lc.State() == templatesvc.StateServing
		})
		a.runners = append(a.runners, admin.Run)
	}
	return a, nil
}
