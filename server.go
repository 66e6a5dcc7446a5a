package templatesvc

import (
	"context"
	"fmt"
	"net"
	"os"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// State is a step of the server lifecycle.
// Transitions only move forward:
//
//	Created -> Starting -> Serving -> Stopping -> Stopped
//	Starting -> Stopping -> Stopped
type State int32

const (
	StateCreated State = iota
	StateStarting
	StateServing
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarting:
		return "starting"
	case StateServing:
		return "serving"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Lifecycle drives one gRPC endpoint from bind to drain, exactly once.
type Lifecycle struct {
	settings   Settings
	log        zerolog.Logger
	registrars []func(grpc.ServiceRegistrar)
	serverOpts []grpc.ServerOption
	creds      credentials.TransportCredentials
	observer   func(from, to State)
	metrics    *Metrics

	// mu serializes transitions and guards the fields set during Start
	mu     sync.Mutex
	state  atomic.Int32
	srv    *grpc.Server
	health *health.Server
	lis    net.Listener

	// shutdown intent, closed once
	intent     chan struct{}
	intentOnce sync.Once
	serving    chan struct{}
	done       chan struct{}
}

type LifecycleOption func(*Lifecycle)

// WithRegistrar attaches services to the server before it binds.
func WithRegistrar(fn func(grpc.ServiceRegistrar)) LifecycleOption {
	return func(l *Lifecycle) {
		l.registrars = append(l.registrars, fn)
	}
}

func WithServerOptions(opts ...grpc.ServerOption) LifecycleOption {
	return func(l *Lifecycle) {
		l.serverOpts = append(l.serverOpts, opts...)
	}
}

// WithObserver is called on every state transition, in order.
// It runs with the lifecycle locked and must not call back into it.
func WithObserver(fn func(from, to State)) LifecycleOption {
	return func(l *Lifecycle) {
		l.observer = fn
	}
}

func WithMetrics(m *Metrics) LifecycleOption {
	return func(l *Lifecycle) {
		l.metrics = m
	}
}

func NewLifecycle(settings Settings, log zerolog.Logger, opts ...LifecycleOption) *Lifecycle {
	l := &Lifecycle{
		settings: settings,
		log:      log.With().Str("component", "lifecycle").Logger(),
		intent:   make(chan struct{}),
		serving:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(l)
	}
	l.metrics.setState(StateCreated)
	return l
}

// Start binds the endpoint and serves until a shutdown is requested,
// then waits for the drain to finish.
// Cancelling ctx requests a shutdown with the configured grace period.
// It may only be called once.
func (l *Lifecycle) Start(ctx context.Context) error {
	if !l.transition(StateStarting, StateCreated) {
		return &IllegalStateError{Op: "start", State: l.State()}
	}
	select {
	case <-l.intent:
		// stop requested before start
		l.transition(StateStopping, StateStarting)
		l.transition(StateStopped, StateStopping)
		l.log.Info().Msg("grpc server stopped before serving")
		return nil
	default:
	}
	addr := l.settings.Addr()
	l.log.Info().Str("addr", addr).Msg("starting grpc server")

	srv := grpc.NewServer(l.serverOptions()...)
	for _, r := range l.registrars {
		r(srv)
	}
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		l.signalIntent()
		l.transition(StateStopped, StateStarting, StateStopping)
		return &BindError{Addr: addr, Err: err}
	}

	l.mu.Lock()
	l.srv, l.health, l.lis = srv, hs, lis
	l.mu.Unlock()

	if !l.transition(StateServing, StateStarting) {
		// stop requested while starting
		lis.Close()
		srv.Stop()
		l.transition(StateStopped, StateStopping)
		l.log.Info().Msg("grpc server stopped before serving")
		return nil
	}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	l.log.Info().
		Str("addr", lis.Addr().String()).
		Int("max_workers", l.settings.MaxWorkers()).
		Dur("grace_period", l.settings.GracePeriod()).
		Bool("tls", l.creds != nil).
		Msg("grpc server started")

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(lis)
	}()

	select {
	case <-l.intent:
	case <-ctx.Done():
		l.log.Info().Msg("context done, stopping")
		_ = l.Stop(l.settings.GracePeriod())
	case err := <-errc:
		if l.transition(StateStopping, StateServing) {
			l.signalIntent()
			srv.Stop()
			l.transition(StateStopped, StateStopping)
			l.log.Error().Err(err).Msg("grpc server failed")
			return fmt.Errorf("serve grpc: %w", err)
		}
		// a stop raced the failure and owns the rest of the shutdown
	}

	<-l.done
	return nil
}

// Stop requests a shutdown. In-flight calls get up to timeout to finish,
// after which they are abandoned and a *DrainTimeoutError is returned.
// A zero timeout stops immediately.
// Before Start, Stop only records the request: the lifecycle stays Created
// and a later Start stops without serving.
// While starting, or while another caller is draining,
// Stop waits at most timeout for the lifecycle to reach Stopped.
func (l *Lifecycle) Stop(timeout time.Duration) error {
	if l.requestBeforeStart() {
		return nil
	}
	switch {
	case l.transition(StateStopping, StateStarting):
		// Start notices and releases the listener
		l.signalIntent()
	case l.transition(StateStopping, StateServing):
		l.signalIntent()
		return l.drain(timeout)
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-l.done:
	case <-t.C:
	}
	return nil
}

// requestBeforeStart records a stop request if Start hasn't run yet.
// It holds the transition lock so Start either sees the request
// or has already left Created.
func (l *Lifecycle) requestBeforeStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if State(l.state.Load()) != StateCreated {
		return false
	}
	l.signalIntent()
	return true
}

// HandleTermination stops with the configured grace period.
func (l *Lifecycle) HandleTermination(sig os.Signal) {
	l.log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	_ = l.Stop(l.settings.GracePeriod())
}

func (l *Lifecycle) drain(timeout time.Duration) error {
	l.mu.Lock()
	srv, hs := l.srv, l.health
	l.mu.Unlock()

	l.log.Info().Dur("timeout", timeout).Msg("stopping grpc server")
	hs.Shutdown()

	var err error
	if timeout <= 0 {
		srv.Stop()
	} else {
		drained := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(drained)
		}()

		t := time.NewTimer(timeout)
		defer t.Stop()
		select {
		case <-drained:
		case <-t.C:
			srv.Stop()
			err = &DrainTimeoutError{Timeout: timeout}
			l.log.Warn().Err(err).Msg("forcing stop")
		}
	}

	l.transition(StateStopped, StateStopping)
	l.log.Info().Msg("grpc server stopped")
	return err
}

func (l *Lifecycle) signalIntent() {
	l.intentOnce.Do(func() {
		close(l.intent)
	})
}

// transition moves to the state to if the current state is one of from.
func (l *Lifecycle) transition(to State, from ...State) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := State(l.state.Load())
	if !slices.Contains(from, cur) {
		return false
	}
	l.state.Store(int32(to))
	l.metrics.setState(to)
	if l.observer != nil {
		l.observer(cur, to)
	}
	switch to {
	case StateServing:
		close(l.serving)
	case StateStopped:
		close(l.done)
	}
	return true
}

func (l *Lifecycle) serverOptions() []grpc.ServerOption {
	opts := []grpc.ServerOption{
		grpc.NumStreamWorkers(uint32(l.settings.MaxWorkers())),
		grpc.ChainUnaryInterceptor(
			grpcMid(l.log, l.metrics),
			grpcRecover(l.log),
			grpcLimit(l.settings.MaxWorkers()),
		),
	}
	if l.creds != nil {
		opts = append(opts, grpc.Creds(l.creds))
	}
	return append(opts, l.serverOpts...)
}

func (l *Lifecycle) State() State {
	return State(l.state.Load())
}

// Addr is the bound address once serving, the configured one before.
func (l *Lifecycle) Addr() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lis != nil {
		return l.lis.Addr().String()
	}
	return l.settings.Addr()
}

// Serving is closed when the lifecycle enters Serving.
func (l *Lifecycle) Serving() <-chan struct{} {
	return l.serving
}

// Done is closed when the lifecycle reaches Stopped.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}
