package templatesvc

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

var (
	// Signals is the default signals forwarded by SignalBridge.
	// SIGINT: Ctrl-c,
	// SIGTERM: k8s kill,
	Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
)

// Terminator accepts termination requests.
// *Lifecycle implements it.
type Terminator interface {
	HandleTermination(sig os.Signal)
}

// SignalBridge forwards process termination signals to a Terminator.
// It only requests a stop, the target decides what a repeated request means.
type SignalBridge struct {
	log    zerolog.Logger
	target Terminator
	sigs   []os.Signal
	c      chan os.Signal
}

// NewSignalBridge subscribes to sigs, or the default Signals if none are given.
// Signals arriving before Listen runs are buffered.
func NewSignalBridge(log zerolog.Logger, target Terminator, sigs ...os.Signal) *SignalBridge {
	if len(sigs) == 0 {
		sigs = Signals
	}
	b := &SignalBridge{
		log:    log.With().Str("component", "signals").Logger(),
		target: target,
		sigs:   sigs,
		c:      make(chan os.Signal, len(sigs)),
	}
	signal.Notify(b.c, sigs...)
	return b
}

// Listen forwards every received signal without waiting on the target,
// until ctx is done.
func (b *SignalBridge) Listen(ctx context.Context) error {
	defer signal.Stop(b.c)
	for {
		select {
		case sig := <-b.c:
			b.log.Debug().Str("signal", sig.String()).Msg("forwarding signal")
			go b.target.HandleTermination(sig)
		case <-ctx.Done():
			return nil
		}
	}
}
