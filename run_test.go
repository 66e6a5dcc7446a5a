package templatesvc

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsRunners(t *testing.T) {
	lc := NewLifecycle(testSettings(t, 0, time.Second), zerolog.Nop())
	runnerDone := make(chan struct{})
	errc := make(chan error, 1)
	go func() {
		errc <- Run(context.Background(), lc, func(ctx context.Context) error {
			<-ctx.Done()
			close(runnerDone)
			return nil
		})
	}()

	<-lc.Serving()
	require.NoError(t, lc.Stop(time.Second))
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
	select {
	case <-runnerDone:
	default:
		t.Fatal("runner not cancelled")
	}
}

func TestRunFailingRunnerStopsLifecycle(t *testing.T) {
	lc := NewLifecycle(testSettings(t, 0, time.Second), zerolog.Nop())
	boom := errors.New("boom")
	err := Run(context.Background(), lc, func(ctx context.Context) error {
		select {
		case <-lc.Serving():
			return boom
		case <-ctx.Done():
			return nil
		}
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StateStopped, lc.State())
}

func TestRunTerminatedBeforeStart(t *testing.T) {
	lc := NewLifecycle(testSettings(t, 0, time.Second), zerolog.Nop())
	lc.HandleTermination(syscall.SIGINT)

	err := Run(context.Background(), lc, func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateStopped, lc.State())
}

func TestRunIllegalState(t *testing.T) {
	lc := NewLifecycle(testSettings(t, 0, time.Second), zerolog.Nop())
	lc.HandleTermination(syscall.SIGINT)
	require.NoError(t, Run(context.Background(), lc))

	var ise *IllegalStateError
	err := Run(context.Background(), lc, func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, StateStopped, ise.State)
}
