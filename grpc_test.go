package templatesvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/templatesvc.v1.TemplateService/HealthCheck"}

func TestGRPCRecover(t *testing.T) {
	intercept := grpcRecover(zerolog.Nop())

	t.Run("panic", func(t *testing.T) {
		resp, err := intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
			panic("boom")
		})
		assert.Nil(t, resp)
		assert.Equal(t, codes.Internal, status.Code(err))
	})
	t.Run("plain error", func(t *testing.T) {
		_, err := intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
			return nil, errors.New("disk on fire")
		})
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Internal, st.Code())
		assert.Equal(t, "disk on fire", st.Message())
	})
	t.Run("status error", func(t *testing.T) {
		_, err := intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
			return nil, status.Error(codes.NotFound, "missing")
		})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
	t.Run("ok", func(t *testing.T) {
		resp, err := intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
			return "resp", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "resp", resp)
	})
}

func TestGRPCLimit(t *testing.T) {
	intercept := grpcLimit(1)

	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
			close(held)
			<-release
			return nil, nil
		})
		done <- err
	}()
	<-held

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	called := false
	_, err := intercept(ctx, nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
		called = true
		return nil, nil
	})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	assert.False(t, called)

	close(release)
	require.NoError(t, <-done)

	// the slot is free again
	_, err = intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, err)
}

func TestGRPCMidMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	intercept := grpcMid(zerolog.Nop(), m)

	for _, c := range []codes.Code{codes.OK, codes.OK, codes.Unavailable} {
		_, _ = intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
			assert.Equal(t, 1.0, testutil.ToFloat64(m.inflight))
			return nil, status.Error(c, "")
		})
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(testInfo.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(testInfo.FullMethod, "Unavailable")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inflight))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestGRPCMidNilMetrics(t *testing.T) {
	intercept := grpcMid(zerolog.Nop(), nil)
	resp, err := intercept(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
		return "resp", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
}

func TestLifecycleStateMetric(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	lc := NewLifecycle(testSettings(t, 0, time.Second), zerolog.Nop(), WithMetrics(m))
	assert.Equal(t, float64(StateCreated), testutil.ToFloat64(m.state))

	errc := startLifecycle(t, lc)
	assert.Equal(t, float64(StateServing), testutil.ToFloat64(m.state))

	require.NoError(t, lc.Stop(0))
	require.NoError(t, waitStart(t, errc))
	assert.Equal(t, float64(StateStopped), testutil.ToFloat64(m.state))
}
