package templatesvc

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// grpcMid logs and measures every unary call.
func grpcMid(log zerolog.Logger, m *Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		t := time.Now()
		if m != nil {
			m.inflight.Inc()
		}
		defer func() {
			d := time.Since(t)
			code := status.Code(err)
			if m != nil {
				m.inflight.Dec()
				m.latency.WithLabelValues(info.FullMethod).Observe(d.Seconds())
				m.requests.WithLabelValues(info.FullMethod, code.String()).Inc()
			}

			log.Debug().
				Str("method", info.FullMethod).
				Str("code", code.String()).
				Dur("dur", d).
				Msg("served")
		}()

		return handler(ctx, req)
	}
}

// grpcRecover turns handler failures into typed status responses:
// panics and errors without a grpc status become codes.Internal.
func grpcRecover(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("method", info.FullMethod).
					Str("panic", fmt.Sprint(r)).
					Msg("handler panicked")
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()

		resp, err = handler(ctx, req)
		if err != nil {
			if _, ok := status.FromError(err); !ok {
				log.Error().Err(err).Str("method", info.FullMethod).Msg("handler failed")
				err = status.Error(codes.Internal, err.Error())
			}
		}
		return resp, err
	}
}

// grpcLimit bounds the number of concurrently executing handlers to n.
// Waiting calls give up when their context ends.
func grpcLimit(n int) grpc.UnaryServerInterceptor {
	sem := semaphore.NewWeighted(int64(n))
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		defer sem.Release(1)
		return handler(ctx, req)
	}
}
