package templatesvc

import (
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/grpclog"
)

// GRPCLogger adapts a zerolog.Logger to grpclog.LoggerV2,
// for use with grpclog.SetLoggerV2.
func GRPCLogger(log zerolog.Logger) grpclog.LoggerV2 {
	return grpcLogger{log.With().Str("component", "grpc").Logger()}
}

type grpcLogger struct {
	log zerolog.Logger
}

func (g grpcLogger) Info(args ...interface{})    { g.log.Debug().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Infoln(args ...interface{})  { g.log.Debug().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Infof(f string, args ...interface{}) {
	g.log.Debug().Msgf(f, args...)
}
func (g grpcLogger) Warning(args ...interface{})   { g.log.Warn().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Warningln(args ...interface{}) { g.log.Warn().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Warningf(f string, args ...interface{}) {
	g.log.Warn().Msgf(f, args...)
}
func (g grpcLogger) Error(args ...interface{})   { g.log.Error().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Errorln(args ...interface{}) { g.log.Error().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Errorf(f string, args ...interface{}) {
	g.log.Error().Msgf(f, args...)
}
func (g grpcLogger) Fatal(args ...interface{})   { g.log.Fatal().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Fatalln(args ...interface{}) { g.log.Fatal().Msg(fmt.Sprint(args...)) }
func (g grpcLogger) Fatalf(f string, args ...interface{}) {
	g.log.Fatal().Msgf(f, args...)
}

// V reports whether verbosity level l is enabled.
// grpc info logs map to debug, so any verbosity needs debug.
func (g grpcLogger) V(l int) bool {
	return g.log.GetLevel() <= zerolog.DebugLevel
}
