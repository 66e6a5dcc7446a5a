package templatesvc

import (
	"errors"
	"flag"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

var (
	defaultConfig = Config{
		App: AppConfig{
			Name:        "templatesvc",
			Version:     "0.1.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        50051,
			MaxWorkers:  10,
			GracePeriod: 30,
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "json",
		},
		Repository: RepositoryConfig{
			Kind:        "memory",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "templatesvc:",
		},
		Trace: TraceConfig{
			Insecure:   true,
			SampleRate: 1.0,
		},
	}
)

// Config is the full service configuration.
// Each group is read from the environment with its own prefix,
// ex: SERVER_PORT, LOGGING_FORMAT.
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Logging    LoggingConfig
	Repository RepositoryConfig
	Admin      AdminConfig
	Trace      TraceConfig
}

type AppConfig struct {
	Name        string `envconfig:"name"`
	Version     string `envconfig:"version"`
	Environment string `envconfig:"environment"`
	// Debug forces the debug log level
	Debug bool `envconfig:"debug"`
}

type ServerConfig struct {
	// Ex: 0.0.0.0
	Host string `envconfig:"host"`
	// Ex: 50051
	Port       int `envconfig:"port"`
	MaxWorkers int `envconfig:"max_workers"`
	// seconds
	GracePeriod int    `envconfig:"grace_period"`
	TLSCertFile string `envconfig:"tls_cert_file"`
	TLSKeyFile  string `envconfig:"tls_key_file"`
}

type LoggingConfig struct {
	// valid values are (case insensitive):
	// debug, info, warning, warn, error, critical
	Level string `envconfig:"level"`
	// valid values are:
	// json, console
	Format string `envconfig:"format"`
}

type RepositoryConfig struct {
	// valid values are:
	// memory, redis
	Kind          string `envconfig:"kind"`
	RedisAddr     string `envconfig:"redis_addr"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db"`
	RedisPrefix   string `envconfig:"redis_prefix"`
}

type AdminConfig struct {
	// Ex: :8080, empty disables the admin server
	Addr string `envconfig:"addr"`
}

type TraceConfig struct {
	// OTLP gRPC collector, empty disables tracing
	Endpoint   string  `envconfig:"endpoint"`
	Insecure   bool    `envconfig:"insecure"`
	SampleRate float64 `envconfig:"sample_rate"`
}

// NewConfig returns a config with defaults
// overriden by options, in order.
// The result is validated.
func NewConfig(options ...ConfigOption) (*Config, error) {
	c := defaultConfig
	for _, o := range options {
		if err := o(&c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

type ConfigOption func(c *Config) error

// WithEnv overrides config values with ones retrieved from the environment.
// Groups and their prefixes:
// APP_, SERVER_, LOGGING_, REPOSITORY_, ADMIN_, TRACE_
func WithEnv() ConfigOption {
	return func(c *Config) error {
		groups := []struct {
			prefix string
			spec   interface{}
		}{
			{"app", &c.App},
			{"server", &c.Server},
			{"logging", &c.Logging},
			{"repository", &c.Repository},
			{"admin", &c.Admin},
			{"trace", &c.Trace},
		}
		for _, g := range groups {
			if err := envconfig.Process(g.prefix, g.spec); err != nil {
				var pe *envconfig.ParseError
				if errors.As(err, &pe) {
					return &ConfigValidationError{Field: pe.KeyName, Reason: pe.Err.Error()}
				}
				return &ConfigValidationError{Field: g.prefix, Reason: err.Error()}
			}
		}
		return nil
	}
}

// WithFlags registers flags with the provided flagset,
// using the current values as defaults.
// fs.Parse MUST be called before the options after it run,
// so pass a ConfigOption from ParseFlags last.
func WithFlags(fs *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fs.StringVar(&c.Server.Host, "server.host", c.Server.Host, `address to listen on, ex 0.0.0.0`)
		fs.IntVar(&c.Server.Port, "server.port", c.Server.Port, `port to listen on, ex 50051`)
		fs.IntVar(&c.Server.MaxWorkers, "server.max-workers", c.Server.MaxWorkers, `concurrently executing calls`)
		fs.IntVar(&c.Server.GracePeriod, "server.grace-period", c.Server.GracePeriod, `shutdown drain period in seconds`)
		fs.StringVar(&c.Logging.Level, "log.level", c.Logging.Level, `levels: debug, info, warning, error, critical`)
		fs.StringVar(&c.Logging.Format, "log.format", c.Logging.Format, `format: json, console`)
		fs.StringVar(&c.Repository.Kind, "repository.kind", c.Repository.Kind, `record store: memory, redis`)
		fs.StringVar(&c.Admin.Addr, "admin.addr", c.Admin.Addr, `admin http address, ex :8080`)
		fs.StringVar(&c.Trace.Endpoint, "trace.endpoint", c.Trace.Endpoint, `otlp grpc collector endpoint`)
		return nil
	}
}

// ParseFlags parses args into a flagset previously passed to WithFlags.
func ParseFlags(fs *flag.FlagSet, args []string) ConfigOption {
	return func(c *Config) error {
		return fs.Parse(args)
	}
}

func WithLogLevel(level string) ConfigOption {
	return func(c *Config) error {
		c.Logging.Level = level
		return nil
	}
}
func WithLogFormat(format string) ConfigOption {
	return func(c *Config) error {
		c.Logging.Format = format
		return nil
	}
}
func WithHost(h string) ConfigOption {
	return func(c *Config) error {
		c.Server.Host = h
		return nil
	}
}
func WithPort(p int) ConfigOption {
	return func(c *Config) error {
		c.Server.Port = p
		return nil
	}
}
func WithMaxWorkers(n int) ConfigOption {
	return func(c *Config) error {
		c.Server.MaxWorkers = n
		return nil
	}
}
func WithGracePeriod(seconds int) ConfigOption {
	return func(c *Config) error {
		c.Server.GracePeriod = seconds
		return nil
	}
}

// Validate checks every group and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := c.Settings(); err != nil {
		return err
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return &ConfigValidationError{Field: "LOGGING_FORMAT", Reason: "must be json or console, got " + c.Logging.Format}
	}
	switch c.Repository.Kind {
	case "memory", "redis":
	default:
		return &ConfigValidationError{Field: "REPOSITORY_KIND", Reason: "must be memory or redis, got " + c.Repository.Kind}
	}
	if (c.Server.TLSCertFile == "") != (c.Server.TLSKeyFile == "") {
		return &ConfigValidationError{Field: "SERVER_TLS_CERT_FILE", Reason: "cert and key files must be set together"}
	}
	if c.Trace.SampleRate < 0 || c.Trace.SampleRate > 1 {
		return &ConfigValidationError{Field: "TRACE_SAMPLE_RATE", Reason: "must be between 0 and 1"}
	}
	return nil
}

// Settings returns the validated server settings.
func (c *Config) Settings() (Settings, error) {
	if int64(c.Server.GracePeriod) > maxGraceSeconds {
		return Settings{}, &ConfigValidationError{
			Field:  "grace_period",
			Reason: "must be at most " + strconv.FormatInt(maxGraceSeconds, 10) + " seconds, got " + strconv.Itoa(c.Server.GracePeriod),
		}
	}
	return NewSettings(c.Server.Host, c.Server.Port, c.Server.MaxWorkers, time.Duration(c.Server.GracePeriod)*time.Second)
}

// largest grace period, in seconds, that fits a time.Duration
const maxGraceSeconds = math.MaxInt64 / int64(time.Second)

// Logger returns a configured logger writing to stdout
func (c *Config) Logger() zerolog.Logger {
	return c.LoggerTo(os.Stdout)
}

// LoggerTo returns a configured logger writing to out
func (c *Config) LoggerTo(out io.Writer) zerolog.Logger {
	if c.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}
	lvl, err := parseLevel(c.Logging.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if c.App.Debug {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("logger", c.App.Name).Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	switch l := strings.ToLower(s); l {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	case "debug", "info", "warn", "error":
		return zerolog.ParseLevel(l)
	default:
		return zerolog.NoLevel, &ConfigValidationError{Field: "LOGGING_LEVEL", Reason: "unknown level " + s}
	}
}
