package templatesvc

import (
	"net"
	"strconv"
	"time"
)

// Settings are the validated, immutable parameters of one gRPC endpoint.
type Settings struct {
	host        string
	port        int
	maxWorkers  int
	gracePeriod time.Duration
}

type SettingsOption func(*settingsRules)

type settingsRules struct {
	allowEphemeral bool
}

// WithEphemeralPort accepts port 0, letting the kernel pick a free port at bind time.
func WithEphemeralPort() SettingsOption {
	return func(r *settingsRules) {
		r.allowEphemeral = true
	}
}

// NewSettings validates its arguments, so that a bad port or worker count
// fails here and never at bind time.
func NewSettings(host string, port, maxWorkers int, gracePeriod time.Duration, opts ...SettingsOption) (Settings, error) {
	var rules settingsRules
	for _, o := range opts {
		o(&rules)
	}

	minPort := 1
	if rules.allowEphemeral {
		minPort = 0
	}
	if port < minPort || port > 65535 {
		return Settings{}, &ConfigValidationError{
			Field:  "port",
			Reason: "must be between " + strconv.Itoa(minPort) + " and 65535, got " + strconv.Itoa(port),
		}
	}
	if maxWorkers <= 0 {
		return Settings{}, &ConfigValidationError{
			Field:  "max_workers",
			Reason: "must be greater than 0, got " + strconv.Itoa(maxWorkers),
		}
	}
	if gracePeriod < 0 {
		return Settings{}, &ConfigValidationError{
			Field:  "grace_period",
			Reason: "must not be negative, got " + gracePeriod.String(),
		}
	}
	return Settings{
		host:        host,
		port:        port,
		maxWorkers:  maxWorkers,
		gracePeriod: gracePeriod,
	}, nil
}

func (s Settings) Host() string               { return s.host }
func (s Settings) Port() int                  { return s.port }
func (s Settings) MaxWorkers() int            { return s.maxWorkers }
func (s Settings) GracePeriod() time.Duration { return s.gracePeriod }

// Addr is the host:port the endpoint binds to.
func (s Settings) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}
