package templatesvc

import (
	"google.golang.org/grpc/credentials"
)

// WithTLS serves with the given transport credentials instead of plaintext.
func WithTLS(creds credentials.TransportCredentials) LifecycleOption {
	return func(l *Lifecycle) {
		l.creds = creds
	}
}

// LoadTLS reads a PEM encoded certificate and key pair for WithTLS.
func LoadTLS(certFile, keyFile string) (credentials.TransportCredentials, error) {
	creds, err := credentials.NewServerTLSFromFile(certFile, keyFile)
	if err != nil {
		return nil, &ConfigValidationError{Field: "SERVER_TLS_CERT_FILE", Reason: err.Error()}
	}
	return creds, nil
}
