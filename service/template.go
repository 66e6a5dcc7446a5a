// Package service implements templatesvc.v1.TemplateService.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"go.seankhliao.com/templatesvc/store"
	"go.seankhliao.com/templatesvc/templatepb"
)

const healthyMessage = "Service is healthy"

// TemplateService records every health check and reports
// NOT_SERVING when the record can't be stored.
type TemplateService struct {
	templatepb.UnimplementedTemplateServiceServer

	log     zerolog.Logger
	records store.Repository
	now     func() time.Time
}

func New(log zerolog.Logger, records store.Repository) *TemplateService {
	s := &TemplateService{
		log:     log.With().Str("service", "TemplateService").Logger(),
		records: records,
		now:     time.Now,
	}
	s.log.Info().Msg("TemplateService initialized")
	return s
}

func (s *TemplateService) HealthCheck(ctx context.Context, _ *templatepb.HealthCheckRequest) (*templatepb.HealthCheckResponse, error) {
	s.log.Debug().Msg("health check requested")

	hc, err := s.records.Create(ctx, store.HealthCheck{Timestamp: s.now()})
	if err != nil {
		s.log.Error().Err(err).Msg("health check failed")
		return &templatepb.HealthCheckResponse{
			Status:  templatepb.HealthCheckResponse_NOT_SERVING,
			Message: "Service is unhealthy: " + err.Error(),
		}, nil
	}
	s.log.Debug().
		Str("id", hc.ID).
		Time("timestamp", hc.Timestamp).
		Msg("created health check record")

	return &templatepb.HealthCheckResponse{
		Status:  templatepb.HealthCheckResponse_SERVING,
		Message: healthyMessage,
	}, nil
}
