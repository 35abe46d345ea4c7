package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sportsdata-go/external/sportsdata"
	"github.com/riskibarqy/sportsdata-go/internal/domain/rawdata"
	"github.com/riskibarqy/sportsdata-go/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// PayloadFetcher is satisfied by *sportsdata.Client.
type PayloadFetcher interface {
	FetchPayload(ctx context.Context, template string, params ...sportsdata.Param) (any, rawdata.Payload, error)
}

type ArchiveService struct {
	fetcher PayloadFetcher
	repo    rawdata.Repository
	logger  *logging.Logger
}

type ArchiveResult struct {
	Value    any
	Payload  rawdata.Payload
	Archived bool
}

// NewArchiveService builds the service; repo may be nil, in which case
// responses are fetched but never stored.
func NewArchiveService(fetcher PayloadFetcher, repo rawdata.Repository, logger *logging.Logger) *ArchiveService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ArchiveService{
		fetcher: fetcher,
		repo:    repo,
		logger:  logger,
	}
}

func (s *ArchiveService) Fetch(ctx context.Context, template string, params ...sportsdata.Param) (ArchiveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.Fetch")
	defer span.End()

	template = strings.TrimSpace(template)
	if template == "" {
		return ArchiveResult{}, fmt.Errorf("%w: endpoint template is required", ErrInvalidInput)
	}
	for _, param := range params {
		if strings.TrimSpace(param.Name) == "" {
			return ArchiveResult{}, fmt.Errorf("%w: parameter name is required", ErrInvalidInput)
		}
	}
	if s.fetcher == nil {
		return ArchiveResult{}, fmt.Errorf("%w: sportsdata client is not configured", ErrDependencyUnavailable)
	}

	value, payload, err := s.fetcher.FetchPayload(ctx, template, params...)
	if err != nil {
		return ArchiveResult{}, err
	}

	result := ArchiveResult{Value: value, Payload: payload}
	if s.repo == nil {
		return result, nil
	}

	if err := s.repo.UpsertMany(ctx, []rawdata.Payload{payload}); err != nil {
		s.logger.WarnContext(ctx, "archive raw payload failed",
			"entity_type", payload.EntityType,
			"entity_key", payload.EntityKey,
			"error", err,
		)
		return result, fmt.Errorf("%w: archive raw payload: %w", ErrDependencyUnavailable, err)
	}
	span.SetAttributes(
		attribute.String("sportsdata.entity_key", payload.EntityKey),
		attribute.String("sportsdata.payload_hash", payload.PayloadHash),
	)
	s.logger.DebugContext(ctx, "archived raw payload",
		"entity_type", payload.EntityType,
		"entity_key", payload.EntityKey,
		"bytes", len(payload.PayloadJSON),
	)

	result.Archived = true
	return result, nil
}
