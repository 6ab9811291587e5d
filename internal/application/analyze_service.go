package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/phishguard/phishguard/internal/domain"
	"github.com/phishguard/phishguard/internal/domain/urlutil"
)

// AnalyzeService orchestrates the single-URL flow:
// format → validate → cache lookup → health gate → detect → map → record.
type AnalyzeService struct {
	api     domain.DetectionAPI
	cache   domain.ResultCache
	history domain.AnalysisHistory

	healthKnown bool
	healthy     bool
}

// NewAnalyzeService creates the service. cache and history may be nil to
// disable the corresponding side effects.
func NewAnalyzeService(api domain.DetectionAPI, cache domain.ResultCache, history domain.AnalysisHistory) *AnalyzeService {
	return &AnalyzeService{api: api, cache: cache, history: history}
}

// Analyze runs one detection round trip and returns both the mapped display
// model and the raw backend response.
func (s *AnalyzeService) Analyze(ctx context.Context, raw string) (*domain.AnalysisResult, *domain.DetectionResponse, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, nil, domain.ErrEmptyInput
	}
	target := urlutil.Format(input)
	if !urlutil.IsValid(target) {
		return nil, nil, domain.ErrInvalidURL
	}

	if s.cache != nil {
		if resp, err := s.cache.Load(target); err == nil && resp != nil {
			mapped := domain.MapDetection(target, resp)
			return &mapped, resp, nil
		}
	}

	if !s.healthKnown || !s.healthy {
		// One-shot re-check when the last known status was negative; a
		// still-unreachable backend fails fast instead of waiting out the
		// full detect timeout.
		s.healthy = s.api.Health(ctx)
		s.healthKnown = true
		if !s.healthy {
			return nil, nil, domain.ErrServerUnreachable
		}
	}

	resp, err := s.api.Detect(ctx, target)
	if err != nil {
		if errors.Is(err, domain.ErrServerUnreachable) {
			s.healthy = false
		}
		return nil, nil, err
	}

	mapped := domain.MapDetection(target, resp)

	// Both records are best-effort; a failed write never fails the analysis.
	if s.cache != nil {
		_ = s.cache.Save(target, resp)
	}
	if s.history != nil {
		_ = s.history.Save(domain.HistoryEntry{
			Timestamp:  time.Now().Format(time.RFC3339),
			URL:        target,
			IsPhishing: mapped.IsPhishing,
			Score:      mapped.Score,
		})
	}

	return &mapped, resp, nil
}
