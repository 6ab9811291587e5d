package application

import (
	"context"

	"github.com/phishguard/phishguard/internal/domain"
)

// StatsService fetches aggregate statistics and server-side search history.
type StatsService struct {
	api domain.DetectionAPI
}

func NewStatsService(api domain.DetectionAPI) *StatsService {
	return &StatsService{api: api}
}

func (s *StatsService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return s.api.Statistics(ctx)
}

// SearchHistory pages through the backend's analysis history. The filter is
// one of all, phishing or legitimate; empty means all.
func (s *StatsService) SearchHistory(ctx context.Context, page, limit int, filter string) (*domain.HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if filter == "" {
		filter = "all"
	}
	return s.api.SearchHistory(ctx, page, limit, filter)
}
