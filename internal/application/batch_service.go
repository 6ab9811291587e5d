package application

import (
	"context"
	"strings"

	"github.com/phishguard/phishguard/internal/domain"
	"github.com/phishguard/phishguard/internal/domain/urlutil"
)

// ParseURLList splits free-form text into candidate URLs, one per line.
// Blank lines and surrounding whitespace are dropped. This is the contract
// for uploaded URL list files.
func ParseURLList(text string) []string {
	var urls []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

// BatchService analyzes many URLs in one backend round trip.
type BatchService struct {
	api domain.DetectionAPI
}

func NewBatchService(api domain.DetectionAPI) *BatchService {
	return &BatchService{api: api}
}

// BatchOutcome separates backend results from inputs rejected locally.
type BatchOutcome struct {
	Results []domain.DetectionResponse
	// Invalid inputs never reach the network.
	Invalid []string
}

// AnalyzeAll validates and formats each candidate, then submits the valid
// ones as a single batch. With no valid candidate at all the call fails
// without touching the network.
func (s *BatchService) AnalyzeAll(ctx context.Context, urls []string) (*BatchOutcome, error) {
	outcome := &BatchOutcome{}

	var targets []string
	for _, u := range urls {
		formatted := urlutil.Format(u)
		if !urlutil.IsValid(formatted) {
			outcome.Invalid = append(outcome.Invalid, u)
			continue
		}
		targets = append(targets, formatted)
	}

	if len(targets) == 0 {
		return nil, domain.ErrEmptyInput
	}

	results, err := s.api.BatchDetect(ctx, targets)
	if err != nil {
		return nil, err
	}
	outcome.Results = results
	return outcome, nil
}
