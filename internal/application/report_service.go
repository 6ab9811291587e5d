package application

import (
	"context"
	"strings"

	"github.com/phishguard/phishguard/internal/domain"
	"github.com/phishguard/phishguard/internal/domain/urlutil"
)

const defaultUsername = "Anonymous"

// ReportService submits and lists community phishing reports.
type ReportService struct {
	api domain.DetectionAPI
}

func NewReportService(api domain.DetectionAPI) *ReportService {
	return &ReportService{api: api}
}

// Submit validates the URL locally, fills in the anonymous username when
// none is given and posts the report.
func (s *ReportService) Submit(ctx context.Context, rawURL, username, description string) (*domain.ReportAck, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, domain.ErrEmptyInput
	}
	formatted := urlutil.Format(rawURL)
	if !urlutil.IsValid(formatted) {
		return nil, domain.ErrInvalidURL
	}
	if strings.TrimSpace(username) == "" {
		username = defaultUsername
	}

	return s.api.SubmitReport(ctx, domain.ReportSubmission{
		URL:         formatted,
		Username:    username,
		Description: description,
	})
}

// Reports pages through submitted reports, normalizing out-of-range paging
// arguments.
func (s *ReportService) Reports(ctx context.Context, page, limit int) (*domain.ReportPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.api.Reports(ctx, page, limit)
}
