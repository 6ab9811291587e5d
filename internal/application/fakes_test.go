package application_test

import (
	"context"

	"github.com/phishguard/phishguard/internal/domain"
)

// fakeAPI is an in-memory domain.DetectionAPI for service tests.
type fakeAPI struct {
	healthy     bool
	healthCalls int

	detectResp  *domain.DetectionResponse
	detectErr   error
	detectCalls int
	lastDetect  string

	batchResp []domain.DetectionResponse
	batchErr  error
	lastBatch []string

	stats    *domain.Statistics
	statsErr error

	ack        *domain.ReportAck
	ackErr     error
	lastReport domain.ReportSubmission

	reportPage  *domain.ReportPage
	historyPage *domain.HistoryPage
	lastPage    int
	lastLimit   int
	lastFilter  string
}

func (f *fakeAPI) Health(ctx context.Context) bool {
	f.healthCalls++
	return f.healthy
}

func (f *fakeAPI) Detect(ctx context.Context, url string) (*domain.DetectionResponse, error) {
	f.detectCalls++
	f.lastDetect = url
	return f.detectResp, f.detectErr
}

func (f *fakeAPI) BatchDetect(ctx context.Context, urls []string) ([]domain.DetectionResponse, error) {
	f.lastBatch = urls
	return f.batchResp, f.batchErr
}

func (f *fakeAPI) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return f.stats, f.statsErr
}

func (f *fakeAPI) SubmitReport(ctx context.Context, sub domain.ReportSubmission) (*domain.ReportAck, error) {
	f.lastReport = sub
	return f.ack, f.ackErr
}

func (f *fakeAPI) Reports(ctx context.Context, page, limit int) (*domain.ReportPage, error) {
	f.lastPage, f.lastLimit = page, limit
	return f.reportPage, nil
}

func (f *fakeAPI) SearchHistory(ctx context.Context, page, limit int, filter string) (*domain.HistoryPage, error) {
	f.lastPage, f.lastLimit, f.lastFilter = page, limit, filter
	return f.historyPage, nil
}

// fakeCache is an in-memory domain.ResultCache.
type fakeCache struct {
	entries map[string]*domain.DetectionResponse
	saves   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*domain.DetectionResponse{}}
}

func (c *fakeCache) Load(url string) (*domain.DetectionResponse, error) {
	return c.entries[url], nil
}

func (c *fakeCache) Save(url string, resp *domain.DetectionResponse) error {
	c.saves++
	c.entries[url] = resp
	return nil
}

func (c *fakeCache) Invalidate(url string) error {
	delete(c.entries, url)
	return nil
}

// fakeHistory is an in-memory domain.AnalysisHistory.
type fakeHistory struct {
	entries []domain.HistoryEntry
}

func (h *fakeHistory) Save(entry domain.HistoryEntry) error {
	h.entries = append(h.entries, entry)
	return nil
}

func (h *fakeHistory) Load() ([]domain.HistoryEntry, error) {
	return h.entries, nil
}
