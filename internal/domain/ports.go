package domain

import "context"

// DetectionAPI is the outbound port to the phishing-detection backend.
type DetectionAPI interface {
	// Health reports whether the backend answered the health probe with
	// status ok. Failures are folded into false, never an error.
	Health(ctx context.Context) bool
	Detect(ctx context.Context, url string) (*DetectionResponse, error)
	BatchDetect(ctx context.Context, urls []string) ([]DetectionResponse, error)
	Statistics(ctx context.Context) (*Statistics, error)
	SubmitReport(ctx context.Context, sub ReportSubmission) (*ReportAck, error)
	Reports(ctx context.Context, page, limit int) (*ReportPage, error)
	SearchHistory(ctx context.Context, page, limit int, filter string) (*HistoryPage, error)
}

// ResultCache stores recent detection responses keyed by canonical URL.
type ResultCache interface {
	// Load returns (nil, nil) on a miss or a stale entry.
	Load(url string) (*DetectionResponse, error)
	Save(url string, resp *DetectionResponse) error
	Invalidate(url string) error
}

// AnalysisHistory is the local log of analyses run from this machine.
type AnalysisHistory interface {
	Save(entry HistoryEntry) error
	// Load returns nil when no history exists yet.
	Load() ([]HistoryEntry, error)
}

// ConfigLoader loads the client configuration.
type ConfigLoader interface {
	Load() (ClientConfig, error)
}
