package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/application"
	"github.com/phishguard/phishguard/internal/domain"
)

func TestParseURLList(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"blank lines only", "\n\n   \n", nil},
		{"trims and drops blanks", "  example.com  \n\nphishy.xyz\n", []string{"example.com", "phishy.xyz"}},
		{"windows line endings", "a.com\r\nb.com", []string{"a.com", "b.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.ParseURLList(tt.text))
		})
	}
}

func TestBatchAnalyzeAllPartitionsInput(t *testing.T) {
	api := &fakeAPI{batchResp: []domain.DetectionResponse{{URL: "https://a.com"}, {URL: "https://b.xyz"}}}
	svc := application.NewBatchService(api)

	outcome, err := svc.AnalyzeAll(context.Background(), []string{"a.com", "not a url", "b.xyz", "localhost"})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.com", "https://b.xyz"}, api.lastBatch)
	assert.Equal(t, []string{"not a url", "localhost"}, outcome.Invalid)
	assert.Len(t, outcome.Results, 2)
}

func TestBatchAnalyzeAllNoValidTargets(t *testing.T) {
	api := &fakeAPI{}
	svc := application.NewBatchService(api)

	_, err := svc.AnalyzeAll(context.Background(), []string{"not a url", ""})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Nil(t, api.lastBatch)
}

func TestBatchAnalyzeAllPropagatesBackendError(t *testing.T) {
	api := &fakeAPI{batchErr: domain.ErrServerFailure}
	svc := application.NewBatchService(api)

	_, err := svc.AnalyzeAll(context.Background(), []string{"a.com"})
	assert.ErrorIs(t, err, domain.ErrServerFailure)
}
