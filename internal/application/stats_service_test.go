package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/application"
	"github.com/phishguard/phishguard/internal/domain"
)

func TestStatisticsPassthrough(t *testing.T) {
	api := &fakeAPI{stats: &domain.Statistics{TotalURLsAnalyzed: 42}}
	svc := application.NewStatsService(api)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalURLsAnalyzed)
}

func TestSearchHistoryNormalizesArguments(t *testing.T) {
	api := &fakeAPI{historyPage: &domain.HistoryPage{}}
	svc := application.NewStatsService(api)

	_, err := svc.SearchHistory(context.Background(), 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, api.lastPage)
	assert.Equal(t, 10, api.lastLimit)
	assert.Equal(t, "all", api.lastFilter)

	_, err = svc.SearchHistory(context.Background(), 2, 50, "phishing")
	require.NoError(t, err)
	assert.Equal(t, 2, api.lastPage)
	assert.Equal(t, 50, api.lastLimit)
	assert.Equal(t, "phishing", api.lastFilter)
}
