package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/application"
	"github.com/phishguard/phishguard/internal/domain"
)

func TestReportSubmitValidation(t *testing.T) {
	svc := application.NewReportService(&fakeAPI{})

	_, err := svc.Submit(context.Background(), "  ", "user", "desc")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = svc.Submit(context.Background(), "not a url", "user", "desc")
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestReportSubmitDefaultsUsername(t *testing.T) {
	api := &fakeAPI{ack: &domain.ReportAck{Success: true, Message: "recorded"}}
	svc := application.NewReportService(api)

	ack, err := svc.Submit(context.Background(), "phishy.xyz/login", "  ", "looks fake")
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, domain.ReportSubmission{
		URL:         "https://phishy.xyz/login",
		Username:    "Anonymous",
		Description: "looks fake",
	}, api.lastReport)
}

func TestReportSubmitKeepsUsername(t *testing.T) {
	api := &fakeAPI{ack: &domain.ReportAck{Success: true}}
	svc := application.NewReportService(api)

	_, err := svc.Submit(context.Background(), "phishy.xyz", "alice", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", api.lastReport.Username)
}

func TestReportsNormalizesPaging(t *testing.T) {
	api := &fakeAPI{reportPage: &domain.ReportPage{Page: 1}}
	svc := application.NewReportService(api)

	_, err := svc.Reports(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, api.lastPage)
	assert.Equal(t, 10, api.lastLimit)

	_, err = svc.Reports(context.Background(), 3, 25)
	require.NoError(t, err)
	assert.Equal(t, 3, api.lastPage)
	assert.Equal(t, 25, api.lastLimit)
}
