package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/phishguard/phishguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestMapDetection_FullResponse(t *testing.T) {
	raw := &domain.DetectionResponse{
		FinalVerdict: boolPtr(true),
		Confidence:   floatPtr(92),
		Explanations: []string{"Brand impersonation of examplebank.com detected"},
		VerificationMethods: domain.VerificationMethods{
			{Name: "phishtank", Result: true, Description: "Listed"},
		},
	}

	res := domain.MapDetection("https://example.com", raw)

	assert.Equal(t, "https://example.com", res.URL)
	assert.True(t, res.IsPhishing)
	assert.InDelta(t, 0.92, res.Score, 0.0001)
	assert.Equal(t, "Brand impersonation of examplebank.com detected", res.DetailedAnalysis.BrandImpersonation)
	assert.Equal(t, []string{"Listed"}, res.DetailedAnalysis.SuspiciousElements)
}

func TestMapDetection_DefaultsWhenAbsent(t *testing.T) {
	res := domain.MapDetection("https://example.com", &domain.DetectionResponse{})

	assert.False(t, res.IsPhishing)
	assert.Zero(t, res.Score)
	assert.Equal(t, []string{}, res.Reasons)
	assert.Empty(t, res.DetailedAnalysis.BrandImpersonation)
	assert.Equal(t, []string{}, res.DetailedAnalysis.SuspiciousElements)
	// Summary lines are still present with zero counts.
	require.Len(t, res.DetailedAnalysis.TechnicalDetails, 3)
	assert.Contains(t, res.DetailedAnalysis.TechnicalDetails[0], "0 different verification methods")

	res = domain.MapDetection("https://example.com", nil)
	assert.False(t, res.IsPhishing)
	assert.Zero(t, res.Score)
}

func TestMapDetection_ScoreRounding(t *testing.T) {
	tests := []struct {
		confidence float64
		want       float64
	}{
		{87.5, 0.88}, // half rounds away from zero
		{87.4, 0.87},
		{92, 0.92},
		{0, 0},
		{100, 1},
		{250, 1},  // clamped
		{-10, 0},  // clamped
	}
	for _, tt := range tests {
		res := domain.MapDetection("https://x.com", &domain.DetectionResponse{Confidence: floatPtr(tt.confidence)})
		assert.InDelta(t, tt.want, res.Score, 0.0001, "confidence %v", tt.confidence)
	}
}

func TestMapDetection_DomainParts(t *testing.T) {
	res := domain.MapDetection("https://login.secure.example-1.xyz/path", &domain.DetectionResponse{})

	assert.Equal(t, "login.secure.example-1.xyz", res.Features.Domain)
	assert.Equal(t, "login.secure", res.Features.Subdomain)
	assert.Equal(t, "example-1", res.Features.DomainName)
	assert.Equal(t, "xyz", res.Features.TLD)
	assert.True(t, res.Features.UsesHTTPS)
	assert.True(t, res.Features.ContainsHyphens)
	assert.True(t, res.Features.ContainsNumbers)
	assert.True(t, res.Features.SuspiciousTLD)
	assert.Equal(t, []string{}, res.Features.PathIndicators)
}

func TestMapDetection_MalformedURLLeavesDomainsEmpty(t *testing.T) {
	res := domain.MapDetection("://not-a-url", &domain.DetectionResponse{})

	assert.Empty(t, res.Features.Domain)
	assert.Empty(t, res.Features.Subdomain)
	assert.Empty(t, res.Features.DomainName)
	assert.Empty(t, res.Features.TLD)
	assert.False(t, res.Features.SuspiciousTLD)
}

func TestMapDetection_HTTPAndPlainTLD(t *testing.T) {
	res := domain.MapDetection("http://example.com", &domain.DetectionResponse{})

	assert.False(t, res.Features.UsesHTTPS)
	assert.Equal(t, "example.com", res.Features.Domain)
	assert.Empty(t, res.Features.Subdomain)
	assert.Equal(t, "example", res.Features.DomainName)
	assert.Equal(t, "com", res.Features.TLD)
	assert.False(t, res.Features.SuspiciousTLD)
}

func TestMapDetection_BrandMatchIsFirstInOrder(t *testing.T) {
	raw := &domain.DetectionResponse{
		Explanations: []string{
			"Suspicious TLD detected",
			"Possible IMPERSONATION attempt",
			"brand mismatch with registrar",
		},
	}
	res := domain.MapDetection("https://x.com", raw)
	assert.Equal(t, "Possible IMPERSONATION attempt", res.DetailedAnalysis.BrandImpersonation)
	assert.Equal(t, raw.Explanations, res.Reasons)
}

func TestMapDetection_TechnicalDetails(t *testing.T) {
	raw := &domain.DetectionResponse{
		VerificationMethods: domain.VerificationMethods{
			{Name: "google_safe_browsing", Result: false, Description: "Not flagged"},
			{Name: "uci_model", Result: true, Description: "Model positive"},
		},
		FeaturesExtracted: &domain.FeatureExtraction{UCIFeatures: 30, AdvancedFeatures: 18},
	}

	res := domain.MapDetection("https://x.com", raw)
	details := res.DetailedAnalysis.TechnicalDetails
	require.Len(t, details, 5)
	assert.Equal(t, "URL was analyzed using 2 different verification methods", details[0])
	assert.Equal(t, "Machine learning models detected 30 suspicious features", details[1])
	assert.Equal(t, "Advanced analysis revealed 18 potential risk indicators", details[2])
	assert.Equal(t, "google safe browsing: Not flagged", details[3])
	assert.Equal(t, "uci model: Model positive", details[4])

	assert.Equal(t, []string{"Model positive"}, res.DetailedAnalysis.SuspiciousElements)
}

func TestMapDetection_EndToEndFromJSON(t *testing.T) {
	payload := []byte(`{
		"final_verdict": true,
		"confidence": 92,
		"explanations": ["Brand impersonation of examplebank.com detected"],
		"verification_methods": {"phishtank": {"result": true, "description": "Listed"}}
	}`)

	var resp domain.DetectionResponse
	require.NoError(t, json.Unmarshal(payload, &resp))

	res := domain.MapDetection("https://example.com", &resp)
	assert.Equal(t, "https://example.com", res.URL)
	assert.True(t, res.IsPhishing)
	assert.InDelta(t, 0.92, res.Score, 0.0001)
	assert.Equal(t, "Brand impersonation of examplebank.com detected", res.DetailedAnalysis.BrandImpersonation)
	assert.Equal(t, []string{"Listed"}, res.DetailedAnalysis.SuspiciousElements)
}
