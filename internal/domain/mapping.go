package domain

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
)

var digitRE = regexp.MustCompile(`\d`)

// URLFeatures is the structural breakdown of the analyzed URL.
type URLFeatures struct {
	Domain          string   `json:"domain"`
	Subdomain       string   `json:"subdomain"`
	DomainName      string   `json:"domainName"`
	TLD             string   `json:"tld"`
	UsesHTTPS       bool     `json:"usesHttps"`
	ContainsHyphens bool     `json:"containsHyphens"`
	ContainsNumbers bool     `json:"containsNumbers"`
	SuspiciousTLD   bool     `json:"suspiciousTld"`
	PathIndicators  []string `json:"pathIndicators"`
}

// DetailedAnalysis carries the narrative sections of an analysis.
// BrandImpersonation is empty when no explanation matched.
type DetailedAnalysis struct {
	BrandImpersonation string   `json:"brandImpersonation,omitempty"`
	SuspiciousElements []string `json:"suspiciousElements"`
	TechnicalDetails   []string `json:"technicalDetails"`
}

// AnalysisResult is the fully defaulted display model produced from a raw
// detection response. It is constructed fresh per analysis and never mutated.
type AnalysisResult struct {
	URL              string           `json:"url"`
	IsPhishing       bool             `json:"isPhishing"`
	Score            float64          `json:"score"`
	Reasons          []string         `json:"reasons"`
	Features         URLFeatures      `json:"features"`
	DetailedAnalysis DetailedAnalysis `json:"detailedAnalysis"`
}

// MapDetection turns a raw detection response and the submitted URL into an
// AnalysisResult with every field populated. Missing raw fields default;
// this function never fails on absent data.
func MapDetection(submittedURL string, raw *DetectionResponse) AnalysisResult {
	if raw == nil {
		raw = &DetectionResponse{}
	}

	var host, subdomain, domainName, tld string
	if u, err := url.Parse(submittedURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
		parts := strings.Split(host, ".")
		if len(parts) >= 2 {
			tld = parts[len(parts)-1]
			domainName = parts[len(parts)-2]
			subdomain = strings.Join(parts[:len(parts)-2], ".")
		}
	}

	verdict := false
	if raw.FinalVerdict != nil {
		verdict = *raw.FinalVerdict
	}

	var confidence float64
	if raw.Confidence != nil {
		confidence = *raw.Confidence
	}

	reasons := raw.Explanations
	if reasons == nil {
		reasons = []string{}
	}

	var features FeatureExtraction
	if raw.FeaturesExtracted != nil {
		features = *raw.FeaturesExtracted
	}

	methods := raw.VerificationMethods

	suspicious := []string{}
	for _, m := range methods {
		if m.Result {
			suspicious = append(suspicious, m.Description)
		}
	}

	technical := []string{
		fmt.Sprintf("URL was analyzed using %d different verification methods", len(methods)),
		fmt.Sprintf("Machine learning models detected %d suspicious features", features.UCIFeatures),
		fmt.Sprintf("Advanced analysis revealed %d potential risk indicators", features.AdvancedFeatures),
	}
	for _, m := range methods {
		technical = append(technical, fmt.Sprintf("%s: %s", strings.ReplaceAll(m.Name, "_", " "), m.Description))
	}

	var brand string
	for _, exp := range raw.Explanations {
		lower := strings.ToLower(exp)
		if strings.Contains(lower, "brand") || strings.Contains(lower, "impersonat") {
			brand = exp
			break
		}
	}

	return AnalysisResult{
		URL:        submittedURL,
		IsPhishing: verdict,
		Score:      scoreFromConfidence(confidence),
		Reasons:    reasons,
		Features: URLFeatures{
			Domain:          host,
			Subdomain:       subdomain,
			DomainName:      domainName,
			TLD:             tld,
			UsesHTTPS:       strings.HasPrefix(submittedURL, "https"),
			ContainsHyphens: strings.Contains(host, "-"),
			ContainsNumbers: digitRE.MatchString(host),
			SuspiciousTLD:   SuspiciousTLDs[tld],
			PathIndicators:  []string{},
		},
		DetailedAnalysis: DetailedAnalysis{
			BrandImpersonation: brand,
			SuspiciousElements: suspicious,
			TechnicalDetails:   technical,
		},
	}
}

// scoreFromConfidence maps a 0-100 confidence onto a [0,1] score rounded to
// two decimals. Half values round away from zero: 87.5 becomes 0.88.
func scoreFromConfidence(confidence float64) float64 {
	score := math.Round(confidence) / 100
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
