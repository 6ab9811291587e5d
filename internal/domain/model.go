package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// SuspiciousTLDs is the fixed set of top-level domains flagged as suspicious
// by the display mapping. Shared by the mapper and the renderers so the set
// is defined exactly once.
var SuspiciousTLDs = map[string]bool{
	"xyz":  true,
	"tk":   true,
	"ml":   true,
	"ga":   true,
	"cf":   true,
	"page": true,
}

// ConfidenceThreshold is the backend's phishing decision threshold on the
// 0-100 confidence scale, shown next to confidence values in the UI.
const ConfidenceThreshold = 25

// VerificationMethod is one named server-side sub-check (reputation list,
// ML model, domain heuristic) with its outcome.
type VerificationMethod struct {
	Name        string   `json:"name"`
	Result      bool     `json:"result"`
	Description string   `json:"description"`
	Value       *float64 `json:"value,omitempty"`
}

// VerificationMethods preserves the server's object order, which standard
// map decoding would lose. Members whose value is not an object (the backend
// mixes in scalars like domain_created) are carried with zero fields.
type VerificationMethods []VerificationMethod

func (m *VerificationMethods) UnmarshalJSON(data []byte) error {
	*m = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("verification_methods: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		method := VerificationMethod{Name: name}
		var fields struct {
			Result      bool     `json:"result"`
			Description string   `json:"description"`
			Value       *float64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &fields); err == nil {
			method.Result = fields.Result
			method.Description = fields.Description
			method.Value = fields.Value
		}
		*m = append(*m, method)
	}

	_, err = dec.Token() // closing brace
	return err
}

func (m VerificationMethods) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, method := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(method.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(struct {
			Result      bool     `json:"result"`
			Description string   `json:"description"`
			Value       *float64 `json:"value,omitempty"`
		}{method.Result, method.Description, method.Value})
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FeatureExtraction summarizes how many features each model variant saw.
type FeatureExtraction struct {
	UCIFeatures      int `json:"uci_features"`
	AdvancedFeatures int `json:"advanced_features"`
}

// DetectionResponse is the backend's raw detection payload. Every field may
// be absent; consumers must default rather than fail. The decoder also keeps
// the loosely typed body so defensive renderers can walk it with fieldpath.
type DetectionResponse struct {
	URL                 string              `json:"url,omitempty"`
	FinalVerdict        *bool               `json:"final_verdict,omitempty"`
	Confidence          *float64            `json:"confidence,omitempty"`
	Explanations        []string            `json:"explanations,omitempty"`
	VerificationMethods VerificationMethods `json:"verification_methods,omitempty"`
	FeaturesExtracted   *FeatureExtraction  `json:"features_extracted,omitempty"`
	Error               string              `json:"error,omitempty"`

	raw map[string]any
}

func (r *DetectionResponse) UnmarshalJSON(data []byte) error {
	type alias DetectionResponse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = DetectionResponse(a)
	// Best-effort; the typed fields above are the source of truth.
	_ = json.Unmarshal(data, &r.raw)
	return nil
}

// Raw returns the loosely typed form of the response body, nil when the
// response was constructed in code rather than decoded.
func (r *DetectionResponse) Raw() map[string]any { return r.raw }

// BatchResult wraps the /batch_detect response.
type BatchResult struct {
	Results []DetectionResponse `json:"results"`
}

// ReportSubmission is a user-submitted phishing report.
type ReportSubmission struct {
	URL         string `json:"url"`
	Username    string `json:"username"`
	Description string `json:"description"`
}

// ReportAck is the backend's acknowledgement of a submitted report.
type ReportAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Report is one stored community report.
type Report struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	Username    string `json:"username"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}

// ReportPage is one page of community reports.
type ReportPage struct {
	Reports      []Report `json:"reports"`
	Page         int      `json:"page"`
	TotalPages   int      `json:"total_pages"`
	TotalRecords int      `json:"total_records"`
}

// RecentDetection is one entry of the statistics dashboard's recent list.
type RecentDetection struct {
	URL        string `json:"url"`
	IsPhishing bool   `json:"is_phishing"`
	Timestamp  string `json:"timestamp"`
}

// Statistics aggregates all analyses performed by the backend.
type Statistics struct {
	TotalURLsAnalyzed    int               `json:"total_urls_analyzed"`
	PhishingPercentage   float64           `json:"phishing_percentage"`
	LegitimatePercentage float64           `json:"legitimate_percentage"`
	TotalPhishing        int               `json:"total_phishing"`
	TotalLegitimate      int               `json:"total_legitimate"`
	CommonTLDs           map[string]int    `json:"common_tlds"`
	RecentDetections     []RecentDetection `json:"recent_detections"`
}

// TLDCount is one bar of the TLD histogram.
type TLDCount struct {
	TLD   string `json:"tld"`
	Count int    `json:"count"`
}

// TopTLDs returns the n most common TLDs, descending by count with ties
// broken alphabetically.
func (s *Statistics) TopTLDs(n int) []TLDCount {
	counts := make([]TLDCount, 0, len(s.CommonTLDs))
	for tld, count := range s.CommonTLDs {
		counts = append(counts, TLDCount{TLD: tld, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].TLD < counts[j].TLD
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// HistoryRecord is one server-side search-history entry.
type HistoryRecord struct {
	ID         int      `json:"id"`
	URL        string   `json:"url"`
	IsPhishing bool     `json:"is_phishing"`
	Timestamp  string   `json:"timestamp"`
	Score      *float64 `json:"score,omitempty"`
}

// HistoryPage is one page of server-side search history.
type HistoryPage struct {
	Records    []HistoryRecord `json:"records"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

// HistoryEntry is one line of the local analysis log kept on this machine.
type HistoryEntry struct {
	Timestamp  string  `json:"timestamp"`
	URL        string  `json:"url"`
	IsPhishing bool    `json:"is_phishing"`
	Score      float64 `json:"score"`
}
