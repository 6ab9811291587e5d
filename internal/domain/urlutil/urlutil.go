// Package urlutil normalizes free-form user input into canonical absolute
// URLs and shortens them for display.
package urlutil

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultShortenLength is the display budget used by Shorten callers that
// have no better idea.
const DefaultShortenLength = 50

var (
	whitespaceRE  = regexp.MustCompile(`\s+`)
	protocolRunRE = regexp.MustCompile(`(?i)^(https?://)+`)
)

// Clean strips every whitespace run from the input and collapses duplicated
// leading protocol prefixes down to a single https://. A single well-formed
// http:// or https:// prefix is left untouched; only duplicated or malformed
// runs (including uppercase variants) are rewritten.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := whitespaceRE.ReplaceAllString(strings.TrimSpace(raw), "")

	run := protocolRunRE.FindString(cleaned)
	if run != "" && run != "http://" && run != "https://" {
		cleaned = "https://" + protocolRunRE.ReplaceAllString(cleaned, "")
	}
	return cleaned
}

// Format cleans the input and prepends https:// when no protocol is present.
// Empty input maps to the empty string, not an error.
func Format(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := Clean(raw)
	if cleaned == "" {
		return ""
	}
	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		return "https://" + cleaned
	}
	return cleaned
}

// IsValid reports whether the cleaned input parses as an absolute URL with a
// scheme separator and a dotted host. It never panics on malformed input.
func IsValid(raw string) bool {
	cleaned := Clean(raw)
	u, err := url.Parse(cleaned)
	if err != nil {
		return false
	}
	return strings.Contains(cleaned, "://") && strings.Contains(u.Hostname(), ".")
}

// ExtractDomain formats the input and returns its host. When the formatted
// URL does not parse, or parses without a dotted host, the original input is
// returned unchanged.
func ExtractDomain(raw string) string {
	u, err := url.Parse(Format(raw))
	if err != nil || !strings.Contains(u.Hostname(), ".") {
		return raw
	}
	return u.Hostname()
}

// Shorten formats the input and truncates it to maxLength characters for
// display. The host is preserved whenever it fits; whatever path, query and
// fragment budget remains is filled and an ellipsis appended. Truncated
// output always ends in "...".
func Shorten(raw string, maxLength int) string {
	if raw == "" {
		return ""
	}
	formatted := Format(raw)
	if len(formatted) <= maxLength {
		return formatted
	}

	keep := maxLength - 3
	if keep < 0 {
		keep = 0
	}

	domain := ExtractDomain(formatted)
	if len(domain) >= keep {
		return domain[:keep] + "..."
	}

	u, err := url.Parse(formatted)
	if err != nil {
		return formatted[:keep] + "..."
	}

	pathPart := u.EscapedPath()
	if u.RawQuery != "" {
		pathPart += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		pathPart += "#" + u.Fragment
	}

	prefix := u.Scheme + "://" + domain
	avail := maxLength - len(prefix) - 3
	if avail <= 0 {
		// Scheme plus host alone blow the budget; fall back to a flat cut.
		return formatted[:keep] + "..."
	}
	if len(pathPart) <= avail {
		return prefix + pathPart
	}
	return prefix + pathPart[:avail] + "..."
}
