package tui

import (
	"fmt"
	"strings"

	"github.com/phishguard/phishguard/internal/domain"
)

// RenderAnalysisReport formats the fully mapped analysis, the detailed view
// behind the headline card.
func RenderAnalysisReport(result *domain.AnalysisResult) string {
	var b strings.Builder

	verdict := safeStyle.Bold(true).Render("LEGITIMATE")
	if result.IsPhishing {
		verdict = dangerStyle.Bold(true).Render("PHISHING")
	}
	score := fmt.Sprintf("%.2f", result.Score)

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(result.URL) + "\n")
	b.WriteString("  " + verdict + dimStyle.Render("  risk score "+score) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	// ── URL structure ──
	b.WriteString("  " + titleStyle.Render("URL Structure") + "\n")
	renderFeatureRow(&b, "Domain", result.Features.Domain)
	renderFeatureRow(&b, "Subdomain", result.Features.Subdomain)
	renderFeatureRow(&b, "Name", result.Features.DomainName)
	renderFeatureRow(&b, "TLD", result.Features.TLD)
	renderFlagRow(&b, "HTTPS", result.Features.UsesHTTPS, false)
	renderFlagRow(&b, "Hyphens", result.Features.ContainsHyphens, true)
	renderFlagRow(&b, "Numbers", result.Features.ContainsNumbers, true)
	renderFlagRow(&b, "Suspicious TLD", result.Features.SuspiciousTLD, true)
	b.WriteString("\n")

	// ── Brand impersonation ──
	if result.DetailedAnalysis.BrandImpersonation != "" {
		b.WriteString("  " + dangerStyle.Bold(true).Render("Brand impersonation") + "\n")
		b.WriteString("    " + warnStyle.Render(result.DetailedAnalysis.BrandImpersonation) + "\n\n")
	}

	// ── Reasons ──
	if len(result.Reasons) > 0 {
		b.WriteString("  " + titleStyle.Render("Reasons") + "\n")
		for _, r := range result.Reasons {
			b.WriteString("    " + infoStyle.Render("•") + " " + dimStyle.Render(r) + "\n")
		}
		b.WriteString("\n")
	}

	// ── Suspicious elements ──
	if len(result.DetailedAnalysis.SuspiciousElements) > 0 {
		b.WriteString("  " + titleStyle.Render("Suspicious Elements") + "\n")
		for _, s := range result.DetailedAnalysis.SuspiciousElements {
			b.WriteString("    " + dangerStyle.Render("!") + " " + dimStyle.Render(s) + "\n")
		}
		b.WriteString("\n")
	}

	// ── Technical details ──
	b.WriteString("  " + titleStyle.Render("Technical Details") + "\n")
	for _, d := range result.DetailedAnalysis.TechnicalDetails {
		b.WriteString("    " + faintStyle.Render(d) + "\n")
	}

	return b.String()
}

func renderFeatureRow(b *strings.Builder, label, value string) {
	if value == "" {
		value = "—"
	}
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight(label, 16)), value)
}

// renderFlagRow colors a boolean feature. bad marks features where true is
// the suspicious outcome; for HTTPS the polarity is reversed.
func renderFlagRow(b *strings.Builder, label string, value, bad bool) {
	text := "no"
	style := dimStyle
	if value {
		text = "yes"
		style = safeStyle
		if bad {
			style = warnStyle
		}
	} else if !bad {
		style = warnStyle
	}
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight(label, 16)), style.Render(text))
}
