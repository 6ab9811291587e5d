package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phishguard/phishguard/internal/domain"
	"github.com/phishguard/phishguard/internal/domain/fieldpath"
	"github.com/phishguard/phishguard/internal/domain/urlutil"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	safeStyle     = lipgloss.NewStyle().Foreground(success)
	dangerStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// noInfo is the fallback description for a verification method the backend
// sent without one.
const noInfo = "No information available"

// RenderResultCard formats a raw detection response as the headline card.
// It reads through the loosely typed body where one is available, so a
// partially malformed backend payload still renders instead of panicking.
func RenderResultCard(resp *domain.DetectionResponse) string {
	if resp == nil {
		return "  " + dimStyle.Render("No result.") + "\n"
	}
	raw := resp.Raw()

	target := fieldpath.String(raw, "url", resp.URL)
	phishing := fieldpath.Bool(raw, "final_verdict", resp.FinalVerdict != nil && *resp.FinalVerdict)
	confidence := fieldpath.Float(raw, "confidence", 0)

	var b strings.Builder

	// ── Verdict box ──
	title := headerStyle.Render("phishguard")
	subtitle := dimStyle.Render(urlutil.Shorten(target, urlutil.DefaultShortenLength))

	verdict := safeStyle.Bold(true).Render("SAFE")
	if phishing {
		verdict = dangerStyle.Bold(true).Render("PHISHING")
	}
	confLine := fmt.Sprintf("%.1f%% confidence", confidence)
	confStyled := lipgloss.NewStyle().Foreground(verdictColor(phishing, confidence)).Render(confLine)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "  " + confStyled))
	b.WriteString("\n\n")

	// ── Confidence bar ──
	b.WriteString("  " + titleStyle.Render(padRight("Confidence", 16)))
	b.WriteString(confidenceBar(phishing, confidence, 30))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %.1f%%", confidence)))
	b.WriteString("\n\n")

	// ── Verification methods ──
	if len(resp.VerificationMethods) > 0 {
		b.WriteString("  " + titleStyle.Render("Verification Methods") + "\n")
		for _, m := range resp.VerificationMethods {
			renderMethod(&b, m)
		}
		b.WriteString("\n")
	}

	// ── Explanations ──
	explanations := fieldpath.Strings(raw, "explanations")
	if explanations == nil {
		explanations = resp.Explanations
	}
	if len(explanations) > 0 {
		b.WriteString("  " + titleStyle.Render("Why") + "\n")
		for _, exp := range explanations {
			b.WriteString("    " + infoStyle.Render("•") + " " + dimStyle.Render(exp) + "\n")
		}
		b.WriteString("\n")
	}

	// ── Feature counts ──
	uci := int(fieldpath.Float(raw, "features_extracted.uci_features", 0))
	advanced := int(fieldpath.Float(raw, "features_extracted.advanced_features", 0))
	if uci > 0 || advanced > 0 {
		b.WriteString("  " + faintStyle.Render(fmt.Sprintf("%d model features · %d advanced indicators", uci, advanced)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderMethod(b *strings.Builder, m domain.VerificationMethod) {
	icon := safeStyle.Render("●")
	if m.Result {
		icon = dangerStyle.Render("●")
	}

	name := padRight(methodLabel(m.Name), 26)

	desc := m.Description
	if desc == "" {
		desc = noInfo
	}

	if m.Value != nil {
		fmt.Fprintf(b, "    %s %s %s  %s\n", icon, titleStyle.Render(name),
			dimStyle.Render(desc), faintStyle.Render(fmt.Sprintf("%.2f", *m.Value)))
	} else {
		fmt.Fprintf(b, "    %s %s %s\n", icon, titleStyle.Render(name), dimStyle.Render(desc))
	}
}

// methodLabel turns a snake_case method name into display form.
func methodLabel(name string) string {
	if name == "" {
		return "unknown"
	}
	return strings.ReplaceAll(name, "_", " ")
}

func verdictColor(phishing bool, confidence float64) lipgloss.Color {
	if !phishing {
		return success
	}
	if confidence >= float64(domain.ConfidenceThreshold) {
		return danger
	}
	return warning
}

func confidenceBar(phishing bool, confidence float64, width int) string {
	pct := max(0, min(int(confidence), 100))
	filled := pct * width / 100
	empty := width - filled

	color := verdictColor(phishing, confidence)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
