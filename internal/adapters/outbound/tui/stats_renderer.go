package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phishguard/phishguard/internal/domain"
	"github.com/phishguard/phishguard/internal/domain/urlutil"
)

const tldHistogramSize = 8

// RenderStatistics formats the backend's aggregate dashboard: totals,
// phishing ratio, TLD histogram and recent detections.
func RenderStatistics(stats *domain.Statistics) string {
	if stats == nil {
		return "  " + dimStyle.Render("No statistics available.") + "\n"
	}

	var b strings.Builder

	// ── Header box ──
	title := headerStyle.Render("Detection Statistics")
	totalLine := lipgloss.NewStyle().Bold(true).Foreground(fg).
		Render(fmt.Sprintf("%d URLs analyzed", stats.TotalURLsAnalyzed))
	split := dangerStyle.Render(fmt.Sprintf("%.1f%% phishing", stats.PhishingPercentage)) +
		dimStyle.Render("  ·  ") +
		safeStyle.Render(fmt.Sprintf("%.1f%% legitimate", stats.LegitimatePercentage))

	b.WriteString(boxStyle.Render(title + "\n\n" + totalLine + "\n" + split))
	b.WriteString("\n\n")

	// ── Counts ──
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Phishing", 16)),
		dangerStyle.Render(fmt.Sprintf("%d", stats.TotalPhishing)))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Legitimate", 16)),
		safeStyle.Render(fmt.Sprintf("%d", stats.TotalLegitimate)))
	b.WriteString("\n")

	// ── TLD histogram ──
	top := stats.TopTLDs(tldHistogramSize)
	if len(top) > 0 {
		b.WriteString("  " + titleStyle.Render("Common TLDs") + "\n")
		maxCount := top[0].Count
		for _, tc := range top {
			renderTLDBar(&b, tc, maxCount)
		}
		b.WriteString("\n")
	}

	// ── Recent detections ──
	if len(stats.RecentDetections) > 0 {
		b.WriteString("  " + titleStyle.Render("Recent Detections") + "\n")
		for _, d := range stats.RecentDetections {
			b.WriteString("    " + detectionLine(d.Timestamp, d.URL, d.IsPhishing) + "\n")
		}
	}

	return b.String()
}

func renderTLDBar(b *strings.Builder, tc domain.TLDCount, maxCount int) {
	width := 24
	filled := width
	if maxCount > 0 {
		filled = tc.Count * width / maxCount
	}
	if filled < 1 {
		filled = 1
	}

	label := padRight("."+tc.TLD, 10)
	style := dimStyle
	if domain.SuspiciousTLDs[tc.TLD] {
		style = warnStyle
	}

	bar := style.Render(strings.Repeat("█", filled)) + faintStyle.Render(strings.Repeat("░", width-filled))
	fmt.Fprintf(b, "    %s %s %s\n", style.Render(label), bar, dimStyle.Render(fmt.Sprintf("%d", tc.Count)))
}

// RenderReports formats one page of community phishing reports.
func RenderReports(page *domain.ReportPage) string {
	if page == nil || len(page.Reports) == 0 {
		return "  " + dimStyle.Render("No reports found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Community Reports") + "  " +
		dimStyle.Render(fmt.Sprintf("page %d/%d · %d total", page.Page, page.TotalPages, page.TotalRecords)) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, r := range page.Reports {
		status := statusLabel(r.Status)
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			faintStyle.Render(shortTimestamp(r.Timestamp)),
			titleStyle.Render(urlutil.Shorten(r.URL, urlutil.DefaultShortenLength)),
			status,
		)
		if r.Description != "" {
			fmt.Fprintf(&b, "             %s\n", dimStyle.Render(r.Description))
		}
		fmt.Fprintf(&b, "             %s\n", faintStyle.Render("reported by "+r.Username))
	}

	return b.String()
}

func statusLabel(status string) string {
	switch status {
	case "confirmed":
		return dangerStyle.Render(status)
	case "rejected":
		return faintStyle.Render(status)
	default:
		return warnStyle.Render("pending")
	}
}

// RenderSearchHistory formats one page of the backend's analysis history.
func RenderSearchHistory(page *domain.HistoryPage) string {
	if page == nil || len(page.Records) == 0 {
		return "  " + dimStyle.Render("No history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Analysis History") + "  " +
		dimStyle.Render(fmt.Sprintf("page %d/%d · %d total", page.Page, page.TotalPages, page.Total)) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, r := range page.Records {
		line := "  " + detectionLine(r.Timestamp, r.URL, r.IsPhishing)
		if r.Score != nil {
			line += "  " + faintStyle.Render(fmt.Sprintf("%.2f", *r.Score))
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// RenderLocalHistory formats the analysis log kept on this machine.
func RenderLocalHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No local history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Local History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %s\n",
			detectionLine(e.Timestamp, e.URL, e.IsPhishing),
			faintStyle.Render(fmt.Sprintf("%.2f", e.Score)),
		)
	}

	return b.String()
}

func detectionLine(timestamp, url string, phishing bool) string {
	verdict := safeStyle.Render("safe    ")
	if phishing {
		verdict = dangerStyle.Render("phishing")
	}
	return fmt.Sprintf("%s  %s  %s",
		faintStyle.Render(shortTimestamp(timestamp)),
		verdict,
		dimStyle.Render(urlutil.Shorten(url, urlutil.DefaultShortenLength)),
	)
}

func shortTimestamp(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	if ts == "" {
		return "··········"
	}
	return ts
}
