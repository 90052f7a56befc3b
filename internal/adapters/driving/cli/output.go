package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// barWidth is the number of cells in a score bar.
const barWidth = 10

// maxFeatures is how many features a result line shows.
const maxFeatures = 3

var numbers = message.NewPrinter(language.English)

// scoreBar renders score in tenths, e.g. 0.72 as "███████░░░".
func scoreBar(score float64) string {
	filled := int(score * barWidth)
	filled = max(0, min(filled, barWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// rankLabel returns a medal for the first three places and "n." after.
func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

// formatCount renders n with thousands separators.
func formatCount(n int64) string {
	return numbers.Sprintf("%d", n)
}

// terminalWidth returns the width of w if it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// clip shortens s to width runes. A width of 0 disables clipping.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printEntryDetails writes the metric, feature and install lines shared by
// ranked results and top lists.
func printEntryDetails(w io.Writer, e domain.CatalogEntry, width int) {
	if e.Description != "" {
		fmt.Fprintf(w, "   %s\n", clip(e.Description, width-3))
	}

	metrics := fmt.Sprintf("⭐ %.1f/5 | 📥 %s downloads", e.Metrics.Rating, formatCount(e.Metrics.Downloads))
	if e.Metrics.Stars > 0 {
		metrics += fmt.Sprintf(" | ★ %s stars", formatCount(int64(e.Metrics.Stars)))
	}
	if e.Metrics.Rank > 0 {
		metrics += fmt.Sprintf(" | #%d", e.Metrics.Rank)
	}
	fmt.Fprintf(w, "   %s\n", metrics)

	if len(e.Features) > 0 {
		features := e.Features
		if len(features) > maxFeatures {
			features = features[:maxFeatures]
		}
		fmt.Fprintf(w, "   Features: %s\n", strings.Join(features, ", "))
	}

	install := e.InstallRef
	if install == "" {
		install = "N/A"
	}
	fmt.Fprintf(w, "   Install: %s\n", install)
}

// printResults writes ranked results with medals, score bars and source icons.
func printResults(w io.Writer, results []domain.ScoredResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching entries found.")
		return
	}

	width := terminalWidth(w)
	fmt.Fprintf(w, "Found %d matching entries\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%s %s %s\n", rankLabel(i+1), r.Entry.Name, r.Source.Icon())
		fmt.Fprintf(w, "   Match: [%s] %.1f%%\n", scoreBar(r.Score), r.Score*100)
		printEntryDetails(w, r.Entry, width)
		fmt.Fprintln(w)
	}
}

// printEntries writes entries in the given order without scores.
func printEntries(w io.Writer, entries []domain.CatalogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	width := terminalWidth(w)
	for i, e := range entries {
		fmt.Fprintf(w, "%s %s %s\n", rankLabel(i+1), e.Name, e.Source.Icon())
		printEntryDetails(w, e, width)
		fmt.Fprintln(w)
	}
}

// printSourceWarnings reports sources that were skipped.
func printSourceWarnings(w io.Writer, errs []*domain.SourceError) {
	for _, e := range errs {
		fmt.Fprintf(w, "Warning: %v\n", e)
	}
}
