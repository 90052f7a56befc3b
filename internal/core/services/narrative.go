package services

import (
	"strings"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/i18n"
)

// maxPros caps the pros listed per entry in a head-to-head narrative.
const maxPros = 3

// renderNarrative builds the recommendation text for a report.
// The output depends only on the report and the language.
func renderNarrative(l *i18n.Localizer, r *domain.ComparisonReport) string {
	var sb strings.Builder
	if len(r.Entries) == 2 {
		renderHeadToHead(&sb, l, r)
	} else {
		renderRanked(&sb, l, r)
	}
	renderUnknown(&sb, l, r)
	return strings.TrimRight(sb.String(), "\n")
}

func renderHeadToHead(sb *strings.Builder, l *i18n.Localizer, r *domain.ComparisonReport) {
	left, right := r.Entries[0].Entry, r.Entries[1].Entry

	sb.WriteString("## ")
	sb.WriteString(l.T("compare.title", map[string]any{"Left": left.Name, "Right": right.Name}))
	sb.WriteString("\n\n")

	sb.WriteString("| " + l.T("compare.header.criterion", nil) + " | " + left.Name + " | " + right.Name +
		" | " + l.T("compare.header.winner", nil) + " |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, c := range r.Criteria {
		lv, rv := c.Value(left), c.Value(right)
		winner := l.T("compare.tie", nil)
		switch {
		case lv > rv:
			winner = left.Name
		case rv > lv:
			winner = right.Name
		}
		sb.WriteString("| " + criterionLabel(l, c) + " | " + formatValue(l, c, lv) + " | " +
			formatValue(l, c, rv) + " | " + winner + " |\n")
	}
	sb.WriteString("\n")

	if len(r.Summary.UseCaseOverlap) > 0 {
		sb.WriteString(l.T("compare.shared_use_cases", map[string]any{
			"UseCases": strings.Join(r.Summary.UseCaseOverlap, ", "),
		}))
		sb.WriteString("\n")
	}
	if r.Summary.BestOverall != "" {
		sb.WriteString(l.T("compare.best_overall", map[string]any{"Name": r.Summary.BestOverall}))
		sb.WriteString("\n")
	}

	for _, e := range r.Entries {
		if len(e.Entry.Pros) == 0 {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(l.T("compare.choose_if", map[string]any{"Name": e.Entry.Name}))
		sb.WriteString("\n")
		for i, pro := range e.Entry.Pros {
			if i == maxPros {
				break
			}
			sb.WriteString("  - " + pro + "\n")
		}
	}
}

func renderRanked(sb *strings.Builder, l *i18n.Localizer, r *domain.ComparisonReport) {
	sb.WriteString(l.T("compare.count", map[string]any{"Count": len(r.Entries)}))
	sb.WriteString("\n")
	if r.Summary.BestOverall != "" {
		sb.WriteString(l.T("compare.best_overall", map[string]any{"Name": r.Summary.BestOverall}))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, c := range r.Criteria {
		parts := make([]string, len(r.Rankings[c]))
		for i, rv := range r.Rankings[c] {
			parts[i] = rv.Name + " (" + formatValue(l, c, rv.Value) + ")"
		}
		sb.WriteString("- ")
		sb.WriteString(l.T("compare.ranked", map[string]any{
			"Criterion": criterionLabel(l, c),
			"Ranking":   strings.Join(parts, " > "),
		}))
		sb.WriteString("\n")
	}
}

func renderUnknown(sb *strings.Builder, l *i18n.Localizer, r *domain.ComparisonReport) {
	first := true
	for _, e := range r.Entries {
		if !e.Unknown {
			continue
		}
		if first {
			sb.WriteString("\n")
			first = false
		}
		sb.WriteString("! ")
		sb.WriteString(l.T("compare.unknown", map[string]any{"Name": e.Input}))
		if len(e.Suggestions) > 0 {
			sb.WriteString(" ")
			sb.WriteString(l.T("compare.did_you_mean", map[string]any{
				"Suggestions": strings.Join(e.Suggestions, ", "),
			}))
		}
		sb.WriteString("\n")
	}
}

func criterionLabel(l *i18n.Localizer, c domain.Criterion) string {
	return l.T("criterion."+c.String(), nil)
}

func formatValue(l *i18n.Localizer, c domain.Criterion, v float64) string {
	if c == domain.CriterionRatings {
		return l.Float(v)
	}
	return l.Number(v)
}
