// Package report renders comparison results for human consumption: a styled
// terminal report, Markdown, goldmark-rendered HTML, and indented JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"inkdiff/models"
)

const rule = "================================================================================"

// PairOutcome is one batch entry: a finished comparison, a skip naming the
// missing file, or a per-pair analysis error.
type PairOutcome struct {
	Description string
	SkippedFile string
	Err         error
	Result      *models.ComparisonResult
}

// Skipped reports whether this pair was skipped rather than compared.
func (o PairOutcome) Skipped() bool { return o.SkippedFile != "" }

// WriteComparison renders the full terminal report for one comparison.
func WriteComparison(w io.Writer, r *models.ComparisonResult) {
	fmt.Fprintln(w, ruleStyle.Render(rule))
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("SVG COMPARISON: %s vs %s", r.BaselineFile, r.VariantFile)))
	fmt.Fprintln(w, ruleStyle.Render(rule))

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("FILE METRICS"))
	fmt.Fprintf(w, "  Size difference: %+d bytes (ratio %.2f)\n", r.SizeDifference, r.SizeRatio)
	fmt.Fprintf(w, "  Path count difference: %+d\n", r.PathCountDiff)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("ARTISTIC EFFECT INDICATORS"))
	for _, c := range r.Criteria {
		if c.Fired {
			fmt.Fprintf(w, "  %s %-22s %s\n", firedStyle.Render("[changed]  "), c.Name, c.Detail)
		} else {
			fmt.Fprintf(w, "  %s %-22s %s\n", quietStyle.Render("[no change]"), c.Name, c.Detail)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("DETAILED METRICS"))
	writeDocumentDetails(w, r.Baseline)
	writeDocumentDetails(w, r.Variant)

	fmt.Fprintln(w)
	if r.EffectsDetected {
		fmt.Fprintln(w, detectStyle.Render("VERDICT: ARTISTIC EFFECTS DETECTED"))
	} else {
		fmt.Fprintln(w, absentStyle.Render("VERDICT: NO ARTISTIC EFFECTS DETECTED"))
		fmt.Fprintln(w, quietStyle.Render("  The renderings are statistically identical; effects may not be applied."))
	}
}

func writeDocumentDetails(w io.Writer, m *models.DocumentMetrics) {
	fmt.Fprintf(w, "  %s:\n", m.Filename)
	fmt.Fprintf(w, "    paths: %d, total path length: %d chars\n", m.PathCount, m.TotalPathLength)
	if m.PathCount > 0 {
		fmt.Fprintf(w, "    stroke widths: min %.3f, max %.3f\n", m.MinStrokeWidth(), m.MaxStrokeWidth())
	} else {
		fmt.Fprintln(w, "    no strokes")
	}
	fmt.Fprintf(w, "    curve commands: %d\n", m.TotalCurveCommands)
}

// WriteSummary renders the batch-level roll-up with the run warnings.
func WriteSummary(w io.Writer, outcomes []PairOutcome) {
	fmt.Fprintln(w, ruleStyle.Render(rule))
	fmt.Fprintln(w, headerStyle.Render("SUMMARY REPORT"))
	fmt.Fprintln(w, ruleStyle.Render(rule))

	var withEffects, without, skipped int
	for _, o := range outcomes {
		switch {
		case o.Skipped():
			skipped++
			fmt.Fprintf(w, "%s %s: skipped (%s not found)\n", warningStyle.Render("[skip]"), o.Description, o.SkippedFile)
		case o.Err != nil:
			skipped++
			fmt.Fprintf(w, "%s %s: skipped (%v)\n", warningStyle.Render("[skip]"), o.Description, o.Err)
		case o.Result.EffectsDetected:
			withEffects++
			fmt.Fprintf(w, "%s %s: effects detected\n", firedStyle.Render("[ok]  "), o.Description)
		default:
			without++
			fmt.Fprintf(w, "%s %s: no effects\n", absentStyle.Render("[none]"), o.Description)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d with effects, %d without effects, %d skipped\n", withEffects, without, skipped)
	switch {
	case withEffects == 0 && without > 0:
		fmt.Fprintln(w, warningStyle.Render("WARNING: no artistic effects detected in any comparison."))
		fmt.Fprintln(w, warningStyle.Render("  This suggests the hand-drawn effects are not being applied."))
	case without > 0:
		fmt.Fprintln(w, warningStyle.Render("WARNING: some comparisons show no effects."))
		fmt.Fprintln(w, warningStyle.Render("  Effects may be inconsistently applied."))
	case withEffects > 0:
		fmt.Fprintln(w, detectStyle.Render("SUCCESS: artistic effects detected in all comparisons."))
	}
}

// Markdown renders a single comparison as a Markdown document.
func Markdown(r *models.ComparisonResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# SVG comparison: %s vs %s\n\n", r.BaselineFile, r.VariantFile)
	fmt.Fprintf(&sb, "- Size difference: %+d bytes (ratio %.2f)\n", r.SizeDifference, r.SizeRatio)
	fmt.Fprintf(&sb, "- Path count difference: %+d\n\n", r.PathCountDiff)

	sb.WriteString("## Artistic effect indicators\n\n")
	sb.WriteString("| Criterion | Detail | Changed |\n")
	sb.WriteString("|-----------|--------|---------|\n")
	for _, c := range r.Criteria {
		changed := "no"
		if c.Fired {
			changed = "**yes**"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", c.Name, c.Detail, changed)
	}

	sb.WriteString("\n## Documents\n\n")
	for _, m := range []*models.DocumentMetrics{r.Baseline, r.Variant} {
		fmt.Fprintf(&sb, "### %s\n\n", m.Filename)
		fmt.Fprintf(&sb, "- Paths: %d\n", m.PathCount)
		fmt.Fprintf(&sb, "- Total path length: %d chars\n", m.TotalPathLength)
		if m.PathCount > 0 {
			fmt.Fprintf(&sb, "- Stroke widths: min %.3f, max %.3f\n", m.MinStrokeWidth(), m.MaxStrokeWidth())
		}
		fmt.Fprintf(&sb, "- Curve commands: %d\n\n", m.TotalCurveCommands)
	}

	if r.EffectsDetected {
		sb.WriteString("## Verdict: artistic effects detected\n")
	} else {
		sb.WriteString("## Verdict: no artistic effects detected\n")
	}
	return sb.String()
}

// HTML renders the Markdown report to HTML via goldmark.
func HTML(r *models.ComparisonResult) (string, error) {
	var buf bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert([]byte(Markdown(r)), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.String(), nil
}

// JSON renders a comparison as indented JSON.
func JSON(r *models.ComparisonResult) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comparison: %w", err)
	}
	return data, nil
}
