// Package detector compares two document fingerprints and decides whether
// artistic effects were applied between them.
//
// The verdict is a flat bank of independent evidence tests, OR-ed rather
// than scored: any single criterion firing is sufficient.
package detector

import (
	"fmt"

	"inkdiff/models"
)

// Tolerances absorbing float and encoding noise in the delta comparisons.
// Curve command counts are integers and get an exact test.
const (
	StrokeVarianceTolerance = 0.0001
	AvgPathLengthTolerance  = 1.0
	PrecisionTolerance      = 0.1
)

// criterion is one evidence test over a computed comparison. New criteria
// are appended to the bank; the verdict loop never changes.
type criterion struct {
	name   string
	detail func(r *models.ComparisonResult) string
	delta  func(r *models.ComparisonResult) float64
	fired  func(r *models.ComparisonResult) bool
}

var criteria = []criterion{
	{
		name:   "stroke_width_variance",
		detail: func(r *models.ComparisonResult) string { return fmt.Sprintf("%+.6f", r.StrokeVarianceDiff) },
		delta:  func(r *models.ComparisonResult) float64 { return r.StrokeVarianceDiff },
		fired:  func(r *models.ComparisonResult) bool { return abs(r.StrokeVarianceDiff) > StrokeVarianceTolerance },
	},
	{
		name: "variable_strokes",
		detail: func(r *models.ComparisonResult) string {
			return fmt.Sprintf("%v -> %v", r.VariableStrokesBaseline, r.VariableStrokesVariant)
		},
		delta: func(r *models.ComparisonResult) float64 { return 0 },
		fired: func(r *models.ComparisonResult) bool {
			return r.VariableStrokesBaseline != r.VariableStrokesVariant
		},
	},
	{
		name:   "avg_path_length",
		detail: func(r *models.ComparisonResult) string { return fmt.Sprintf("%+.2f chars", r.AvgPathLengthDiff) },
		delta:  func(r *models.ComparisonResult) float64 { return r.AvgPathLengthDiff },
		fired:  func(r *models.ComparisonResult) bool { return abs(r.AvgPathLengthDiff) > AvgPathLengthTolerance },
	},
	{
		name:   "curve_commands",
		detail: func(r *models.ComparisonResult) string { return fmt.Sprintf("%+d", r.CurveCommandsDiff) },
		delta:  func(r *models.ComparisonResult) float64 { return float64(r.CurveCommandsDiff) },
		fired:  func(r *models.ComparisonResult) bool { return r.CurveCommandsDiff != 0 },
	},
	{
		name: "coordinate_precision",
		detail: func(r *models.ComparisonResult) string {
			return fmt.Sprintf("%+.3f decimal places", r.CoordinatePrecisionDiff)
		},
		delta: func(r *models.ComparisonResult) float64 { return r.CoordinatePrecisionDiff },
		fired: func(r *models.ComparisonResult) bool { return abs(r.CoordinatePrecisionDiff) > PrecisionTolerance },
	},
}

// Compare computes the signed deltas between a baseline and a variant
// fingerprint and runs the criteria bank. It never fails: both inputs are
// already well-formed records.
func Compare(baseline, variant *models.DocumentMetrics) *models.ComparisonResult {
	r := &models.ComparisonResult{
		BaselineFile: baseline.Filename,
		VariantFile:  variant.Filename,

		SizeDifference:          variant.FileSizeBytes - baseline.FileSizeBytes,
		PathCountDiff:           variant.PathCount - baseline.PathCount,
		AvgPathLengthDiff:       variant.AvgPathLength - baseline.AvgPathLength,
		StrokeVarianceDiff:      variant.StrokeWidthVariance - baseline.StrokeWidthVariance,
		VariableStrokesBaseline: baseline.HasVariableStrokes,
		VariableStrokesVariant:  variant.HasVariableStrokes,
		CurveCommandsDiff:       variant.TotalCurveCommands - baseline.TotalCurveCommands,
		CoordinatePrecisionDiff: variant.CoordinatePrecision - baseline.CoordinatePrecision,

		Baseline: baseline,
		Variant:  variant,
	}
	if baseline.FileSizeBytes > 0 {
		r.SizeRatio = float64(variant.FileSizeBytes) / float64(baseline.FileSizeBytes)
	}

	for _, c := range criteria {
		cr := models.CriterionResult{
			Name:   c.name,
			Detail: c.detail(r),
			Delta:  c.delta(r),
			Fired:  c.fired(r),
		}
		r.Criteria = append(r.Criteria, cr)
		if cr.Fired {
			r.EffectsDetected = true
		}
	}
	return r
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
