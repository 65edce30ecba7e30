package detector

import (
	"testing"

	"inkdiff/models"
)

// doc builds a baseline-shaped fingerprint that compares clean against
// itself: every delta zero, no criterion fires.
func doc(t *testing.T) *models.DocumentMetrics {
	t.Helper()
	return &models.DocumentMetrics{
		Filename:            "base.svg",
		FileSizeBytes:       1000,
		PathCount:           4,
		TotalPathLength:     400,
		AvgPathLength:       100,
		StrokeWidths:        []float64{1, 1, 1, 1},
		StrokeWidthVariance: 0,
		HasVariableStrokes:  false,
		TotalCurveCommands:  8,
		CoordinatePrecision: 1.0,
	}
}

func TestCompareIdenticalDocuments(t *testing.T) {
	r := Compare(doc(t), doc(t))

	if r.EffectsDetected {
		t.Error("EffectsDetected = true for identical documents")
	}
	if len(r.Criteria) != 5 {
		t.Fatalf("criteria count = %d, want 5", len(r.Criteria))
	}
	for _, c := range r.Criteria {
		if c.Fired {
			t.Errorf("criterion %s fired for identical documents", c.Name)
		}
	}
	if r.SizeRatio != 1.0 {
		t.Errorf("SizeRatio = %v, want 1.0", r.SizeRatio)
	}
}

func TestCompareSingleCriterion(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m *models.DocumentMetrics)
		criterion string
	}{
		{
			name:      "stroke variance shift",
			mutate:    func(m *models.DocumentMetrics) { m.StrokeWidthVariance = 0.05 },
			criterion: "stroke_width_variance",
		},
		{
			name:      "variable strokes flag flip",
			mutate:    func(m *models.DocumentMetrics) { m.HasVariableStrokes = true },
			criterion: "variable_strokes",
		},
		{
			name:      "average path length growth",
			mutate:    func(m *models.DocumentMetrics) { m.AvgPathLength += 2.5 },
			criterion: "avg_path_length",
		},
		{
			name:      "curve command change is exact",
			mutate:    func(m *models.DocumentMetrics) { m.TotalCurveCommands++ },
			criterion: "curve_commands",
		},
		{
			name:      "coordinate precision shift",
			mutate:    func(m *models.DocumentMetrics) { m.CoordinatePrecision += 0.2 },
			criterion: "coordinate_precision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant := doc(t)
			variant.Filename = "variant.svg"
			tt.mutate(variant)

			r := Compare(doc(t), variant)
			if !r.EffectsDetected {
				t.Fatal("EffectsDetected = false, want true")
			}
			for _, c := range r.Criteria {
				if c.Name == tt.criterion && !c.Fired {
					t.Errorf("criterion %s did not fire", tt.criterion)
				}
				if c.Name != tt.criterion && c.Fired {
					t.Errorf("unexpected criterion %s fired", c.Name)
				}
			}
		})
	}
}

func TestCompareWithinTolerances(t *testing.T) {
	variant := doc(t)
	variant.StrokeWidthVariance = 0.00005 // under 1e-4
	variant.AvgPathLength += 0.5          // under 1 char
	variant.CoordinatePrecision += 0.05   // under 0.1

	r := Compare(doc(t), variant)
	if r.EffectsDetected {
		t.Error("EffectsDetected = true for sub-tolerance deltas")
	}
}

func TestCompareDeltas(t *testing.T) {
	baseline := doc(t)
	variant := doc(t)
	variant.Filename = "variant.svg"
	variant.FileSizeBytes = 1500
	variant.PathCount = 6
	variant.TotalCurveCommands = 5

	r := Compare(baseline, variant)
	if r.SizeDifference != 500 {
		t.Errorf("SizeDifference = %d, want 500", r.SizeDifference)
	}
	if r.SizeRatio != 1.5 {
		t.Errorf("SizeRatio = %v, want 1.5", r.SizeRatio)
	}
	if r.PathCountDiff != 2 {
		t.Errorf("PathCountDiff = %d, want 2", r.PathCountDiff)
	}
	if r.CurveCommandsDiff != -3 {
		t.Errorf("CurveCommandsDiff = %d, want -3", r.CurveCommandsDiff)
	}
	if r.BaselineFile != "base.svg" || r.VariantFile != "variant.svg" {
		t.Errorf("file names = %s, %s", r.BaselineFile, r.VariantFile)
	}
}

func TestCompareZeroBaselineSize(t *testing.T) {
	baseline := doc(t)
	baseline.FileSizeBytes = 0
	r := Compare(baseline, doc(t))

	if r.SizeRatio != 0 {
		t.Errorf("SizeRatio = %v, want 0 for zero baseline size", r.SizeRatio)
	}
}
