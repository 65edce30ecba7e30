package models

// CriterionResult is the outcome of a single evidence test from the
// detector's criteria bank. Every criterion is reported individually so a
// verdict can be traced back to the signals that produced it.
type CriterionResult struct {
	Name   string  `json:"name" yaml:"name"`
	Detail string  `json:"detail" yaml:"detail"`
	Delta  float64 `json:"delta" yaml:"delta"`
	Fired  bool    `json:"fired" yaml:"fired"`
}

// ComparisonResult pairs a baseline document with a variant and records the
// signed deltas between their fingerprints plus the detector verdict.
type ComparisonResult struct {
	BaselineFile string `json:"baseline_file" yaml:"baseline_file"`
	VariantFile  string `json:"variant_file" yaml:"variant_file"`

	SizeDifference          int64   `json:"size_difference" yaml:"size_difference"`
	SizeRatio               float64 `json:"size_ratio" yaml:"size_ratio"`
	PathCountDiff           int     `json:"path_count_diff" yaml:"path_count_diff"`
	AvgPathLengthDiff       float64 `json:"avg_path_length_diff" yaml:"avg_path_length_diff"`
	StrokeVarianceDiff      float64 `json:"stroke_variance_diff" yaml:"stroke_variance_diff"`
	VariableStrokesBaseline bool    `json:"variable_strokes_baseline" yaml:"variable_strokes_baseline"`
	VariableStrokesVariant  bool    `json:"variable_strokes_variant" yaml:"variable_strokes_variant"`
	CurveCommandsDiff       int     `json:"curve_commands_diff" yaml:"curve_commands_diff"`
	CoordinatePrecisionDiff float64 `json:"coordinate_precision_diff" yaml:"coordinate_precision_diff"`

	Criteria        []CriterionResult `json:"criteria" yaml:"criteria"`
	EffectsDetected bool              `json:"effects_detected" yaml:"effects_detected"`

	Baseline *DocumentMetrics `json:"baseline" yaml:"baseline"`
	Variant  *DocumentMetrics `json:"variant" yaml:"variant"`
}
