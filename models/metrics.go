// Package models defines the value records flowing through the analysis pipeline.
package models

// PathElement is one path as read out of an SVG document: the raw path data
// plus the style attributes the analyzer cares about, still as strings.
type PathElement struct {
	Data          string
	StrokeWidth   string
	StrokeOpacity string
}

// PathMetrics holds the measurements extracted from a single path element.
type PathMetrics struct {
	Index              int     `json:"index" yaml:"index"`
	DataLength         int     `json:"data_length" yaml:"data_length"`
	CommandCount       int     `json:"command_count" yaml:"command_count"`
	CurveCommandCount  int     `json:"curve_command_count" yaml:"curve_command_count"`
	HasCurves          bool    `json:"has_curves" yaml:"has_curves"`
	StrokeWidth        float64 `json:"stroke_width" yaml:"stroke_width"`
	StrokeOpacity      float64 `json:"stroke_opacity" yaml:"stroke_opacity"`
	CoordinateVariance float64 `json:"coordinate_variance" yaml:"coordinate_variance"`
}

// DocumentMetrics is the aggregate fingerprint of one SVG file.
type DocumentMetrics struct {
	Filename            string        `json:"filename" yaml:"filename"`
	FileSizeBytes       int64         `json:"file_size_bytes" yaml:"file_size_bytes"`
	PathCount           int           `json:"path_count" yaml:"path_count"`
	TotalPathLength     int           `json:"total_path_length" yaml:"total_path_length"`
	AvgPathLength       float64       `json:"avg_path_length" yaml:"avg_path_length"`
	StrokeWidths        []float64     `json:"stroke_widths" yaml:"stroke_widths"`
	StrokeWidthVariance float64       `json:"stroke_width_variance" yaml:"stroke_width_variance"`
	HasVariableStrokes  bool          `json:"has_variable_strokes" yaml:"has_variable_strokes"`
	PathComplexities    []int         `json:"path_complexities" yaml:"path_complexities"`
	TotalCurveCommands  int           `json:"total_curve_commands" yaml:"total_curve_commands"`
	CoordinatePrecision float64       `json:"coordinate_precision" yaml:"coordinate_precision"`
	Paths               []PathMetrics `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// MinStrokeWidth returns the smallest recorded stroke width, or 0 when the
// document has no paths.
func (m *DocumentMetrics) MinStrokeWidth() float64 {
	if len(m.StrokeWidths) == 0 {
		return 0
	}
	min := m.StrokeWidths[0]
	for _, w := range m.StrokeWidths[1:] {
		if w < min {
			min = w
		}
	}
	return min
}

// MaxStrokeWidth returns the largest recorded stroke width, or 0 when the
// document has no paths.
func (m *DocumentMetrics) MaxStrokeWidth() float64 {
	if len(m.StrokeWidths) == 0 {
		return 0
	}
	max := m.StrokeWidths[0]
	for _, w := range m.StrokeWidths[1:] {
		if w > max {
			max = w
		}
	}
	return max
}
