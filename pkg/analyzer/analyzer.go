// Package analyzer derives statistical fingerprints from SVG path elements:
// per-path metrics from the token streams, and document-level aggregates
// used by the effects detector.
package analyzer

import (
	"strconv"

	"inkdiff/models"
	"inkdiff/pkg/pathscan"
)

// Substituted whenever a stroke attribute is absent or unparsable. Malformed
// styling must never abort analysis.
const (
	DefaultStrokeWidth   = 1.0
	DefaultStrokeOpacity = 1.0
)

// variableStrokeThreshold is the stroke-width variance above which a
// document counts as having variable-width strokes.
const variableStrokeThreshold = 0.001

// ExtractPath computes the metrics of a single path element. index is the
// path's ordinal position within its document.
func ExtractPath(index int, elem models.PathElement) models.PathMetrics {
	scan := pathscan.ScanPath(elem.Data)

	return models.PathMetrics{
		Index:              index,
		DataLength:         len(elem.Data),
		CommandCount:       len(scan.Commands),
		CurveCommandCount:  len(scan.CurveCommands),
		HasCurves:          len(scan.CurveCommands) > 0,
		StrokeWidth:        parseStyleAttr(elem.StrokeWidth, DefaultStrokeWidth),
		StrokeOpacity:      parseStyleAttr(elem.StrokeOpacity, DefaultStrokeOpacity),
		CoordinateVariance: coordinateVariance(scan.Numbers),
	}
}

// Aggregate reduces a document's path elements into a DocumentMetrics
// fingerprint. Empty documents produce zero-valued aggregates, never a
// division fault.
func Aggregate(filename string, fileSizeBytes int64, elems []models.PathElement) models.DocumentMetrics {
	doc := models.DocumentMetrics{
		Filename:      filename,
		FileSizeBytes: fileSizeBytes,
		PathCount:     len(elems),
	}

	var decimalDigits []int
	for i, elem := range elems {
		pm := ExtractPath(i, elem)
		doc.Paths = append(doc.Paths, pm)
		doc.TotalPathLength += pm.DataLength
		doc.StrokeWidths = append(doc.StrokeWidths, pm.StrokeWidth)
		doc.PathComplexities = append(doc.PathComplexities, pm.CommandCount)
		doc.TotalCurveCommands += pm.CurveCommandCount
		decimalDigits = append(decimalDigits, pathscan.DecimalDigitCounts(elem.Data)...)
	}

	if doc.PathCount > 0 {
		doc.AvgPathLength = float64(doc.TotalPathLength) / float64(doc.PathCount)
	}
	doc.StrokeWidthVariance = populationVariance(doc.StrokeWidths)
	doc.HasVariableStrokes = doc.StrokeWidthVariance > variableStrokeThreshold
	doc.CoordinatePrecision = meanInts(decimalDigits)

	return doc
}

// coordinateVariance is the tremor proxy: the population variance of the
// absolute differences between consecutive values in the flattened number
// stream. The stream is treated as one undifferentiated sequence, not split
// per axis; detection thresholds assume this flattened definition.
func coordinateVariance(numbers []float64) float64 {
	if len(numbers) < 3 {
		return 0
	}
	diffs := make([]float64, len(numbers)-1)
	for i := range diffs {
		d := numbers[i+1] - numbers[i]
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	return populationVariance(diffs)
}

// populationVariance divides by N, not N-1. Empty input yields 0.
func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		dev := v - mean
		sq += dev * dev
	}
	return sq / float64(len(values))
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func parseStyleAttr(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
