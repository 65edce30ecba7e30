// Package pathscan tokenizes SVG path data strings.
//
// The scanner is deliberately shallow: it does not build a path model, it
// only pulls out the token streams the metric layer consumes (drawing
// commands, the curve-family subset, and the flat numeric stream).
package pathscan

import (
	"regexp"
	"strconv"
)

var (
	commandPattern = regexp.MustCompile(`[MLHVCSQTAZmlhvcsqtaz]`)
	curvePattern   = regexp.MustCompile(`[CSQTAcsqta]`)

	// numberPattern intentionally does not match scientific notation
	// (e.g. 1e-5) or repeated signs. Vectorizer output never uses either,
	// and the detection thresholds were tuned against this exact grammar.
	numberPattern  = regexp.MustCompile(`-?\d+\.?\d*`)
	decimalPattern = regexp.MustCompile(`-?\d+\.(\d+)`)
)

// Scan holds the token streams of one path data string, in source order.
type Scan struct {
	Commands      []string
	CurveCommands []string
	Numbers       []float64
}

// ScanPath tokenizes a path data string. Malformed or empty input yields
// empty streams rather than an error.
func ScanPath(data string) Scan {
	s := Scan{
		Commands:      commandPattern.FindAllString(data, -1),
		CurveCommands: curvePattern.FindAllString(data, -1),
	}
	for _, lit := range numberPattern.FindAllString(data, -1) {
		n, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			continue
		}
		s.Numbers = append(s.Numbers, n)
	}
	return s
}

// DecimalDigitCounts returns the fractional-digit count of every decimal
// numeral in the path data, in source order. Integers contribute nothing.
func DecimalDigitCounts(data string) []int {
	var counts []int
	for _, m := range decimalPattern.FindAllStringSubmatch(data, -1) {
		counts = append(counts, len(m[1]))
	}
	return counts
}
