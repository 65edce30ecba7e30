package common

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"inkdiff/models"
	"inkdiff/pkg/analyzer"
	"inkdiff/pkg/svgdoc"
)

// AnalyzeFile reads one SVG file and computes its document fingerprint.
// A read or parse failure aborts analysis for this file only.
func AnalyzeFile(path string) (*models.DocumentMetrics, error) {
	doc, err := svgdoc.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := analyzer.Aggregate(doc.Filename, doc.FileSizeBytes, doc.Paths)
	return &m, nil
}

// NewLogger builds the shared JSON logger. Logs go to stderr so stdout
// stays clean for reports.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ParseFormatFlag validates a --format value against the allowed set.
func ParseFormatFlag(format string, allowed ...string) (string, error) {
	f := strings.TrimSpace(strings.ToLower(format))
	if f == "" {
		return allowed[0], nil
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of %s)", format, strings.Join(allowed, ", "))
}
