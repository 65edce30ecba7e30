package analyze

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"inkdiff/internal/common"
	"inkdiff/models"
)

// FileResult is the structured output for a single analyzed file.
type FileResult struct {
	File    string                  `json:"file" yaml:"file"`
	Status  string                  `json:"status" yaml:"status"`
	Error   string                  `json:"error,omitempty" yaml:"error,omitempty"`
	Metrics *models.DocumentMetrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Output is the structured output for the whole run.
type Output struct {
	Status  string       `json:"status" yaml:"status"`
	Results []FileResult `json:"results" yaml:"results"`
	Stats   Stats        `json:"stats" yaml:"stats"`
}

type Stats struct {
	TotalFiles int `json:"total_files" yaml:"total_files"`
	Successful int `json:"successful" yaml:"successful"`
	Failed     int `json:"failed" yaml:"failed"`
}

// AnalyzeAction computes and prints the metric fingerprint of each SVG file
// given as an argument. Failures are per-file; the run continues.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	if c.NArg() == 0 {
		return fmt.Errorf("no SVG files provided")
	}
	format, err := common.ParseFormatFlag(c.String("format"), "json", "yaml")
	if err != nil {
		return err
	}
	includePaths := c.Bool("paths")

	output := Output{Status: "success"}
	for _, path := range c.Args().Slice() {
		logger.Info("Analyzing SVG", "file", path)
		result := FileResult{File: path}

		metrics, err := common.AnalyzeFile(path)
		if err != nil {
			logger.Error("Failed to analyze SVG", "file", path, "error", err)
			result.Status = "failed"
			result.Error = err.Error()
			output.Stats.Failed++
		} else {
			if !includePaths {
				metrics.Paths = nil
			}
			result.Status = "success"
			result.Metrics = metrics
			output.Stats.Successful++
		}
		output.Results = append(output.Results, result)
	}
	output.Stats.TotalFiles = output.Stats.Successful + output.Stats.Failed
	if output.Stats.Successful == 0 {
		output.Status = "failed"
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(output)
	default:
		data, err = json.MarshalIndent(output, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
