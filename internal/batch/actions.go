package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"inkdiff/internal/common"
	"inkdiff/models"
	"inkdiff/pkg/detector"
	"inkdiff/pkg/report"
	"inkdiff/pkg/storage"
)

// PairResult is the structured output for one configured pair.
type PairResult struct {
	Description string                   `json:"description"`
	Status      string                   `json:"status"`
	SkippedFile string                   `json:"skipped_file,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Comparison  *models.ComparisonResult `json:"comparison,omitempty"`
}

// Output is the structured output for a whole batch run.
type Output struct {
	Status  string       `json:"status"`
	Results []PairResult `json:"results"`
	Stats   Stats        `json:"stats"`
}

type Stats struct {
	TotalPairs  int `json:"total_pairs"`
	WithEffects int `json:"with_effects"`
	NoEffects   int `json:"no_effects"`
	Skipped     int `json:"skipped"`
}

// BatchAction runs every baseline/variant pair listed in a YAML config, in
// file order. Pairs with a missing input are reported as skipped; a parse
// failure aborts only its own pair. The run ends with a roll-up summary.
func BatchAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	s := &storage.Storage{}

	configPath := c.String("config")
	if configPath == "" {
		return fmt.Errorf("no batch config provided via --config flag")
	}
	data, err := s.ReadFile(configPath)
	if err != nil {
		return err
	}
	cfg, err := models.ParseBatchConfig(data)
	if err != nil {
		return err
	}
	asJSON := c.Bool("json")

	logger.Info("Starting batch run", "config", configPath, "pairs", len(cfg.Pairs))

	var outcomes []report.PairOutcome
	var results []PairResult
	for _, pair := range cfg.Pairs {
		desc := pair.Description
		if desc == "" {
			desc = fmt.Sprintf("%s vs %s", pair.Baseline, pair.Variant)
		}

		if missing := firstMissing(s, pair); missing != "" {
			logger.Warn("Skipping pair, input not found", "description", desc, "file", missing)
			outcomes = append(outcomes, report.PairOutcome{Description: desc, SkippedFile: missing})
			results = append(results, PairResult{Description: desc, Status: "skipped", SkippedFile: missing})
			continue
		}

		baseline, err := common.AnalyzeFile(pair.Baseline)
		if err == nil {
			var variant *models.DocumentMetrics
			variant, err = common.AnalyzeFile(pair.Variant)
			if err == nil {
				result := detector.Compare(baseline, variant)
				outcomes = append(outcomes, report.PairOutcome{Description: desc, Result: result})
				results = append(results, PairResult{Description: desc, Status: "success", Comparison: result})
				if !asJSON {
					fmt.Printf("\nANALYZING: %s\n", desc)
					report.WriteComparison(os.Stdout, result)
				}
				continue
			}
		}

		// One bad file fails its pair, never the batch.
		logger.Error("Pair analysis failed", "description", desc, "error", err)
		outcomes = append(outcomes, report.PairOutcome{Description: desc, Err: err})
		results = append(results, PairResult{Description: desc, Status: "failed", Error: err.Error()})
	}

	if asJSON {
		return printJSON(results)
	}

	fmt.Println()
	report.WriteSummary(os.Stdout, outcomes)
	return nil
}

// firstMissing returns the first input path of the pair that does not
// exist, or "" when both are present.
func firstMissing(s *storage.Storage, pair models.PairSpec) string {
	if !s.HasFile(pair.Baseline) {
		return pair.Baseline
	}
	if !s.HasFile(pair.Variant) {
		return pair.Variant
	}
	return ""
}

func printJSON(results []PairResult) error {
	output := Output{Status: "success", Results: results}
	for _, r := range results {
		output.Stats.TotalPairs++
		switch {
		case r.Status == "success" && r.Comparison.EffectsDetected:
			output.Stats.WithEffects++
		case r.Status == "success":
			output.Stats.NoEffects++
		default:
			output.Stats.Skipped++
		}
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
