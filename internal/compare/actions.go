package compare

import (
	"bytes"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"inkdiff/internal/common"
	"inkdiff/pkg/detector"
	"inkdiff/pkg/report"
	"inkdiff/pkg/storage"
)

// CompareAction analyzes a baseline and a variant SVG and reports whether
// artistic effects were applied between them.
func CompareAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	if c.NArg() != 2 {
		return fmt.Errorf("expected exactly two arguments: <baseline.svg> <variant.svg>")
	}
	format, err := common.ParseFormatFlag(c.String("format"), "text", "markdown", "html", "json")
	if err != nil {
		return err
	}

	baselinePath := c.Args().Get(0)
	variantPath := c.Args().Get(1)

	logger.Info("Analyzing baseline", "file", baselinePath)
	baseline, err := common.AnalyzeFile(baselinePath)
	if err != nil {
		return fmt.Errorf("baseline analysis failed: %w", err)
	}
	logger.Info("Analyzing variant", "file", variantPath)
	variant, err := common.AnalyzeFile(variantPath)
	if err != nil {
		return fmt.Errorf("variant analysis failed: %w", err)
	}

	result := detector.Compare(baseline, variant)
	logger.Info("Comparison complete",
		"baseline", result.BaselineFile,
		"variant", result.VariantFile,
		"effects_detected", result.EffectsDetected)

	var buf bytes.Buffer
	switch format {
	case "markdown":
		buf.WriteString(report.Markdown(result))
	case "html":
		html, err := report.HTML(result)
		if err != nil {
			return err
		}
		buf.WriteString(html)
	case "json":
		data, err := report.JSON(result)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		report.WriteComparison(&buf, result)
	}

	if out := c.String("output"); out != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(out, buf.Bytes()); err != nil {
			return err
		}
		logger.Info("Report saved", "path", out)
	} else {
		fmt.Fprint(os.Stdout, buf.String())
	}

	if c.Bool("check") && !result.EffectsDetected {
		return cli.Exit("no artistic effects detected", 1)
	}
	return nil
}
