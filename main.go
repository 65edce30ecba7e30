package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"inkdiff/internal/analyze"
	"inkdiff/internal/batch"
	"inkdiff/internal/compare"
)

func main() {
	app := &cli.App{
		Name:  "inkdiff",
		Usage: "detect whether artistic effects were applied between two SVG renderings",
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "compute the metric fingerprint of one or more SVG files",
				ArgsUsage: "<file.svg> [file.svg ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "output format: json or yaml",
					},
					&cli.BoolFlag{
						Name:  "paths",
						Usage: "include per-path metric records in the output",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: analyze.AnalyzeAction,
			},
			{
				Name:      "compare",
				Usage:     "compare a baseline SVG against a variant and report the verdict",
				ArgsUsage: "<baseline.svg> <variant.svg>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "report format: text, markdown, html or json",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "write the report to a file instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "check",
						Usage: "exit with status 1 when no effects are detected",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: compare.CompareAction,
			},
			{
				Name:  "batch",
				Usage: "run every baseline/variant pair listed in a YAML config",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Usage:    "YAML file listing comparison pairs",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "emit structured JSON instead of text reports",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: batch.BatchAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
