/*
PURPOSE:
  High-level runner that executes every configured scenario.
  Loops through scenarios, runs the pipeline, routes results to reporters.

REQUIREMENTS:
  User-specified:
  - Run all scenarios from the config sequentially.
  - Support text, json and csv result formats.

  Implementation-discovered:
  - Machine-readable formats need a clean stdout; progress lines move to
    stderr in that case.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine/calculator.go, internal/output

ERROR HANDLING:
  - A batch logs invalid scenarios and continues (resilience).
  - A lone scenario is an explicit request; its error is surfaced.

IMPLEMENTATION RULES:
  - Iterate scenarios in config order.
  - For each scenario: Process -> report.

USAGE:
  engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/output/report.go

MAINTENANCE:
  - Update iteration logic if parallelism is ever wanted (it is not, today).
*/

package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/jdshastri26/methylation-sim/internal/config"
	"github.com/jdshastri26/methylation-sim/internal/output"
)

// Run executes every scenario in cfg, writing results to stdout and
// progress to stderr where the format requires it.
func Run(cfg *config.Config) error {
	return RunTo(cfg, os.Stdout, os.Stderr)
}

// RunTo executes every scenario in cfg. Results go to resultOut; in
// machine-readable formats the calculator's progress lines go to
// progressOut instead, keeping resultOut parseable.
func RunTo(cfg *config.Config, resultOut, progressOut io.Writer) error {
	var reporter output.Reporter

	// In text format the calculator's own progress lines are the result
	// output, so they stay on resultOut.
	progress := resultOut
	if cfg.Format != config.FormatText {
		r, err := output.NewReporter(cfg.Format, resultOut)
		if err != nil {
			return err
		}
		reporter = r
		progress = progressOut
	}

	for i, params := range cfg.Scenarios {
		output.Logger.Info("Running scenario",
			"scenario", i+1,
			"leaf_weight", params.LeafWeight,
			"agent_concentration", params.AgentConcentration,
		)

		calc := NewCalculatorWithOutput(params, progress)
		res, err := calc.Process()
		if err != nil {
			if len(cfg.Scenarios) == 1 {
				return err
			}
			output.Logger.Error("Skipping scenario", "scenario", i+1, "error", err)
			continue
		}

		if reporter != nil {
			if err := reporter.Write(res); err != nil {
				return fmt.Errorf("failed to write result for scenario %d: %w", i+1, err)
			}
		}
	}

	if reporter != nil {
		return reporter.Flush()
	}
	return nil
}
