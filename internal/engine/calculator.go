/*
PURPOSE:
  Implements the methylation calculation pipeline.
  Validate -> prepare sample -> react, as a single linear pass.

REQUIREMENTS:
  User-specified:
  - Model a fixed 10% mass loss during sample preparation.
  - Apply the analytic yield formula and report unused agent.
  - Refuse to compute anything when a parameter is out of range.

  Implementation-discovered:
  - Progress lines must be written to an injectable io.Writer so the CLI can
    route them away from machine-readable output (and tests can capture them).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go, internal/cli
  - Consumes: internal/model.Parameters
  - Produces: internal/model.Result

ERROR HANDLING:
  - Process returns *model.InvalidParameterError untouched; no recovery,
    no partial results.

IMPLEMENTATION RULES:
  - The formula constants are part of the model; do not make them tunable.
  - Keep the computation pure: same parameters, bit-identical result.

USAGE:
  calc := engine.NewCalculator(params)
  res, err := calc.Process()

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/model/types.go
  - internal/engine/runner.go

MAINTENANCE:
  - Update if the yield model changes.
*/

package engine

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jdshastri26/methylation-sim/internal/model"
)

// preparationRetention is the fraction of leaf mass that survives
// pretreatment. The 10% loss is a deliberate simplification of washing,
// drying and grinding; it is not a tunable parameter.
const preparationRetention = 0.9

// decayBase drives the diminishing-returns term (1 - 0.1^t): at one hour the
// reaction reaches 90% of its base rate and approaches it asymptotically.
const decayBase = 0.1

// Calculator runs the methylation pipeline for one parameter set.
// It owns the parameters for its lifetime: construct, call Process once,
// discard. Progress lines go to out.
type Calculator struct {
	params model.Parameters
	out    io.Writer
}

// NewCalculator returns a Calculator reporting progress to stdout.
func NewCalculator(params model.Parameters) *Calculator {
	return NewCalculatorWithOutput(params, os.Stdout)
}

// NewCalculatorWithOutput returns a Calculator reporting progress to w.
func NewCalculatorWithOutput(params model.Parameters, w io.Writer) *Calculator {
	return &Calculator{params: params, out: w}
}

// Validate checks the stored parameters against their ranges.
// No side effects beyond the pass/fail outcome.
func (c *Calculator) Validate() error {
	return c.params.Validate()
}

// PrepareSample computes the leaf mass remaining after pretreatment and
// reports it. The prepared weight is the reactive mass basis for React.
func (c *Calculator) PrepareSample() float64 {
	prepared := c.params.LeafWeight * preparationRetention
	fmt.Fprintf(c.out, "Prepared leaf weight: %.2f g\n", prepared)
	return prepared
}

// React evaluates the yield formula against preparedWeight and returns the
// methylation level (units) and the unused agent mass (grams, clamped at 0).
func (c *Calculator) React(preparedWeight float64) (methylationLevel, unusedAgent float64) {
	baseRate := (c.params.AgentConcentration / 100) * (c.params.ReactionTemperature / 100)
	efficiency := baseRate * (1 - math.Pow(decayBase, c.params.ReactionTime))

	methylationLevel = preparedWeight * efficiency * (c.params.CatalystEfficiency / 100)
	agentUsed := preparedWeight * efficiency

	// The agent charge was dosed against the raw biomass, not the prepared
	// sample. Intentional: dosing happens before pretreatment.
	unusedAgent = c.params.AgentConcentration*c.params.LeafWeight/100 - agentUsed
	if unusedAgent < 0 {
		unusedAgent = 0
	}

	fmt.Fprintf(c.out, "Methylation level achieved: %.2f units\n", methylationLevel)
	fmt.Fprintf(c.out, "Unused methylation agent: %.2f g\n", unusedAgent)
	return methylationLevel, unusedAgent
}

// Process runs the full pipeline: validate, prepare, react.
// On a validation failure it returns immediately with no computation and no
// output.
func (c *Calculator) Process() (model.Result, error) {
	if err := c.Validate(); err != nil {
		return model.Result{}, err
	}

	prepared := c.PrepareSample()
	level, unused := c.React(prepared)

	return model.Result{
		Parameters:       c.params,
		PreparedWeight:   prepared,
		MethylationLevel: level,
		UnusedAgent:      unused,
	}, nil
}
