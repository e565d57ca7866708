package engine

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdshastri26/methylation-sim/internal/model"
)

func referenceParams() model.Parameters {
	return model.Parameters{
		LeafWeight:          100.0,
		AgentConcentration:  20.0,
		ReactionTime:        3.0,
		ReactionTemperature: 60.0,
		CatalystEfficiency:  85.0,
	}
}

// The reference scenario, worked through by hand:
// preparedWeight = 90, baseRate = 0.12, efficiency = 0.11988,
// methylationLevel = 90 * 0.11988 * 0.85 = 9.17082,
// agentUsed = 10.7892, unusedAgent = 20 - 10.7892 = 9.2108.
func TestProcessReferenceScenario(t *testing.T) {
	var buf bytes.Buffer
	calc := NewCalculatorWithOutput(referenceParams(), &buf)

	res, err := calc.Process()
	require.NoError(t, err)

	assert.InDelta(t, 90.0, res.PreparedWeight, 1e-12)
	assert.InDelta(t, 9.17082, res.MethylationLevel, 1e-9)
	assert.InDelta(t, 9.2108, res.UnusedAgent, 1e-9)
	assert.Equal(t, referenceParams(), res.Parameters)

	want := "Prepared leaf weight: 90.00 g\n" +
		"Methylation level achieved: 9.17 units\n" +
		"Unused methylation agent: 9.21 g\n"
	assert.Equal(t, want, buf.String())
}

func TestProcessIsDeterministic(t *testing.T) {
	first, err := NewCalculatorWithOutput(referenceParams(), io.Discard).Process()
	require.NoError(t, err)

	second, err := NewCalculatorWithOutput(referenceParams(), io.Discard).Process()
	require.NoError(t, err)

	// Bit-identical, not merely close.
	require.Equal(t, first, second)
}

func TestProcessInvalidParameters(t *testing.T) {
	params := referenceParams()
	params.LeafWeight = 0

	var buf bytes.Buffer
	calc := NewCalculatorWithOutput(params, &buf)

	res, err := calc.Process()
	require.Error(t, err)

	var ipe *model.InvalidParameterError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "leaf_weight", ipe.Field)

	// No computation and no output may happen on invalid input.
	assert.Zero(t, res)
	assert.Zero(t, buf.Len())
}

func TestPrepareSampleAppliesFixedLoss(t *testing.T) {
	var buf bytes.Buffer
	calc := NewCalculatorWithOutput(referenceParams(), &buf)

	prepared := calc.PrepareSample()
	assert.InDelta(t, 90.0, prepared, 1e-12)
	assert.Equal(t, "Prepared leaf weight: 90.00 g\n", buf.String())
}

// Holding everything else fixed, a longer reaction strictly increases the
// yield, approaching the base-rate bound.
func TestReactMonotonicInReactionTime(t *testing.T) {
	prev := -1.0
	for _, hours := range []float64{0.25, 0.5, 1, 2, 3, 5, 8} {
		params := referenceParams()
		params.ReactionTime = hours

		calc := NewCalculatorWithOutput(params, io.Discard)
		res, err := calc.Process()
		require.NoError(t, err)

		assert.Greater(t, res.MethylationLevel, prev, "reaction time %v hours", hours)
		prev = res.MethylationLevel
	}

	// Bound check: level can never exceed prepared * baseRate * catalyst.
	params := referenceParams()
	bound := params.LeafWeight * 0.9 * 0.12 * 0.85
	assert.Less(t, prev, bound)
}

// A lean agent charge against a hot, long reaction drives the raw mass
// balance negative; the reported value must clamp to exactly zero.
func TestReactClampsUnusedAgentAtZero(t *testing.T) {
	params := model.Parameters{
		LeafWeight:          100.0,
		AgentConcentration:  1.0,
		ReactionTime:        10.0,
		ReactionTemperature: 300.0,
		CatalystEfficiency:  100.0,
	}

	var buf bytes.Buffer
	calc := NewCalculatorWithOutput(params, &buf)

	res, err := calc.Process()
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.UnusedAgent)
	assert.Contains(t, buf.String(), "Unused methylation agent: 0.00 g\n")
}

func TestProcessNeverNegative(t *testing.T) {
	cases := []model.Parameters{
		{LeafWeight: 0.001, AgentConcentration: 0.001, ReactionTime: 0.001, ReactionTemperature: 20, CatalystEfficiency: 0.001},
		{LeafWeight: 1e6, AgentConcentration: 100, ReactionTime: 100, ReactionTemperature: 300, CatalystEfficiency: 100},
		{LeafWeight: 50, AgentConcentration: 2, ReactionTime: 6, ReactionTemperature: 250, CatalystEfficiency: 90},
		referenceParams(),
	}

	for _, params := range cases {
		res, err := NewCalculatorWithOutput(params, io.Discard).Process()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.MethylationLevel, 0.0)
		assert.GreaterOrEqual(t, res.UnusedAgent, 0.0)
	}
}
