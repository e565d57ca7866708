package cli

import (
	"github.com/spf13/cobra"

	"github.com/jdshastri26/methylation-sim/internal/config"
	"github.com/jdshastri26/methylation-sim/internal/model"
)

var (
	leafWeightFlag   float64
	agentConcFlag    float64
	reactionTimeFlag float64
	temperatureFlag  float64
	catalystFlag     float64
)

// parameterFlagNames lists the flags that describe a reaction scenario.
var parameterFlagNames = []string{
	"leaf-weight", "agent-concentration", "reaction-time",
	"temperature", "catalyst-efficiency",
}

// addParameterFlags registers the reaction parameter flags on cmd.
// Defaults are the built-in reference scenario.
func addParameterFlags(cmd *cobra.Command) {
	ref := config.ReferenceScenario()
	cmd.Flags().Float64Var(&leafWeightFlag, "leaf-weight", ref.LeafWeight, "Leaf biomass in grams")
	cmd.Flags().Float64Var(&agentConcFlag, "agent-concentration", ref.AgentConcentration, "Methylation agent charge, percent of leaf weight")
	cmd.Flags().Float64Var(&reactionTimeFlag, "reaction-time", ref.ReactionTime, "Reaction time in hours")
	cmd.Flags().Float64Var(&temperatureFlag, "temperature", ref.ReactionTemperature, "Reaction temperature in °C")
	cmd.Flags().Float64Var(&catalystFlag, "catalyst-efficiency", ref.CatalystEfficiency, "Catalyst efficiency in percent")
}

// applyParameterOverrides replaces the configured scenarios with a single
// scenario built from the parameter flags when any of them was set
// explicitly. Unset flags keep their reference-scenario defaults.
func applyParameterOverrides(cmd *cobra.Command, cfg *config.Config) {
	changed := false
	for _, name := range parameterFlagNames {
		if cmd.Flags().Changed(name) {
			changed = true
			break
		}
	}
	if !changed {
		return
	}

	cfg.Scenarios = []model.Parameters{{
		LeafWeight:          leafWeightFlag,
		AgentConcentration:  agentConcFlag,
		ReactionTime:        reactionTimeFlag,
		ReactionTemperature: temperatureFlag,
		CatalystEfficiency:  catalystFlag,
	}}
}
