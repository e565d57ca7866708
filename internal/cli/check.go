/*
PURPOSE:
  Defines the 'check' subcommand.
  Validates scenarios without running the reaction.

REQUIREMENTS:
  User-specified:
  - Verify a scenario file (or flag set) before a run.

  Implementation-discovered:
  - Useful validation step before a long batch.

ARCHITECTURE INTEGRATION:
  - Calls: internal/model.Parameters.Validate() (via Calculator)

ERROR HANDLING:
  - Prints each violation; exits non-zero if any scenario is invalid.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  methylsim check --config batch.yaml

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/calculator.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdshastri26/methylation-sim/internal/config"
	"github.com/jdshastri26/methylation-sim/internal/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate scenarios without running them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyParameterOverrides(cmd, cfg)

		invalid := 0
		for i, params := range cfg.Scenarios {
			calc := engine.NewCalculator(params)
			if err := calc.Validate(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "scenario %d: %v\n", i+1, err)
				invalid++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scenario %d: ok\n", i+1)
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d scenarios invalid", invalid, len(cfg.Scenarios))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addParameterFlags(checkCmd)
}
