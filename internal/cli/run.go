/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the configured methylation scenarios.

REQUIREMENTS:
  User-specified:
  - Run the simulation.
  - Specific flags for parameter overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails, a lone scenario is invalid, or the
    engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  methylsim run --leaf-weight 100 --agent-concentration 20

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Parameters fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/jdshastri26/methylation-sim/internal/config"
	"github.com/jdshastri26/methylation-sim/internal/engine"
)

var formatOverride string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured methylation scenarios",
	Long: `Runs the methylation pipeline for every configured scenario.
Each scenario follows a strict protocol:
1. Validation: every parameter is checked against its physical range.
2. Preparation: the leaf sample loses a fixed 10% of its mass.
3. Reaction: the analytic yield formula produces the methylation level and
   the unused agent mass.

Without a config file or flags, the built-in reference scenario is run.`,
	Example: `  # Run the built-in reference scenario
  methylsim run

  # Override individual reaction parameters
  methylsim run --leaf-weight 250 --temperature 120

  # Run scenarios from a config file, as JSON lines
  methylsim run --config batch.yaml --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		// If err != nil here, the user named a file that could not be
		// loaded or parsing failed. config.Load handles "no file found"
		// by returning defaults.
		if err != nil {
			return err
		}

		// 2. Overrides
		if formatOverride != "" {
			cfg.Format = formatOverride
		}
		applyParameterOverrides(cmd, cfg)

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	addParameterFlags(runCmd)
	runCmd.Flags().StringVarP(&formatOverride, "format", "f", "", "Result format: text, json or csv")
}
