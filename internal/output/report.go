/*
PURPOSE:
  Declares the Reporter interface and the format-to-reporter factory.
  Reporters render computed results in machine-readable formats.

REQUIREMENTS:
  User-specified:
  - json and csv output for downstream analysis.

  Implementation-discovered:
  - Reporters write to an injected io.Writer (stdout in practice);
    no files are ever created.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model.Result

ERROR HANDLING:
  - NewReporter rejects unknown format names.

IMPLEMENTATION RULES:
  - Text format has no reporter: the pipeline's own progress lines are the
    human-readable output.

USAGE:
  rep, err := output.NewReporter(config.FormatJSON, os.Stdout)
  rep.Write(result)
  rep.Flush()

SELF-HEALING INSTRUCTIONS:
  - When adding a format, extend NewReporter and the config constants.

RELATED FILES:
  - internal/output/json.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when adding output formats.
*/

package output

import (
	"fmt"
	"io"

	"github.com/jdshastri26/methylation-sim/internal/model"
)

// Reporter renders results in a machine-readable format.
type Reporter interface {
	// Write renders a single result.
	Write(model.Result) error
	// Flush forces any buffered output through to the writer.
	Flush() error
}

// NewReporter returns the reporter for the named format.
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case "json":
		return NewJSONReporter(w), nil
	case "csv":
		return NewCSVReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or csv)", format)
	}
}
