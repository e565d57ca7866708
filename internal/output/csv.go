/*
PURPOSE:
  Renders results as CSV, one row per scenario.
  Suited to spreadsheets and quick plotting.

REQUIREMENTS:
  User-specified:
  - Tabular output with inputs and outputs side by side.

  Implementation-discovered:
  - The header must be written exactly once, before the first row.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on write failure; csv.Writer buffers, so Flush matters.

IMPLEMENTATION RULES:
  - Inputs keep full precision; computed values use 4 decimal places.
  - Thread-safe.

USAGE:
  r := output.NewCSVReporter(os.Stdout)
  r.Write(result)
  r.Flush()

SELF-HEALING INSTRUCTIONS:
  - Keep the header and the record builder in sync.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update when adding result fields.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/jdshastri26/methylation-sim/internal/model"
)

var csvHeader = []string{
	"leaf_weight_g", "agent_concentration_pct", "reaction_time_h",
	"reaction_temperature_c", "catalyst_efficiency_pct",
	"prepared_weight_g", "methylation_level_units", "unused_agent_g",
}

// CSVReporter renders each result as one CSV row.
type CSVReporter struct {
	writer      *csv.Writer
	mu          sync.Mutex
	wroteHeader bool
}

// NewCSVReporter creates a CSVReporter writing to w.
func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{writer: csv.NewWriter(w)}
}

// Write renders a single result as a CSV row, emitting the header first
// if it has not been written yet.
func (cr *CSVReporter) Write(r model.Result) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if !cr.wroteHeader {
		if err := cr.writer.Write(csvHeader); err != nil {
			return err
		}
		cr.wroteHeader = true
	}

	record := []string{
		formatInput(r.Parameters.LeafWeight),
		formatInput(r.Parameters.AgentConcentration),
		formatInput(r.Parameters.ReactionTime),
		formatInput(r.Parameters.ReactionTemperature),
		formatInput(r.Parameters.CatalystEfficiency),
		fmt.Sprintf("%.4f", r.PreparedWeight),
		fmt.Sprintf("%.4f", r.MethylationLevel),
		fmt.Sprintf("%.4f", r.UnusedAgent),
	}

	if err := cr.writer.Write(record); err != nil {
		return err
	}
	return cr.writer.Error()
}

// Flush drains the csv buffer to the underlying writer.
func (cr *CSVReporter) Flush() error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	cr.writer.Flush()
	return cr.writer.Error()
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
