/*
PURPOSE:
  Renders results as JSON Lines (NDJSON).
  Optimized for machine parsing and shell pipelines.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - JSON Lines is better for a sequence of results than a single array
    (append-friendly, jq-friendly).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  r := output.NewJSONReporter(os.Stdout)
  r.Write(result)

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if we switch to a plain JSON array (not recommended).
*/

package output

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/jdshastri26/methylation-sim/internal/model"
)

// JSONReporter renders each result as one JSON line.
type JSONReporter struct {
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONReporter creates a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{encoder: json.NewEncoder(w)}
}

// Write renders a single result as a JSON line.
func (jr *JSONReporter) Write(r model.Result) error {
	jr.mu.Lock()
	defer jr.mu.Unlock()

	return jr.encoder.Encode(r)
}

// Flush is a no-op; the encoder writes through on every Encode.
func (jr *JSONReporter) Flush() error {
	return nil
}
