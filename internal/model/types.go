/*
PURPOSE:
  Defines the core data structures for the methylation simulator.
  These models represent reaction inputs and computed results.

REQUIREMENTS:
  User-specified:
  - Capture the five reaction parameters with their physical ranges.
  - Record methylation level and unused agent per run.

  Implementation-discovered:
  - Need yaml tags for config scenarios, json tags for the JSON report.
  - Range checks belong on the struct so every caller validates the same way.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output, internal/config
  - Shared across boundaries.

ERROR HANDLING:
  - Validate() returns *InvalidParameterError for the first out-of-range field.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Validation order is the struct field order; do not reorder fields.

USAGE:
  p := model.Parameters{LeafWeight: 100, ...}
  if err := p.Validate(); err != nil { ... }

SELF-HEALING INSTRUCTIONS:
  - If a new parameter is needed, add field + validate tag + constraint text.

RELATED FILES:
  - internal/model/errors.go
  - internal/engine/calculator.go

MAINTENANCE:
  - Update when the reaction model gains parameters.
*/

package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Parameters holds the inputs of a single methylation run.
// Immutable once constructed; a Calculator owns one value for its lifetime.
type Parameters struct {
	// LeafWeight is the raw water-hyacinth leaf biomass in grams.
	LeafWeight float64 `yaml:"leaf_weight" json:"leaf_weight_g" validate:"gt=0"`
	// AgentConcentration is the methylation agent charge as a percentage
	// of leaf weight, in (0, 100].
	AgentConcentration float64 `yaml:"agent_concentration" json:"agent_concentration_pct" validate:"gt=0,lte=100"`
	// ReactionTime is the reaction duration in hours.
	ReactionTime float64 `yaml:"reaction_time" json:"reaction_time_h" validate:"gt=0"`
	// ReactionTemperature is the reaction temperature in °C, [20, 300].
	ReactionTemperature float64 `yaml:"reaction_temperature" json:"reaction_temperature_c" validate:"gte=20,lte=300"`
	// CatalystEfficiency is the catalyst conversion percentage, (0, 100].
	CatalystEfficiency float64 `yaml:"catalyst_efficiency" json:"catalyst_efficiency_pct" validate:"gt=0,lte=100"`
}

// constraintText maps config field names to a human-readable description of
// the violated range. One description per field; the range IS the constraint.
var constraintText = map[string]string{
	"leaf_weight":          "must be greater than 0 g",
	"agent_concentration":  "must be within (0, 100] percent",
	"reaction_time":        "must be greater than 0 hours",
	"reaction_temperature": "must be between 20 and 300 °C inclusive",
	"catalyst_efficiency":  "must be within (0, 100] percent",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their config (yaml) names so error messages match
	// what the user actually wrote in a scenario file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks every parameter against its physical range.
// It fails on the first violation, in struct field order: leaf weight,
// agent concentration, reaction time, temperature, catalyst efficiency.
// Returns nil when all parameters are in range.
func (p Parameters) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		// Non-validation failure (bad struct usage); surface as-is.
		return err
	}

	first := errs[0]
	value, _ := first.Value().(float64)
	constraint := constraintText[first.Field()]
	if constraint == "" {
		constraint = "is out of range (" + first.Tag() + ")"
	}

	return &InvalidParameterError{
		Field:      first.Field(),
		Value:      value,
		Constraint: constraint,
	}
}

// Result is the outcome of one methylation run. Pure value: identical
// parameters always produce a bit-identical Result.
type Result struct {
	// Parameters echoes the inputs so a report line is self-describing.
	Parameters Parameters `json:"parameters"`
	// PreparedWeight is the leaf mass remaining after pretreatment, grams.
	PreparedWeight float64 `json:"prepared_weight_g"`
	// MethylationLevel is the simulated product quantity in formula units.
	MethylationLevel float64 `json:"methylation_level_units"`
	// UnusedAgent is the leftover agent charge in grams, clamped at 0.
	UnusedAgent float64 `json:"unused_agent_g"`
}
