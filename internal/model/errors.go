package model

import "fmt"

// InvalidParameterError is the single domain error kind: a reaction
// parameter fell outside its physical range. It is raised before any
// computation happens and is never recovered internally.
type InvalidParameterError struct {
	// Field is the config name of the offending parameter, e.g. "leaf_weight".
	Field string
	// Value is the rejected input value.
	Value float64
	// Constraint describes the violated range in plain words.
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Constraint)
}
