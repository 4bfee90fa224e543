package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidInputError is returned when a money or hours argument passed to a
// public entry point is out of range. It is raised before any computation
// proceeds; no partial results are produced.
type InvalidInputError struct {
	Op    string
	Field string
	Value decimal.Decimal
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Field, e.Value)
}

func negativeInput(op, field string, value decimal.Decimal) *InvalidInputError {
	return &InvalidInputError{Op: op, Field: field, Value: value}
}
