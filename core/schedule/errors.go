package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch marks a dataset rejected before aggregation because
// required columns are absent.
var ErrSchemaMismatch = errors.New("schema mismatch")

// SchemaError lists the required columns a dataset lacks.
type SchemaError struct {
	Shape   Shape
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s dataset must contain columns: %s (missing %s)",
		e.Shape, strings.Join(e.Shape.Required(), ", "), strings.Join(e.Missing, ", "))
}

// Unwrap lets callers test with errors.Is(err, ErrSchemaMismatch).
func (e *SchemaError) Unwrap() error { return ErrSchemaMismatch }
