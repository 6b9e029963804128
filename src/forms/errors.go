package forms

import (
	"fmt"
	"sort"
	"strings"
)

// Errors maps a field name to the reason it was rejected.
type Errors map[string]string

func (e Errors) Add(field, reason string) {
	if _, ok := e[field]; !ok {
		e[field] = reason
	}
}

// ValidationError carries field-level failures across the service boundary.
// No partial write happens when one is returned.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}

func (e Errors) err() error {
	if len(e) == 0 {
		return nil
	}
	return &ValidationError{Fields: e}
}

func checkNonNegative(e Errors, field string, v int) {
	if v < 0 {
		e.Add(field, "must be zero or a positive integer")
	}
}

func checkNonNegativeFloat(e Errors, field string, v float64) {
	if v < 0 {
		e.Add(field, "must be zero or positive")
	}
}
