// Package errors defines the structured error type reported when a schema
// document cannot be parsed.
package errors

import (
	"fmt"
)

// SchemaError describes a problem in a schema document, together with the
// source locations it was detected at.
type SchemaError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
	Rule      string     `json:"-"`
	Err       error      `json:"-"`
}

// Location is a line/column position in a schema document. Both are 1-based.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// Errorf formats a new SchemaError. Like fmt.Errorf, it wraps the last
// argument if it is an error.
func Errorf(format string, a ...interface{}) *SchemaError {
	var err error
	if n := len(a); n > 0 {
		if e, ok := a[n-1].(error); ok {
			err = e
		}
	}

	return &SchemaError{
		Message: fmt.Sprintf(format, a...),
		Err:     err,
	}
}

func (err *SchemaError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (line %d, column %d)", loc.Line, loc.Column)
	}
	return str
}

func (err *SchemaError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

var _ error = &SchemaError{}
