package weekcal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid calendar config")
	// ErrInvalidDate is matched by every *DateError.
	ErrInvalidDate = errors.New("invalid date")
	// ErrAmbiguous is matched by every *AmbiguousError.
	ErrAmbiguous = errors.New("ambiguous result")
	// ErrOutOfRange reports arithmetic beyond the supported iteration bound.
	ErrOutOfRange = errors.New("out of range")
)

// ConfigError identifies the Config field that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid calendar config: %s=%v %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// DateError reports a date component outside the range valid for its
// calendar-year.
type DateError struct {
	Year  int
	Field string // "week", "day", "month", "quarter" or "day of month"
	Value int
	Max   int
	// AnyYear is set when the check did not involve a year; Year is unused.
	AnyYear bool
}

func (e *DateError) Error() string {
	if e.AnyYear {
		return fmt.Sprintf("invalid date: %s %d out of range 1..%d", e.Field, e.Value, e.Max)
	}
	return fmt.Sprintf("invalid date: %s %d out of range 1..%d in year %d", e.Field, e.Value, e.Max, e.Year)
}

func (e *DateError) Unwrap() error { return ErrInvalidDate }

// AmbiguousError is returned when a question has no single answer without
// more context. Min and Max bound the possible answers.
type AmbiguousError struct {
	Op       string
	Min, Max int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous result: %s is between %d and %d", e.Op, e.Min, e.Max)
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }
