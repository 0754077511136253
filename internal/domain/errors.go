package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrCyclicReference = errors.New("référence cyclique entre champs de langue")
	ErrInvalidConfig   = errors.New("configuration invalide")
)

// CyclicReferenceError is returned when a single source pass performs more
// substitutions than allowed, which only happens when fields reference each
// other.
type CyclicReferenceError struct {
	Template string
	SourceID string
	Limit    int
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("%v: %q non résolu après %d substitutions (source %q)",
		ErrCyclicReference, e.Template, e.Limit, e.SourceID)
}

func (e *CyclicReferenceError) Is(target error) bool {
	return target == ErrCyclicReference
}

// Code returns a stable identifier for a domain error, or "" when err is not
// one. Codes are used as message ids by the translator.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCyclicReference):
		return "cyclic_reference"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	default:
		return ""
	}
}
