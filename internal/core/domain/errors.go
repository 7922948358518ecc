package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidUser       = errors.New("invalid user id")
	ErrMaterialNotFound  = errors.New("material not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStorage           = errors.New("storage failure")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicateRequest  = errors.New("duplicate request")
	ErrEntryNotFound     = errors.New("stock entry not found")
)

// ShortfallError lists every material a deduction could not cover.
type ShortfallError struct {
	Shortfalls []Shortfall
}

func (e *ShortfallError) Error() string {
	parts := make([]string, len(e.Shortfalls))
	for i, s := range e.Shortfalls {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("material %d", s.MaterialID)
		}
		parts[i] = fmt.Sprintf("%s (needed: %s, available: %s)", name, s.Needed, s.Available)
	}
	return "insufficient stock for: " + strings.Join(parts, ", ")
}

func (e *ShortfallError) Unwrap() error { return ErrInsufficientStock }

// LineError describes why one line of a batch failed.
type LineError struct {
	Index int
	Name  string
	Err   error
}

func (e LineError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMaterialNotFound):
		return "material not found: " + e.Name
	case errors.Is(e.Err, ErrInsufficientStock):
		return "not enough stock for " + e.Name
	case errors.Is(e.Err, ErrInvalidInput):
		return fmt.Sprintf("invalid name or amount at index %d", e.Index)
	}
	return fmt.Sprintf("line %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// BatchError is returned when a batch is rolled back. It carries every
// failing line, not only the first.
type BatchError struct {
	Lines []LineError
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Lines))
	for i, l := range e.Lines {
		msgs[i] = l.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the line causes so errors.Is matches any of them.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Lines))
	for i, l := range e.Lines {
		errs[i] = l.Err
	}
	return errs
}
