package escline

import (
	"fmt"

	"github.com/pkg/errors"
)

// Strictness controls how CapabilityError is propagated.
type Strictness int

const (
	// Relaxed logs a capability mismatch and no-ops. Default.
	Relaxed Strictness = iota
	// Strict returns a CapabilityError to the caller.
	Strict
)

// ConfigurationError reports an invalid printer model, codepage mapping,
// dialect, column count, or chunk size supplied at construction time.
type ConfigurationError struct {
	Field string
	Value interface{}
	cause error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("escline: invalid configuration: %s = %v", e.Field, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

func newConfigErr(field string, value interface{}) error {
	return &ConfigurationError{Field: field, Value: value}
}

// ContextError reports an operation invoked in a disallowed context: a
// top-level-only operation called on an embedded encoder, or a font change
// attempted mid-line.
type ContextError struct {
	Op     string
	Reason string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("escline: %s not permitted: %s", e.Op, e.Reason)
}

func newContextErr(op, reason string) error {
	return &ContextError{Op: op, Reason: reason}
}

// ValidationError reports a malformed or out-of-range parameter: image
// geometry, a style multiplier outside [1,8], or a barcode/QR/PDF417
// parameter outside its dialect-independent range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("escline: invalid %s: %s", e.Field, e.Reason)
}

func newValidationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CapabilityError reports an operation unsupported by the active printer's
// capabilities: an unknown barcode symbology, an unsupported QR model, or a
// printer with no PDF417 support and no fallback symbology. Whether this
// halts the document or is logged and skipped is controlled by Strictness.
type CapabilityError struct {
	Printer    string
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("escline: printer %q does not support %s", e.Printer, e.Capability)
}

func newCapabilityErr(printer, capability string) error {
	return &CapabilityError{Printer: printer, Capability: capability}
}

// wrapWriteErr attaches call-site context to an error returned by the
// caller-supplied io.Writer, preserving it for errors.As/errors.Is via
// github.com/pkg/errors' Cause chain.
func wrapWriteErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "escline: write failed during %s", op)
}
