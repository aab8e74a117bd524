package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const unknownStr = "unknown"

// Diagnostic codes reported by the engine.
const (
	CodeBadCallback   = "bad-callback"
	CodeBadBase       = "bad-base"
	CodeMalformedPair = "malformed-pair"
	CodeKeyType       = "key-type"
	CodeBadSequence   = "bad-sequence"

	CodeInexactSequence = "inexact-sequence"
)

// Reporter receives diagnostics. Implementations decide whether to log,
// collect or drop them.
type Reporter interface {
	Report(d Diagnostic)
}

// Diagnostics holds all reported diagnostics. A *Diagnostics is a Reporter.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Op is the operation that reported it, e.g. "FilterMap".
	Op string
	// Argument is the 1-based position of the offending argument, 0 if none.
	Argument int
	// Type is the classified type of the offending value.
	Type string
	// Value is the rendered offending value.
	Value string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return unknownStr
	}
}

// Report files d under its severity.
func (d *Diagnostics) Report(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Reset drops everything collected so far.
func (d *Diagnostics) Reset() {
	d.Errors, d.Warnings, d.Infos = nil, nil, nil
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var merr *multierror.Error
	for _, e := range d.Errors {
		merr = multierror.Append(merr, errors.New(e.String()))
	}

	merr.ErrorFormat = func(errs []error) string {
		parts := make([]string, 0, len(errs))
		for _, err := range errs {
			parts = append(parts, err.Error())
		}
		return strings.Join(parts, "; ")
	}

	return merr.ErrorOrNil()
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Op != "" {
		prefix = append(prefix, d.Op)
	}

	if d.Argument > 0 {
		prefix = append(prefix, fmt.Sprintf("arg #%d", d.Argument))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Discard drops every diagnostic.
var Discard Reporter = discard{}

type multi []Reporter

func (m multi) Report(d Diagnostic) {
	for _, r := range m {
		r.Report(d)
	}
}

// Multi fans each diagnostic out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}

	return m
}
