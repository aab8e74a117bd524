package engine

import (
	"fmt"

	"github.com/pkg/errors"

	"polyiter/diagnostic"
	"polyiter/kind"
)

var (
	ErrCallbackNotFunction = errors.New("callback is not a function")
	ErrBadBase             = errors.New("base is not a writable mapping")
	ErrMalformedPair       = errors.New("callback result is not a key/value pair")
	ErrKeyType             = errors.New("pair does not fit the base mapping")
	ErrBadSequence         = errors.New("invalid arithmetic sequence arguments")
)

// fail reports one usage error and returns it wrapped with the message.
func (e *Engine) fail(cause error, d diagnostic.Diagnostic) error {
	d.Severity = diagnostic.DiagnosticError
	e.reporter.Report(d)

	return errors.Wrapf(cause, "%s: %s", d.Op, d.Message)
}

// warn reports a diagnostic that does not fail the call.
func (e *Engine) warn(d diagnostic.Diagnostic) {
	d.Severity = diagnostic.DiagnosticWarning
	e.reporter.Report(d)
}

// checkFunc validates the resolved callback argument before any traversal work.
func (e *Engine) checkFunc(op string, pos int, fn any) error {
	tag := kind.Classify(fn)
	if tag == kind.TagFunction {
		return nil
	}

	return e.fail(ErrCallbackNotFunction, diagnostic.Diagnostic{
		Code:     diagnostic.CodeBadCallback,
		Message:  fmt.Sprintf("argument #%d must be a function but instead is %s", pos, tag),
		Op:       op,
		Argument: pos,
		Type:     tag.String(),
	})
}
