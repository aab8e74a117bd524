package diagnostic

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

var valueFormat = spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                3,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Describe renders a value compactly for a diagnostic message.
func Describe(value any) string {
	return valueFormat.Sprintf("%v", value)
}

// LogReporter writes diagnostics to a logrus logger.
type LogReporter struct {
	logger logrus.FieldLogger
}

// NewLogReporter wraps logger. A nil logger means the logrus standard logger.
func NewLogReporter(logger logrus.FieldLogger) *LogReporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(d Diagnostic) {
	fields := logrus.Fields{"code": d.Code}
	if d.Op != "" {
		fields["op"] = d.Op
	}
	if d.Argument > 0 {
		fields["argument"] = d.Argument
	}
	if d.Type != "" {
		fields["type"] = d.Type
	}
	if d.Value != "" {
		fields["value"] = d.Value
	}

	entry := r.logger.WithFields(fields)
	switch d.Severity {
	case DiagnosticError:
		entry.Error(d.Message)
	case DiagnosticWarning:
		entry.Warn(d.Message)
	default:
		entry.Info(d.Message)
	}
}
