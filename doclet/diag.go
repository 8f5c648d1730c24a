package doclet

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/aunkrig/antdoclet/decl"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one reported degradation: a skipped record, an unresolvable
// reference, or inconsistent metadata. Diagnostics never abort a run.
type Diagnostic struct {
	Severity Severity
	Pos      decl.Position
	Message  string
}

func (d Diagnostic) String() string {
	if d.Pos.IsZero() {
		return d.Severity.String() + ": " + d.Message
	}
	return d.Pos.String() + ": " + d.Severity.String() + ": " + d.Message
}

// Sink receives diagnostics. Implementations must be safe for repeated calls;
// the doclet never inspects what a sink does with them.
type Sink interface {
	Report(d Diagnostic)
}

// LogSink forwards diagnostics to a commonlog logger.
type LogSink struct {
	log commonlog.Logger
}

func NewLogSink(name string) *LogSink {
	return &LogSink{log: commonlog.GetLogger(name)}
}

func (s *LogSink) Report(d Diagnostic) {
	message := d.Message
	if !d.Pos.IsZero() {
		message = d.Pos.String() + ": " + message
	}
	if d.Severity == SeverityError {
		s.log.Error(message)
	} else {
		s.log.Warning(message)
	}
}

// RecordingSink collects diagnostics in order, for tests and summaries.
type RecordingSink struct {
	Diagnostics []Diagnostic
}

func (s *RecordingSink) Report(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

func (s *RecordingSink) Errors() []Diagnostic   { return s.filter(SeverityError) }
func (s *RecordingSink) Warnings() []Diagnostic { return s.filter(SeverityWarning) }

func (s *RecordingSink) filter(severity Severity) []Diagnostic {
	var result []Diagnostic
	for _, d := range s.Diagnostics {
		if d.Severity == severity {
			result = append(result, d)
		}
	}
	return result
}

func errorf(sink Sink, pos decl.Position, format string, args ...any) {
	sink.Report(Diagnostic{Severity: SeverityError, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func warnf(sink Sink, pos decl.Position, format string, args ...any) {
	sink.Report(Diagnostic{Severity: SeverityWarning, Pos: pos, Message: fmt.Sprintf(format, args...)})
}
