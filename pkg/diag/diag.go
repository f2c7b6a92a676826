// Package diag defines the structured diagnostics collected by the DEF
// parser and the ECO analyzer. Anomalies in the input are never fatal;
// each stage records what it skipped or fell back on and keeps going, and
// callers decide how to surface the collected records.
package diag

import (
	"fmt"
	"strings"
)

// Code categorizes a diagnostic.
type Code string

const (
	// CodeMissingSection indicates a COMPONENTS or NETS section was absent.
	// The section is treated as empty.
	CodeMissingSection Code = "MISSING_SECTION"

	// CodeMalformedRecord indicates a record that did not match the
	// expected shape. The record is skipped.
	CodeMalformedRecord Code = "MALFORMED_RECORD"

	// CodeUnresolvableBuffer indicates an inserted buffer with no
	// recognizable output net. The candidate is dropped.
	CodeUnresolvableBuffer Code = "UNRESOLVABLE_BUFFER"

	// CodeDanglingBuffer indicates an inserted buffer whose output net
	// drives no other pins. The candidate is dropped.
	CodeDanglingBuffer Code = "DANGLING_BUFFER"

	// CodeDependencyCycle indicates the orderer could not make progress
	// and flushed the remaining commands in lexical order.
	CodeDependencyCycle Code = "DEPENDENCY_CYCLE"
)

// Diagnostic is one recoverable anomaly observed during an analysis run.
type Diagnostic struct {
	// Code identifies the anomaly category.
	Code Code

	// Subject names the affected entity: a section name, a record prefix,
	// a buffer instance, or a comma-joined stuck set.
	Subject string

	// Message is a human-readable description.
	Message string
}

func (d Diagnostic) String() string {
	if d.Subject != "" {
		return fmt.Sprintf("%s %s: %s", d.Code, d.Subject, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// Missingf builds a CodeMissingSection diagnostic for the named section.
func Missingf(section, format string, args ...any) Diagnostic {
	return Diagnostic{Code: CodeMissingSection, Subject: section, Message: fmt.Sprintf(format, args...)}
}

// Malformedf builds a CodeMalformedRecord diagnostic. The subject is a
// truncated copy of the offending record so logs stay readable.
func Malformedf(record, format string, args ...any) Diagnostic {
	const maxSubject = 48
	subject := record
	if len(subject) > maxSubject {
		subject = subject[:maxSubject] + "..."
	}
	return Diagnostic{Code: CodeMalformedRecord, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// HasCode reports whether any diagnostic in ds carries the given code.
func HasCode(ds []Diagnostic, code Code) bool {
	for _, d := range ds {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Join renders a diagnostic list one per line, for verbose CLI output.
func Join(ds []Diagnostic) string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
