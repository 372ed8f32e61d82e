package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rmsexport/internal/common"
)

// Codes used across the resolver and exporter.
const (
	CodeSelectorMissing = "selector_missing"
	CodeTableMissing    = "table_missing"
	CodeSurfaceMissing  = "surface_missing"
	CodePropertyMissing = "property_missing"
	CodeNoVolumes       = "no_volumes"
	CodeMissingSection  = "missing_section"
	CodeMissingField    = "missing_field"
	CodeInvalidValue    = "invalid_value"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (s Severity) level() zapcore.Level {
	switch s {
	case SeverityError:
		return zapcore.ErrorLevel
	case SeverityWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// Diagnostic is one finding about a job or an export run.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	// Section is the job section, or for export findings the folder or
	// grid the object was looked up in.
	Section string
	// Item is the selector, field or object name.
	Item string
}

// String formats the diagnostic as "[Section] Item: [code] message".
func (d Diagnostic) String() string {
	head := d.Item
	if d.Section != "" {
		head = strings.TrimSpace("[" + d.Section + "] " + d.Item)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if head == "" {
		return msg
	}

	return head + ": " + msg
}

// Diagnostics collects findings in recording order.
type Diagnostics struct {
	items []Diagnostic
}

// Add records a diagnostic.
func (d *Diagnostics) Add(sev Severity, code, message, section, item string) {
	d.items = append(d.items, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Section:  section,
		Item:     item,
	})
}

// AddError records a structural problem.
func (d *Diagnostics) AddError(code, message, section, item string) {
	d.Add(SeverityError, code, message, section, item)
}

// AddWarning records something the job refers to but the project lacks.
func (d *Diagnostics) AddWarning(code, message, section, item string) {
	d.Add(SeverityWarning, code, message, section, item)
}

// AddInfo records a note.
func (d *Diagnostics) AddInfo(code, message, section, item string) {
	d.Add(SeverityInfo, code, message, section, item)
}

// All returns every diagnostic in recording order.
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

func (d *Diagnostics) bySeverity(sev Severity) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}

	return out
}

// Errors returns the error diagnostics.
func (d *Diagnostics) Errors() []Diagnostic { return d.bySeverity(SeverityError) }

// Warnings returns the warning diagnostics.
func (d *Diagnostics) Warnings() []Diagnostic { return d.bySeverity(SeverityWarning) }

// Infos returns the info diagnostics.
func (d *Diagnostics) Infos() []Diagnostic { return d.bySeverity(SeverityInfo) }

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}

	return false
}

// HasWarning reports whether a warning with the given code was recorded.
func (d *Diagnostics) HasWarning(code string) bool {
	for _, item := range d.items {
		if item.Severity == SeverityWarning && item.Code == code {
			return true
		}
	}

	return false
}

// Merge appends the findings of an earlier stage, such as plan
// resolution, to d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.items = append(d.items, other.items...)
}

// Log writes every diagnostic to log at the level of its severity.
func (d *Diagnostics) Log(log *zap.Logger) {
	for _, item := range d.items {
		log.Log(item.Severity.level(), item.Message,
			zap.String("code", item.Code),
			zap.String("section", item.Section),
			zap.String("item", item.Item),
		)
	}
}

// Error joins the error diagnostics into one error, or returns nil.
func (d *Diagnostics) Error() error {
	var errs []error

	for _, item := range d.Errors() {
		errs = append(errs, errors.New(item.String()))
	}

	return errors.Join(errs...)
}
