package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/superdesk/deskconf"
)

// Violation is one schema violation in a validation result.
type Violation struct {
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Got      string `json:"got,omitempty"`
}

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	Source     string      `json:"source"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
	Err        error       `json:"-"`
}

// NewValidationResult builds a result from the error returned by Resolve.
// Errors that are not schema violations are kept in Err.
func NewValidationResult(src deskconf.Source, err error) ValidationResult {
	result := ValidationResult{Source: src.String(), Valid: err == nil}
	if err == nil {
		return result
	}

	fieldErrs := deskconf.FieldErrors(err)
	if len(fieldErrs) == 0 || !errors.Is(err, deskconf.ErrSchemaViolation) {
		result.Err = err
		return result
	}

	result.Violations = make([]Violation, len(fieldErrs))
	for i, fe := range fieldErrs {
		result.Violations[i] = Violation{Path: fe.Path, Expected: fe.Expected, Got: fe.Got}
	}
	return result
}

// Formatter formats command results for output.
type Formatter interface {
	FormatValidation(w io.Writer, result ValidationResult) error
	FormatSchema(w io.Writer, keys []deskconf.KeyInfo) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatValidation formats a validation result as human-readable text.
func (f *HumanFormatter) FormatValidation(w io.Writer, result ValidationResult) error {
	switch {
	case result.Valid:
		if !f.Quiet {
			_, _ = fmt.Fprintf(w, "OK: %s\n", result.Source)
		}
	case result.Err != nil:
		_, _ = fmt.Fprintf(w, "Error: %s - %v\n", result.Source, result.Err)
	default:
		_, _ = fmt.Fprintf(w, "Invalid: %s (%d violation(s))\n", result.Source, len(result.Violations))
		for _, v := range result.Violations {
			if v.Got == "" {
				_, _ = fmt.Fprintf(w, "  %s: %s\n", v.Path, v.Expected)
				continue
			}
			_, _ = fmt.Fprintf(w, "  %s: expected %s, got %s\n", v.Path, v.Expected, v.Got)
		}
	}
	return nil
}

// FormatSchema formats the schema as a table of key paths.
func (f *HumanFormatter) FormatSchema(w io.Writer, keys []deskconf.KeyInfo) error {
	// Calculate column widths
	maxPathLen := 4 // "PATH"
	maxKindLen := 4 // "KIND"
	for i := range keys {
		if len(keys[i].Path) > maxPathLen {
			maxPathLen = len(keys[i].Path)
		}
		if len(keys[i].Kind) > maxKindLen {
			maxKindLen = len(keys[i].Kind)
		}
	}
	if maxPathLen > 60 {
		maxPathLen = 60
	}

	// Print header
	_, _ = fmt.Fprintf(w, "%-*s  %-*s  %-7s  %s\n", maxPathLen, "PATH", maxKindLen, "KIND", "MERGE", "CONSTRAINT")
	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
		strings.Repeat("-", maxPathLen), strings.Repeat("-", maxKindLen), strings.Repeat("-", 7), strings.Repeat("-", 10))

	for i := range keys {
		k := &keys[i]
		path := k.Path
		if len(path) > maxPathLen {
			path = path[:maxPathLen-3] + "..."
		}
		merge := k.Merge
		if merge == "" {
			merge = "-"
		}
		_, _ = fmt.Fprintf(w, "%-*s  %-*s  %-7s  %s\n", maxPathLen, path, maxKindLen, k.Kind, merge, constraint(k))
	}

	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "\n%d key path(s)\n", len(keys))
	}
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatValidation formats a validation result as JSON.
func (f *JSONFormatter) FormatValidation(w io.Writer, result ValidationResult) error {
	output := struct {
		ValidationResult
		Error string `json:"error,omitempty"`
	}{ValidationResult: result}
	if result.Err != nil {
		output.Error = result.Err.Error()
	}
	return writeJSON(w, output)
}

// FormatSchema formats the schema as JSON.
func (f *JSONFormatter) FormatSchema(w io.Writer, keys []deskconf.KeyInfo) error {
	return writeJSON(w, keys)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return writeJSON(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// constraint renders a key's rule or enum members for the table.
func constraint(k *deskconf.KeyInfo) string {
	switch {
	case len(k.Enum) > 0:
		return strings.Join(k.Enum, "|")
	case k.Rule != "":
		return k.Rule
	default:
		return "-"
	}
}
