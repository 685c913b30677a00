package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superdesk/deskconf"
	"github.com/superdesk/deskconf/report"
)

var testSource = deskconf.Source{Origin: deskconf.OriginFlag, Path: "superdesk.config.yaml"}

func TestNewFormatter(t *testing.T) {
	t.Run("json formatter", func(t *testing.T) {
		formatter := report.NewFormatter(true, false)
		_, ok := formatter.(*report.JSONFormatter)
		assert.True(t, ok)
	})

	t.Run("human formatter", func(t *testing.T) {
		formatter := report.NewFormatter(false, false)
		_, ok := formatter.(*report.HumanFormatter)
		assert.True(t, ok)
	})

	t.Run("human formatter quiet", func(t *testing.T) {
		formatter := report.NewFormatter(false, true)
		hf, ok := formatter.(*report.HumanFormatter)
		require.True(t, ok)
		assert.True(t, hf.Quiet)
	})
}

func TestNewValidationResult(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		result := report.NewValidationResult(testSource, nil)

		assert.True(t, result.Valid)
		assert.Empty(t, result.Violations)
		assert.NoError(t, result.Err)
		assert.Equal(t, "superdesk.config.yaml (flag)", result.Source)
	})

	t.Run("violations", func(t *testing.T) {
		err := fmt.Errorf("resolve: %w", errors.Join(
			&deskconf.FieldError{Path: "defaultRoute", Expected: "string", Got: "number 42"},
			&deskconf.FieldError{Path: "colour", Expected: "unrecognized key"},
		))

		result := report.NewValidationResult(testSource, err)

		assert.False(t, result.Valid)
		assert.NoError(t, result.Err)
		assert.Equal(t, []report.Violation{
			{Path: "defaultRoute", Expected: "string", Got: "number 42"},
			{Path: "colour", Expected: "unrecognized key"},
		}, result.Violations)
	})

	t.Run("other error", func(t *testing.T) {
		err := fmt.Errorf("%w: config file missing.yaml", deskconf.ErrNotFound)

		result := report.NewValidationResult(testSource, err)

		assert.False(t, result.Valid)
		assert.Empty(t, result.Violations)
		assert.ErrorIs(t, result.Err, deskconf.ErrNotFound)
	})
}

func TestHumanFormatter_FormatValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		err := (&report.HumanFormatter{}).FormatValidation(&buf, report.ValidationResult{Source: "a.yaml (flag)", Valid: true})
		require.NoError(t, err)

		assert.Equal(t, "OK: a.yaml (flag)\n", buf.String())
	})

	t.Run("valid quiet", func(t *testing.T) {
		var buf bytes.Buffer
		err := (&report.HumanFormatter{Quiet: true}).FormatValidation(&buf, report.ValidationResult{Valid: true})
		require.NoError(t, err)

		assert.Empty(t, buf.String())
	})

	t.Run("violations", func(t *testing.T) {
		result := report.ValidationResult{
			Source: "a.yaml (flag)",
			Violations: []report.Violation{
				{Path: "defaultRoute", Expected: "string", Got: "number 42"},
				{Path: "colour", Expected: "unrecognized key"},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, (&report.HumanFormatter{Quiet: true}).FormatValidation(&buf, result))

		output := buf.String()
		assert.Contains(t, output, "Invalid: a.yaml (flag) (2 violation(s))")
		assert.Contains(t, output, "  defaultRoute: expected string, got number 42\n")
		assert.Contains(t, output, "  colour: unrecognized key\n")
	})

	t.Run("error", func(t *testing.T) {
		result := report.ValidationResult{Source: "a.yaml (flag)", Err: errors.New("boom")}

		var buf bytes.Buffer
		require.NoError(t, (&report.HumanFormatter{}).FormatValidation(&buf, result))

		assert.Equal(t, "Error: a.yaml (flag) - boom\n", buf.String())
	})
}

func TestHumanFormatter_FormatSchema(t *testing.T) {
	var buf bytes.Buffer
	err := (&report.HumanFormatter{}).FormatSchema(&buf, deskconf.DefaultSchema().Describe())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "PATH")
	assert.Contains(t, output, "MERGE")
	assert.Contains(t, output, "features.swimlane.defaultNumberOfColumns")
	assert.Contains(t, output, "PLANNING|EVENTS|COMBINED")
	assert.Contains(t, output, "required,startswith=/")
	assert.Contains(t, output, "key path(s)")
}

func TestHumanFormatter_FormatSchema_Quiet(t *testing.T) {
	keys := []deskconf.KeyInfo{{Path: "defaultRoute", Kind: "string"}}

	var buf bytes.Buffer
	require.NoError(t, (&report.HumanFormatter{Quiet: true}).FormatSchema(&buf, keys))

	assert.NotContains(t, buf.String(), "key path(s)")
	assert.Contains(t, buf.String(), "defaultRoute")
}

func TestHumanFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.HumanFormatter{}).FormatError(&buf, errors.New("test error")))

	assert.Equal(t, "Error: test error\n", buf.String())
}

func TestJSONFormatter_FormatValidation(t *testing.T) {
	t.Run("violations", func(t *testing.T) {
		result := report.ValidationResult{
			Source:     "a.yaml (flag)",
			Violations: []report.Violation{{Path: "apps[1]", Expected: "string", Got: "boolean true"}},
		}

		var buf bytes.Buffer
		require.NoError(t, (&report.JSONFormatter{}).FormatValidation(&buf, result))

		assert.JSONEq(t, `{
			"source": "a.yaml (flag)",
			"valid": false,
			"violations": [{"path": "apps[1]", "expected": "string", "got": "boolean true"}]
		}`, buf.String())
	})

	t.Run("error", func(t *testing.T) {
		result := report.ValidationResult{Source: "a.yaml (flag)", Err: errors.New("boom")}

		var buf bytes.Buffer
		require.NoError(t, (&report.JSONFormatter{}).FormatValidation(&buf, result))

		assert.JSONEq(t, `{"source": "a.yaml (flag)", "valid": false, "error": "boom"}`, buf.String())
	})
}

func TestJSONFormatter_FormatSchema(t *testing.T) {
	keys := deskconf.DefaultSchema().Describe()

	var buf bytes.Buffer
	require.NoError(t, (&report.JSONFormatter{}).FormatSchema(&buf, keys))

	var decoded []deskconf.KeyInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, keys, decoded)
}

func TestJSONFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.JSONFormatter{}).FormatError(&buf, errors.New("test error")))

	assert.JSONEq(t, `{"error":"test error"}`, buf.String())
}
