package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	root := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, "budget_backend", root.Use)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "report", "token"})
}

const exportJSON = `[
  {"kind":"expense","title":"Lunch","category":"Food","amount":"100","occurredAt":"2024-03-15T09:00:00Z"},
  {"kind":"income","title":"March","category":"Salary","amount":"4000","occurredAt":"2024-03-12T10:00:00Z"},
  {"kind":"expense","title":"Old rent","category":"Rent","amount":"900","occurredAt":"2024-02-20T10:00:00Z"}
]`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunReport(t *testing.T) {
	opts := reportOptions{
		file:      writeExport(t, exportJSON),
		query:     dto.ReportQuery{Period: "monthly", Anchor: "2024-03-15", BudgetCeiling: "20000", Days: 7},
		weekStart: "sunday",
		threshold: "50",
	}

	var out bytes.Buffer
	require.NoError(t, runReport(&out, opts, time.Now()))

	report := out.String()
	assert.Contains(t, report, "monthly")
	assert.Contains(t, report, "2024-03-01 .. 2024-03-15")
	assert.Contains(t, report, "4000.00")
	assert.Contains(t, report, "3900.00")
	assert.Contains(t, report, "0.5% used")
	assert.Contains(t, report, string(domain.AdvisoryLooksGood))
	assert.NotContains(t, report, "Rent")
}

func TestRunReport_Errors(t *testing.T) {
	base := reportOptions{
		query:     dto.ReportQuery{Period: "monthly", BudgetCeiling: "20000"},
		weekStart: "sunday",
		threshold: "50",
	}

	t.Run("missing file", func(t *testing.T) {
		opts := base
		opts.file = filepath.Join(t.TempDir(), "missing.json")
		assert.Error(t, runReport(io.Discard, opts, time.Now()))
	})

	t.Run("malformed json", func(t *testing.T) {
		opts := base
		opts.file = writeExport(t, `{"kind":`)
		assert.ErrorContains(t, runReport(io.Discard, opts, time.Now()), "decode transactions")
	})

	t.Run("unknown kind", func(t *testing.T) {
		opts := base
		opts.file = writeExport(t, `[{"kind":"transfer","category":"Food","amount":"1","occurredAt":"2024-03-15T09:00:00Z"}]`)
		assert.ErrorIs(t, runReport(io.Discard, opts, time.Now()), apperrors.ErrValidation)
	})

	t.Run("zero ceiling", func(t *testing.T) {
		opts := base
		opts.file = writeExport(t, exportJSON)
		opts.query.BudgetCeiling = "0"
		assert.ErrorIs(t, runReport(io.Discard, opts, time.Now()), apperrors.ErrInvalidConfig)
	})

	t.Run("bad week start", func(t *testing.T) {
		opts := base
		opts.file = writeExport(t, exportJSON)
		opts.weekStart = "someday"
		assert.ErrorIs(t, runReport(io.Discard, opts, time.Now()), apperrors.ErrInvalidConfig)
	})
}
