package postgresql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/schema"
)

// Raw queries run through bun's formatter, which substitutes ? placeholders
// into the SQL before it reaches the driver. $n placeholders are left
// verbatim and their args dropped, so raw repository SQL must use ?.
func TestFormatterBindsQuestionPlaceholders(t *testing.T) {
	fmter := schema.NewFormatter(pgdialect.New())

	got := fmter.FormatQuery(
		`SELECT id FROM leaves WHERE user_id = ? AND start_date <= ? AND end_date >= ?`,
		7, "2026-09-30", "2026-09-01")

	require.NotContains(t, got, "?")
	assert.Contains(t, got, "user_id = 7")
	assert.Contains(t, got, "start_date <= '2026-09-30'")
	assert.Contains(t, got, "end_date >= '2026-09-01'")
}

func TestFormatterRepeatsArgsPerPlaceholder(t *testing.T) {
	fmter := schema.NewFormatter(pgdialect.New())

	// A value reused in several positions is passed once per placeholder.
	got := fmter.FormatQuery(
		`SELECT
			(SELECT COUNT(id) FROM attendance WHERE work_day = ?) AS present,
			(SELECT COUNT(id) FROM leaves WHERE start_date <= ? AND end_date >= ?) AS on_leave`,
		"2026-09-01", "2026-09-01", "2026-09-01")

	require.NotContains(t, got, "?")
	assert.Equal(t, 3, strings.Count(got, "'2026-09-01'"))
}

func TestFormatterIgnoresDollarPlaceholders(t *testing.T) {
	fmter := schema.NewFormatter(pgdialect.New())

	got := fmter.FormatQuery(`SELECT id FROM users WHERE id = $1`, 7)

	assert.Contains(t, got, "$1")
	assert.NotContains(t, got, "7")
}
