package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestHistoryQuery(t *testing.T) {
	query, args := historyQuery(7, HistoryFilter{})

	assert.NotContains(t, query, "l.status =")
	assert.NotContains(t, query, "date_part")
	assert.Equal(t, []interface{}{7}, args)
}

func TestHistoryQueryFiltersByYear(t *testing.T) {
	query, args := historyQuery(7, HistoryFilter{Year: intPtr(2026)})

	assert.Contains(t, query, "date_part('year', l.start_date) = ?")
	assert.Equal(t, []interface{}{7, 2026}, args)
}

func TestHistoryQueryFiltersByStatus(t *testing.T) {
	query, args := historyQuery(7, HistoryFilter{Status: strPtr("approved")})

	require.Contains(t, query, "l.status = ?")
	assert.Equal(t, []interface{}{7, "approved"}, args)
}

func TestHistoryQueryCombinesFilters(t *testing.T) {
	query, args := historyQuery(7, HistoryFilter{Year: intPtr(2026), Status: strPtr("pending")})

	require.Contains(t, query, "date_part('year', l.start_date) = ?")
	require.Contains(t, query, "l.status = ?")
	assert.Equal(t, []interface{}{7, 2026, "pending"}, args)
}
