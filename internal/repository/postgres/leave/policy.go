package leave

import (
	"github.com/Azure/go-autorest/autorest/date"

	"hrm/backend/internal/pkg/dateutil"
)

// CountDays converts a requested leave span into a day count. Multi-day
// spans count whole calendar days inclusive. A single-day request carrying
// an hour figure at or under the policy threshold counts as half a day.
func (p Policy) CountDays(start, end date.Date, hours *float64) float64 {
	if dateutil.After(start, end) {
		return 0
	}

	days := float64(end.Sub(start.Time).Hours()/24) + 1

	if days == 1 && hours != nil && *hours > 0 && *hours <= float64(p.HalfDayMaxHours) {
		return 0.5
	}

	return days
}
