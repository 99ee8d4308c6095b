package schedule

import (
	"net/http"
	"testing"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanAssignment(t *testing.T) {
	tests := []struct {
		name       string
		item       AssignmentItem
		wantAction assignAction
		wantStatus string
	}{
		{
			name:       "shift defaults to scheduled",
			item:       AssignmentItem{UserID: intPtr(1), ShiftID: intPtr(3)},
			wantAction: assignShift,
			wantStatus: entity.ScheduleScheduled,
		},
		{
			name:       "shift keeps explicit status",
			item:       AssignmentItem{UserID: intPtr(1), ShiftID: intPtr(3), Status: strPtr(entity.ScheduleScheduled)},
			wantAction: assignShift,
			wantStatus: entity.ScheduleScheduled,
		},
		{
			name:       "bare off status",
			item:       AssignmentItem{UserID: intPtr(1), Status: strPtr(entity.ScheduleOff)},
			wantAction: assignStatus,
			wantStatus: entity.ScheduleOff,
		},
		{
			name:       "bare holiday status",
			item:       AssignmentItem{UserID: intPtr(1), Status: strPtr(entity.ScheduleHoliday)},
			wantAction: assignStatus,
			wantStatus: entity.ScheduleHoliday,
		},
		{
			name:       "empty item clears the day",
			item:       AssignmentItem{UserID: intPtr(1)},
			wantAction: assignClear,
		},
		{
			// scheduled without a shift has nothing to schedule.
			name:       "bare scheduled status clears the day",
			item:       AssignmentItem{UserID: intPtr(1), Status: strPtr(entity.ScheduleScheduled)},
			wantAction: assignClear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, status, err := planAssignment(tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestPlanAssignmentRequiresUserID(t *testing.T) {
	_, _, err := planAssignment(AssignmentItem{ShiftID: intPtr(3)})
	require.Error(t, err)

	var webErr *web.Error
	require.True(t, errors.As(err, &webErr))
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
}

// A bad item anywhere in the batch surfaces as an error from the plan step,
// which aborts the surrounding transaction before any pair is written.
func TestPlanAssignmentRejectsMixedBatch(t *testing.T) {
	batch := []AssignmentItem{
		{UserID: intPtr(1), ShiftID: intPtr(3)},
		{ShiftID: intPtr(3)},
		{UserID: intPtr(2), Status: strPtr(entity.ScheduleOff)},
	}

	var failed bool
	for _, item := range batch {
		if _, _, err := planAssignment(item); err != nil {
			failed = true
			break
		}
	}

	assert.True(t, failed)
}
