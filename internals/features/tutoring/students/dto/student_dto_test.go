// file: internals/features/tutoring/students/dto/student_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathify_backend/internals/helpers/clock"
)

func TestValidateSchedule(t *testing.T) {
	ok := map[string]DayScheduleDTO{
		"Monday":   {From: "10:00", To: "11:30"},
		"thursday": {From: "16:15", To: "17:00"},
	}
	require.NoError(t, ValidateSchedule(ok))
	require.NoError(t, ValidateSchedule(nil))
}

func TestValidateScheduleRejectsUnknownDay(t *testing.T) {
	err := ValidateSchedule(map[string]DayScheduleDTO{
		"funday": {From: "10:00", To: "11:00"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "funday")
}

func TestValidateScheduleRejectsBadClock(t *testing.T) {
	err := ValidateSchedule(map[string]DayScheduleDTO{
		"monday": {From: "25:00", To: "11:00"},
	})
	assert.ErrorIs(t, err, clock.ErrFormat)
}

func TestValidateScheduleRejectsReversedSpan(t *testing.T) {
	err := ValidateSchedule(map[string]DayScheduleDTO{
		"monday": {From: "11:00", To: "10:00"},
	})
	assert.ErrorIs(t, err, clock.ErrOrder)
}

func TestScheduleToJSONMapLowercasesDays(t *testing.T) {
	m := ScheduleToJSONMap(map[string]DayScheduleDTO{
		"Monday": {From: "10:00", To: "11:30"},
	})
	require.Contains(t, m, "monday")
	entry, ok := m["monday"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "10:00", entry["from"])
	assert.Equal(t, "11:30", entry["to"])

	assert.Nil(t, ScheduleToJSONMap(nil))
}
