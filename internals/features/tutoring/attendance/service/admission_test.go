package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathify_backend/internals/helpers/clock"
)

func sessionAt(t *testing.T, start string, end *string) Session {
	t.Helper()
	i, err := NewInterval(start, end)
	require.NoError(t, err)
	return Session{ID: uuid.New(), Interval: i}
}

func str(s string) *string { return &s }

func TestAdmitEmptyDayAlwaysAdmits(t *testing.T) {
	assert.NoError(t, Admit(open(t, "14:00"), nil, uuid.Nil))
	assert.NoError(t, Admit(closed(t, "09:00", "10:00"), nil, uuid.Nil))
}

func TestAdmitAgainstOpenSession(t *testing.T) {
	running := sessionAt(t, "14:00", nil)
	day := []Session{running}

	// after the open start → rejected
	err := Admit(closed(t, "15:00", "15:30"), day, uuid.Nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.True(t, conflict.BlockingOpen)
	assert.Equal(t, "14:00", conflict.BlockingStart.String())

	// fully before → admitted
	assert.NoError(t, Admit(closed(t, "09:00", "10:00"), day, uuid.Nil))

	// touching the open start is rejected too (stricter rule)
	assert.Error(t, Admit(closed(t, "13:00", "14:00"), day, uuid.Nil))

	// straddling the open start
	assert.Error(t, Admit(closed(t, "13:30", "14:30"), day, uuid.Nil))
}

func TestAdmitSecondOpenSessionRejected(t *testing.T) {
	day := []Session{sessionAt(t, "14:00", nil)}

	for _, start := range []string{"08:00", "14:00", "16:00"} {
		err := Admit(open(t, start), day, uuid.Nil)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict, start)
		assert.True(t, conflict.BlockingOpen)
	}
}

func TestAdmitClosedAgainstClosed(t *testing.T) {
	day := []Session{sessionAt(t, "10:00", str("11:00"))}

	// genuine overlap
	assert.Error(t, Admit(closed(t, "10:30", "11:30"), day, uuid.Nil))
	assert.Error(t, Admit(closed(t, "09:30", "10:30"), day, uuid.Nil))
	assert.Error(t, Admit(closed(t, "10:15", "10:45"), day, uuid.Nil))
	assert.Error(t, Admit(closed(t, "09:00", "12:00"), day, uuid.Nil))

	// touching boundaries carry no overlap
	assert.NoError(t, Admit(closed(t, "09:00", "10:00"), day, uuid.Nil))
	assert.NoError(t, Admit(closed(t, "11:00", "12:00"), day, uuid.Nil))
}

func TestAdmitOpenCandidateInsideClosedSession(t *testing.T) {
	day := []Session{sessionAt(t, "10:00", str("11:00"))}

	assert.Error(t, Admit(open(t, "10:30"), day, uuid.Nil))
	assert.Error(t, Admit(open(t, "10:00"), day, uuid.Nil))
	// starting exactly at the closed end is fine (half-open)
	assert.NoError(t, Admit(open(t, "11:00"), day, uuid.Nil))
	assert.NoError(t, Admit(open(t, "09:00"), day, uuid.Nil))
}

func TestAdmitExcludesRecordBeingUpdated(t *testing.T) {
	running := sessionAt(t, "14:00", nil)
	other := sessionAt(t, "09:00", str("10:00"))
	day := []Session{running, other}

	// closing the running session itself: its own open row must not block
	assert.NoError(t, Admit(closed(t, "14:00", "15:30"), day, running.ID))

	// but the other rows still apply
	assert.Error(t, Admit(closed(t, "09:30", "15:30"), day, running.ID))
}

func TestConflictErrorMessageNamesBlockingStart(t *testing.T) {
	start, _ := clock.Parse("14:00")
	openErr := &ConflictError{BlockingStart: start, BlockingOpen: true}
	assert.Contains(t, openErr.Error(), "14:00")

	overlapErr := &ConflictError{BlockingStart: start}
	assert.Contains(t, overlapErr.Error(), "14:00")
}
