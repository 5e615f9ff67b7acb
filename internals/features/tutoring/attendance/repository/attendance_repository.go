// file: internals/features/tutoring/attendance/repository/attendance_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mathify_backend/internals/features/tutoring/attendance/model"
	"mathify_backend/internals/features/tutoring/attendance/service"
)

// LockStudentDay serializes the read-decide-write admission sequence for
// one (student, day) via a transaction-scoped advisory lock. Concurrent
// punches for the same student/day queue behind it; the partial unique
// index on open sessions backstops anything that slips through.
func LockStudentDay(tx *gorm.DB, studentID uuid.UUID, date time.Time) error {
	key := studentID.String() + "|" + date.Format("2006-01-02")
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

// SessionsForDay loads every live record of the student on the calendar
// day and projects it into the admission check's shape.
func SessionsForDay(tx *gorm.DB, studentID uuid.UUID, date time.Time) ([]service.Session, error) {
	var rows []model.AttendanceModel
	if err := tx.
		Where("attendance_student_id = ? AND attendance_date = ?", studentID, date).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	sessions := make([]service.Session, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, service.Session{
			ID:       r.AttendanceID,
			Interval: service.Interval{Start: r.AttendanceStartTime, End: r.AttendanceEndTime},
		})
	}
	return sessions, nil
}

func FindByID(db *gorm.DB, id uuid.UUID) (*model.AttendanceModel, error) {
	var row model.AttendanceModel
	if err := db.First(&row, "attendance_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
