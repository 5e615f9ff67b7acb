package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mathify_backend/internals/configs"
	attendanceModel "mathify_backend/internals/features/tutoring/attendance/model"
	batchModel "mathify_backend/internals/features/tutoring/batches/model"
	feeModel "mathify_backend/internals/features/tutoring/fees/model"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
	authModel "mathify_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=mathify&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // keeps PgBouncer transaction pooling happy
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	DB = db
	log.Println("DB connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate() {
	if err := DB.AutoMigrate(
		&batchModel.BatchModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceModel{},
		&feeModel.FeeModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

// EnsureIndexes creates the constraints GORM tags cannot express.
// The partial unique index is the hard guarantee behind the
// one-open-session-per-student-per-day rule; the advisory lock taken
// by the attendance transaction is the polite version of the same rule.
func EnsureIndexes() {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_attendances_open_per_day
			ON attendances (attendance_student_id, attendance_date)
			WHERE attendance_end_time IS NULL AND attendance_deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_attendances_student_date
			ON attendances (attendance_student_id, attendance_date)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_student_month
			ON fees (fee_student_id, fee_billing_month)`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Printf("ensure index err: %v", err)
		}
	}
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
