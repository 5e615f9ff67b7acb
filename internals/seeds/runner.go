package seeds

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"mathify_backend/internals/configs"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
)

// RunAllSeeds makes sure the configured admin account exists, so the
// first Google login after a fresh deploy works.
func RunAllSeeds(db *gorm.DB) {
	seedAdmin(db)
}

func seedAdmin(db *gorm.DB) {
	email := strings.ToLower(strings.TrimSpace(configs.AdminEmail))
	if email == "" {
		log.Println("[SEED] ADMIN_EMAIL not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("[SEED] admin lookup failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := studentModel.StudentModel{
		StudentName:               "Administrator",
		StudentEmail:              email,
		StudentPhone:              "-",
		StudentRegistrationNumber: 1,
		StudentIsAdmin:            true,
		StudentIsActive:           true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] admin create failed: %v", err)
		return
	}
	log.Printf("[SEED] admin account created for %s", email)
}
