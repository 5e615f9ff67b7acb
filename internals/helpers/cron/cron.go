// file: internals/helpers/cron/cron.go
package cron

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	billing "mathify_backend/internals/features/tutoring/billing/service"
	invoiceService "mathify_backend/internals/features/tutoring/invoices/service"
	"mathify_backend/internals/helpers/mailer"
)

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// ── ENTRYPOINT: called from main.go
//
// Two jobs share one cron runner:
//   - monthly invoice dispatch, default 09:00 on the 1st, for the month
//     that just ended
//   - daily reaper hard-deleting soft-deleted rows past retention
func Start(db *gorm.DB) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	invoiceSchedule := getEnvOrDefault("CRON_INVOICE_SCHEDULE", "0 9 1 * *")
	dispatcher := invoiceService.NewDispatcher(db, mailer.NewFromEnv())

	if _, err := c.AddFunc(invoiceSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		periodKey := billing.PeriodKeyFor(time.Now().AddDate(0, -1, 0))
		sent, err := dispatcher.DispatchMonth(ctx, periodKey)
		if err != nil {
			log.Printf("[INVOICE-CRON] dispatch %s: %v", periodKey, err)
			return
		}
		log.Printf("[INVOICE-CRON] period=%s sent=%d", periodKey, sent)
	}); err != nil {
		log.Fatalf("[INVOICE-CRON] add cron failed: %v", err)
	}

	reaperSchedule := getEnvOrDefault("CRON_REAPER_SCHEDULE", "15 2 * * *")
	if _, err := c.AddFunc(reaperSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		retention := time.Duration(getEnvInt("RETENTION_DAYS", 30)) * 24 * time.Hour
		if err := runDBReaper(ctx, db, retention); err != nil {
			log.Printf("[DB-REAPER] error: %v", err)
		}
	}); err != nil {
		log.Fatalf("[DB-REAPER] add cron failed: %v", err)
	}

	log.Printf("[CRON] started invoice=%q reaper=%q", invoiceSchedule, reaperSchedule)
	c.Start()
}

// ── hard-delete every soft-deleted row older than the cutoff
func runDBReaper(ctx context.Context, db *gorm.DB, retention time.Duration) error {
	if db == nil {
		return nil
	}
	cutoff := time.Now().Add(-retention)

	type target struct{ Table, Col string }
	targets := []target{
		{Table: "attendances", Col: "attendance_deleted_at"},
		{Table: "students", Col: "student_deleted_at"},
		{Table: "batches", Col: "batch_deleted_at"},
		{Table: "fees", Col: "fee_deleted_at"},
		{Table: "token_blacklist", Col: "deleted_at"},
	}

	totalDeleted := 0
	for _, t := range targets {
		res := db.WithContext(ctx).Exec(
			`DELETE FROM `+t.Table+` WHERE `+t.Col+` IS NOT NULL AND `+t.Col+` < ?`,
			cutoff,
		)
		if err := res.Error; err != nil {
			log.Printf("[DB-REAPER] %s: delete error: %v", t.Table, err)
			continue
		}
		ra := res.RowsAffected
		totalDeleted += int(ra)
		if ra > 0 {
			log.Printf("[DB-REAPER] %s: hard-deleted %d rows older than %s", t.Table, ra, cutoff.Format(time.RFC3339))
		}
	}
	if totalDeleted == 0 {
		log.Printf("[DB-REAPER] nothing to delete (cutoff=%s)", cutoff.Format(time.RFC3339))
	}
	return nil
}
