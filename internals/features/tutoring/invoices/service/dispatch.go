// file: internals/features/tutoring/invoices/service/dispatch.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"mathify_backend/internals/configs"
	"mathify_backend/internals/features/tutoring/billing/repository"
	billing "mathify_backend/internals/features/tutoring/billing/service"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
	"mathify_backend/internals/helpers/mailer"
)

// Dispatcher mails monthly invoices to every active student.
type Dispatcher struct {
	DB   *gorm.DB
	Agg  *billing.Aggregator
	Mail mailer.Service
}

func NewDispatcher(db *gorm.DB, m mailer.Service) *Dispatcher {
	src := repository.NewGormSource(db)
	return &Dispatcher{
		DB:   db,
		Agg:  billing.NewAggregator(src, src, src),
		Mail: m,
	}
}

// DispatchMonth builds and mails one invoice per active student for
// periodKey ("YYYY-MM"). Months with zero hours are skipped, as are
// students without a configured rate (logged, not fatal). Returns the
// number of invoices sent.
func (d *Dispatcher) DispatchMonth(ctx context.Context, periodKey string) (int, error) {
	if _, _, err := billing.PeriodWindow(periodKey); err != nil {
		return 0, err
	}

	var students []studentModel.StudentModel
	if err := d.DB.WithContext(ctx).
		Where("student_is_active = ?", true).
		Order("student_registration_number ASC").
		Find(&students).Error; err != nil {
		return 0, err
	}

	sent := 0
	report := make([]RunSummaryLine, 0, len(students))
	for _, s := range students {
		line := RunSummaryLine{
			StudentName:        s.StudentName,
			RegistrationNumber: s.StudentRegistrationNumber,
			Hours:              "0.00",
		}
		period, err := d.Agg.Summarize(ctx, s.StudentID, periodKey)
		if err != nil {
			if errors.Is(err, billing.ErrMissingRate) {
				log.Printf("[INVOICE] skip %s: no hourly rate configured", s.StudentEmail)
				line.Outcome = "skipped: no rate"
			} else {
				log.Printf("[INVOICE] summarize %s: %v", s.StudentEmail, err)
				line.Outcome = "failed: summary"
			}
			report = append(report, line)
			continue
		}
		line.Hours = period.TotalHours.StringFixed(2)
		line.AmountDue = period.AmountDue
		if period.TotalHours.IsZero() {
			line.Outcome = "skipped: no hours"
			report = append(report, line)
			continue
		}

		pdfBytes, err := BuildInvoicePDF(InvoiceData{Student: s, Period: period})
		if err != nil {
			log.Printf("[INVOICE] pdf %s: %v", s.StudentEmail, err)
			line.Outcome = "failed: pdf"
			report = append(report, line)
			continue
		}

		number := InvoiceNumber(s.StudentRegistrationNumber, periodKey)
		m := mailer.Mail{
			To:        s.StudentEmail,
			ToName:    s.StudentName,
			Subject:   fmt.Sprintf("Mathify invoice %s — %s", number, periodLabel(periodKey)),
			PlainText: invoiceBody(s, period),
			Attachments: []mailer.Attachment{{
				Filename:    number + ".pdf",
				ContentType: "application/pdf",
				Data:        pdfBytes,
			}},
		}
		if err := d.Mail.Send(ctx, m); err != nil {
			log.Printf("[INVOICE] mail %s: %v", s.StudentEmail, err)
			line.Outcome = "failed: mail"
			report = append(report, line)
			continue
		}
		sent++
		line.Outcome = "sent"
		report = append(report, line)
	}

	d.mailRunSummary(ctx, periodKey, sent, report)
	return sent, nil
}

// mailRunSummary sends the admin a per-run report. Best effort only:
// a failure here never fails the dispatch.
func (d *Dispatcher) mailRunSummary(ctx context.Context, periodKey string, sent int, report []RunSummaryLine) {
	if configs.AdminEmail == "" || len(report) == 0 {
		return
	}
	pdfBytes, err := BuildRunSummaryPDF(periodKey, report)
	if err != nil {
		log.Printf("[INVOICE] run summary pdf: %v", err)
		return
	}
	m := mailer.Mail{
		To:      configs.AdminEmail,
		ToName:  "Mathify Admin",
		Subject: fmt.Sprintf("Invoice run %s: %d of %d sent", periodLabel(periodKey), sent, len(report)),
		PlainText: fmt.Sprintf(
			"Invoice dispatch for %s finished.\nStudents processed: %d\nInvoices sent: %d\n\nThe attached report lists every outcome.",
			periodLabel(periodKey), len(report), sent,
		),
		Attachments: []mailer.Attachment{{
			Filename:    "invoice-run-" + periodKey + ".pdf",
			ContentType: "application/pdf",
			Data:        pdfBytes,
		}},
	}
	if err := d.Mail.Send(ctx, m); err != nil {
		log.Printf("[INVOICE] run summary mail: %v", err)
	}
}

func invoiceBody(s studentModel.StudentModel, p billing.BillingPeriod) string {
	status := "Payment is pending; kindly settle by the 10th."
	if p.Settled {
		status = "This invoice is already settled, thank you."
	}
	return fmt.Sprintf(
		"Dear %s,\n\nPlease find attached your tuition invoice for %s.\nHours: %s\nAmount due: Rs. %d\n\n%s\n\nMathify Tutoring",
		s.StudentName, periodLabel(p.PeriodKey), p.TotalHours.StringFixed(2), p.AmountDue, status,
	)
}
