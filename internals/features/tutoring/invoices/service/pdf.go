// file: internals/features/tutoring/invoices/service/pdf.go
package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	billing "mathify_backend/internals/features/tutoring/billing/service"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
)

type InvoiceData struct {
	Student studentModel.StudentModel
	Period  billing.BillingPeriod
}

// InvoiceNumber: INV-<registration number>-<YYYYMM>, e.g. INV-0042-202503.
func InvoiceNumber(registrationNumber int, periodKey string) string {
	return fmt.Sprintf("INV-%04d-%s", registrationNumber, strings.ReplaceAll(periodKey, "-", ""))
}

func periodLabel(periodKey string) string {
	t, err := time.Parse("2006-01", periodKey)
	if err != nil {
		return periodKey
	}
	return t.Format("January 2006")
}

// BuildInvoicePDF renders a one-page invoice for a single billing month.
func BuildInvoicePDF(d InvoiceData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(InvoiceNumber(d.Student.StudentRegistrationNumber, d.Period.PeriodKey), false)
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Mathify Tutoring", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Monthly tuition invoice", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Invoice "+InvoiceNumber(d.Student.StudentRegistrationNumber, d.Period.PeriodKey), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Billing period: "+periodLabel(d.Period.PeriodKey), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Issued: "+time.Now().Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// student block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Billed to", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, d.Student.StudentName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, d.Student.StudentEmail, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Registration no. %04d", d.Student.StudentRegistrationNumber), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// line table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(70, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Rate / hour", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(70, 8, "Tuition, "+periodLabel(d.Period.PeriodKey), "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, d.Period.TotalHours.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Rs. "+d.Period.HourlyRate.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("Rs. %d", d.Period.AmountDue), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(145, 8, "Total due", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("Rs. %d", d.Period.AmountDue), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	// settlement status
	pdf.SetFont("Helvetica", "", 10)
	if d.Period.Settled {
		status := "PAID"
		if d.Period.PaymentMethod != nil {
			status += " via " + strings.ToUpper(*d.Period.PaymentMethod)
		}
		if d.Period.PaidOn != nil {
			status += " on " + d.Period.PaidOn.Format("02 Jan 2006")
		}
		pdf.CellFormat(0, 6, status, "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "Payment pending. Kindly settle by the 10th of the month.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RunSummaryLine is one student's row in the monthly dispatch report.
type RunSummaryLine struct {
	StudentName        string
	RegistrationNumber int
	Hours              string
	AmountDue          int64
	Outcome            string
}

// BuildRunSummaryPDF renders the admin report for one invoice dispatch
// run: every active student, what was billed, and what happened.
func BuildRunSummaryPDF(periodKey string, lines []RunSummaryLine) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice run "+periodKey, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Mathify Tutoring", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Invoice dispatch report, "+periodLabel(periodKey), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+time.Now().Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(20, 8, "Reg.", "1", 0, "L", true, 0, "")
	pdf.CellFormat(65, 8, "Student", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Outcome", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.CellFormat(20, 8, fmt.Sprintf("%04d", l.RegistrationNumber), "1", 0, "L", false, 0, "")
		pdf.CellFormat(65, 8, l.StudentName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, l.Hours, "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("Rs. %d", l.AmountDue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, l.Outcome, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render run summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildStatementPDF renders the full billing history for one student,
// newest month first.
func BuildStatementPDF(s studentModel.StudentModel, periods []billing.BillingPeriod) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Statement "+s.StudentName, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Mathify Tutoring", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Billing statement for "+s.StudentName, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(45, 8, "Period", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(65, 8, "Status", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range periods {
		status := "pending"
		if p.Settled {
			status = "paid"
			if p.PaymentMethod != nil {
				status += " (" + *p.PaymentMethod + ")"
			}
		}
		pdf.CellFormat(45, 8, periodLabel(p.PeriodKey), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, p.TotalHours.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("Rs. %d", p.AmountDue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(65, 8, status, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statement pdf: %w", err)
	}
	return buf.Bytes(), nil
}
