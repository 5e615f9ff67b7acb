// file: internals/features/tutoring/invoices/service/pdf_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billing "mathify_backend/internals/features/tutoring/billing/service"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
)

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-0042-202503", InvoiceNumber(42, "2025-03"))
	assert.Equal(t, "INV-0007-202412", InvoiceNumber(7, "2024-12"))
	assert.Equal(t, "INV-1234-202501", InvoiceNumber(1234, "2025-01"))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "March 2025", periodLabel("2025-03"))
	// malformed keys fall back to the raw string
	assert.Equal(t, "not-a-period", periodLabel("not-a-period"))
}

func testStudent() studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentName:               "Asha Verma",
		StudentEmail:              "asha@example.com",
		StudentRegistrationNumber: 42,
	}
}

func TestBuildInvoicePDF(t *testing.T) {
	paidOn := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)
	upi := "upi"
	period := billing.BillingPeriod{
		PeriodKey:     "2025-03",
		TotalHours:    decimal.RequireFromString("3.25"),
		HourlyRate:    decimal.NewFromInt(500),
		AmountDue:     1625,
		Settled:       true,
		PaymentMethod: &upi,
		PaidOn:        &paidOn,
	}

	out, err := BuildInvoicePDF(InvoiceData{Student: testStudent(), Period: period})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuildRunSummaryPDF(t *testing.T) {
	lines := []RunSummaryLine{
		{StudentName: "Asha Verma", RegistrationNumber: 42, Hours: "3.25", AmountDue: 1625, Outcome: "sent"},
		{StudentName: "Rohan Iyer", RegistrationNumber: 7, Hours: "0.00", Outcome: "skipped: no rate"},
	}

	out, err := BuildRunSummaryPDF("2025-03", lines)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuildStatementPDF(t *testing.T) {
	periods := []billing.BillingPeriod{
		{PeriodKey: "2025-04", TotalHours: decimal.NewFromInt(6), AmountDue: 3000},
		{PeriodKey: "2025-03", TotalHours: decimal.RequireFromString("3.25"), AmountDue: 1625, Settled: true},
	}

	out, err := BuildStatementPDF(testStudent(), periods)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
