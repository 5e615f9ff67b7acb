// file: internals/features/tutoring/billing/service/aggregator.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStudentNotFound = errors.New("billing: student not found")
	// ErrMissingRate: cannot bill without an hourly rate on the student
	// or its batch.
	ErrMissingRate  = errors.New("billing: no hourly rate configured")
	ErrBadPeriodKey = errors.New("billing: period key must be YYYY-MM")
)

// BillingPeriod is a read-only projection over one calendar month of a
// student's attendance. It is recomputed on every query, never stored.
type BillingPeriod struct {
	StudentID     uuid.UUID       `json:"student_id"`
	PeriodKey     string          `json:"period_key"` // "2025-03"
	TotalHours    decimal.Decimal `json:"total_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	AmountDue     int64           `json:"amount_due"` // whole rupees
	Settled       bool            `json:"settled"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	PaidOn        *time.Time      `json:"paid_on,omitempty"`
}

// Settlement mirrors one fees row (the external settlement record).
type Settlement struct {
	IsSettled     bool
	PaymentMethod string
	PaidOn        time.Time
}

// The three collaborator boundaries the aggregator reads from.
type (
	AttendanceSource interface {
		// PresentHours returns the hours of every present record whose
		// date falls in the half-open window [from, to).
		PresentHours(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]decimal.Decimal, error)
		// PeriodKeys returns the distinct "YYYY-MM" keys in the
		// student's attendance history, in any order.
		PeriodKeys(ctx context.Context, studentID uuid.UUID) ([]string, error)
	}

	RateSource interface {
		// HourlyRate resolves the current rate; ErrStudentNotFound for
		// unknown students, ErrMissingRate when no rate is configured.
		HourlyRate(ctx context.Context, studentID uuid.UUID) (decimal.Decimal, error)
	}

	SettlementSource interface {
		// Settlement returns nil when no record exists for the period.
		Settlement(ctx context.Context, studentID uuid.UUID, periodKey string) (*Settlement, error)
	}
)

type Aggregator struct {
	attendance  AttendanceSource
	rates       RateSource
	settlements SettlementSource
}

func NewAggregator(att AttendanceSource, rates RateSource, settlements SettlementSource) *Aggregator {
	return &Aggregator{attendance: att, rates: rates, settlements: settlements}
}

// PeriodWindow maps "YYYY-MM" to the half-open month window
// [first day 00:00, first day of next month 00:00).
func PeriodWindow(periodKey string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", periodKey, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrBadPeriodKey, periodKey)
	}
	return t, t.AddDate(0, 1, 0), nil
}

// PeriodKeyFor is the inverse mapping for a record date.
func PeriodKeyFor(date time.Time) string { return date.Format("2006-01") }

// Summarize computes the billing projection for one student-month.
// A month without records yields a zero summary, not an error.
func (a *Aggregator) Summarize(ctx context.Context, studentID uuid.UUID, periodKey string) (BillingPeriod, error) {
	from, to, err := PeriodWindow(periodKey)
	if err != nil {
		return BillingPeriod{}, err
	}

	rate, err := a.rates.HourlyRate(ctx, studentID)
	if err != nil {
		return BillingPeriod{}, err
	}

	hours, err := a.attendance.PresentHours(ctx, studentID, from, to)
	if err != nil {
		return BillingPeriod{}, err
	}
	total := decimal.Zero
	for _, h := range hours {
		total = total.Add(h)
	}

	out := BillingPeriod{
		StudentID:  studentID,
		PeriodKey:  periodKey,
		TotalHours: total,
		HourlyRate: rate,
		AmountDue:  total.Mul(rate).Round(0).IntPart(),
	}

	settlement, err := a.settlements.Settlement(ctx, studentID, periodKey)
	if err != nil {
		return BillingPeriod{}, err
	}
	if settlement != nil {
		out.Settled = settlement.IsSettled
		if settlement.PaymentMethod != "" {
			pm := settlement.PaymentMethod
			out.PaymentMethod = &pm
		}
		if !settlement.PaidOn.IsZero() {
			paidOn := settlement.PaidOn
			out.PaidOn = &paidOn
		}
	}
	return out, nil
}

// SummarizeAll computes one summary per distinct month in the student's
// history, most recent first.
func (a *Aggregator) SummarizeAll(ctx context.Context, studentID uuid.UUID) ([]BillingPeriod, error) {
	keys, err := a.attendance.PeriodKeys(ctx, studentID)
	if err != nil {
		return nil, err
	}
	// "YYYY-MM" sorts correctly as plain strings
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]BillingPeriod, 0, len(keys))
	for _, key := range keys {
		summary, err := a.Summarize(ctx, studentID, key)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}
