package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	date  time.Time
	hours decimal.Decimal
}

type fakeSources struct {
	records     map[uuid.UUID][]fakeRecord
	rates       map[uuid.UUID]decimal.Decimal
	settlements map[string]*Settlement // key: studentID|periodKey
}

func newFakeSources() *fakeSources {
	return &fakeSources{
		records:     map[uuid.UUID][]fakeRecord{},
		rates:       map[uuid.UUID]decimal.Decimal{},
		settlements: map[string]*Settlement{},
	}
}

func (f *fakeSources) PresentHours(_ context.Context, id uuid.UUID, from, to time.Time) ([]decimal.Decimal, error) {
	var out []decimal.Decimal
	for _, r := range f.records[id] {
		if !r.date.Before(from) && r.date.Before(to) { // [from, to)
			out = append(out, r.hours)
		}
	}
	return out, nil
}

func (f *fakeSources) PeriodKeys(_ context.Context, id uuid.UUID) ([]string, error) {
	seen := map[string]bool{}
	var keys []string
	for _, r := range f.records[id] {
		k := PeriodKeyFor(r.date)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (f *fakeSources) HourlyRate(_ context.Context, id uuid.UUID) (decimal.Decimal, error) {
	rate, ok := f.rates[id]
	if !ok {
		return decimal.Zero, ErrStudentNotFound
	}
	if rate.IsZero() {
		return decimal.Zero, ErrMissingRate
	}
	return rate, nil
}

func (f *fakeSources) Settlement(_ context.Context, id uuid.UUID, periodKey string) (*Settlement, error) {
	return f.settlements[id.String()+"|"+periodKey], nil
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarizeSumsPresentHoursTimesRate(t *testing.T) {
	f := newFakeSources()
	student := uuid.New()
	f.rates[student] = dec("500")
	f.records[student] = []fakeRecord{
		{day(t, "2025-03-03"), dec("1")},
		{day(t, "2025-03-10"), dec("1.5")},
		{day(t, "2025-03-24"), dec("0.75")},
		{day(t, "2025-04-01"), dec("2")}, // next month, excluded
	}

	got, err := NewAggregator(f, f, f).Summarize(context.Background(), student, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "3.25", got.TotalHours.String())
	assert.Equal(t, int64(1625), got.AmountDue)
	assert.False(t, got.Settled)
	assert.Nil(t, got.PaymentMethod)
}

func TestSummarizeHalfOpenWindowBoundaries(t *testing.T) {
	f := newFakeSources()
	student := uuid.New()
	f.rates[student] = dec("400")
	f.records[student] = []fakeRecord{
		{day(t, "2025-03-01"), dec("1")}, // first day of period: in
		{day(t, "2025-04-01"), dec("1")}, // first day of next month: out
	}

	got, err := NewAggregator(f, f, f).Summarize(context.Background(), student, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "1", got.TotalHours.String())
	assert.Equal(t, int64(400), got.AmountDue)
}

func TestSummarizeEmptyMonthIsZeroNotError(t *testing.T) {
	f := newFakeSources()
	student := uuid.New()
	f.rates[student] = dec("500")

	got, err := NewAggregator(f, f, f).Summarize(context.Background(), student, "2025-06")
	require.NoError(t, err)
	assert.True(t, got.TotalHours.IsZero())
	assert.Zero(t, got.AmountDue)
}

func TestSummarizeSettlementOverlay(t *testing.T) {
	f := newFakeSources()
	student := uuid.New()
	f.rates[student] = dec("500")
	paidOn := day(t, "2025-04-05")
	f.settlements[student.String()+"|2025-03"] = &Settlement{
		IsSettled:     true,
		PaymentMethod: "upi",
		PaidOn:        paidOn,
	}

	got, err := NewAggregator(f, f, f).Summarize(context.Background(), student, "2025-03")
	require.NoError(t, err)
	assert.True(t, got.Settled)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, "upi", *got.PaymentMethod)
	require.NotNil(t, got.PaidOn)
	assert.True(t, paidOn.Equal(*got.PaidOn))
}

func TestSummarizeFailureModes(t *testing.T) {
	f := newFakeSources()
	agg := NewAggregator(f, f, f)
	ctx := context.Background()

	_, err := agg.Summarize(ctx, uuid.New(), "2025-03")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	noRate := uuid.New()
	f.rates[noRate] = decimal.Zero
	_, err = agg.Summarize(ctx, noRate, "2025-03")
	assert.ErrorIs(t, err, ErrMissingRate)

	withRate := uuid.New()
	f.rates[withRate] = dec("500")
	_, err = agg.Summarize(ctx, withRate, "March 2025")
	assert.ErrorIs(t, err, ErrBadPeriodKey)
}

func TestSummarizeAllSortsMostRecentFirst(t *testing.T) {
	f := newFakeSources()
	student := uuid.New()
	f.rates[student] = dec("300")
	f.records[student] = []fakeRecord{
		{day(t, "2025-01-15"), dec("1")},
		{day(t, "2025-03-02"), dec("2")},
		{day(t, "2024-12-20"), dec("1.5")},
		{day(t, "2025-03-20"), dec("1")},
	}

	got, err := NewAggregator(f, f, f).SummarizeAll(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-03", got[0].PeriodKey)
	assert.Equal(t, "2025-01", got[1].PeriodKey)
	assert.Equal(t, "2024-12", got[2].PeriodKey)
	assert.Equal(t, "3", got[0].TotalHours.String())
	assert.Equal(t, int64(900), got[0].AmountDue)
}

func TestPeriodWindow(t *testing.T) {
	from, to, err := PeriodWindow("2025-02")
	require.NoError(t, err)
	assert.Equal(t, day(t, "2025-02-01"), from)
	assert.Equal(t, day(t, "2025-03-01"), to)
}
