package finbook

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// newTestSchedule creates a schedule store and its backing ledger in a
// temp directory.
func newTestSchedule(t *testing.T) (*ScheduleStore, *LedgerStore) {
	t.Helper()
	dir := t.TempDir()
	ledger := NewLedgerStore(filepath.Join(dir, "transaction.csv"))
	schedule := NewScheduleStore(filepath.Join(dir, "recurring_transactions.json"), ledger)
	return schedule, ledger
}

func TestRecurringCreate(t *testing.T) {
	schedule, _ := newTestSchedule(t)

	start := NewDate(2026, time.September, 1)
	r, err := schedule.Create("alice", "p1", "Rent", Expense, decimal.NewFromInt(850), 30, &start, nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if r.Status != Active {
		t.Errorf("status = %s, want Active", r.Status)
	}
	if r.NextDate != start {
		t.Errorf("next date = %s, want %s (first occurrence is the start date)", r.NextDate, start)
	}
	if r.LastExecuted != nil {
		t.Error("a new template must not have a last execution")
	}
}

func TestRecurringCreateValidation(t *testing.T) {
	schedule, _ := newTestSchedule(t)

	if _, err := schedule.Create("alice", "p1", "", Expense, decimal.NewFromInt(10), 7, nil, nil); !IsValidation(err) {
		t.Errorf("empty name: err = %v, want validation error", err)
	}
	if _, err := schedule.Create("alice", "p1", "X", Expense, decimal.NewFromInt(-10), 7, nil, nil); !IsValidation(err) {
		t.Errorf("negative amount: err = %v, want validation error", err)
	}
	if _, err := schedule.Create("alice", "p1", "X", Expense, decimal.NewFromInt(10), 0, nil, nil); !IsValidation(err) {
		t.Errorf("zero interval: err = %v, want validation error", err)
	}
}

func TestExecuteDueScenario(t *testing.T) {
	// A weekly template starting 2025-01-01 and ending 2025-01-10
	// executes exactly twice (the 1st and the 8th), then completes.
	schedule, ledger := newTestSchedule(t)

	start := MustParseDate("2025-01-01")
	end := MustParseDate("2025-01-10")
	r, err := schedule.Create("alice", "p1", "Gym", Expense, decimal.NewFromInt(25), 7, &start, &end)
	if err != nil {
		t.Fatal(err)
	}

	asOf := MustParseDate("2025-01-09")
	if n, err := schedule.ExecuteDue(asOf); err != nil || n != 1 {
		t.Fatalf("first ExecuteDue() = %d, %v, want 1, nil", n, err)
	}
	// The template lagged by one interval: the second occurrence is
	// written by the next invocation.
	if n, err := schedule.ExecuteDue(asOf); err != nil || n != 1 {
		t.Fatalf("second ExecuteDue() = %d, %v, want 1, nil", n, err)
	}
	// Fully caught up and past the end date: nothing more to do.
	if n, err := schedule.ExecuteDue(asOf); err != nil || n != 0 {
		t.Fatalf("third ExecuteDue() = %d, %v, want 0, nil", n, err)
	}

	rows, _, err := ledger.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("ledger has %d rows, want 2", len(rows))
	}
	if rows[0].Date != MustParseDate("2025-01-01") || rows[1].Date != MustParseDate("2025-01-08") {
		t.Errorf("occurrence dates = %s, %s, want 2025-01-01, 2025-01-08", rows[0].Date, rows[1].Date)
	}
	for _, tx := range rows {
		if tx.Category != "Recurring: Gym" {
			t.Errorf("category = %q, want Recurring: Gym", tx.Category)
		}
		if tx.PaymentMethod != "Recurring" {
			t.Errorf("payment method = %q, want Recurring", tx.PaymentMethod)
		}
	}

	got, err := schedule.Find(r.RecurringID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != Completed {
		t.Errorf("status = %s, want Completed (next date moved past the end date)", got.Status)
	}
}

func TestExecuteDueIdempotentSameDay(t *testing.T) {
	schedule, ledger := newTestSchedule(t)

	start := MustParseDate("2025-06-01")
	if _, err := schedule.Create("alice", "p1", "Salary", Income, decimal.NewFromInt(3000), 30, &start, nil); err != nil {
		t.Fatal(err)
	}

	asOf := MustParseDate("2025-06-01")
	if n, _ := schedule.ExecuteDue(asOf); n != 1 {
		t.Fatalf("first run executed %d, want 1", n)
	}
	if n, _ := schedule.ExecuteDue(asOf); n != 0 {
		t.Errorf("second run on the same day executed %d, want 0", n)
	}

	rows, _, err := ledger.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("ledger has %d rows, want 1", len(rows))
	}
}

func TestExecuteDueSkipsPaused(t *testing.T) {
	schedule, ledger := newTestSchedule(t)

	start := MustParseDate("2025-06-01")
	r, err := schedule.Create("alice", "p1", "Gym", Expense, decimal.NewFromInt(25), 7, &start, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := schedule.SetStatus(r.RecurringID, Paused); !ok || err != nil {
		t.Fatalf("SetStatus(Paused) = %v, %v", ok, err)
	}

	if n, _ := schedule.ExecuteDue(MustParseDate("2025-07-01")); n != 0 {
		t.Errorf("paused template executed %d times, want 0", n)
	}
	if rows, _, _ := ledger.ReadAll(); len(rows) != 0 {
		t.Errorf("ledger has %d rows, want 0", len(rows))
	}

	// Resuming picks the schedule up where it left off.
	if ok, err := schedule.SetStatus(r.RecurringID, Active); !ok || err != nil {
		t.Fatalf("SetStatus(Active) = %v, %v", ok, err)
	}
	if n, _ := schedule.ExecuteDue(MustParseDate("2025-07-01")); n != 1 {
		t.Errorf("resumed template executed %d times, want 1", n)
	}
}

func TestSetStatusCompletedIsFinal(t *testing.T) {
	schedule, _ := newTestSchedule(t)

	start := MustParseDate("2025-01-01")
	end := MustParseDate("2025-01-02")
	r, err := schedule.Create("alice", "p1", "Once", Expense, decimal.NewFromInt(5), 7, &start, &end)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := schedule.ExecuteDue(MustParseDate("2025-01-01")); err != nil {
		t.Fatal(err)
	}

	if ok, err := schedule.SetStatus(r.RecurringID, Active); ok || err != nil {
		t.Errorf("SetStatus on completed template = %v, %v, want false, nil", ok, err)
	}
	if ok, err := schedule.SetStatus("no-such-id", Paused); ok || err != nil {
		t.Errorf("SetStatus on unknown id = %v, %v, want false, nil", ok, err)
	}
}

func TestUpdateFields(t *testing.T) {
	schedule, _ := newTestSchedule(t)

	start := MustParseDate("2025-06-01")
	r, err := schedule.Create("alice", "p1", "Gym", Expense, decimal.NewFromInt(25), 7, &start, nil)
	if err != nil {
		t.Fatal(err)
	}

	name := "Gym Membership"
	amount := decimal.NewFromInt(30)
	interval := 14
	got, err := schedule.UpdateFields(r.RecurringID, RecurringPatch{
		Name:         &name,
		Amount:       &amount,
		IntervalDays: &interval,
	})
	if err != nil {
		t.Fatalf("UpdateFields() failed: %v", err)
	}
	if got.Name != "Gym Membership" || !got.Amount.Equal(amount) || got.IntervalDays != 14 {
		t.Errorf("UpdateFields() = %+v", got)
	}
	// The schedule itself is untouched by an edit.
	if got.NextDate != start {
		t.Errorf("next date = %s, want %s (edits never recompute the schedule)", got.NextDate, start)
	}

	// Clearing and setting the end date.
	endStr := "2025-12-31"
	got, err = schedule.UpdateFields(r.RecurringID, RecurringPatch{EndDate: &endStr})
	if err != nil {
		t.Fatal(err)
	}
	if got.EndDate == nil || *got.EndDate != MustParseDate("2025-12-31") {
		t.Errorf("end date = %v, want 2025-12-31", got.EndDate)
	}
	noEnd := ""
	got, err = schedule.UpdateFields(r.RecurringID, RecurringPatch{EndDate: &noEnd})
	if err != nil {
		t.Fatal(err)
	}
	if got.EndDate != nil {
		t.Errorf("end date = %v, want nil after clearing", got.EndDate)
	}

	bad := decimal.NewFromInt(0)
	if _, err := schedule.UpdateFields(r.RecurringID, RecurringPatch{Amount: &bad}); !IsValidation(err) {
		t.Errorf("zero amount: err = %v, want validation error", err)
	}
}

func TestRecurringDeleteKeepsHistory(t *testing.T) {
	schedule, ledger := newTestSchedule(t)

	start := MustParseDate("2025-06-01")
	r, err := schedule.Create("alice", "p1", "Gym", Expense, decimal.NewFromInt(25), 7, &start, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := schedule.ExecuteDue(start); err != nil {
		t.Fatal(err)
	}

	history, err := schedule.History(r.RecurringID)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d rows, want 1", len(history))
	}

	if err := schedule.Delete(r.RecurringID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := schedule.Find(r.RecurringID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted template still found: err = %v", err)
	}
	// Materialized transactions survive the template.
	if rows, _, _ := ledger.ReadAll(); len(rows) != 1 {
		t.Errorf("ledger has %d rows, want 1", len(rows))
	}
}
