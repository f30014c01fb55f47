package finbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/google/uuid"
)

// RecurringStatus is the state of a recurring template.
//
// Active and Paused toggle manually. Completed is entered
// automatically when the next occurrence would pass the end date, is
// terminal, and accepts no further edits or status changes.
type RecurringStatus string

const (
	Active    RecurringStatus = "Active"
	Paused    RecurringStatus = "Paused"
	Completed RecurringStatus = "Completed"
)

// RecurringTemplate is a schedule definition that periodically
// materializes one Transaction into the ledger.
type RecurringTemplate struct {
	RecurringID  string          `json:"recurring_id"`
	Username     string          `json:"username"`
	ProfileID    string          `json:"profile_id"`
	Name         string          `json:"name"`
	Type         TxType          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	IntervalDays int             `json:"repeat_interval_days"`
	StartDate    Date            `json:"start_date"`
	NextDate     Date            `json:"next_date"`
	EndDate      *Date           `json:"end_date"`
	Status       RecurringStatus `json:"status"`
	LastExecuted *Date           `json:"last_executed"`
}

// CategoryTag is the ledger category of transactions this template
// materializes. History lookups match on it.
func (r RecurringTemplate) CategoryTag() string { return "Recurring: " + r.Name }

// due reports whether the template should execute as of the date.
func (r RecurringTemplate) due(asOf Date) bool {
	return r.Status == Active && !r.NextDate.After(asOf)
}

// ScheduleStore owns the recurring templates JSON file and is the
// sole writer of materialized recurring transactions in the ledger.
type ScheduleStore struct {
	path   string
	ledger *LedgerStore
}

// NewScheduleStore creates a store over the given JSON file path,
// materializing into the given ledger.
func NewScheduleStore(path string, ledger *LedgerStore) *ScheduleStore {
	return &ScheduleStore{path: path, ledger: ledger}
}

// Path returns the backing file path, for the backup component.
func (s *ScheduleStore) Path() string { return s.path }

func (s *ScheduleStore) load() ([]RecurringTemplate, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("read", s.path, err)
	}
	var list []RecurringTemplate
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("recurring %s: malformed file, treating as empty: %v", s.path, err)
		return nil, nil
	}
	return list, nil
}

func (s *ScheduleStore) save(list []RecurringTemplate) error {
	data, err := json.MarshalIndent(list, "", "    ")
	if err != nil {
		return fmt.Errorf("could not marshal recurring templates: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// Create validates and stores a new template. The start date defaults
// to today; next_date starts at start_date.
func (s *ScheduleStore) Create(username, profileID, name string, tt TxType, amount decimal.Decimal, intervalDays int, start, end *Date) (RecurringTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return RecurringTemplate{}, invalidf("name", "must not be empty")
	}
	if tt != Income && tt != Expense {
		return RecurringTemplate{}, invalidf("type", "%q (must be income or expense)", string(tt))
	}
	if !amount.IsPositive() {
		return RecurringTemplate{}, invalidf("amount", "must be greater than 0")
	}
	if intervalDays <= 0 {
		return RecurringTemplate{}, invalidf("repeat_interval_days", "must be a positive integer")
	}

	startDate := Today()
	if start != nil {
		startDate = *start
	}
	if startDate.IsZero() {
		return RecurringTemplate{}, invalidf("start_date", "must be a calendar date")
	}
	if end != nil && end.IsZero() {
		return RecurringTemplate{}, invalidf("end_date", "must be a calendar date")
	}

	tmpl := RecurringTemplate{
		RecurringID:  uuid.NewString(),
		Username:     username,
		ProfileID:    profileID,
		Name:         strings.TrimSpace(name),
		Type:         tt,
		Amount:       amount,
		IntervalDays: intervalDays,
		StartDate:    startDate,
		NextDate:     startDate,
		EndDate:      end,
		Status:       Active,
	}

	list, err := s.load()
	if err != nil {
		return RecurringTemplate{}, err
	}
	list = append(list, tmpl)
	if err := s.save(list); err != nil {
		return RecurringTemplate{}, err
	}
	return tmpl, nil
}

// ForUser returns the user's templates in stored order, optionally
// narrowed to one profile.
func (s *ScheduleStore) ForUser(username, profileID string) ([]RecurringTemplate, error) {
	list, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []RecurringTemplate
	for _, r := range list {
		if r.Username != username {
			continue
		}
		if profileID != "" && r.ProfileID != profileID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Find returns the template with the given id, or ErrNotFound.
func (s *ScheduleStore) Find(recurringID string) (RecurringTemplate, error) {
	list, err := s.load()
	if err != nil {
		return RecurringTemplate{}, err
	}
	for _, r := range list {
		if r.RecurringID == recurringID {
			return r, nil
		}
	}
	return RecurringTemplate{}, fmt.Errorf("recurring template %s: %w", recurringID, ErrNotFound)
}

// DueTemplates returns all templates due as of the date: Active and
// next_date <= asOf. Pure query, no mutation.
func (s *ScheduleStore) DueTemplates(asOf Date) ([]RecurringTemplate, error) {
	list, err := s.load()
	if err != nil {
		return nil, err
	}
	var due []RecurringTemplate
	for _, r := range list {
		if r.due(asOf) {
			due = append(due, r)
		}
	}
	return due, nil
}

// ExecuteDue materializes one transaction per due template, in list
// order, and advances the schedule. It returns the number of executed
// templates.
//
// The materialized transaction is dated next_date, not asOf, so the
// schedule keeps fidelity even when execution is late. After a
// successful write: next_date advances by the interval, last_executed
// is set to asOf, and the template completes when the new next_date
// passes the end date. A failed ledger write leaves that template's
// next_date unchanged — it stays due and is retried on the next
// invocation — and does not affect the rest of the batch.
//
// Calling ExecuteDue twice on the same date cannot double-execute:
// the next_date <= asOf guard is re-evaluated per call against the
// advanced dates.
func (s *ScheduleStore) ExecuteDue(asOf Date) (int, error) {
	list, err := s.load()
	if err != nil {
		return 0, err
	}

	executed := 0
	for i := range list {
		r := &list[i]
		// One execution per template per invocation: a template that
		// lags the schedule by several intervals catches up over
		// successive invocations, one occurrence at a time.
		if !r.due(asOf) {
			continue
		}
		tx := Transaction{
			ID:            NewTransactionID(),
			User:          r.Username,
			ProfileID:     r.ProfileID,
			Type:          r.Type,
			Amount:        r.Amount,
			Category:      r.CategoryTag(),
			Date:          r.NextDate,
			Description:   "Auto-generated",
			PaymentMethod: "Recurring",
		}
		if err := s.ledger.Append(tx); err != nil {
			// Leave next_date alone: the template stays due and
			// retries on the next invocation.
			log.Printf("recurring %s (%s): could not materialize: %v", r.RecurringID, r.Name, err)
			continue
		}
		executed++
		next := r.NextDate.Add(r.IntervalDays)
		r.NextDate = next
		asOfCopy := asOf
		r.LastExecuted = &asOfCopy
		if r.EndDate != nil && next.After(*r.EndDate) {
			r.Status = Completed
		}
	}

	if executed == 0 {
		return 0, nil
	}
	if err := s.save(list); err != nil {
		return executed, err
	}
	return executed, nil
}

// SetStatus overwrites the template's status. It is rejected (false,
// no mutation) when the template is Completed or unknown.
func (s *ScheduleStore) SetStatus(recurringID string, status RecurringStatus) (bool, error) {
	list, err := s.load()
	if err != nil {
		return false, err
	}
	for i, r := range list {
		if r.RecurringID != recurringID {
			continue
		}
		if r.Status == Completed {
			return false, nil
		}
		list[i].Status = status
		if err := s.save(list); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// RecurringPatch holds the mutable fields of a template edit. Nil
// fields are left untouched. next_date is never recomputed on an
// interval change: the next occurrence still uses the old next_date,
// with the new interval applying from there on.
type RecurringPatch struct {
	Name         *string
	Amount       *decimal.Decimal
	IntervalDays *int
	EndDate      *string // "" clears the end date
}

// UpdateFields applies the patch to the template and returns the
// updated value. Only name, amount, repeat_interval_days and end_date
// are mutable.
func (s *ScheduleStore) UpdateFields(recurringID string, patch RecurringPatch) (RecurringTemplate, error) {
	list, err := s.load()
	if err != nil {
		return RecurringTemplate{}, err
	}
	for i := range list {
		r := &list[i]
		if r.RecurringID != recurringID {
			continue
		}
		if r.Status == Completed {
			return RecurringTemplate{}, invalidf("status", "completed templates accept no edits")
		}
		if patch.Name != nil {
			if strings.TrimSpace(*patch.Name) == "" {
				return RecurringTemplate{}, invalidf("name", "must not be empty")
			}
			r.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Amount != nil {
			if !patch.Amount.IsPositive() {
				return RecurringTemplate{}, invalidf("amount", "must be greater than 0")
			}
			r.Amount = *patch.Amount
		}
		if patch.IntervalDays != nil {
			if *patch.IntervalDays <= 0 {
				return RecurringTemplate{}, invalidf("repeat_interval_days", "must be a positive integer")
			}
			r.IntervalDays = *patch.IntervalDays
		}
		if patch.EndDate != nil {
			if *patch.EndDate == "" {
				r.EndDate = nil
			} else {
				end, err := ParseDate(*patch.EndDate)
				if err != nil {
					return RecurringTemplate{}, invalidf("end_date", "%v", err)
				}
				r.EndDate = &end
			}
		}
		if err := s.save(list); err != nil {
			return RecurringTemplate{}, err
		}
		return *r, nil
	}
	return RecurringTemplate{}, fmt.Errorf("recurring template %s: %w", recurringID, ErrNotFound)
}

// Delete removes the template. Already-materialized transactions are
// left in the ledger untouched.
func (s *ScheduleStore) Delete(recurringID string) error {
	list, err := s.load()
	if err != nil {
		return err
	}
	for i, r := range list {
		if r.RecurringID == recurringID {
			list = append(list[:i], list[i+1:]...)
			return s.save(list)
		}
	}
	return fmt.Errorf("recurring template %s: %w", recurringID, ErrNotFound)
}

// History returns the ledger transactions this template materialized,
// matched by owner, profile and category tag. Presentation only.
func (s *ScheduleStore) History(recurringID string) ([]Transaction, error) {
	r, err := s.Find(recurringID)
	if err != nil {
		return nil, err
	}
	seq, err := s.ledger.Transactions(
		ByUser(r.Username),
		ByProfile(r.ProfileID),
		func(t Transaction) bool { return strings.Contains(t.Category, r.CategoryTag()) },
	)
	if err != nil {
		return nil, err
	}
	var history []Transaction
	for t := range seq {
		history = append(history, t)
	}
	return history, nil
}
