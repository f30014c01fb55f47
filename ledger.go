package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"os"

	"github.com/shopspring/decimal"
)

// LedgerStore owns the CSV-backed transaction table. It is the only
// writer of that file.
//
// Reads tolerate a missing file (empty table). Every mutation other
// than Append rewrites the whole table through a temp file and an
// atomic rename; Append writes a single row in append mode, creating
// the table with its header when absent or empty.
type LedgerStore struct {
	path string
}

// NewLedgerStore creates a store over the given CSV file path.
func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{path: path}
}

// Path returns the backing file path. Used by the backup component,
// which copies at the storage-path level only.
func (s *LedgerStore) Path() string { return s.path }

// ReadAll loads the entire table in append order. A missing file is
// an empty table. The skipped count reports structurally corrupt rows
// dropped during decoding.
func (s *LedgerStore) ReadAll() (rows []Transaction, skipped int, err error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, storageErr("open", s.path, err)
	}
	defer f.Close()
	return DecodeTransactions(f)
}

// Transactions re-reads the table and returns an iterator over rows
// matching all predicates, in on-disk (append) order. Each call
// restarts the scan from the file.
func (s *LedgerStore) Transactions(preds ...Predicate) (iter.Seq[Transaction], error) {
	rows, skipped, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Printf("ledger %s: skipped %d corrupt row(s)", s.path, skipped)
	}
	pred := And(preds...)
	return func(yield func(Transaction) bool) {
		for _, t := range rows {
			if !pred(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}, nil
}

// Append validates the transaction and writes it as one new row,
// creating the table with its header row if the file is absent or
// empty.
func (s *LedgerStore) Append(t Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return storageErr("open", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return storageErr("stat", s.path, err)
	}

	var rows []Transaction
	if info.Size() == 0 {
		// EncodeTransactions emits the header before the row.
		rows = []Transaction{t}
		if err := EncodeTransactions(f, rows); err != nil {
			return storageErr("append", s.path, err)
		}
		return nil
	}
	data, err := marshalTransactions([]Transaction{t})
	if err != nil {
		return err
	}
	// Strip the header line; the file already has one.
	line := data[len(headerLine):]
	if _, err := f.Write(line); err != nil {
		return storageErr("append", s.path, err)
	}
	return nil
}

// headerLine is the encoded header row including its newline.
var headerLine = func() []byte {
	data, err := marshalTransactions(nil)
	if err != nil {
		panic(err)
	}
	return data
}()

// FindByID returns the first row matching both the transaction id and
// the profile id. Ids are not globally unique in legacy ledgers, so
// profile scoping is mandatory. Returns ErrNotFound if absent.
func (s *LedgerStore) FindByID(id, profileID string) (Transaction, error) {
	rows, _, err := s.ReadAll()
	if err != nil {
		return Transaction{}, err
	}
	for _, t := range rows {
		if t.ID == id && t.ProfileID == profileID {
			return t, nil
		}
	}
	return Transaction{}, fmt.Errorf("transaction %s in profile %s: %w", id, profileID, ErrNotFound)
}

// Patch holds the fields of an edit. Nil fields are left untouched.
type Patch struct {
	Amount        *string
	Category      *string
	Date          *string
	Description   *string
	PaymentMethod *string
}

// Update locates the row by (id, profileID) and applies the patch.
//
// Each changed field is re-validated independently: an invalid field
// silently reverts to its previous value instead of aborting the whole
// edit. The names of reverted fields are returned so callers can warn.
// On any change the whole table is rewritten atomically. Returns
// ErrNotFound (file untouched) when no row matches.
func (s *LedgerStore) Update(id, profileID string, patch Patch) (Transaction, []string, error) {
	rows, _, err := s.ReadAll()
	if err != nil {
		return Transaction{}, nil, err
	}

	target := -1
	for i, t := range rows {
		if t.ID == id && t.ProfileID == profileID {
			target = i
			break
		}
	}
	if target < 0 {
		return Transaction{}, nil, fmt.Errorf("transaction %s in profile %s: %w", id, profileID, ErrNotFound)
	}

	updated, rejected := applyPatch(rows[target], patch)
	rows[target] = updated

	if err := s.writeAll(rows); err != nil {
		return Transaction{}, rejected, err
	}
	return updated, rejected, nil
}

// applyPatch is the best-effort edit policy: each field stands or
// falls on its own.
func applyPatch(t Transaction, patch Patch) (Transaction, []string) {
	var rejected []string

	if patch.Amount != nil {
		amount, err := decimal.NewFromString(*patch.Amount)
		if err != nil || !amount.IsPositive() {
			rejected = append(rejected, "amount")
		} else {
			t.Amount = amount
		}
	}
	if patch.Category != nil {
		if *patch.Category == "" {
			rejected = append(rejected, "category")
		} else {
			t.Category = *patch.Category
		}
	}
	if patch.Date != nil {
		date, err := ParseDate(*patch.Date)
		if err != nil {
			rejected = append(rejected, "date")
		} else {
			t.Date = date
		}
	}
	if patch.Description != nil {
		// Descriptions may be empty.
		t.Description = *patch.Description
	}
	if patch.PaymentMethod != nil {
		if *patch.PaymentMethod == "" {
			rejected = append(rejected, "payment_method")
		} else {
			t.PaymentMethod = *patch.PaymentMethod
		}
	}
	return t, rejected
}

// Delete removes the one row matching (id, profileID) and rewrites the
// table. The store performs no authentication of its own: callers must
// have passed the credential gate before invoking it. Returns
// ErrNotFound (file untouched) when no row matches.
func (s *LedgerStore) Delete(id, profileID string) error {
	rows, _, err := s.ReadAll()
	if err != nil {
		return err
	}

	target := -1
	for i, t := range rows {
		if t.ID == id && t.ProfileID == profileID {
			target = i
			break
		}
	}
	if target < 0 {
		return fmt.Errorf("transaction %s in profile %s: %w", id, profileID, ErrNotFound)
	}

	rows = append(rows[:target], rows[target+1:]...)
	return s.writeAll(rows)
}

// DeleteByProfile removes every row belonging to the profile and
// rewrites the table. It exists so the cascade invariant (no orphaned
// transactions) is enforced in exactly one place; the profile
// directory is its only caller. Returns the number of removed rows.
func (s *LedgerStore) DeleteByProfile(profileID string) (int, error) {
	rows, _, err := s.ReadAll()
	if err != nil {
		return 0, err
	}

	kept := rows[:0]
	removed := 0
	for _, t := range rows {
		if t.ProfileID == profileID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		// Nothing to do; leave the file bytes untouched.
		return 0, nil
	}
	if err := s.writeAll(kept); err != nil {
		return 0, err
	}
	log.Printf("ledger %s: removed %d row(s) of profile %s", s.path, removed, profileID)
	return removed, nil
}

func (s *LedgerStore) writeAll(rows []Transaction) error {
	data, err := marshalTransactions(rows)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}
