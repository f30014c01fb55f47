package finbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file implements the import/export format: the same CSV table
// shape as the ledger itself, so an export can be re-imported as-is
// and merged into another ledger.

// ExportProfile writes the header and all of one profile's
// transactions to w in append order. Returns the number of rows
// written; zero rows still produce a header.
func ExportProfile(w io.Writer, ledger *LedgerStore, profileID string) (int, error) {
	seq, err := ledger.Transactions(ByProfile(profileID))
	if err != nil {
		return 0, err
	}
	var rows []Transaction
	for t := range seq {
		rows = append(rows, t)
	}
	if err := EncodeTransactions(w, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ImportIssue is one rejected line of an import file.
type ImportIssue struct {
	Line   int
	Reason string
}

func (e ImportIssue) String() string { return fmt.Sprintf("line %d: %s", e.Line, e.Reason) }

// ImportPlan is the outcome of validating an import file. Nothing has
// been written yet: callers review it (and confirm at the boundary)
// before applying.
type ImportPlan struct {
	Rows       []Transaction // valid rows belonging to the importing user and profile
	Duplicates int           // rows skipped because their id already exists in the ledger
	Issues     []ImportIssue // rejected lines with reasons
}

// PlanImport reads and validates an import CSV for one user and
// profile.
//
// The file must carry the full ledger header. Rows that fail field
// validation are reported as issues; rows belonging to another user or
// profile are dropped without comment. With skipDuplicates, rows whose
// transaction_id is already present in the ledger are counted and
// skipped.
func PlanImport(r io.Reader, ledger *LedgerStore, username, profileID string, skipDuplicates bool) (ImportPlan, error) {
	var plan ImportPlan

	existing := make(map[string]struct{})
	if skipDuplicates {
		rows, _, err := ledger.ReadAll()
		if err != nil {
			return plan, err
		}
		for _, t := range rows {
			existing[t.ID] = struct{}{}
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return plan, fmt.Errorf("could not read import header: %w", err)
	}
	if !isLedgerHeader(header) {
		return plan, invalidf("header", "missing required fields, want %s", strings.Join(ledgerHeader, ","))
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return plan, fmt.Errorf("could not read import line %d: %w", line, err)
		}
		tx, reason := validateImportRecord(record)
		if reason != "" {
			plan.Issues = append(plan.Issues, ImportIssue{Line: line, Reason: reason})
			continue
		}
		if tx.User != username || tx.ProfileID != profileID {
			// Another user's or profile's row: not an error, just not ours.
			continue
		}
		if skipDuplicates {
			if _, dup := existing[tx.ID]; dup {
				plan.Duplicates++
				continue
			}
		}
		plan.Rows = append(plan.Rows, tx)
	}
	return plan, nil
}

// validateImportRecord mirrors the append validation but produces a
// human-readable reason per line. The description field is required on
// import even though appends accept it empty.
func validateImportRecord(record []string) (Transaction, string) {
	if len(record) != len(ledgerHeader) {
		return Transaction{}, fmt.Sprintf("want %d fields, got %d", len(ledgerHeader), len(record))
	}
	for i, cell := range record {
		record[i] = strings.TrimSpace(cell)
	}
	for i, name := range ledgerHeader {
		if record[i] == "" {
			return Transaction{}, "missing " + name
		}
	}

	tt, err := ParseTxType(record[3])
	if err != nil {
		return Transaction{}, fmt.Sprintf("invalid type %q (must be income or expense)", record[3])
	}
	amount, err := decimal.NewFromString(record[4])
	if err != nil {
		return Transaction{}, fmt.Sprintf("invalid amount %q", record[4])
	}
	if !amount.IsPositive() {
		return Transaction{}, "amount must be greater than 0"
	}
	date, err := ParseDate(record[6])
	if err != nil {
		return Transaction{}, fmt.Sprintf("invalid date format %q (use YYYY-MM-DD)", record[6])
	}

	return Transaction{
		ID:            record[0],
		User:          record[1],
		ProfileID:     record[2],
		Type:          tt,
		Amount:        amount,
		Category:      record[5],
		Date:          date,
		Description:   record[7],
		PaymentMethod: record[8],
	}, ""
}

// Apply appends the plan's rows to the ledger and returns how many
// were written. An append failure stops the import at that row; rows
// already written stay.
func (p ImportPlan) Apply(ledger *LedgerStore) (int, error) {
	for i, t := range p.Rows {
		if err := ledger.Append(t); err != nil {
			return i, fmt.Errorf("could not import transaction %s: %w", t.ID, err)
		}
	}
	return len(p.Rows), nil
}
