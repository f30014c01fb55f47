package finbook

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ledgerHeader is the exact CSV header of the transaction table.
var ledgerHeader = []string{
	"transaction_id", "user", "profile_id", "type", "amount",
	"category", "date", "description", "payment_method",
}

// DecodeTransactions reads the whole CSV transaction table from r.
//
// Cells are trimmed on read. Structurally corrupt rows (wrong column
// count, unparseable amount or date, missing required field) are
// skipped; the number of skipped rows is returned so callers can
// report data loss instead of silently hiding it. Row order is
// preserved as-is: append order.
func DecodeTransactions(r io.Reader) (rows []Transaction, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length is validated per record below
	cr.TrimLeadingSpace = true

	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("could not read transaction table: %w", err)
		}
		if first {
			first = false
			if isLedgerHeader(record) {
				continue
			}
			// Headerless files are tolerated; fall through and decode.
		}
		tx, ok := decodeRecord(record)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, tx)
	}
	return rows, skipped, nil
}

func isLedgerHeader(record []string) bool {
	if len(record) != len(ledgerHeader) {
		return false
	}
	for i, cell := range record {
		if strings.TrimSpace(cell) != ledgerHeader[i] {
			return false
		}
	}
	return true
}

// decodeRecord converts one raw CSV record into a typed Transaction.
// The parse/validate boundary lives here: raw text cells become typed
// fields exactly once, and nothing upstream ever sees string maps.
func decodeRecord(record []string) (Transaction, bool) {
	if len(record) != len(ledgerHeader) {
		return Transaction{}, false
	}
	for i, cell := range record {
		record[i] = strings.TrimSpace(cell)
	}

	amount, err := decimal.NewFromString(record[4])
	if err != nil {
		return Transaction{}, false
	}
	date, err := ParseDate(record[6])
	if err != nil {
		return Transaction{}, false
	}
	tx := Transaction{
		ID:            record[0],
		User:          record[1],
		ProfileID:     record[2],
		Type:          TxType(strings.ToLower(record[3])),
		Amount:        amount,
		Category:      record[5],
		Date:          date,
		Description:   record[7],
		PaymentMethod: record[8],
	}
	if tx.ID == "" || tx.ProfileID == "" {
		return Transaction{}, false
	}
	return tx, true
}

func encodeRecord(t Transaction) []string {
	return []string{
		t.ID, t.User, t.ProfileID, string(t.Type), t.Amount.String(),
		t.Category, t.Date.String(), t.Description, t.PaymentMethod,
	}
}

// EncodeTransactions writes the header row and every transaction to w
// in table order.
func EncodeTransactions(w io.Writer, rows []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("could not write transaction header: %w", err)
	}
	for _, t := range rows {
		if err := cw.Write(encodeRecord(t)); err != nil {
			return fmt.Errorf("could not write transaction %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// marshalTransactions renders the full table to bytes, for the
// atomic whole-file rewrite.
func marshalTransactions(rows []Transaction) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
