package finbook

import (
	"strings"
	"testing"
)

const importHeader = "transaction_id,user,profile_id,type,amount,category,date,description,payment_method\n"

func TestExportRoundTrip(t *testing.T) {
	ledger := newTestLedger(t)
	for i := 0; i < 3; i++ {
		if err := ledger.Append(seedTx("alice", "p1", "Groceries")); err != nil {
			t.Fatal(err)
		}
	}
	if err := ledger.Append(seedTx("bob", "p2", "Rent")); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	n, err := ExportProfile(&out, ledger, "p1")
	if err != nil {
		t.Fatalf("ExportProfile() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("exported %d rows, want 3", n)
	}

	// The export must be importable into an empty ledger as-is.
	fresh := newTestLedger(t)
	plan, err := PlanImport(strings.NewReader(out.String()), fresh, "alice", "p1", true)
	if err != nil {
		t.Fatalf("PlanImport() failed: %v", err)
	}
	if len(plan.Issues) != 0 {
		t.Errorf("issues = %v, want none", plan.Issues)
	}
	if len(plan.Rows) != 3 {
		t.Errorf("plan has %d rows, want 3", len(plan.Rows))
	}
	if got, err := plan.Apply(fresh); err != nil || got != 3 {
		t.Errorf("Apply() = %d, %v, want 3, nil", got, err)
	}
}

func TestPlanImportValidation(t *testing.T) {
	ledger := newTestLedger(t)

	csv := importHeader +
		"t1,alice,p1,expense,10.50,Groceries,2026-03-01,market,Cash\n" + // good
		"t2,alice,p1,expense,nope,Groceries,2026-03-01,x,Cash\n" + // bad amount
		"t3,alice,p1,expense,10,Groceries,01/03/2026,x,Cash\n" + // bad date
		"t4,alice,p1,expense,10,Groceries,2026-03-01,,Cash\n" + // empty description
		"t5,alice,p1,gift,10,Groceries,2026-03-01,x,Cash\n" + // bad type
		"t6,bob,p2,expense,10,Rent,2026-03-01,x,Cash\n" // other profile

	plan, err := PlanImport(strings.NewReader(csv), ledger, "alice", "p1", true)
	if err != nil {
		t.Fatalf("PlanImport() failed: %v", err)
	}
	if len(plan.Rows) != 1 || plan.Rows[0].ID != "t1" {
		t.Errorf("plan rows = %+v, want only t1", plan.Rows)
	}
	// Four invalid lines, each with its own reason. The other-profile
	// row is dropped without an issue.
	if len(plan.Issues) != 4 {
		t.Errorf("issues = %v, want 4", plan.Issues)
	}
}

func TestPlanImportBadHeader(t *testing.T) {
	ledger := newTestLedger(t)

	csv := "id,who,what\nt1,alice,x\n"
	if _, err := PlanImport(strings.NewReader(csv), ledger, "alice", "p1", true); !IsValidation(err) {
		t.Errorf("PlanImport() with wrong header: err = %v, want validation error", err)
	}
}

func TestPlanImportDuplicates(t *testing.T) {
	ledger := newTestLedger(t)
	existing := seedTx("alice", "p1", "Groceries")
	if err := ledger.Append(existing); err != nil {
		t.Fatal(err)
	}

	csv := importHeader +
		existing.ID + ",alice,p1,expense,10,Groceries,2026-03-01,x,Cash\n" +
		"fresh-id,alice,p1,expense,10,Groceries,2026-03-01,x,Cash\n"

	plan, err := PlanImport(strings.NewReader(csv), ledger, "alice", "p1", true)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", plan.Duplicates)
	}
	if len(plan.Rows) != 1 || plan.Rows[0].ID != "fresh-id" {
		t.Errorf("plan rows = %+v, want only fresh-id", plan.Rows)
	}

	// Without duplicate skipping the row comes through.
	plan, err = PlanImport(strings.NewReader(csv), ledger, "alice", "p1", false)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Duplicates != 0 || len(plan.Rows) != 2 {
		t.Errorf("plan = %d duplicates, %d rows, want 0, 2", plan.Duplicates, len(plan.Rows))
	}
}
