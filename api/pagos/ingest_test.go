package pagos_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"CobranzaSaas/api/pagos"
)

// One file with a blank-monto trailer row, a duplicate of a stored record
// and one novel row: only the novel row survives.
func TestResolve_MixedBatch(t *testing.T) {
	stored := pagos.Fingerprint("12345678", decimal.RequireFromString("100.00"), "Acme", nil, nil)
	existing := map[string]struct{}{stored: {}}

	table := mustTable(t, strings.Join([]string{
		"dni,monto,empresa",
		"11111111,,Acme",
		"12345678,100.00,Acme",
		"87654321,250.50,Acme",
	}, "\n")+"\n")

	batch, err := pagos.Resolve(table, existing)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if batch.TotalRows != 3 {
		t.Fatalf("total rows got=%d want=3", batch.TotalRows)
	}
	if len(batch.Accepted) != 1 {
		t.Fatalf("accepted got=%d want=1", len(batch.Accepted))
	}
	if batch.Accepted[0].Dni != "87654321" {
		t.Fatalf("accepted dni got=%q want=%q", batch.Accepted[0].Dni, "87654321")
	}
	if len(batch.Skipped) != 1 {
		t.Fatalf("skipped got=%d want=1", len(batch.Skipped))
	}
	if batch.Skipped[0].Row != 0 || batch.Skipped[0].Reason != pagos.RejectInvalidAmount {
		t.Fatalf("skipped got=%+v want row 0 with invalid amount", batch.Skipped[0])
	}
	if batch.Duplicates != 1 {
		t.Fatalf("duplicates got=%d want=1", batch.Duplicates)
	}
}

func TestResolve_MissingColumnsIsFatal(t *testing.T) {
	table := mustTable(t, "dni,oponente\n12345678,Perez\n")

	_, err := pagos.Resolve(table, map[string]struct{}{})
	var missing *pagos.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("err got=%v want MissingColumnsError", err)
	}
	if len(missing.Missing) != 2 {
		t.Fatalf("missing got=%v want [monto empresa]", missing.Missing)
	}
}

func TestResolve_BadRowsNeverAbortTheBatch(t *testing.T) {
	table := mustTable(t, strings.Join([]string{
		"dni,monto,empresa",
		",100,Acme",
		"12345678,-5,Acme",
		"12345678,100,",
		"87654321,300,Acme",
	}, "\n")+"\n")

	batch, err := pagos.Resolve(table, map[string]struct{}{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(batch.Skipped) != 3 {
		t.Fatalf("skipped got=%d want=3", len(batch.Skipped))
	}
	if len(batch.Accepted) != 1 || batch.Accepted[0].Dni != "87654321" {
		t.Fatalf("accepted got=%+v want single pago for 87654321", batch.Accepted)
	}
}
