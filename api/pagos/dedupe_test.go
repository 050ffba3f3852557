package pagos_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"CobranzaSaas/api/pagos"
)

func pago(t *testing.T, dni, monto, empresa string) *pagos.Pago {
	t.Helper()
	m := decimal.RequireFromString(monto)
	return &pagos.Pago{
		Dni:        dni,
		Monto:      m,
		Empresa:    empresa,
		RecordHash: pagos.Fingerprint(dni, m, empresa, nil, nil),
	}
}

func TestDedupe_AgainstStoreAndBatch(t *testing.T) {
	stored := pago(t, "12345678", "100.00", "Acme")
	existing := map[string]struct{}{stored.RecordHash: {}}

	candidates := []*pagos.Pago{
		pago(t, "12345678", "100.00", "Acme"), // already in store
		pago(t, "87654321", "250.50", "Acme"), // novel
		pago(t, "87654321", "250.50", "Acme"), // repeats within the batch
		pago(t, "11111111", "75.25", "Globex"),
	}

	accepted, duplicates := pagos.Dedupe(existing, candidates)
	if len(accepted) != 2 {
		t.Fatalf("accepted got=%d want=2", len(accepted))
	}
	if len(duplicates) != 2 {
		t.Fatalf("duplicates got=%d want=2", len(duplicates))
	}
	// relative order preserved
	if accepted[0].Dni != "87654321" || accepted[1].Dni != "11111111" {
		t.Fatalf("accepted order got=[%s %s] want=[87654321 11111111]", accepted[0].Dni, accepted[1].Dni)
	}
}

func TestDedupe_SecondIngestIsEmpty(t *testing.T) {
	batch := []*pagos.Pago{
		pago(t, "12345678", "100.00", "Acme"),
		pago(t, "87654321", "250.50", "Acme"),
	}

	existing := map[string]struct{}{}
	accepted, _ := pagos.Dedupe(existing, batch)
	if len(accepted) != 2 {
		t.Fatalf("first pass accepted got=%d want=2", len(accepted))
	}

	// simulate the commit: accepted fingerprints are now stored
	for _, p := range accepted {
		existing[p.RecordHash] = struct{}{}
	}

	again, duplicates := pagos.Dedupe(existing, batch)
	if len(again) != 0 {
		t.Fatalf("second pass accepted got=%d want=0", len(again))
	}
	if len(duplicates) != 2 {
		t.Fatalf("second pass duplicates got=%d want=2", len(duplicates))
	}
}
