package pagos

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/shopspring/decimal"
)

// RequiredColumns must all be present in a parsed table. The check runs
// once per table, not per row.
var RequiredColumns = []string{"dni", "monto", "empresa"}

// Per-row rejection reasons.
const (
	RejectInvalidAmount  = "monto missing, non numeric or not positive"
	RejectEmptySubjectID = "dni empty"
	RejectEmptyCompany   = "empresa empty"
	RejectInvalidDate    = "fecha_de_pago not a recognized date"
)

// MissingRequired returns the required columns absent from the table.
func (t *Table) MissingRequired() []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := t.colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// NormalizeRow maps raw row i into a validated Pago, or a rejection.
// Rules apply in order and stop at the first failure; a rejection never
// aborts the batch.
func NormalizeRow(t *Table, i int) (*Pago, *RowReject) {
	monto, ok := t.Cell(i, "monto")
	if !ok || monto.Kind != CellNumber {
		return nil, &RowReject{Row: i, Field: "monto", Reason: RejectInvalidAmount}
	}

	dniCell, _ := t.Cell(i, "dni")
	dni := dniCell.String()
	if dni == "" {
		return nil, &RowReject{Row: i, Field: "dni", Reason: RejectEmptySubjectID}
	}

	amount, err := decimal.NewFromString(monto.Raw)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, &RowReject{Row: i, Field: "monto", Reason: RejectInvalidAmount}
	}
	amount = amount.Round(2)

	empresaCell, _ := t.Cell(i, "empresa")
	empresa := empresaCell.String()
	if empresa == "" {
		return nil, &RowReject{Row: i, Field: "empresa", Reason: RejectEmptyCompany}
	}

	p := &Pago{
		Dni:      dni,
		Monto:    amount,
		Empresa:  empresa,
		Oponente: optionalText(t, i, "oponente"),
		Cuotas:   optionalText(t, i, "cuotas"),
	}
	if c, ok := t.Cell(i, "fecha_de_pago"); ok && !c.IsEmpty() {
		// fecha_pago is a DATE column; raw text would poison the batch insert
		if c.Kind != CellDate {
			return nil, &RowReject{Row: i, Field: "fecha_de_pago", Reason: RejectInvalidDate}
		}
		d := c.Date
		p.FechaPago = &d
	}
	p.RecordHash = Fingerprint(p.Dni, p.Monto, p.Empresa, p.FechaPago, p.Cuotas)
	return p, nil
}

func optionalText(t *Table, i int, column string) *string {
	c, ok := t.Cell(i, column)
	if !ok || c.IsEmpty() {
		return nil
	}
	s := c.String()
	return &s
}

// Fingerprint computes the deduplication hash over the validated fields,
// in fixed order, with the amount formatted to exactly two digits. Two
// records that agree on all five fields always collide.
func Fingerprint(dni string, monto decimal.Decimal, empresa string, fechaPago, cuotas *string) string {
	fecha := ""
	if fechaPago != nil {
		fecha = *fechaPago
	}
	cuo := ""
	if cuotas != nil {
		cuo = *cuotas
	}
	raw := fmt.Sprintf("%s|%s|%s|%s|%s", dni, monto.StringFixed(2), empresa, fecha, cuo)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
