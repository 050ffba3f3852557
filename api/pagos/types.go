package pagos

import (
	"time"

	"github.com/shopspring/decimal"
)

// CellKind tags the raw value read from a spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
	CellDate
)

// Cell is one raw spreadsheet value before normalization.
type Cell struct {
	Kind CellKind
	Raw  string  // trimmed original text
	Date string  // YYYY-MM-DD, set when Kind == CellDate
}

func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

func (c Cell) String() string {
	return c.Raw
}

// Table is the rectangular output of the spreadsheet reader. Column names
// are lower-cased and trimmed; rows are aligned to Columns by index.
type Table struct {
	Columns []string
	Rows    [][]Cell

	colIdx map[string]int
}

// Cell returns the cell at data row i for the named column. The second
// return is false when the column does not exist or the row is ragged.
func (t *Table) Cell(i int, column string) (Cell, bool) {
	j, ok := t.colIdx[column]
	if !ok {
		return Cell{}, false
	}
	row := t.Rows[i]
	if j >= len(row) {
		return Cell{}, false
	}
	return row[j], true
}

// Pago is a validated payment record. Optional fields are nil when the
// source row left them blank.
type Pago struct {
	Dni           string          `json:"dni"`
	Oponente      *string         `json:"oponente"`
	Monto         decimal.Decimal `json:"monto"`
	Empresa       string          `json:"empresa"`
	FechaPago     *string         `json:"fecha_pago"`
	Cuotas        *string         `json:"cuotas"`
	RecordHash    string          `json:"record_hash"`
	FechaCreacion *time.Time      `json:"fecha_creacion,omitempty"`
}

// RowReject is a per-row validation failure. Rejections never abort the
// batch; they are collected and reported back to the uploader.
type RowReject struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// BatchResult is the outcome of resolving one parsed table against the
// existing fingerprint snapshot.
type BatchResult struct {
	Accepted   []*Pago
	Skipped    []RowReject
	Duplicates int
	TotalRows  int
}

// IngestResult is returned to the upload handler for one file.
type IngestResult struct {
	BatchID       string      `json:"batch_id"`
	FileName      string      `json:"file_name"`
	TotalRows     int         `json:"total_rows"`
	AcceptedCount int         `json:"accepted_count"`
	Accepted      []*Pago     `json:"pagos"`
	Skipped       []RowReject `json:"skipped_rows"`
	Duplicates    int         `json:"duplicates"`
}
