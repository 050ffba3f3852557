package pagos_test

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"CobranzaSaas/api/pagos"
)

func TestReadTable_CSVNormalizesHeaders(t *testing.T) {
	data := []byte(" DNI ,Monto,EMPRESA,Oponente\n12345678,100.5,Acme,Perez\n")
	table, err := pagos.ReadTable(data, "pagos.csv")
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	want := []string{"dni", "monto", "empresa", "oponente"}
	if len(table.Columns) != len(want) {
		t.Fatalf("columns got=%d want=%d", len(table.Columns), len(want))
	}
	for i, col := range want {
		if table.Columns[i] != col {
			t.Fatalf("column %d got=%q want=%q", i, table.Columns[i], col)
		}
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows got=%d want=1", len(table.Rows))
	}
}

func TestReadTable_CellKinds(t *testing.T) {
	data := []byte("dni,monto,empresa,fecha_de_pago,cuotas\n12345678,100.50,Acme,2024-01-15,\n")
	table, err := pagos.ReadTable(data, "pagos.csv")
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	cases := []struct {
		column string
		kind   pagos.CellKind
	}{
		{"dni", pagos.CellNumber},
		{"monto", pagos.CellNumber},
		{"empresa", pagos.CellText},
		{"fecha_de_pago", pagos.CellDate},
		{"cuotas", pagos.CellEmpty},
	}
	for _, c := range cases {
		cell, ok := table.Cell(0, c.column)
		if !ok {
			t.Fatalf("column %q not found", c.column)
		}
		if cell.Kind != c.kind {
			t.Fatalf("column %q kind got=%d want=%d", c.column, cell.Kind, c.kind)
		}
	}

	fecha, _ := table.Cell(0, "fecha_de_pago")
	if fecha.Date != "2024-01-15" {
		t.Fatalf("fecha date got=%q want=%q", fecha.Date, "2024-01-15")
	}
}

func TestReadTable_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"dni", "monto", "empresa"}); err != nil {
		t.Fatalf("set header: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]interface{}{"12345678", 100.5, "Acme"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	table, err := pagos.ReadTable(buf.Bytes(), "pagos.xlsx")
	if err != nil {
		t.Fatalf("read xlsx: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows got=%d want=1", len(table.Rows))
	}
	monto, _ := table.Cell(0, "monto")
	if monto.Kind != pagos.CellNumber {
		t.Fatalf("monto kind got=%d want=%d", monto.Kind, pagos.CellNumber)
	}
}

func TestReadTable_UnsupportedFormat(t *testing.T) {
	_, err := pagos.ReadTable([]byte("whatever"), "pagos.pdf")
	var unsupported *pagos.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err got=%v want UnsupportedFormatError", err)
	}
	if unsupported.Ext != ".pdf" {
		t.Fatalf("ext got=%q want=%q", unsupported.Ext, ".pdf")
	}
}

func TestReadTable_EmptyFileIsMalformed(t *testing.T) {
	_, err := pagos.ReadTable([]byte(""), "pagos.csv")
	var malformed *pagos.MalformedFileError
	if !errors.As(err, &malformed) {
		t.Fatalf("err got=%v want MalformedFileError", err)
	}
}

func TestMissingRequired(t *testing.T) {
	data := []byte("dni,empresa\n12345678,Acme\n")
	table, err := pagos.ReadTable(data, "pagos.csv")
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	missing := table.MissingRequired()
	if len(missing) != 1 || missing[0] != "monto" {
		t.Fatalf("missing got=%v want=[monto]", missing)
	}
}
