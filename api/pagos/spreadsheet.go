package pagos

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/knieriem/odf/ods"
	"github.com/xuri/excelize/v2"

	"CobranzaSaas/api/constants"
	"CobranzaSaas/internal/config"
)

// UnsupportedFormatError is returned for file extensions the reader does
// not handle. Fatal for the whole upload.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf(constants.ErrUnsupportedFormat, e.Ext)
}

// MissingColumnsError is returned when required columns are absent after
// header normalization. Fatal for the whole upload.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf(constants.ErrMissingColumns, strings.Join(e.Missing, ", "))
}

// MalformedFileError is returned when a supported file parses but yields
// no usable table. Fatal for the whole upload.
type MalformedFileError struct {
	Detail string
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf(constants.ErrMalformedFile, e.Detail)
}

// Helper: get file extension
func getFileExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// ReadTable parses an uploaded file into a Table. The first row is the
// header; header names are lower-cased and trimmed.
func ReadTable(data []byte, filename string) (*Table, error) {
	records, err := parseSpreadsheet(data, getFileExt(filename))
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, &MalformedFileError{Detail: filename + " has no rows"}
	}
	return buildTable(records), nil
}

// parseSpreadsheet dispatches on extension and returns raw rows.
func parseSpreadsheet(data []byte, ext string) ([][]string, error) {
	switch ext {
	case ".csv":
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		return r.ReadAll()
	case ".xlsx":
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheet := f.GetSheetName(0)
		return f.GetRows(sheet)
	case ".xls":
		wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if wb.GetSheet(0) == nil {
			return nil, &MalformedFileError{Detail: "xls file has no sheets"}
		}
		return wb.ReadAllCells(config.MaxSheetRows), nil
	case ".ods":
		return parseODS(data)
	}
	return nil, &UnsupportedFormatError{Ext: ext}
}

// parseODS reads the first table of an OpenDocument spreadsheet. The ods
// package only opens named files, so the upload is spooled to a temp file.
func parseODS(data []byte) ([][]string, error) {
	tmp, err := os.CreateTemp("", "upload-*.ods")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	f, err := ods.Open(tmp.Name())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc ods.Doc
	if err := f.ParseContent(&doc); err != nil {
		return nil, err
	}
	if len(doc.Table) == 0 {
		return nil, &MalformedFileError{Detail: "ods file has no tables"}
	}
	return doc.Table[0].Strings(), nil
}

func buildTable(records [][]string) *Table {
	header := records[0]
	cols := make([]string, len(header))
	colIdx := make(map[string]int, len(header))
	for j, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		cols[j] = name
		colIdx[name] = j
	}

	rows := make([][]Cell, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]Cell, len(rec))
		for j, raw := range rec {
			row[j] = classifyCell(raw)
		}
		rows = append(rows, row)
	}
	return &Table{Columns: cols, Rows: rows, colIdx: colIdx}
}

// classifyCell tags a raw cell as empty, numeric, date or plain text.
func classifyCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Kind: CellEmpty}
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: CellNumber, Raw: s}
	}
	if d, ok := normalizeDate(s); ok {
		return Cell{Kind: CellDate, Raw: s, Date: d}
	}
	return Cell{Kind: CellText, Raw: s}
}

// normalizeDate tries the accepted layouts and returns YYYY-MM-DD.
func normalizeDate(s string) (string, bool) {
	for _, layout := range config.DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(config.DateLayout), true
		}
	}
	return "", false
}
