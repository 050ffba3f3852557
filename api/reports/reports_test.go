package reports_test

import (
	"errors"
	"testing"

	"CobranzaSaas/api/reports"
)

func TestParseDateRange_Valid(t *testing.T) {
	from, to, err := reports.ParseDateRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if from.Format("2006-01-02") != "2024-01-01" || to.Format("2006-01-02") != "2024-01-31" {
		t.Fatalf("range got=[%s %s]", from, to)
	}
}

func TestParseDateRange_SingleDay(t *testing.T) {
	// both bounds inclusive: from == to is a valid one-day range
	if _, _, err := reports.ParseDateRange("2024-01-15", "2024-01-15"); err != nil {
		t.Fatalf("parse: %v", err)
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		desde  string
		hasta  string
	}{
		{"malformed from", "15/01/2024", "2024-01-31"},
		{"malformed to", "2024-01-01", "yesterday"},
		{"empty", "", ""},
		{"inverted", "2024-02-01", "2024-01-01"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := reports.ParseDateRange(c.desde, c.hasta)
			if !errors.Is(err, reports.ErrInvalidDateRange) {
				t.Fatalf("err got=%v want ErrInvalidDateRange", err)
			}
		})
	}
}
