package reports

import (
	"database/sql"
	"errors"
	"time"

	"CobranzaSaas/api/constants"
	"CobranzaSaas/internal/config"
)

// ErrInvalidDateRange is returned for malformed or inverted date arguments.
// Surfaced directly to the caller, never as a silently empty result.
var ErrInvalidDateRange = errors.New(constants.ErrInvalidDateRange)

type Summary struct {
	TotalPagado          float64 `json:"total_pagado"`
	TotalCuentasCobradas int     `json:"total_cuentas_cobradas"`
}

type MonthlySummary struct {
	Month                string  `json:"month"`
	TotalPagado          float64 `json:"total_pagado"`
	TotalCuentasCobradas int     `json:"total_cuentas_cobradas"`
}

type PagoRow struct {
	Dni           string    `json:"dni"`
	Oponente      *string   `json:"oponente"`
	Monto         *float64  `json:"monto"`
	Empresa       string    `json:"empresa"`
	FechaPago     *string   `json:"fecha_pago"`
	Cuotas        *string   `json:"cuotas"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// ParseDateRange validates fecha_inicio/fecha_fin query arguments. Both
// bounds are inclusive and compared against the date component only.
func ParseDateRange(desde, hasta string) (time.Time, time.Time, error) {
	from, err := time.Parse(config.DateLayout, desde)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	to, err := time.Parse(config.DateLayout, hasta)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return from, to, nil
}

// GenerateReport returns the total amount and count of pagos whose
// fecha_creacion falls inside the range. Null montos are excluded from
// both the sum and the count.
func GenerateReport(db *sql.DB, desde, hasta time.Time, empresa string) (Summary, error) {
	var s Summary
	var err error
	if empresa != "" {
		err = db.QueryRow(`
			SELECT COALESCE(SUM(monto), 0), COUNT(monto)
			FROM pagos
			WHERE empresa = $1 AND fecha_creacion::date >= $2::date AND fecha_creacion::date <= $3::date
		`, empresa, desde, hasta).Scan(&s.TotalPagado, &s.TotalCuentasCobradas)
	} else {
		err = db.QueryRow(`
			SELECT COALESCE(SUM(monto), 0), COUNT(monto)
			FROM pagos
			WHERE fecha_creacion::date >= $1::date AND fecha_creacion::date <= $2::date
		`, desde, hasta).Scan(&s.TotalPagado, &s.TotalCuentasCobradas)
	}
	if err != nil {
		return Summary{}, err
	}
	return s, nil
}

// MonthlyReport groups the same aggregation by calendar month of
// fecha_creacion, ordered chronologically.
func MonthlyReport(db *sql.DB, desde, hasta time.Time, empresa string) ([]MonthlySummary, error) {
	var rows *sql.Rows
	var err error
	if empresa != "" {
		rows, err = db.Query(`
			SELECT to_char(fecha_creacion, 'YYYY-MM') AS mes, COALESCE(SUM(monto), 0), COUNT(monto)
			FROM pagos
			WHERE empresa = $1 AND fecha_creacion::date >= $2::date AND fecha_creacion::date <= $3::date
			GROUP BY mes
			ORDER BY mes
		`, empresa, desde, hasta)
	} else {
		rows, err = db.Query(`
			SELECT to_char(fecha_creacion, 'YYYY-MM') AS mes, COALESCE(SUM(monto), 0), COUNT(monto)
			FROM pagos
			WHERE fecha_creacion::date >= $1::date AND fecha_creacion::date <= $2::date
			GROUP BY mes
			ORDER BY mes
		`, desde, hasta)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]MonthlySummary, 0)
	for rows.Next() {
		var m MonthlySummary
		if err := rows.Scan(&m.Month, &m.TotalPagado, &m.TotalCuentasCobradas); err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// SearchPagos returns the individual records in the filtered range.
func SearchPagos(db *sql.DB, desde, hasta time.Time, empresa string) ([]PagoRow, error) {
	var rows *sql.Rows
	var err error
	if empresa != "" {
		rows, err = db.Query(`
			SELECT dni, oponente, monto, empresa, to_char(fecha_pago, 'YYYY-MM-DD'), cuotas, fecha_creacion
			FROM pagos
			WHERE empresa = $1 AND fecha_creacion::date >= $2::date AND fecha_creacion::date <= $3::date
			ORDER BY fecha_creacion
		`, empresa, desde, hasta)
	} else {
		rows, err = db.Query(`
			SELECT dni, oponente, monto, empresa, to_char(fecha_pago, 'YYYY-MM-DD'), cuotas, fecha_creacion
			FROM pagos
			WHERE fecha_creacion::date >= $1::date AND fecha_creacion::date <= $2::date
			ORDER BY fecha_creacion
		`, desde, hasta)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]PagoRow, 0)
	for rows.Next() {
		var p PagoRow
		if err := rows.Scan(&p.Dni, &p.Oponente, &p.Monto, &p.Empresa, &p.FechaPago, &p.Cuotas, &p.FechaCreacion); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// GetEmpresas returns the distinct empresa values across all pagos.
func GetEmpresas(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT empresa FROM pagos ORDER BY empresa`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	empresas := make([]string, 0)
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, err
		}
		empresas = append(empresas, e)
	}
	return empresas, rows.Err()
}
