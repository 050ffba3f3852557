package reports

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"CobranzaSaas/api"
)

// rangeArgs pulls the shared query parameters off a reporting request.
func rangeArgs(r *http.Request) (time.Time, time.Time, string, error) {
	q := r.URL.Query()
	from, to, err := ParseDateRange(q.Get("fecha_inicio"), q.Get("fecha_fin"))
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return from, to, q.Get("empresa"), nil
}

// Handler: GET /reports/report
func ReportHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, empresa, err := rangeArgs(r)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		summary, err := GenerateReport(db, from, to, empresa)
		if err != nil {
			api.RespondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		api.RespondWithJSON(w, http.StatusOK, summary)
	}
}

// Handler: GET /reports/report/monthly
func MonthlyReportHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, empresa, err := rangeArgs(r)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		results, err := MonthlyReport(db, from, to, empresa)
		if err != nil {
			api.RespondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		api.RespondWithJSON(w, http.StatusOK, results)
	}
}

// Handler: GET /reports/pagos
func PagosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, empresa, err := rangeArgs(r)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrInvalidDateRange) {
				status = http.StatusBadRequest
			}
			api.RespondWithError(w, status, err.Error())
			return
		}
		pagosList, err := SearchPagos(db, from, to, empresa)
		if err != nil {
			api.RespondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		api.RespondWithJSON(w, http.StatusOK, pagosList)
	}
}

// Handler: GET /reports/empresas
func EmpresasHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		empresas, err := GetEmpresas(db)
		if err != nil {
			api.RespondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		api.RespondWithJSON(w, http.StatusOK, empresas)
	}
}
