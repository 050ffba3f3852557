package reports

import (
	"database/sql"
	"log"
	"net/http"

	"CobranzaSaas/internal/config"
	"CobranzaSaas/internal/serviceiface"
)

type ReportsService struct {
	config map[string]interface{}
	db     *sql.DB
}

func NewReportsService(cfg map[string]interface{}, db *sql.DB) serviceiface.Service {
	return &ReportsService{config: cfg, db: db}
}

func (s *ReportsService) Name() string {
	return "reports"
}

func (s *ReportsService) Start() error {
	go StartReportsService(s.db)
	return nil
}

func (s *ReportsService) Stop() error {
	return nil
}

func StartReportsService(db *sql.DB) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reports/report", ReportHandler(db))
	mux.HandleFunc("/reports/report/monthly", MonthlyReportHandler(db))
	mux.HandleFunc("/reports/pagos", PagosHandler(db))
	mux.HandleFunc("/reports/empresas", EmpresasHandler(db))

	log.Println("Reports Service started on " + config.ReportsAddr)
	if err := http.ListenAndServe(config.ReportsAddr, mux); err != nil {
		log.Fatalf("Reports Service failed: %v", err)
	}
}
