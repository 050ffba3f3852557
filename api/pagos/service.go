package pagos

import (
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"CobranzaSaas/internal/config"
	"CobranzaSaas/internal/serviceiface"
)

type PagosService struct {
	config  map[string]interface{}
	pgxPool *pgxpool.Pool
}

func NewPagosService(cfg map[string]interface{}, pool *pgxpool.Pool) serviceiface.Service {
	return &PagosService{config: cfg, pgxPool: pool}
}

func (s *PagosService) Name() string {
	return "pagos"
}

func (s *PagosService) Start() error {
	go StartPagosService(s.pgxPool)
	return nil
}

func (s *PagosService) Stop() error {
	return nil
}

func StartPagosService(pool *pgxpool.Pool) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pagos/upload", UploadPagos(pool))

	log.Println("Pagos Service started on " + config.PagosAddr)
	if err := http.ListenAndServe(config.PagosAddr, mux); err != nil {
		log.Fatalf("Pagos Service failed: %v", err)
	}
}
