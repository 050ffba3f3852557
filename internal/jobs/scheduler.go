package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"CobranzaSaas/internal/config"
	"CobranzaSaas/internal/logger"
	"CobranzaSaas/internal/serviceiface"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

// CronService runs the daily ingest audit summary: totals of pagos
// persisted the previous day, written to the audit log.
type CronService struct {
	config map[string]interface{}
	db     *pgxpool.Pool
	cron   *cron.Cron
}

func NewCronService(cfg map[string]interface{}, db *pgxpool.Pool) serviceiface.Service {
	return &CronService{config: cfg, db: db}
}

func (s *CronService) Name() string {
	return "jobs"
}

func (s *CronService) Start() error {
	schedule := config.DefaultAuditSchedule
	if s.config != nil {
		if v, ok := s.config["audit_schedule"].(string); ok && v != "" {
			schedule = v
		}
	}

	loc, err := time.LoadLocation(config.DefaultTimeZone)
	if err != nil {
		return fmt.Errorf("invalid timezone for jobs service: %v", err)
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(schedule, func() {
		s.runDailyAudit(loc)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily audit job: %v", err)
	}
	c.Start()
	s.cron = c

	log.Println("Jobs service started — daily audit scheduled for " + schedule)
	return nil
}

func (s *CronService) Stop() error {
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Println("Jobs service stopped.")
	return nil
}

func (s *CronService) runDailyAudit(loc *time.Location) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var count int
	var total float64
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(monto), COALESCE(SUM(monto), 0)
		FROM pagos
		WHERE fecha_creacion::date = (now() AT TIME ZONE $1)::date - 1
	`, loc.String()).Scan(&count, &total)
	if err != nil {
		audit(fmt.Sprintf("Daily ingest audit failed: %v", err))
		return
	}
	audit(fmt.Sprintf("Daily ingest audit: %d pagos for %.2f persisted yesterday", count, total))
}

func audit(msg string) {
	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit(msg)
		return
	}
	log.Println("[AUDIT]", msg)
}
