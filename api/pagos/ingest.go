package pagos

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Resolve runs the in-memory part of the pipeline over one parsed table:
// the whole-table required-column check, per-row normalization and the
// dedup pass against the existing fingerprint snapshot.
func Resolve(t *Table, existing map[string]struct{}) (*BatchResult, error) {
	if missing := t.MissingRequired(); len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	candidates := make([]*Pago, 0, len(t.Rows))
	var skipped []RowReject
	for i := range t.Rows {
		p, reject := NormalizeRow(t, i)
		if reject != nil {
			log.Printf("[INFO] row %d skipped: %s", reject.Row, reject.Reason)
			skipped = append(skipped, *reject)
			continue
		}
		candidates = append(candidates, p)
	}

	accepted, duplicates := Dedupe(existing, candidates)
	return &BatchResult{
		Accepted:   accepted,
		Skipped:    skipped,
		Duplicates: len(duplicates),
		TotalRows:  len(t.Rows),
	}, nil
}

// Ingest processes one uploaded file start to finish: parse, resolve
// against the stored fingerprints, commit the accepted set atomically.
// Row-level issues are reported in the result, never returned as errors.
func Ingest(ctx context.Context, pool *pgxpool.Pool, data []byte, filename string) (*IngestResult, error) {
	table, err := ReadTable(data, filename)
	if err != nil {
		return nil, err
	}

	existing, err := LoadExistingHashes(ctx, pool)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] %d existing pagos loaded by hash", len(existing))

	batch, err := Resolve(table, existing)
	if err != nil {
		return nil, err
	}

	if err := BulkInsert(ctx, pool, batch.Accepted); err != nil {
		return nil, err
	}
	log.Printf("[INFO] %d new pagos inserted (%d duplicates, %d skipped)",
		len(batch.Accepted), batch.Duplicates, len(batch.Skipped))

	return &IngestResult{
		BatchID:       uuid.New().String(),
		FileName:      filename,
		TotalRows:     batch.TotalRows,
		AcceptedCount: len(batch.Accepted),
		Accepted:      batch.Accepted,
		Skipped:       batch.Skipped,
		Duplicates:    batch.Duplicates,
	}, nil
}
