package pagos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"CobranzaSaas/api/constants"
)

// PersistenceError wraps a store failure during the batch commit. The
// transaction is rolled back in full before this is returned.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return constants.ErrPersistenceFailure + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LoadExistingHashes takes the fingerprint snapshot for one batch. Loaded
// once up front: a single round-trip instead of an existence check per row.
func LoadExistingHashes(ctx context.Context, pool *pgxpool.Pool) (map[string]struct{}, error) {
	rows, err := pool.Query(ctx, `SELECT record_hash FROM pagos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hashes := make(map[string]struct{})
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hashes[h] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hashes, nil
}

// BulkInsert commits all accepted records inside one transaction: a single
// multi-row insert, all or nothing. On success every record carries its
// store-assigned fecha_creacion.
func BulkInsert(ctx context.Context, pool *pgxpool.Pool, pagos []*Pago) error {
	if len(pagos) == 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return &PersistenceError{Err: err}
	}
	defer tx.Rollback(ctx)

	placeholders := make([]string, 0, len(pagos))
	args := make([]interface{}, 0, len(pagos)*7)
	for i, p := range pagos {
		base := i * 7
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, p.Dni, p.Oponente, p.Monto, p.Empresa, p.FechaPago, p.Cuotas, p.RecordHash)
	}

	query := `INSERT INTO pagos (dni, oponente, monto, empresa, fecha_pago, cuotas, record_hash) VALUES ` +
		strings.Join(placeholders, ", ") + ` RETURNING fecha_creacion`
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return &PersistenceError{Err: err}
	}
	i := 0
	for rows.Next() {
		var created time.Time
		if err := rows.Scan(&created); err != nil {
			rows.Close()
			return &PersistenceError{Err: err}
		}
		if i < len(pagos) {
			pagos[i].FechaCreacion = &created
		}
		i++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return &PersistenceError{Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}
