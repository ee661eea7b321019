package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pg-hostel-api/internal/application/residents"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
)

var _ residents.TxRunner = (*TxRunner)(nil)

// allocationLockKey clave del advisory lock que serializa las mutaciones de residentes.
const allocationLockKey int64 = 0x50475F524F4F4D // "PG_ROOM"

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSerialized inicia una transacción, toma el advisory lock de asignación,
// ejecuta fn con el repo de usuarios atado a la tx y hace Commit o Rollback.
// El lock se libera solo al terminar la transacción.
func (r *TxRunner) RunSerialized(ctx context.Context, fn func(users repository.UserRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, allocationLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	if err := fn(NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
