package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
)

var _ repository.ComplaintRepository = (*ComplaintRepo)(nil)

const complaintColumns = `id, resident_id, resident_name, type, description, status, created_at, updated_at`

// ComplaintRepo implementación del puerto ComplaintRepository sobre PostgreSQL.
type ComplaintRepo struct {
	q Querier
}

// NewComplaintRepository construye el adaptador.
func NewComplaintRepository(q Querier) *ComplaintRepo {
	return &ComplaintRepo{q: q}
}

// Create persiste una queja.
func (r *ComplaintRepo) Create(ctx context.Context, c *entity.Complaint) error {
	query := `INSERT INTO complaints (` + complaintColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.ResidentID, c.ResidentName, c.Type, c.Description, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

// GetByID obtiene una queja; (nil, nil) si no existe.
func (r *ComplaintRepo) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	c, err := scanComplaint(r.q.QueryRow(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get complaint: %w", err)
	}
	return c, nil
}

// UpdateStatus compare-and-swap sobre status.
func (r *ComplaintRepo) UpdateStatus(ctx context.Context, id, from, to string, at time.Time) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE complaints SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, from, to, at,
	)
	if err != nil {
		return false, fmt.Errorf("update complaint status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List todas las quejas, más recientes primero.
func (r *ComplaintRepo) List(ctx context.Context) ([]*entity.Complaint, error) {
	return r.list(ctx, `SELECT `+complaintColumns+` FROM complaints ORDER BY created_at DESC, seq DESC`)
}

// ListByResident quejas de un residente, más recientes primero.
func (r *ComplaintRepo) ListByResident(ctx context.Context, residentID string) ([]*entity.Complaint, error) {
	return r.list(ctx,
		`SELECT `+complaintColumns+` FROM complaints WHERE resident_id = $1 ORDER BY created_at DESC, seq DESC`,
		residentID,
	)
}

func (r *ComplaintRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Complaint, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Complaint, 0)
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanComplaint(row pgx.Row) (*entity.Complaint, error) {
	var c entity.Complaint
	if err := row.Scan(&c.ID, &c.ResidentID, &c.ResidentName, &c.Type, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
