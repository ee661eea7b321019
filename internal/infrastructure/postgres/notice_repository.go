package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
)

var _ repository.NoticeRepository = (*NoticeRepo)(nil)

// NoticeRepo tablón de anuncios sobre PostgreSQL.
type NoticeRepo struct {
	q Querier
}

// NewNoticeRepository construye el adaptador.
func NewNoticeRepository(q Querier) *NoticeRepo {
	return &NoticeRepo{q: q}
}

// Create persiste un anuncio.
func (r *NoticeRepo) Create(ctx context.Context, n *entity.Notice) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO notices (id, title, content, created_by, created_at) VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.Title, n.Content, n.CreatedBy, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notice: %w", err)
	}
	return nil
}

// List anuncios más recientes primero. limit <= 0 devuelve todos.
func (r *NoticeRepo) List(ctx context.Context, limit int) ([]*entity.Notice, error) {
	query := `SELECT id, title, content, created_by, created_at FROM notices ORDER BY created_at DESC, seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Notice, 0)
	for rows.Next() {
		var n entity.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
