package repository

import (
	"context"

	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
)

// NoticeRepository puerto del tablón de anuncios (solo inserción).
type NoticeRepository interface {
	Create(ctx context.Context, notice *entity.Notice) error
	// List anuncios más recientes primero; limit <= 0 = sin límite.
	List(ctx context.Context, limit int) ([]*entity.Notice, error)
}
