package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
)

// ComplaintRepository puerto de persistencia de quejas. No hay borrado: las
// quejas son el historial de auditoría.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)
	// UpdateStatus cambia el estado solo si el actual es from. Devuelve false si
	// otro proceso lo cambió antes.
	UpdateStatus(ctx context.Context, id, from, to string, at time.Time) (bool, error)
	// List todas las quejas, más recientes primero.
	List(ctx context.Context) ([]*entity.Complaint, error)
	// ListByResident quejas de un residente, más recientes primero.
	ListByResident(ctx context.Context, residentID string) ([]*entity.Complaint, error)
}
