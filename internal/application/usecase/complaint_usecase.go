package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

// ComplaintUseCase flujo de quejas: Pending -> Resolved.
type ComplaintUseCase struct {
	complaints repository.ComplaintRepository
	users      repository.UserRepository
	metrics    ports.Recorder
	log        *logger.Logger
	now        func() time.Time
}

// NewComplaintUseCase construye el caso de uso.
func NewComplaintUseCase(complaints repository.ComplaintRepository, users repository.UserRepository, metrics ports.Recorder, log *logger.Logger) *ComplaintUseCase {
	if metrics == nil {
		metrics = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ComplaintUseCase{complaints: complaints, users: users, metrics: metrics, log: log, now: time.Now}
}

// File registra una queja del residente autenticado. Siempre empieza Pending.
func (uc *ComplaintUseCase) File(ctx context.Context, actor access.Actor, in dto.FileComplaintRequest) (*dto.ComplaintResponse, error) {
	if err := access.Authorize(actor, access.CapFileComplaint); err != nil {
		return nil, err
	}
	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		return nil, domain.ErrMissingField
	}
	resident, err := uc.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	c := &entity.Complaint{
		ID:           uuid.New().String(),
		ResidentID:   resident.ID,
		ResidentName: resident.Name,
		Type:         kind,
		Description:  strings.TrimSpace(in.Description),
		Status:       entity.ComplaintPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.complaints.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.metrics.ComplaintFiled()
	uc.log.Info().Str("complaint_id", c.ID).Str("resident_id", c.ResidentID).Str("type", kind).Msg("queja registrada")
	out := dto.FromComplaint(c)
	return &out, nil
}

// UpdateStatus cambia el estado de una queja (solo Admin). Repetir el estado
// actual no cambia nada; una queja resuelta no se reabre.
func (uc *ComplaintUseCase) UpdateStatus(ctx context.Context, actor access.Actor, id, status string) (*dto.ComplaintResponse, error) {
	if err := access.Authorize(actor, access.CapUpdateComplaintStatus); err != nil {
		return nil, err
	}
	if !entity.ValidComplaintStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	c, err := uc.complaints.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}
	if c.Status == status {
		out := dto.FromComplaint(c)
		return &out, nil
	}

	now := uc.now()
	ok, err := uc.complaints.UpdateStatus(ctx, id, c.Status, status, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Otro admin la cambió primero: si quedó en el estado pedido, es el mismo resultado.
		current, err := uc.complaints.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil || current.Status != status {
			return nil, domain.ErrInvalidTransition
		}
		out := dto.FromComplaint(current)
		return &out, nil
	}
	c.Status = status
	c.UpdatedAt = now
	if status == entity.ComplaintResolved {
		uc.metrics.ComplaintResolved()
	}
	uc.log.Info().Str("complaint_id", id).Str("status", status).Str("by", actor.UserID).Msg("estado de queja actualizado")
	out := dto.FromComplaint(c)
	return &out, nil
}

// List quejas visibles para el actor: el residente solo ve las suyas, el Admin todas.
func (uc *ComplaintUseCase) List(ctx context.Context, actor access.Actor) (*dto.ComplaintListResponse, error) {
	if err := access.Authorize(actor, access.CapViewComplaints); err != nil {
		return nil, err
	}
	list, err := uc.visible(ctx, actor)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComplaintResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.FromComplaint(c))
	}
	return &dto.ComplaintListResponse{Items: items, ActiveIssues: ActiveIssues(list)}, nil
}

func (uc *ComplaintUseCase) visible(ctx context.Context, actor access.Actor) ([]*entity.Complaint, error) {
	if access.Allowed(actor.Role, access.CapViewAllComplaints) {
		return uc.complaints.List(ctx)
	}
	return uc.complaints.ListByResident(ctx, actor.UserID)
}

// ActiveIssues cuenta las quejas no resueltas.
func ActiveIssues(list []*entity.Complaint) int {
	n := 0
	for _, c := range list {
		if c.IsActive() {
			n++
		}
	}
	return n
}
