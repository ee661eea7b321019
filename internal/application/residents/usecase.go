package residents

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pg-hostel-api/internal/application/auth"
	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

// ResidentUseCase directorio de residentes, asignación de habitaciones,
// fechas de estadía y estado de renta. Toda mutación pasa por TxRunner.
type ResidentUseCase struct {
	users   repository.UserRepository
	tx      TxRunner
	layout  housing.Layout
	metrics ports.Recorder
	log     *logger.Logger
	now     func() time.Time
}

// NewResidentUseCase construye el caso de uso.
func NewResidentUseCase(users repository.UserRepository, tx TxRunner, layout housing.Layout, metrics ports.Recorder, log *logger.Logger) *ResidentUseCase {
	if metrics == nil {
		metrics = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ResidentUseCase{users: users, tx: tx, layout: layout, metrics: metrics, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ResidentUseCase) WithClock(now func() time.Time) *ResidentUseCase {
	uc.now = now
	return uc
}

// Layout devuelve la numeración de habitaciones configurada.
func (uc *ResidentUseCase) Layout() housing.Layout {
	return uc.layout
}

// ListResidents directorio completo ordenado por habitación.
func (uc *ResidentUseCase) ListResidents(ctx context.Context, actor access.Actor) (*dto.ResidentListResponse, error) {
	if err := access.Authorize(actor, access.CapViewResidents); err != nil {
		return nil, err
	}
	list, err := uc.users.ListResidents(ctx)
	if err != nil {
		return nil, err
	}
	housing.SortResidents(list)
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.FromUser(u))
	}
	return &dto.ResidentListResponse{Items: items, Total: len(items)}, nil
}

// AddResident alta de un residente por el Admin, con habitación opcional.
func (uc *ResidentUseCase) AddResident(ctx context.Context, actor access.Actor, in dto.CreateResidentRequest) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, access.CapAddResident); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	email := auth.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.EntryDate == "" {
		return nil, domain.ErrMissingField
	}
	entry, err := housing.ParseDate(in.EntryDate)
	if err != nil {
		return nil, err
	}
	exit, err := housing.ParseDate(in.ExitDate)
	if err != nil {
		return nil, err
	}
	if err := housing.ValidateStay(*entry, exit); err != nil {
		return nil, err
	}
	var hash string
	if in.Password != "" {
		if hash, err = auth.HashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleResident,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		EntryDate:    *entry,
		ExitDate:     exit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.RunSerialized(ctx, func(users repository.UserRepository) error {
		existing, err := users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if in.RoomNumber != nil {
			residents, err := users.ListResidents(ctx)
			if err != nil {
				return err
			}
			if _, err := housing.CheckAllocation(uc.layout, residents, user, *in.RoomNumber, now); err != nil {
				return err
			}
			user.RoomNumber = entity.IntPtr(*in.RoomNumber)
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.ResidentRegistered("admin")
	if user.RoomNumber != nil {
		uc.metrics.RoomAllocated()
	}
	uc.log.Info().Str("user_id", user.ID).Str("by", actor.UserID).Msg("residente agregado")
	out := dto.FromUser(user)
	return &out, nil
}

// Allocate asigna room al residente. Reasignar la misma habitación no cambia nada.
func (uc *ResidentUseCase) Allocate(ctx context.Context, actor access.Actor, residentID string, room int) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, access.CapAllocateRoom); err != nil {
		return nil, err
	}
	var (
		out     *entity.User
		changed bool
	)
	err := uc.tx.RunSerialized(ctx, func(users repository.UserRepository) error {
		resident, err := lockResident(ctx, users, residentID)
		if err != nil {
			return err
		}
		residents, err := users.ListResidents(ctx)
		if err != nil {
			return err
		}
		now := uc.now()
		noop, err := housing.CheckAllocation(uc.layout, residents, resident, room, now)
		if err != nil {
			return err
		}
		out = resident
		if noop {
			return nil
		}
		resident.RoomNumber = entity.IntPtr(room)
		resident.UpdatedAt = now
		changed = true
		return users.Update(ctx, resident)
	})
	if err != nil {
		uc.log.Debug().Err(err).Str("resident_id", residentID).Int("room", room).Msg("asignación rechazada")
		return nil, err
	}
	if changed {
		uc.metrics.RoomAllocated()
		uc.log.Info().Str("resident_id", residentID).Int("room", room).Msg("habitación asignada")
	}
	res := dto.FromUser(out)
	return &res, nil
}

// ListAvailableRooms habitaciones libres hoy, en orden ascendente.
func (uc *ResidentUseCase) ListAvailableRooms(ctx context.Context, actor access.Actor) (*dto.AvailableRoomsResponse, error) {
	if err := access.Authorize(actor, access.CapAllocateRoom); err != nil {
		return nil, err
	}
	list, err := uc.users.ListResidents(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableRoomsResponse{
		Rooms:      housing.AvailableRooms(uc.layout, list, uc.now()),
		TotalRooms: uc.layout.TotalRooms,
	}, nil
}

// Occupancy ocupación actual del PG.
func (uc *ResidentUseCase) Occupancy(ctx context.Context, actor access.Actor) (*dto.OccupancyResponse, error) {
	if err := access.Authorize(actor, access.CapViewResidents); err != nil {
		return nil, err
	}
	list, err := uc.users.ListResidents(ctx)
	if err != nil {
		return nil, err
	}
	occ := housing.ComputeOccupancy(uc.layout, list, uc.now())
	return &dto.OccupancyResponse{Occupied: occ.Occupied, TotalRooms: occ.TotalRooms, Percent: occ.Percent}, nil
}

// SetRentPaid fija el estado de renta del período actual. Es idempotente.
func (uc *ResidentUseCase) SetRentPaid(ctx context.Context, actor access.Actor, residentID string, paid bool) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, access.CapSetRentPaid); err != nil {
		return nil, err
	}
	var (
		out     *entity.User
		changed bool
	)
	err := uc.tx.RunSerialized(ctx, func(users repository.UserRepository) error {
		resident, err := lockResident(ctx, users, residentID)
		if err != nil {
			return err
		}
		out = resident
		if resident.IsRentPaid == paid {
			return nil
		}
		resident.IsRentPaid = paid
		resident.UpdatedAt = uc.now()
		changed = true
		return users.Update(ctx, resident)
	})
	if err != nil {
		return nil, err
	}
	if changed {
		uc.metrics.RentStatusChanged(paid)
		uc.log.Info().Str("resident_id", residentID).Bool("paid", paid).Msg("estado de renta actualizado")
	}
	res := dto.FromUser(out)
	return &res, nil
}

// RecordEntry registra la fecha de entrada.
func (uc *ResidentUseCase) RecordEntry(ctx context.Context, actor access.Actor, residentID, date string) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, access.CapRecordResidency); err != nil {
		return nil, err
	}
	entry, err := requiredDate(date)
	if err != nil {
		return nil, err
	}
	var out *entity.User
	err = uc.tx.RunSerialized(ctx, func(users repository.UserRepository) error {
		resident, err := lockResident(ctx, users, residentID)
		if err != nil {
			return err
		}
		if err := housing.ValidateStay(*entry, resident.ExitDate); err != nil {
			return err
		}
		resident.EntryDate = *entry
		resident.UpdatedAt = uc.now()
		out = resident
		return users.Update(ctx, resident)
	})
	if err != nil {
		return nil, err
	}
	res := dto.FromUser(out)
	return &res, nil
}

// RecordExit registra la fecha de salida. Al llegar ese día la habitación
// queda libre; el registro del residente se conserva. Una fecha vacía borra
// la salida y, si el residente vuelve a ocupar su habitación, se revalida.
func (uc *ResidentUseCase) RecordExit(ctx context.Context, actor access.Actor, residentID, date string) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, access.CapRecordResidency); err != nil {
		return nil, err
	}
	var exit *time.Time
	if strings.TrimSpace(date) != "" {
		parsed, err := housing.ParseDate(strings.TrimSpace(date))
		if err != nil {
			return nil, err
		}
		exit = parsed
	}
	var out *entity.User
	err := uc.tx.RunSerialized(ctx, func(users repository.UserRepository) error {
		resident, err := lockResident(ctx, users, residentID)
		if err != nil {
			return err
		}
		if err := housing.ValidateStay(resident.EntryDate, exit); err != nil {
			return err
		}
		now := uc.now()
		updated := *resident
		updated.ExitDate = exit
		// Mover la salida al futuro (o borrarla) puede devolverle la habitación
		// a alguien que ya había salido: hay que revalidarla como asignación nueva.
		if !resident.OccupiesRoom(now) && updated.OccupiesRoom(now) {
			residents, err := users.ListResidents(ctx)
			if err != nil {
				return err
			}
			candidate := updated
			candidate.RoomNumber = nil
			if _, err := housing.CheckAllocation(uc.layout, residents, &candidate, *resident.RoomNumber, now); err != nil {
				return err
			}
		}
		updated.UpdatedAt = now
		out = &updated
		return users.Update(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("resident_id", residentID).Str("exit_date", date).Msg("salida registrada")
	res := dto.FromUser(out)
	return &res, nil
}

func lockResident(ctx context.Context, users repository.UserRepository, id string) (*entity.User, error) {
	u, err := users.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsResident() {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func requiredDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, domain.ErrMissingField
	}
	return housing.ParseDate(strings.TrimSpace(s))
}
