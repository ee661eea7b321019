// Package memory implementa los repositorios en memoria. Se usa con
// STORAGE_DRIVER=memory (desarrollo local) y en los tests de casos de uso y HTTP.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*entity.User
	complaints map[string]*entity.Complaint
	notices    []*entity.Notice
	seq        map[string]int64 // orden de inserción para desempatar fechas iguales

	serial sync.Mutex // equivalente al advisory lock de Postgres
	next   int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]*entity.User),
		complaints: make(map[string]*entity.Complaint),
		seq:        make(map[string]int64),
	}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Complaints repositorio de quejas.
func (s *Store) Complaints() *ComplaintRepo { return &ComplaintRepo{s: s} }

// Notices repositorio de anuncios.
func (s *Store) Notices() *NoticeRepo { return &NoticeRepo{s: s} }

// RunSerialized ejecuta fn en exclusión mutua con el resto de mutaciones de
// residentes. No hay rollback: fn debe validar antes de escribir.
func (s *Store) RunSerialized(ctx context.Context, fn func(users repository.UserRepository) error) error {
	s.serial.Lock()
	defer s.serial.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.Users())
}

func (s *Store) nextSeq(id string) {
	s.next++
	s.seq[id] = s.next
}

// newerFirst ordena por fecha de creación descendente; a igual fecha, la última insertada primero.
func (s *Store) newerFirst(a, b time.Time, idA, idB string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return s.seq[idA] > s.seq[idB]
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.RoomNumber != nil {
		c.RoomNumber = entity.IntPtr(*u.RoomNumber)
	}
	if u.ExitDate != nil {
		d := *u.ExitDate
		c.ExitDate = &d
	}
	return &c
}

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	r.s.nextSeq(user.ID)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// GetForUpdate igual que GetByID; el bloqueo lo da RunSerialized.
func (r *UserRepo) GetForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepo) ListResidents(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if u.IsResident() {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.s.seq[out[i].ID] < r.s.seq[out[j].ID] })
	return out, nil
}

// ComplaintRepo implementa repository.ComplaintRepository.
type ComplaintRepo struct{ s *Store }

var _ repository.ComplaintRepository = (*ComplaintRepo)(nil)

func (r *ComplaintRepo) Create(_ context.Context, c *entity.Complaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.complaints[c.ID] = &cp
	r.s.nextSeq(c.ID)
	return nil
}

func (r *ComplaintRepo) GetByID(_ context.Context, id string) (*entity.Complaint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.complaints[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *ComplaintRepo) UpdateStatus(_ context.Context, id, from, to string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.complaints[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	c.UpdatedAt = at
	return true, nil
}

func (r *ComplaintRepo) List(_ context.Context) ([]*entity.Complaint, error) {
	return r.filter(func(*entity.Complaint) bool { return true }), nil
}

func (r *ComplaintRepo) ListByResident(_ context.Context, residentID string) ([]*entity.Complaint, error) {
	return r.filter(func(c *entity.Complaint) bool { return c.ResidentID == residentID }), nil
}

func (r *ComplaintRepo) filter(keep func(*entity.Complaint) bool) []*entity.Complaint {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Complaint, 0)
	for _, c := range r.s.complaints {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.newerFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}

// NoticeRepo implementa repository.NoticeRepository.
type NoticeRepo struct{ s *Store }

var _ repository.NoticeRepository = (*NoticeRepo)(nil)

func (r *NoticeRepo) Create(_ context.Context, n *entity.Notice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *n
	r.s.notices = append(r.s.notices, &cp)
	r.s.nextSeq(n.ID)
	return nil
}

func (r *NoticeRepo) List(_ context.Context, limit int) ([]*entity.Notice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Notice, 0, len(r.s.notices))
	for _, n := range r.s.notices {
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.newerFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
