package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/memory"
)

var (
	admin     = access.Actor{UserID: "admin-1", Role: entity.RoleAdmin}
	residentA = access.Actor{UserID: "res-a", Role: entity.RoleResident}
	residentB = access.Actor{UserID: "res-b", Role: entity.RoleResident}
)

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	entry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, u := range []*entity.User{
		{ID: admin.UserID, Name: "Owner", Email: "owner@pg.test", Role: entity.RoleAdmin, EntryDate: entry},
		{ID: residentA.UserID, Name: "Asha", Email: "a@pg.test", Role: entity.RoleResident, RoomNumber: entity.IntPtr(101), EntryDate: entry},
		{ID: residentB.UserID, Name: "Bilal", Email: "b@pg.test", Role: entity.RoleResident, EntryDate: entry},
	} {
		require.NoError(t, store.Users().Create(ctx, u))
	}
	return store
}

func TestComplaints_VisibilidadPorResidente(t *testing.T) {
	store := seedStore(t)
	uc := usecase.NewComplaintUseCase(store.Complaints(), store.Users(), nil, nil)
	ctx := context.Background()

	a, err := uc.File(ctx, residentA, dto.FileComplaintRequest{Type: "Wi-Fi"})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintPending, a.Status)
	assert.Equal(t, "Asha", a.ResidentName)
	_, err = uc.File(ctx, residentB, dto.FileComplaintRequest{Type: "Agua", Description: "sin agua caliente"})
	require.NoError(t, err)

	listB, err := uc.List(ctx, residentB)
	require.NoError(t, err)
	require.Len(t, listB.Items, 1)
	assert.Equal(t, residentB.UserID, listB.Items[0].ResidentID)
	for _, c := range listB.Items {
		assert.NotEqual(t, a.ID, c.ID)
	}

	all, err := uc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	assert.Equal(t, 2, all.ActiveIssues)
}

func TestComplaints_FileSoloResidente(t *testing.T) {
	store := seedStore(t)
	uc := usecase.NewComplaintUseCase(store.Complaints(), store.Users(), nil, nil)

	_, err := uc.File(context.Background(), admin, dto.FileComplaintRequest{Type: "Wi-Fi"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.File(context.Background(), residentA, dto.FileComplaintRequest{Type: "  "})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestComplaints_UpdateStatus(t *testing.T) {
	store := seedStore(t)
	uc := usecase.NewComplaintUseCase(store.Complaints(), store.Users(), nil, nil)
	ctx := context.Background()
	c, err := uc.File(ctx, residentA, dto.FileComplaintRequest{Type: "Limpieza"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, residentA, c.ID, entity.ComplaintResolved)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.UpdateStatus(ctx, admin, c.ID, "Closed")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.UpdateStatus(ctx, admin, "no-existe", entity.ComplaintResolved)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.UpdateStatus(ctx, admin, c.ID, entity.ComplaintResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintResolved, out.Status)

	out, err = uc.UpdateStatus(ctx, admin, c.ID, entity.ComplaintResolved)
	require.NoError(t, err, "repetir el estado es un no-op")
	assert.Equal(t, entity.ComplaintResolved, out.Status)

	_, err = uc.UpdateStatus(ctx, admin, c.ID, entity.ComplaintPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	list, err := uc.List(ctx, residentA)
	require.NoError(t, err)
	assert.Equal(t, 0, list.ActiveIssues)
}
