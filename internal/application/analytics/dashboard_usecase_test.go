package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/internal/application/analytics"
	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/memory"
)

func TestDashboard_PorRol(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	entry := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: "adm", Name: "Owner", Email: "o@pg.test", Role: entity.RoleAdmin, EntryDate: entry}))
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: "r1", Name: "Asha", Email: "a@pg.test", Role: entity.RoleResident, RoomNumber: entity.IntPtr(101), EntryDate: entry}))
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: "r2", Name: "Bilal", Email: "b@pg.test", Role: entity.RoleResident, EntryDate: entry}))

	admin := access.Actor{UserID: "adm", Role: entity.RoleAdmin}
	r1 := access.Actor{UserID: "r1", Role: entity.RoleResident}
	r2 := access.Actor{UserID: "r2", Role: entity.RoleResident}

	complaints := usecase.NewComplaintUseCase(store.Complaints(), store.Users(), nil, nil)
	notices := usecase.NewNoticeUseCase(store.Notices(), store.Users(), nil, nil, nil)
	for _, kind := range []string{"Wi-Fi", "Agua"} {
		_, err := complaints.File(ctx, r1, dto.FileComplaintRequest{Type: kind})
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		_, err := notices.Post(ctx, admin, dto.CreateNoticeRequest{Title: "Aviso", Content: "texto"})
		require.NoError(t, err)
	}

	uc := analytics.NewDashboardUseCase(store.Users(), store.Complaints(), notices, housing.NewLayout(10))

	sum, err := uc.GetSummary(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.OccupiedRooms)
	assert.Equal(t, 10, sum.TotalRooms)
	assert.InDelta(t, 10.0, sum.OccupancyPercent, 0.001)
	assert.Equal(t, 2, sum.TotalResidents)
	assert.Equal(t, 2, sum.ActiveIssues)
	assert.Equal(t, 5, sum.Notices)
	assert.Len(t, sum.RecentComplaints, 2)

	mine, err := uc.GetSummary(ctx, r1)
	require.NoError(t, err)
	require.NotNil(t, mine.YourRoom)
	assert.Equal(t, 101, *mine.YourRoom)
	assert.Equal(t, 2, mine.ActiveIssues)
	assert.Len(t, mine.RecentNotices, 4)
	assert.Zero(t, mine.TotalResidents)

	pending, err := uc.GetSummary(ctx, r2)
	require.NoError(t, err)
	assert.Nil(t, pending.YourRoom)
	assert.True(t, pending.RoomPending)
	assert.Equal(t, 0, pending.ActiveIssues)
}
