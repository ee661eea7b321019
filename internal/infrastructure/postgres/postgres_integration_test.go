//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/pg-hostel-api/internal/application/residents"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pg-hostel-api/pkg/config"
)

func newPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("smart_pg"),
		tcpostgres.WithUsername("pg"),
		tcpostgres.WithPassword("pg"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	require.NoError(t, postgres.Migrate(ctx, pool), "las migraciones son idempotentes")
	return pool
}

func resident(id, email string, room *int) *entity.User {
	now := time.Now().UTC()
	return &entity.User{
		ID: id, Name: "Residente " + id, Email: email, Role: entity.RoleResident,
		RoomNumber: room, EntryDate: entity.DateOnly(now.AddDate(0, -1, 0)),
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestUserRepo_CRUD(t *testing.T) {
	pool := newPostgres(t)
	repo := postgres.NewUserRepository(pool)
	ctx := context.Background()

	u := resident("r1", "r1@pg.test", entity.IntPtr(101))
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, resident("r2", "r1@pg.test", nil)), domain.ErrEmailAlreadyExists)

	got, err := repo.GetByEmail(ctx, "r1@pg.test")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 101, *got.RoomNumber)
	assert.Nil(t, got.ExitDate)

	exit := entity.DateOnly(time.Now().AddDate(0, 1, 0))
	got.ExitDate = &exit
	got.IsRentPaid = true
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, again.ExitDate)
	assert.True(t, exit.Equal(*again.ExitDate))
	assert.True(t, again.IsRentPaid)

	missing, err := repo.GetByID(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestComplaintAndNoticeRepos(t *testing.T) {
	pool := newPostgres(t)
	ctx := context.Background()
	require.NoError(t, postgres.NewUserRepository(pool).Create(ctx, resident("r1", "r1@pg.test", nil)))

	complaints := postgres.NewComplaintRepository(pool)
	now := time.Now().UTC()
	c := &entity.Complaint{ID: "c1", ResidentID: "r1", ResidentName: "R1", Type: "Wi-Fi", Status: entity.ComplaintPending, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, complaints.Create(ctx, c))

	ok, err := complaints.UpdateStatus(ctx, "c1", entity.ComplaintPending, entity.ComplaintResolved, now)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = complaints.UpdateStatus(ctx, "c1", entity.ComplaintPending, entity.ComplaintResolved, now)
	require.NoError(t, err)
	assert.False(t, ok, "el CAS falla si el estado ya cambió")

	mine, err := complaints.ListByResident(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	notices := postgres.NewNoticeRepository(pool)
	require.NoError(t, notices.Create(ctx, &entity.Notice{ID: "n1", Title: "uno", Content: "x", CreatedBy: "Owner", CreatedAt: now}))
	require.NoError(t, notices.Create(ctx, &entity.Notice{ID: "n2", Title: "dos", Content: "y", CreatedBy: "Owner", CreatedAt: now}))
	list, err := notices.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "dos", list[0].Title)
}

func TestTxRunner_AsignacionConcurrente(t *testing.T) {
	pool := newPostgres(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	ids := []string{"a", "b", "c", "d", "e"}
	for _, id := range ids {
		require.NoError(t, users.Create(ctx, resident(id, id+"@pg.test", nil)))
	}

	uc := residents.NewResidentUseCase(users, postgres.NewTxRunner(pool), housing.NewLayout(10), nil, nil)
	admin := access.Actor{UserID: "adm", Role: entity.RoleAdmin}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := uc.Allocate(ctx, admin, id, 101); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
	assert.Equal(t, 1, success)

	free, err := uc.ListAvailableRooms(ctx, admin)
	require.NoError(t, err)
	assert.NotContains(t, free.Rooms, 101)
}
