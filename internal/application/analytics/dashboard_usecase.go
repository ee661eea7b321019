// Package analytics contiene el resumen del panel principal, derivado en cada
// request a partir de residentes, quejas y anuncios.
package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
)

const dashboardRecent = 4 // quejas o anuncios recientes en el widget

// DashboardUseCase genera el resumen del panel según el rol.
//
// Nada se cachea: Active Issues y ocupación se calculan en cada llamada.
type DashboardUseCase struct {
	users      repository.UserRepository
	complaints repository.ComplaintRepository
	notices    *usecase.NoticeUseCase
	layout     housing.Layout
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(users repository.UserRepository, complaints repository.ComplaintRepository, notices *usecase.NoticeUseCase, layout housing.Layout) *DashboardUseCase {
	return &DashboardUseCase{users: users, complaints: complaints, notices: notices, layout: layout, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO para el actor.
//
// Tres lecturas en paralelo:
//  1. residentes (Admin) o el propio usuario (Resident)
//  2. quejas visibles para el actor
//  3. anuncios
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor access.Actor) (*dto.DashboardSummaryDTO, error) {
	if err := access.Authorize(actor, access.CapViewDashboard); err != nil {
		return nil, err
	}
	isAdmin := access.Allowed(actor.Role, access.CapViewAllComplaints)

	var (
		residents  []*entity.User
		self       *entity.User
		complaints []*entity.Complaint
		notices    []*entity.Notice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if isAdmin {
			residents, err = uc.users.ListResidents(gctx)
			return err
		}
		self, err = uc.users.GetByID(gctx, actor.UserID)
		if err == nil && self == nil {
			err = domain.ErrNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		if isAdmin {
			complaints, err = uc.complaints.List(gctx)
		} else {
			complaints, err = uc.complaints.ListByResident(gctx, actor.UserID)
		}
		return err
	})
	g.Go(func() error {
		var err error
		notices, err = uc.notices.All(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		Role:         actor.Role,
		ActiveIssues: usecase.ActiveIssues(complaints),
		Notices:      len(notices),
	}
	if isAdmin {
		occ := housing.ComputeOccupancy(uc.layout, residents, uc.now())
		out.OccupiedRooms = occ.Occupied
		out.TotalRooms = occ.TotalRooms
		out.OccupancyPercent = occ.Percent
		out.TotalResidents = len(residents)
		out.RecentComplaints = make([]dto.ComplaintResponse, 0, dashboardRecent)
		for i, c := range complaints {
			if i == dashboardRecent {
				break
			}
			out.RecentComplaints = append(out.RecentComplaints, dto.FromComplaint(c))
		}
		return out, nil
	}

	if self.OccupiesRoom(uc.now()) {
		out.YourRoom = entity.IntPtr(*self.RoomNumber)
	} else {
		out.RoomPending = true
	}
	out.RecentNotices = make([]dto.NoticeResponse, 0, dashboardRecent)
	for i, n := range notices {
		if i == dashboardRecent {
			break
		}
		out.RecentNotices = append(out.RecentNotices, dto.FromNotice(n))
	}
	return out, nil
}
