package ports

import (
	"context"
	"time"

	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
)

// ResidentReport datos del reporte de residentes y estado de renta.
type ResidentReport struct {
	PGName      string
	GeneratedAt time.Time
	Occupancy   housing.Occupancy
	Residents   []*entity.User // ordenados por habitación
}

// ResidentReportGenerator genera la representación en PDF del reporte.
type ResidentReportGenerator interface {
	GenerateResidentReport(ctx context.Context, report ResidentReport) ([]byte, error)
}
