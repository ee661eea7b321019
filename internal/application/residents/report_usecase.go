package residents

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de residentes y estado de renta.
type ReportUseCase struct {
	users     repository.UserRepository
	layout    housing.Layout
	pgName    string
	generator ports.ResidentReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando el generador de PDF.
func NewReportUseCase(users repository.UserRepository, layout housing.Layout, pgName string, generator ports.ResidentReportGenerator) *ReportUseCase {
	return &ReportUseCase{users: users, layout: layout, pgName: pgName, generator: generator, now: time.Now}
}

// ResidentsPDF devuelve el PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) ResidentsPDF(ctx context.Context, actor access.Actor) (pdfBytes []byte, filename string, err error) {
	if err := access.Authorize(actor, access.CapExportReport); err != nil {
		return nil, "", err
	}
	list, err := uc.users.ListResidents(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar residentes: %w", err)
	}
	housing.SortResidents(list)
	now := uc.now()
	pdfBytes, err = uc.generator.GenerateResidentReport(ctx, ports.ResidentReport{
		PGName:      uc.pgName,
		GeneratedAt: now,
		Occupancy:   housing.ComputeOccupancy(uc.layout, list, now),
		Residents:   list,
	})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("residentes-%s.pdf", now.Format(housing.DateLayout)), nil
}
