// Package pdf genera el reporte de residentes del PG en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del PG          │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OCUPACIÓN: ocupadas / total (%)                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Hab. | Residente | Teléfono | Entrada | Salida | Renta │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totales de renta pendiente                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ ports.ResidentReportGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.ResidentReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateResidentReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateResidentReport(_ context.Context, report ports.ResidentReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de residentes", true).
		WithAuthor(report.PGName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report.PGName, report.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(occupancyRow(report.Occupancy))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range residentRows(report.Residents, report.GeneratedAt) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report.Residents, report.GeneratedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(pgName string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(pgName, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Residentes y estado de renta", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(at.Format("02/01/2006 15:04"), props.Text{Size: 9, Align: align.Right, Top: 7}),
		),
	)
}

func occupancyRow(occ housing.Occupancy) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Ocupación: %d / %d habitaciones (%.0f%%)", occ.Occupied, occ.TotalRooms, occ.Percent),
				props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Hab.", 1, align.Center),
		h("Residente", 4, align.Left),
		h("Teléfono", 2, align.Left),
		h("Entrada", 2, align.Center),
		h("Salida", 2, align.Center),
		h("Renta", 1, align.Center),
	)
}

func residentRows(residents []*entity.User, asOf time.Time) []core.Row {
	result := make([]core.Row, 0, len(residents))
	for _, r := range residents {
		room := "-"
		if r.RoomNumber != nil {
			room = strconv.Itoa(*r.RoomNumber)
		}
		exit := "-"
		if s := housing.FormatDate(r.ExitDate); s != nil {
			exit = *s
		}
		nameProps := props.Text{Size: 8, Top: 1}
		if r.HasDeparted(asOf) {
			nameProps.Color = colorGray
		}
		rent := props.Text{Size: 8, Align: align.Center, Top: 1}
		rentLabel := "Pagada"
		if !r.IsRentPaid {
			rent.Color = colorAlert
			rentLabel = "Pendiente"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(room, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(r.Name, nameProps)),
			col.New(2).Add(text.New(nonEmpty(r.PhoneNumber, "-"), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.EntryDate.Format(housing.DateLayout), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(exit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(rentLabel, rent)),
		))
	}
	return result
}

func footerRow(residents []*entity.User, asOf time.Time) core.Row {
	active, pending := 0, 0
	for _, r := range residents {
		if r.HasDeparted(asOf) {
			continue
		}
		active++
		if !r.IsRentPaid {
			pending++
		}
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Residentes activos: %d   |   Renta pendiente: %d", active, pending), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2,
		}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
