package residents_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/application/residents"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
)

type captureGenerator struct {
	got ports.ResidentReport
}

func (g *captureGenerator) GenerateResidentReport(_ context.Context, r ports.ResidentReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-1.3"), nil
}

func TestReportUseCase_ResidentsPDF(t *testing.T) {
	uc, store := newUseCase(4)
	addResident(t, uc, "b@pg.test", entity.IntPtr(102))
	addResident(t, uc, "a@pg.test", entity.IntPtr(101))
	addResident(t, uc, "c@pg.test", nil)

	gen := &captureGenerator{}
	report := residents.NewReportUseCase(store.Users(), housing.NewLayout(4), "Smart PG", gen)

	pdf, filename, err := report.ResidentsPDF(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.True(t, strings.HasPrefix(filename, "residentes-"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))

	require.Len(t, gen.got.Residents, 3)
	assert.Equal(t, 101, *gen.got.Residents[0].RoomNumber)
	assert.Nil(t, gen.got.Residents[2].RoomNumber)
	assert.Equal(t, 2, gen.got.Occupancy.Occupied)
	assert.Equal(t, "Smart PG", gen.got.PGName)

	_, _, err = report.ResidentsPDF(context.Background(), resident)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
