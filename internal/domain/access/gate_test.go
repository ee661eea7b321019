package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
)

var (
	resident = access.Actor{UserID: "res-1", Role: entity.RoleResident}
	admin    = access.Actor{UserID: "adm-1", Role: entity.RoleAdmin}
)

func TestAuthorize_ResidenteNoPuedeMutarRecursosDeAdmin(t *testing.T) {
	for _, capability := range []access.Capability{
		access.CapUpdateComplaintStatus,
		access.CapPostNotice,
		access.CapAllocateRoom,
		access.CapSetRentPaid,
		access.CapAddResident,
		access.CapRecordResidency,
		access.CapViewAllComplaints,
		access.CapExportReport,
	} {
		err := access.Authorize(resident, capability)
		assert.ErrorIs(t, err, domain.ErrForbidden, "residente no debe tener %s", capability)
		assert.True(t, errors.Is(err, domain.ErrAuthorization))
	}
}

func TestAuthorize_AdminNoPresentaQuejasNiSeRegistra(t *testing.T) {
	assert.ErrorIs(t, access.Authorize(admin, access.CapFileComplaint), domain.ErrForbidden)
	assert.ErrorIs(t, access.Authorize(admin, access.CapRegister), domain.ErrForbidden)
}

func TestAuthorize_CapacidadesCompartidas(t *testing.T) {
	for _, capability := range []access.Capability{
		access.CapViewNotices, access.CapViewComplaints, access.CapViewDashboard,
		access.CapViewProfile, access.CapAskAssistant,
	} {
		assert.NoError(t, access.Authorize(resident, capability))
		assert.NoError(t, access.Authorize(admin, capability))
	}
}

func TestAuthorize_RolDesconocidoYCapacidadDesconocida(t *testing.T) {
	assert.ErrorIs(t, access.Authorize(access.Actor{Role: "guest"}, access.CapViewNotices), domain.ErrForbidden)
	assert.ErrorIs(t, access.Authorize(admin, access.Capability("unknown")), domain.ErrForbidden)
}

func TestSelfService_PuedeRegistrarse(t *testing.T) {
	assert.NoError(t, access.Authorize(access.SelfService(), access.CapRegister))
	assert.Equal(t, []string{entity.RoleResident}, access.RolesWith(access.CapRegister))
	assert.Equal(t, []string{entity.RoleResident, entity.RoleAdmin}, access.RolesWith(access.CapViewNotices))
}
