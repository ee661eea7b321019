// Package access es el único punto que conoce qué puede hacer cada rol.
// Los casos de uso y el middleware HTTP consultan la misma tabla de capacidades;
// ningún otro paquete compara roles directamente.
package access

import (
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
)

// Capability identifica una operación protegida.
type Capability string

const (
	CapViewProfile           Capability = "profile:view"
	CapViewNotices           Capability = "notices:view"
	CapPostNotice            Capability = "notices:post"
	CapViewComplaints        Capability = "complaints:view"
	CapViewAllComplaints     Capability = "complaints:view_all"
	CapFileComplaint         Capability = "complaints:file"
	CapUpdateComplaintStatus Capability = "complaints:update_status"
	CapViewResidents         Capability = "residents:view"
	CapAddResident           Capability = "residents:add"
	CapAllocateRoom          Capability = "rooms:allocate"
	CapRecordResidency       Capability = "residents:residency"
	CapSetRentPaid           Capability = "rent:set"
	CapRegister              Capability = "accounts:register"
	CapViewDashboard         Capability = "dashboard:view"
	CapAskAssistant          Capability = "assistant:ask"
	CapExportReport          Capability = "reports:export"
)

var (
	residentOnly = map[string]bool{entity.RoleResident: true}
	adminOnly    = map[string]bool{entity.RoleAdmin: true}
	everyone     = map[string]bool{entity.RoleResident: true, entity.RoleAdmin: true}
)

// capabilities tabla rol -> operación.
var capabilities = map[Capability]map[string]bool{
	CapViewProfile:           everyone,
	CapViewNotices:           everyone,
	CapPostNotice:            adminOnly,
	CapViewComplaints:        everyone,
	CapViewAllComplaints:     adminOnly,
	CapFileComplaint:         residentOnly,
	CapUpdateComplaintStatus: adminOnly,
	CapViewResidents:         adminOnly,
	CapAddResident:           adminOnly,
	CapAllocateRoom:          adminOnly,
	CapRecordResidency:       adminOnly,
	CapSetRentPaid:           adminOnly,
	CapRegister:              residentOnly,
	CapViewDashboard:         everyone,
	CapAskAssistant:          everyone,
	CapExportReport:          adminOnly,
}

// Actor quien invoca una operación (extraído del token).
type Actor struct {
	UserID string
	Role   string
}

// SelfService actor anónimo que se registra a sí mismo como residente.
func SelfService() Actor {
	return Actor{Role: entity.RoleResident}
}

// IsAdmin informa si el actor es administrador.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// Allowed informa si role tiene la capacidad. Capacidades desconocidas se niegan.
func Allowed(role string, capability Capability) bool {
	return capabilities[capability][role]
}

// Authorize devuelve domain.ErrForbidden si el actor no tiene la capacidad.
func Authorize(actor Actor, capability Capability) error {
	if !Allowed(actor.Role, capability) {
		return domain.ErrForbidden
	}
	return nil
}

// RolesWith lista los roles que tienen la capacidad (útil para documentación y tests).
func RolesWith(capability Capability) []string {
	var roles []string
	for _, role := range []string{entity.RoleResident, entity.RoleAdmin} {
		if capabilities[capability][role] {
			roles = append(roles, role)
		}
	}
	return roles
}
