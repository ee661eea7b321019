package entity

import "time"

// Estados de una queja. Pending es el estado inicial y Resolved el terminal.
const (
	ComplaintPending  = "Pending"
	ComplaintResolved = "Resolved"
)

// ValidComplaintStatus informa si status es un estado conocido.
func ValidComplaintStatus(status string) bool {
	return status == ComplaintPending || status == ComplaintResolved
}

// Complaint representa una queja presentada por un residente. Nunca se elimina.
type Complaint struct {
	ID           string
	ResidentID   string // dueño, inmutable
	ResidentName string // desnormalizado para mostrar
	Type         string // categoría libre (Wi-Fi, limpieza, agua...)
	Description  string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive informa si la queja cuenta como "Active Issue".
func (c *Complaint) IsActive() bool {
	return c.Status != ComplaintResolved
}

// CanTransitionTo valida la máquina de estados Pending -> Resolved.
// Repetir el estado actual se permite (no-op); reabrir una queja resuelta no.
func (c *Complaint) CanTransitionTo(status string) bool {
	if !ValidComplaintStatus(status) {
		return false
	}
	if c.Status == status {
		return true
	}
	return c.Status == ComplaintPending && status == ComplaintResolved
}
