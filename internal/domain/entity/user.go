package entity

import "time"

// Roles válidos para User. El rol no cambia después de crear la cuenta.
const (
	RoleResident = "Resident"
	RoleAdmin    = "Admin"
)

// ValidRole informa si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleResident || role == RoleAdmin
}

// User representa una identidad del PG: residente (inquilino) o administrador.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash; vacío = la cuenta no puede iniciar sesión
	Role         string // Resident, Admin
	RoomNumber   *int   // nil para Admin o residente sin habitación asignada
	PhoneNumber  string
	EntryDate    time.Time
	ExitDate     *time.Time // nil = reside actualmente
	IsRentPaid   bool       // solo tiene sentido para Resident
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsResident informa si el usuario tiene rol Resident.
func (u *User) IsResident() bool {
	return u != nil && u.Role == RoleResident
}

// HasDeparted informa si la fecha de salida ya llegó respecto al día asOf.
// Una salida futura (planificada) todavía no cuenta como partida.
func (u *User) HasDeparted(asOf time.Time) bool {
	if u.ExitDate == nil {
		return false
	}
	return !DateOnly(*u.ExitDate).After(DateOnly(asOf))
}

// OccupiesRoom informa si el residente ocupa su habitación en el día asOf.
func (u *User) OccupiesRoom(asOf time.Time) bool {
	return u.IsResident() && u.RoomNumber != nil && !u.HasDeparted(asOf)
}

// DateOnly trunca t al día calendario en UTC. Las fechas de entrada y salida se
// comparan siempre a nivel de día.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IntPtr devuelve un puntero a n.
func IntPtr(n int) *int { return &n }
