// Package housing contiene las reglas puras del PG: numeración de habitaciones,
// ocupación, asignación y fechas de estadía. No accede a la base de datos.
package housing

import (
	"sort"
	"time"

	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
)

// DefaultFirstRoom primer número de habitación del PG.
const DefaultFirstRoom = 101

// Layout describe las habitaciones existentes: rango contiguo
// [FirstRoom, FirstRoom+TotalRooms-1].
type Layout struct {
	FirstRoom  int
	TotalRooms int
}

// NewLayout construye la numeración estándar 101..100+totalRooms.
func NewLayout(totalRooms int) Layout {
	return Layout{FirstRoom: DefaultFirstRoom, TotalRooms: totalRooms}
}

// Contains informa si room existe en el PG.
func (l Layout) Contains(room int) bool {
	return room >= l.FirstRoom && room < l.FirstRoom+l.TotalRooms
}

// Numbers devuelve todas las habitaciones en orden ascendente.
func (l Layout) Numbers() []int {
	if l.TotalRooms <= 0 {
		return []int{}
	}
	out := make([]int, 0, l.TotalRooms)
	for i := 0; i < l.TotalRooms; i++ {
		out = append(out, l.FirstRoom+i)
	}
	return out
}

// Occupants mapea habitación -> residente que la ocupa en el día asOf.
// Los residentes con fecha de salida alcanzada no ocupan habitación.
func Occupants(residents []*entity.User, asOf time.Time) map[int]*entity.User {
	out := make(map[int]*entity.User, len(residents))
	for _, r := range residents {
		if r.OccupiesRoom(asOf) {
			out[*r.RoomNumber] = r
		}
	}
	return out
}

// AvailableRooms habitaciones del layout sin ocupante, en orden ascendente.
func AvailableRooms(l Layout, residents []*entity.User, asOf time.Time) []int {
	out := make([]int, 0, l.TotalRooms)
	for _, room := range Rooms(l, residents, asOf) {
		if room.IsFree() {
			out = append(out, room.Number)
		}
	}
	return out
}

// Rooms vista derivada de todas las habitaciones con su ocupante.
func Rooms(l Layout, residents []*entity.User, asOf time.Time) []entity.Room {
	occupied := Occupants(residents, asOf)
	out := make([]entity.Room, 0, l.TotalRooms)
	for _, n := range l.Numbers() {
		out = append(out, entity.Room{Number: n, Occupant: occupied[n]})
	}
	return out
}

// CheckAllocation valida asignar room a resident dado el estado actual.
//
// Devuelve (true, nil) si el residente ya ocupa esa habitación: la asignación
// es un no-op. ErrRoomUnavailable si la habitación no existe o la ocupa otro
// residente; ErrCapacityExceeded si ya no quedan plazas. Un residente cuya
// salida ya llegó no puede recibir habitación (ErrResidentDeparted): la
// asignación quedaría guardada sin ocuparla.
func CheckAllocation(l Layout, residents []*entity.User, resident *entity.User, room int, asOf time.Time) (bool, error) {
	if !l.Contains(room) {
		return false, domain.ErrRoomUnavailable
	}
	if resident.HasDeparted(asOf) {
		return false, domain.ErrResidentDeparted
	}
	if resident.OccupiesRoom(asOf) && *resident.RoomNumber == room {
		return true, nil
	}
	occupied := Occupants(residents, asOf)
	if holder, taken := occupied[room]; taken && holder.ID != resident.ID {
		return false, domain.ErrRoomUnavailable
	}
	others := 0
	for _, occupant := range occupied {
		if occupant.ID != resident.ID {
			others++
		}
	}
	if others >= l.TotalRooms {
		return false, domain.ErrCapacityExceeded
	}
	return false, nil
}

// Occupancy resumen de ocupación.
type Occupancy struct {
	Occupied   int
	TotalRooms int
	Percent    float64
}

// ComputeOccupancy cuenta las habitaciones del layout ocupadas en asOf.
func ComputeOccupancy(l Layout, residents []*entity.User, asOf time.Time) Occupancy {
	occupied := 0
	for n := range Occupants(residents, asOf) {
		if l.Contains(n) {
			occupied++
		}
	}
	occ := Occupancy{Occupied: occupied, TotalRooms: l.TotalRooms}
	if l.TotalRooms > 0 {
		occ.Percent = float64(occupied) / float64(l.TotalRooms) * 100
	}
	return occ
}

// SortResidents ordena por habitación (sin habitación al final) y luego por nombre.
func SortResidents(residents []*entity.User) {
	sort.SliceStable(residents, func(i, j int) bool {
		a, b := residents[i], residents[j]
		switch {
		case a.RoomNumber != nil && b.RoomNumber != nil && *a.RoomNumber != *b.RoomNumber:
			return *a.RoomNumber < *b.RoomNumber
		case a.RoomNumber != nil && b.RoomNumber == nil:
			return true
		case a.RoomNumber == nil && b.RoomNumber != nil:
			return false
		}
		return a.Name < b.Name
	})
}
