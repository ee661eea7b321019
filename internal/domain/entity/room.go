package entity

// Room es una vista derivada: no se persiste, se calcula a partir de los
// residentes y de la capacidad configurada del PG.
type Room struct {
	Number   int
	Occupant *User // nil = libre
}

// IsFree informa si la habitación no tiene ocupante.
func (r Room) IsFree() bool {
	return r.Occupant == nil
}
