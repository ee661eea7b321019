package dto

// CreateResidentRequest alta de residente por el Admin. RoomNumber opcional:
// si viene, la habitación se asigna en la misma operación.
type CreateResidentRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	RoomNumber  *int   `json:"roomNumber,omitempty"`
	EntryDate   string `json:"entryDate"`          // YYYY-MM-DD
	ExitDate    string `json:"exitDate,omitempty"` // YYYY-MM-DD, vacío = sin fecha de salida
	Password    string `json:"password,omitempty"`
}

// AllocateRoomRequest asignación de habitación.
type AllocateRoomRequest struct {
	RoomNumber int `json:"roomNumber"`
}

// RentStatusRequest marca la renta como pagada o pendiente.
type RentStatusRequest struct {
	IsRentPaid *bool `json:"isRentPaid"`
}

// ResidencyDateRequest fecha de entrada o salida. En la salida, vacío la borra.
type ResidencyDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// ResidentListResponse directorio de residentes.
type ResidentListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

// AvailableRoomsResponse habitaciones libres.
type AvailableRoomsResponse struct {
	Rooms      []int `json:"rooms"`
	TotalRooms int   `json:"totalRooms"`
}

// OccupancyResponse ocupación actual.
type OccupancyResponse struct {
	Occupied   int     `json:"occupied"`
	TotalRooms int     `json:"totalRooms"`
	Percent    float64 `json:"percent"`
}
