package dto

import "time"

// RegisterRequest auto-registro de residentes. Role, id y roomNumber que envíe
// el cliente se ignoran: el servidor los asigna.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	PhoneNumber     string `json:"phoneNumber"`
}

// LoginRequest entrada para login: email, password y el rol con el que se intenta entrar.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	RoomNumber  *int      `json:"roomNumber"`
	PhoneNumber string    `json:"phoneNumber"`
	EntryDate   string    `json:"entryDate,omitempty"`
	ExitDate    *string   `json:"exitDate"`
	IsRentPaid  bool      `json:"isRentPaid"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginResponse el usuario autenticado más el token de sesión.
type LoginResponse struct {
	UserResponse
	Token string `json:"token"`
}
