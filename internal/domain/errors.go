package domain

import (
	"errors"
	"fmt"
)

// Categorías de error. Cada error concreto envuelve su categoría para que
// errors.Is funcione tanto con el error puntual como con el grupo.
var (
	ErrAuth          = errors.New("error de autenticación")
	ErrValidation    = errors.New("error de validación")
	ErrAllocation    = errors.New("error de asignación de habitación")
	ErrAuthorization = errors.New("error de autorización")
	ErrTransport     = errors.New("servicio externo no disponible")
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidCredentials = fmt.Errorf("%w: credenciales inválidas", ErrAuth)
	ErrRoleMismatch       = fmt.Errorf("%w: el rol no corresponde a la cuenta", ErrAuth)

	ErrPasswordMismatch   = fmt.Errorf("%w: las contraseñas no coinciden", ErrValidation)
	ErrEmailAlreadyExists = fmt.Errorf("%w: el email ya está registrado", ErrValidation)
	ErrMissingField       = fmt.Errorf("%w: faltan campos obligatorios", ErrValidation)
	ErrInvalidDates       = fmt.Errorf("%w: la fecha de salida no puede ser anterior a la de entrada", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: estado de queja inválido", ErrValidation)
	ErrInvalidDateFormat  = fmt.Errorf("%w: formato de fecha inválido, use YYYY-MM-DD", ErrValidation)
	ErrWeakPassword       = fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", ErrValidation)

	ErrRoomUnavailable  = fmt.Errorf("%w: la habitación no está disponible", ErrAllocation)
	ErrCapacityExceeded = fmt.Errorf("%w: se alcanzó la capacidad total de habitaciones", ErrAllocation)
	ErrResidentDeparted = fmt.Errorf("%w: el residente ya salió del PG", ErrAllocation)

	ErrForbidden = fmt.Errorf("%w: acceso denegado", ErrAuthorization)

	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidTransition = errors.New("una queja resuelta no puede reabrirse")
)
