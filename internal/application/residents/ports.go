package residents

import (
	"context"

	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción que además queda serializada
// con cualquier otra mutación de residentes (asignación, fechas, renta).
// Si fn devuelve error la transacción se revierte.
type TxRunner interface {
	RunSerialized(ctx context.Context, fn func(users repository.UserRepository) error) error
}
