package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pg-hostel-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen del panel principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del panel según el rol del token.
// GET /api/dashboard/summary
//
// Admin: ocupación, total de residentes, Active Issues y últimas quejas.
// Resident: su habitación (o "asignación pendiente"), sus Active Issues y los
// últimos anuncios. Todo se calcula en el momento.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
