package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pg-hostel-api/internal/application/residents"
)

// ReportHandler exportes en PDF.
type ReportHandler struct {
	uc *residents.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *residents.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ResidentsPDF godoc
// @Summary      Directorio de residentes en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/residents.pdf [get]
func (h *ReportHandler) ResidentsPDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.ResidentsPDF(c.Context(), ActorFrom(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
