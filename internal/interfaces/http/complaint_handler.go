package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
)

// ComplaintHandler quejas de residentes.
type ComplaintHandler struct {
	uc *usecase.ComplaintUseCase
}

// NewComplaintHandler construye el handler.
func NewComplaintHandler(uc *usecase.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

// List godoc
// @Summary      Listar quejas
// @Description  El residente ve solo las suyas; el Admin ve todas. Incluye el conteo de Active Issues.
// @Tags         complaints
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ComplaintListResponse
// @Router       /api/complaints [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// File godoc
// @Summary      Registrar queja
// @Tags         complaints
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FileComplaintRequest  true  "type, description"
// @Success      201   {object}  dto.ComplaintResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/complaints [post]
func (h *ComplaintHandler) File(c *fiber.Ctx) error {
	var in dto.FileComplaintRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.File(c.Context(), ActorFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una queja
// @Tags         complaints
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la queja"
// @Param        body  body  dto.UpdateComplaintStatusRequest  true  "status: Pending | Resolved"
// @Success      200   {object}  dto.ComplaintResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateComplaintStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), ActorFrom(c), c.Params("id"), in.Status)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
