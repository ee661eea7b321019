package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
)

// NoticeHandler tablón de anuncios.
type NoticeHandler struct {
	uc *usecase.NoticeUseCase
}

// NewNoticeHandler construye el handler.
func NewNoticeHandler(uc *usecase.NoticeUseCase) *NoticeHandler {
	return &NoticeHandler{uc: uc}
}

// List godoc
// @Summary      Listar anuncios (más recientes primero)
// @Tags         notices
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NoticeResponse
// @Router       /api/notices [get]
func (h *NoticeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Post godoc
// @Summary      Publicar anuncio
// @Tags         notices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNoticeRequest  true  "title, content"
// @Success      201   {object}  dto.NoticeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/notices [post]
func (h *NoticeHandler) Post(c *fiber.Ctx) error {
	var in dto.CreateNoticeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Post(c.Context(), ActorFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
