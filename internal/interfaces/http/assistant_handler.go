package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
)

// AssistantHandler preguntas al asistente externo.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Ask godoc
// @Summary      Preguntar al asistente del PG
// @Description  Responde con base en los anuncios recientes. Timeout interno de 10 s;
//               si el servicio externo falla responde 503 "Unable to reach server".
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssistantRequest  true  "question"
// @Success      200   {object}  dto.AssistantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/assistant/ask [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var in dto.AssistantRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Ask(c.Context(), ActorFrom(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
