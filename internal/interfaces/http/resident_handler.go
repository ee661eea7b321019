package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/residents"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
)

// ResidentHandler directorio, habitaciones, fechas de estadía y renta.
type ResidentHandler struct {
	uc *residents.ResidentUseCase
}

// NewResidentHandler construye el handler.
func NewResidentHandler(uc *residents.ResidentUseCase) *ResidentHandler {
	return &ResidentHandler{uc: uc}
}

// List godoc
// @Summary      Listar residentes
// @Tags         residents
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResidentListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/residents [get]
func (h *ResidentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListResidents(c.Context(), ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar residente
// @Description  Alta por el Admin. Si viene roomNumber la habitación se asigna en la misma operación.
// @Tags         residents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResidentRequest  true  "datos del residente"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/residents [post]
func (h *ResidentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResidentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddResident(c.Context(), ActorFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AllocateRoom godoc
// @Summary      Asignar habitación
// @Tags         residents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del residente"
// @Param        body  body  dto.AllocateRoomRequest  true  "roomNumber"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/residents/{id}/room [put]
func (h *ResidentHandler) AllocateRoom(c *fiber.Ctx) error {
	var in dto.AllocateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Allocate(c.Context(), ActorFrom(c), c.Params("id"), in.RoomNumber)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SetRent godoc
// @Summary      Marcar renta pagada o pendiente
// @Tags         residents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del residente"
// @Param        body  body  dto.RentStatusRequest  true  "isRentPaid"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/residents/{id}/rent [put]
func (h *ResidentHandler) SetRent(c *fiber.Ctx) error {
	var in dto.RentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.IsRentPaid == nil {
		return domain.ErrMissingField
	}
	out, err := h.uc.SetRentPaid(c.Context(), ActorFrom(c), c.Params("id"), *in.IsRentPaid)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RecordEntry godoc
// @Summary      Registrar fecha de entrada
// @Tags         residents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del residente"
// @Param        body  body  dto.ResidencyDateRequest  true  "date YYYY-MM-DD"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/residents/{id}/entry [put]
func (h *ResidentHandler) RecordEntry(c *fiber.Ctx) error {
	var in dto.ResidencyDateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordEntry(c.Context(), ActorFrom(c), c.Params("id"), in.Date)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RecordExit godoc
// @Summary      Registrar fecha de salida
// @Description  Al llegar esa fecha la habitación queda libre; el registro se conserva.
// @Tags         residents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del residente"
// @Param        body  body  dto.ResidencyDateRequest  true  "date YYYY-MM-DD; vacío borra la salida"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/residents/{id}/exit [put]
func (h *ResidentHandler) RecordExit(c *fiber.Ctx) error {
	var in dto.ResidencyDateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordExit(c.Context(), ActorFrom(c), c.Params("id"), in.Date)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AvailableRooms godoc
// @Summary      Habitaciones libres
// @Tags         rooms
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AvailableRoomsResponse
// @Router       /api/rooms/available [get]
func (h *ResidentHandler) AvailableRooms(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailableRooms(c.Context(), ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Occupancy godoc
// @Summary      Ocupación actual
// @Tags         rooms
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OccupancyResponse
// @Router       /api/rooms/occupancy [get]
func (h *ResidentHandler) Occupancy(c *fiber.Ctx) error {
	out, err := h.uc.Occupancy(c.Context(), ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
