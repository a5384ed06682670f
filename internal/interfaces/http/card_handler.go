package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
)

// CardHandler maneja las peticiones HTTP para Card.
type CardHandler struct {
	uc *usecase.CardUseCase
}

// NewCardHandler construye el handler.
func NewCardHandler(uc *usecase.CardUseCase) *CardHandler {
	return &CardHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarjeta
// @Description  Estado por defecto Activa; el saldo no puede ser negativo.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CardRequest  true  "Datos de la tarjeta"
// @Success      201   {object}  dto.CardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/cards [post]
func (h *CardHandler) Create(c *fiber.Ctx) error {
	var in dto.CardRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarjeta por ID
// @Tags         cards
// @Produce      json
// @Param        id   path  string  true  "ID de la tarjeta"
// @Success      200  {object}  dto.CardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/cards/{id} [get]
func (h *CardHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "tarjeta")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tarjetas
// @Tags         cards
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar en empleado, número y estado"
// @Success      200  {object}  dto.CardListResponse
// @Router       /api/admin/cards [get]
func (h *CardHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar tarjeta
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarjeta"
// @Param        body  body  dto.CardRequest  true  "Datos de la tarjeta"
// @Success      200   {object}  dto.CardResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/cards/{id} [put]
func (h *CardHandler) Update(c *fiber.Ctx) error {
	var in dto.CardRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "tarjeta")
	}
	return c.JSON(out)
}

// Delete elimina la tarjeta. Responde 204 aunque no exista.
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
