package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/pkg/jwt"
)

// SessionConfig parámetros de firma de los tokens de portal.
type SessionConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// SessionHandler emite tokens de portal (admin o client).
type SessionHandler struct {
	cfg SessionConfig
}

// NewSessionHandler construye el handler.
func NewSessionHandler(cfg SessionConfig) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Create godoc
// @Summary      Abrir sesión de portal
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SessionRequest  true  "Portal solicitado"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var in dto.SessionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !jwt.ValidPortal(in.Portal) {
		return fail(c, fiber.StatusBadRequest, "INVALID_INPUT", "portal debe ser admin o client")
	}
	token, err := jwt.Generate(h.cfg.Secret, in.Portal, h.cfg.Issuer, h.cfg.ExpMinutes)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{Token: token, Portal: in.Portal})
}
