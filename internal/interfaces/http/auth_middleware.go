package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Beneficios-api/pkg/jwt"
)

// LocalPortal clave en c.Locals con el portal de la sesión.
const LocalPortal = "portal"

// PortalMiddleware valida el Bearer Token y exige que su portal esté entre allowed.
func PortalMiddleware(jwtSecret string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		portal, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		for _, p := range allowed {
			if p == portal {
				c.Locals(LocalPortal, portal)
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "el portal "+portal+" no tiene acceso a este recurso")
	}
}

// GetPortal devuelve el portal de la sesión (después de PortalMiddleware).
func GetPortal(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalPortal).(string)
	return s
}
