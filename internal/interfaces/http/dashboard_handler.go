package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Beneficios-api/internal/application/analytics"
)

// DashboardHandler maneja el dashboard de ambos portales.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs del programa y el resumen por cuenta.
// GET /api/admin/dashboard, GET /api/client/dashboard
//
// Respuesta: DashboardSummaryDTO (total_accounts, total_employees, active_cards,
// blocked_cards, available_balance, active_benefits, total_sucursales, accounts).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(summary)
}
