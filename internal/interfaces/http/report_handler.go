package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Beneficios-api/internal/application/ports"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
)

// ReportHandler genera los reportes descargables.
type ReportHandler struct {
	cards     *usecase.CardUseCase
	generator ports.CardReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(cards *usecase.CardUseCase, generator ports.CardReportGenerator) *ReportHandler {
	return &ReportHandler{cards: cards, generator: generator}
}

// CardsPDF godoc
// @Summary      Reporte PDF de tarjetas
// @Tags         reports
// @Produce      application/pdf
// @Param        q    query  string  false  "Filtro de tarjetas"
// @Success      200
// @Router       /api/admin/reports/cards.pdf [get]
func (h *ReportHandler) CardsPDF(c *fiber.Ctx) error {
	cards, err := h.cards.Records(c.UserContext(), c.Query("q"))
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.generator.GenerateCardReport(c.UserContext(), cards)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tarjetas.pdf"`)
	return c.Send(out)
}
