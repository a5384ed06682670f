package ports

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// CardReportGenerator genera el reporte PDF de tarjetas.
type CardReportGenerator interface {
	GenerateCardReport(ctx context.Context, cards []*entity.Card) ([]byte, error)
}

// BenefitCatalogExporter serializa los beneficios y sus sucursales como catálogo XML para el
// procesador de tarjetas. Devuelve el documento y el digest hexadecimal de su forma canónica.
type BenefitCatalogExporter interface {
	ExportCatalog(ctx context.Context, benefits []*entity.Benefit) (doc []byte, digest string, err error)
}
