package repository

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// BenefitRepository define el puerto de persistencia para Benefit y sus sucursales.
// Las sucursales se guardan y reemplazan junto con el beneficio.
type BenefitRepository interface {
	Create(ctx context.Context, benefit *entity.Benefit) error
	GetByID(ctx context.Context, id string) (*entity.Benefit, error)
	Update(ctx context.Context, benefit *entity.Benefit) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.Benefit, error)
}
