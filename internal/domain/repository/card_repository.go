package repository

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// CardRepository define el puerto de persistencia para Card (DIP).
type CardRepository interface {
	Create(ctx context.Context, card *entity.Card) error
	GetByID(ctx context.Context, id string) (*entity.Card, error)
	Update(ctx context.Context, card *entity.Card) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.Card, error)
}
