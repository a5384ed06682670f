package memory

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.CardRepository = (*CardRepo)(nil)

// CardRepo implementación en memoria de CardRepository.
type CardRepo struct {
	col *Collection[*entity.Card]
}

// NewCardRepository construye el repositorio con los registros iniciales.
func NewCardRepository(seed ...*entity.Card) *CardRepo {
	col := NewCollection((*entity.Card).Clone)
	col.Seed(seed...)
	return &CardRepo{col: col}
}

func (r *CardRepo) Create(_ context.Context, card *entity.Card) error {
	r.col.Insert(card)
	return nil
}

func (r *CardRepo) GetByID(_ context.Context, id string) (*entity.Card, error) {
	c, ok := r.col.Get(id)
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *CardRepo) Update(_ context.Context, card *entity.Card) (bool, error) {
	return r.col.Replace(card), nil
}

func (r *CardRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.col.Remove(id), nil
}

func (r *CardRepo) List(_ context.Context) ([]*entity.Card, error) {
	return r.col.All(), nil
}
