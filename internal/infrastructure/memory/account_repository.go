package memory

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación en memoria de AccountRepository.
type AccountRepo struct {
	col *Collection[*entity.Account]
}

// NewAccountRepository construye el repositorio con los registros iniciales.
func NewAccountRepository(seed ...*entity.Account) *AccountRepo {
	col := NewCollection((*entity.Account).Clone)
	col.Seed(seed...)
	return &AccountRepo{col: col}
}

// Create agrega la cuenta al final y le asigna ID.
func (r *AccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.col.Insert(account)
	return nil
}

// GetByID devuelve nil si no existe.
func (r *AccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	a, ok := r.col.Get(id)
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *AccountRepo) Update(_ context.Context, account *entity.Account) (bool, error) {
	return r.col.Replace(account), nil
}

func (r *AccountRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.col.Remove(id), nil
}

func (r *AccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	return r.col.All(), nil
}
