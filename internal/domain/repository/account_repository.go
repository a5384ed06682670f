package repository

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// List devuelve las cuentas en orden de inserción.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.Account, error)
}
