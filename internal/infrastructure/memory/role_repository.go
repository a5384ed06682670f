package memory

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación en memoria de RoleRepository.
type RoleRepo struct {
	col *Collection[*entity.Role]
}

// NewRoleRepository construye el repositorio con los registros iniciales.
func NewRoleRepository(seed ...*entity.Role) *RoleRepo {
	col := NewCollection((*entity.Role).Clone)
	col.Seed(seed...)
	return &RoleRepo{col: col}
}

func (r *RoleRepo) Create(_ context.Context, role *entity.Role) error {
	r.col.Insert(role)
	return nil
}

func (r *RoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	role, ok := r.col.Get(id)
	if !ok {
		return nil, nil
	}
	return role, nil
}

func (r *RoleRepo) Update(_ context.Context, role *entity.Role) (bool, error) {
	return r.col.Replace(role), nil
}

func (r *RoleRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.col.Remove(id), nil
}

func (r *RoleRepo) List(_ context.Context) ([]*entity.Role, error) {
	return r.col.All(), nil
}
