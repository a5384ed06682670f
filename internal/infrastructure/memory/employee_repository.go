package memory

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación en memoria de EmployeeRepository.
type EmployeeRepo struct {
	col *Collection[*entity.Employee]
}

// NewEmployeeRepository construye el repositorio con los registros iniciales.
func NewEmployeeRepository(seed ...*entity.Employee) *EmployeeRepo {
	col := NewCollection((*entity.Employee).Clone)
	col.Seed(seed...)
	return &EmployeeRepo{col: col}
}

func (r *EmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	r.col.Insert(employee)
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	e, ok := r.col.Get(id)
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *EmployeeRepo) Update(_ context.Context, employee *entity.Employee) (bool, error) {
	return r.col.Replace(employee), nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.col.Remove(id), nil
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	return r.col.All(), nil
}

// ListByAccount devuelve los empleados cuyo AccountID coincide, en orden de inserción.
func (r *EmployeeRepo) ListByAccount(_ context.Context, accountID string) ([]*entity.Employee, error) {
	return r.col.Where(func(e *entity.Employee) bool { return e.AccountID == accountID }), nil
}
