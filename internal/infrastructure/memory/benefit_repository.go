package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.BenefitRepository = (*BenefitRepo)(nil)

// BenefitRepo implementación en memoria de BenefitRepository. Las sucursales viajan dentro del beneficio.
// Un ID de sucursal pertenece a un solo beneficio, igual que en PostgreSQL.
type BenefitRepo struct {
	mu  sync.Mutex // serializa las escrituras con su chequeo de sucursales
	col *Collection[*entity.Benefit]
}

// NewBenefitRepository construye el repositorio con los registros iniciales.
func NewBenefitRepository(seed ...*entity.Benefit) *BenefitRepo {
	col := NewCollection((*entity.Benefit).Clone)
	col.Seed(seed...)
	return &BenefitRepo{col: col}
}

func (r *BenefitRepo) Create(_ context.Context, benefit *entity.Benefit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkSucursales("", benefit); err != nil {
		return err
	}
	r.col.Insert(benefit)
	return nil
}

func (r *BenefitRepo) GetByID(_ context.Context, id string) (*entity.Benefit, error) {
	b, ok := r.col.Get(id)
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (r *BenefitRepo) Update(_ context.Context, benefit *entity.Benefit) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.col.Get(benefit.ID); !ok {
		return false, nil
	}
	if err := r.checkSucursales(benefit.ID, benefit); err != nil {
		return false, err
	}
	return r.col.Replace(benefit), nil
}

func (r *BenefitRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.col.Remove(id), nil
}

func (r *BenefitRepo) List(_ context.Context) ([]*entity.Benefit, error) {
	return r.col.All(), nil
}

// checkSucursales rechaza sucursales cuyo ID ya usa un beneficio distinto de owner.
func (r *BenefitRepo) checkSucursales(owner string, benefit *entity.Benefit) error {
	if len(benefit.Sucursales) == 0 {
		return nil
	}
	taken := make(map[string]bool)
	for _, b := range r.col.Where(func(b *entity.Benefit) bool { return b.ID != owner }) {
		for _, s := range b.Sucursales {
			taken[s.ID] = true
		}
	}
	for _, s := range benefit.Sucursales {
		if taken[s.ID] {
			return fmt.Errorf("%w: la sucursal %s ya pertenece a otro beneficio", domain.ErrInvalidInput, s.ID)
		}
	}
	return nil
}
