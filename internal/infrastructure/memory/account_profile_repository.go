package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.AccountProfileRepository = (*AccountProfileRepo)(nil)

// AccountProfileRepo guarda el perfil único de la empresa cliente.
type AccountProfileRepo struct {
	mu      sync.RWMutex
	profile entity.AccountProfile
}

// NewAccountProfileRepository construye el repositorio con un perfil vacío.
func NewAccountProfileRepository() *AccountProfileRepo {
	return &AccountProfileRepo{}
}

func (r *AccountProfileRepo) Get(_ context.Context) (*entity.AccountProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.profile
	return &p, nil
}

func (r *AccountProfileRepo) Save(_ context.Context, profile *entity.AccountProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = *profile
	return nil
}
