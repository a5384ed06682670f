package repository

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// AccountProfileRepository persiste el perfil único de la empresa cliente.
// Get devuelve un perfil vacío si nunca se guardó.
type AccountProfileRepository interface {
	Get(ctx context.Context) (*entity.AccountProfile, error)
	Save(ctx context.Context, profile *entity.AccountProfile) error
}
