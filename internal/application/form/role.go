package form

import (
	"fmt"

	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// RoleDraft formulario de rol; los permisos se alternan de a uno.
type RoleDraft struct {
	*Draft[*entity.Role]
}

// TogglePermission agrega o quita un permiso del catálogo y devuelve la lista resultante.
func (d *RoleDraft) TogglePermission(p string) ([]string, error) {
	if !entity.IsCatalogPermission(p) {
		return nil, fmt.Errorf("%w: permiso %q fuera del catálogo", domain.ErrInvalidInput, p)
	}
	var out []string
	err := d.with(func(r *entity.Role) error {
		r.TogglePermission(p)
		out = append([]string{}, r.Permissions...)
		return nil
	})
	return out, err
}
