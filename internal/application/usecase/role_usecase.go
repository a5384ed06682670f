package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
	"github.com/jhoicas/Beneficios-api/internal/domain/search"
)

// RoleUseCase casos de uso CRUD para roles. Los permisos se guardan pero no se aplican.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// NewRole valores por defecto del formulario de alta.
func NewRole() *entity.Role {
	return &entity.Role{Permissions: []string{}}
}

func roleFields(r *entity.Role) []string {
	return []string{r.Name, r.Description}
}

// ValidateRole verifica campos obligatorios y elimina permisos repetidos.
func ValidateRole(r *entity.Role) error {
	if err := domain.RequireFields("name", r.Name, "description", r.Description); err != nil {
		return err
	}
	seen := make(map[string]bool, len(r.Permissions))
	perms := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		perms = append(perms, p)
	}
	r.Permissions = perms
	return nil
}

func (uc *RoleUseCase) Store(ctx context.Context, role *entity.Role) error {
	if err := ValidateRole(role); err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, role); err != nil {
		return err
	}
	log.Debug().Str("role_id", role.ID).Msg("rol creado")
	return nil
}

func (uc *RoleUseCase) Replace(ctx context.Context, role *entity.Role) error {
	if err := ValidateRole(role); err != nil {
		return err
	}
	ok, err := uc.repo.Update(ctx, role)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	log.Debug().Str("role_id", role.ID).Msg("rol actualizado")
	return nil
}

func (uc *RoleUseCase) Record(ctx context.Context, id string) (*entity.Role, error) {
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return role, nil
}

func (uc *RoleUseCase) Records(ctx context.Context, query string) ([]*entity.Role, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(list, query, roleFields), nil
}

// Create crea un rol nuevo.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.RoleRequest) (*dto.RoleResponse, error) {
	role := &entity.Role{Name: in.Name, Description: in.Description, Permissions: in.Permissions}
	if err := uc.Store(ctx, role); err != nil {
		return nil, err
	}
	return ToRoleResponse(role), nil
}

// GetByID devuelve nil si no existe.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRoleResponse(role), nil
}

// Update reemplaza el rol id. Devuelve nil si no existe.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.RoleRequest) (*dto.RoleResponse, error) {
	role := &entity.Role{ID: id, Name: in.Name, Description: in.Description, Permissions: in.Permissions}
	if err := uc.Replace(ctx, role); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return ToRoleResponse(role), nil
}

func (uc *RoleUseCase) List(ctx context.Context, query string) (*dto.RoleListResponse, error) {
	list, err := uc.Records(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *ToRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items, ListMeta: dto.ListMeta{Query: query, Total: len(items)}}, nil
}

// Delete elimina un rol por ID. Un ID inexistente no es error.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	log.Debug().Str("role_id", id).Bool("removed", removed).Msg("rol eliminado")
	return nil
}

// Permissions devuelve el catálogo de permisos asignables.
func (uc *RoleUseCase) Permissions() *dto.PermissionCatalogResponse {
	return &dto.PermissionCatalogResponse{Permissions: append([]string(nil), entity.PermissionCatalog...)}
}

func ToRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return &dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description, Permissions: perms}
}
