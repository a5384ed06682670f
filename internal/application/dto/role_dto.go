package dto

// RoleRequest entrada para crear o reemplazar un rol.
type RoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Permissions []string `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// RoleListResponse listado filtrado de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
	ListMeta
}

// PermissionCatalogResponse permisos que ofrece el formulario de roles.
type PermissionCatalogResponse struct {
	Permissions []string `json:"permissions"`
}
