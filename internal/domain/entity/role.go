package entity

// PermissionAll es el permiso comodín del rol Super Admin.
const PermissionAll = "Todos"

// PermissionCatalog lista los permisos que se pueden asignar desde el formulario de roles.
var PermissionCatalog = []string{
	"Gestionar Cuentas",
	"Gestionar Empleados",
	"Gestionar Tarjetas",
	"Ver Transacciones",
	"Gestionar Beneficios",
}

// Role representa un rol administrativo. Los permisos se listan pero no se aplican.
type Role struct {
	ID          string
	Name        string
	Description string
	Permissions []string
}

func (r *Role) GetID() string   { return r.ID }
func (r *Role) SetID(id string) { r.ID = id }

// Clone devuelve una copia independiente.
func (r *Role) Clone() *Role {
	c := *r
	c.Permissions = append([]string(nil), r.Permissions...)
	return &c
}

// HasPermission informa si el rol incluye p.
func (r *Role) HasPermission(p string) bool {
	for _, have := range r.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// TogglePermission agrega p si no está o lo quita si ya está, preservando el orden del resto.
func (r *Role) TogglePermission(p string) {
	if !r.HasPermission(p) {
		r.Permissions = append(r.Permissions, p)
		return
	}
	kept := r.Permissions[:0:0]
	for _, have := range r.Permissions {
		if have != p {
			kept = append(kept, have)
		}
	}
	r.Permissions = kept
}

// IsCatalogPermission informa si p se puede alternar desde el formulario.
func IsCatalogPermission(p string) bool {
	for _, c := range PermissionCatalog {
		if c == p {
			return true
		}
	}
	return false
}
