package entity

// Estados válidos de Account y Card (femenino) y de Employee y Benefit (masculino).
const (
	StatusActiva    = "Activa"
	StatusInactiva  = "Inactiva"
	StatusBloqueada = "Bloqueada"

	StatusActivo    = "Activo"
	StatusInactivo  = "Inactivo"
	StatusBloqueado = "Bloqueado"
)

var (
	AccountStatuses  = []string{StatusActiva, StatusInactiva}
	EmployeeStatuses = []string{StatusActivo, StatusInactivo}
	CardStatuses     = []string{StatusActiva, StatusInactiva, StatusBloqueada}
	BenefitStatuses  = []string{StatusActivo, StatusInactivo, StatusBloqueado}
)

// ValidStatus informa si s pertenece a la enumeración allowed.
func ValidStatus(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
