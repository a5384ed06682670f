package dto

// EmployeeRequest entrada para crear o reemplazar un empleado.
type EmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=Activo Inactivo"`
	AccountID  string `json:"account_id" validate:"required"`
}

// EmployeeResponse salida de un empleado. AccountName queda vacío si la cuenta no existe.
type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	Status      string `json:"status"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// EmployeeListResponse listado filtrado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	ListMeta
}
