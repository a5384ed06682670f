package dto

// AccountRequest entrada para crear o reemplazar una cuenta.
type AccountRequest struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=Activa Inactiva"`
	ActiveCards int    `json:"active_cards" validate:"min=0"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	ActiveCards int    `json:"active_cards"`
	// Employees solo se llena para la cuenta expandida.
	Employees []EmployeeSummary `json:"employees,omitempty"`
}

// EmployeeSummary fila de la subtabla de empleados de una cuenta (solo lectura).
type EmployeeSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
}

// AccountListResponse listado de cuentas con la cuenta expandida, si hay una.
type AccountListResponse struct {
	Items             []AccountResponse `json:"items"`
	ExpandedAccountID string            `json:"expanded_account_id,omitempty"`
	ListMeta
}

// ExpandResponse resultado de alternar la expansión de una cuenta.
type ExpandResponse struct {
	ExpandedAccountID string            `json:"expanded_account_id"` // vacío si quedó colapsada
	Employees         []EmployeeSummary `json:"employees"`
}
