package dto

// FormOpenRequest abre un formulario. RecordID vacío abre en modo alta.
type FormOpenRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=account employee card benefit role"`
	RecordID string `json:"record_id"`
}

// FormFieldRequest actualiza un campo del formulario. Los valores viajan como texto,
// igual que en los inputs del navegador.
type FormFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// PermissionToggleRequest alterna un permiso del catálogo en un formulario de rol.
type PermissionToggleRequest struct {
	Permission string `json:"permission" validate:"required"`
}

// AccountSelectRequest elige una cuenta de la lista de sugerencias.
type AccountSelectRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

// SucursalOpenRequest abre el formulario anidado de sucursal. SucursalID vacío agrega una nueva.
type SucursalOpenRequest struct {
	SucursalID string `json:"sucursal_id"`
}

// FormResponse estado de un formulario. Record es el DTO de respuesta de la entidad
// con la copia de trabajo.
type FormResponse struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	Mode     string            `json:"mode"` // create | edit
	ParentID string            `json:"parent_id,omitempty"`
	Closed   bool              `json:"closed"`
	Record   any               `json:"record"`
	Lookup   *AccountLookupDTO `json:"lookup,omitempty"`
	Children []string          `json:"children,omitempty"` // formularios de sucursal abiertos
}

// FormSubmitResponse resultado de enviar un formulario.
type FormSubmitResponse struct {
	Form   FormResponse `json:"form"`
	Result any          `json:"result"`
}

// AccountLookupDTO estado del buscador de cuentas del formulario de empleado.
type AccountLookupDTO struct {
	Display     string             `json:"display"`
	Open        bool               `json:"open"`
	Suggestions []AccountOptionDTO `json:"suggestions"`
}

// AccountOptionDTO una sugerencia del buscador de cuentas.
type AccountOptionDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
