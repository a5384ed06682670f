package dto

// ListMeta metadatos de un listado filtrado.
type ListMeta struct {
	Query string `json:"query"`
	Total int    `json:"total"` // registros devueltos tras el filtro
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"` // campos obligatorios vacíos (VALIDATION)
}
