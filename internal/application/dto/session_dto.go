package dto

// SessionRequest entrada para abrir una sesión de portal.
type SessionRequest struct {
	Portal string `json:"portal" validate:"required,oneof=admin client"`
}

// SessionResponse token firmado para el portal solicitado.
type SessionResponse struct {
	Token  string `json:"token"`
	Portal string `json:"portal"`
}
