package dto

// AccountProfileDTO datos de la página "Información de la cuenta" del portal cliente.
type AccountProfileDTO struct {
	RazonSocial    string `json:"razon_social"`
	RazonComercial string `json:"razon_comercial"`
	RUC            string `json:"ruc"`
	DV             string `json:"dv"`
	Ubicacion      string `json:"ubicacion"`
	Ubicacion2     string `json:"ubicacion2"`
	Provincia      string `json:"provincia"`
	NombreContacto string `json:"nombre_contacto"`
	Email          string `json:"email"`
	Telefono       string `json:"telefono"`
	WhatsApp       string `json:"whatsapp"`
}
