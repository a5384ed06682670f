package entity

// AccountProfile datos de la empresa cliente que edita el portal cliente
// (página "Información de la cuenta"). Hay un único perfil.
type AccountProfile struct {
	RazonSocial    string
	RazonComercial string
	RUC            string
	DV             string
	Ubicacion      string
	Ubicacion2     string
	Provincia      string
	NombreContacto string
	Email          string
	Telefono       string
	WhatsApp       string
}
