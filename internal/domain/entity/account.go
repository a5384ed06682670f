package entity

// Account representa una empresa cliente del programa de tarjetas de beneficio.
// Sus empleados no se guardan aquí: se derivan de Employee.AccountID.
type Account struct {
	ID          string
	Name        string
	Type        string // Empresa, PYME, Startup...
	Status      string // Activa | Inactiva
	ActiveCards int
}

func (a *Account) GetID() string   { return a.ID }
func (a *Account) SetID(id string) { a.ID = id }

// Clone devuelve una copia independiente.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
