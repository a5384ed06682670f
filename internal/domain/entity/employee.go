package entity

// Employee representa un empleado de una cuenta cliente.
// AccountID es una referencia a Account.ID que no se valida.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Position   string
	Department string
	Status     string // Activo | Inactivo
	AccountID  string
}

func (e *Employee) GetID() string   { return e.ID }
func (e *Employee) SetID(id string) { e.ID = id }

// Clone devuelve una copia independiente.
func (e *Employee) Clone() *Employee {
	c := *e
	return &c
}
