package entity

import "github.com/shopspring/decimal"

// Card representa una tarjeta de beneficio emitida a un empleado.
// EmployeeName es texto libre, no una referencia.
type Card struct {
	ID             string
	EmployeeName   string
	CardNumber     string // enmascarado, ej. "**** **** **** 1234"
	ExpirationDate string // MM/AA
	Status         string // Activa | Inactiva | Bloqueada
	Balance        decimal.Decimal
}

func (c *Card) GetID() string   { return c.ID }
func (c *Card) SetID(id string) { c.ID = id }

// Clone devuelve una copia independiente.
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}
