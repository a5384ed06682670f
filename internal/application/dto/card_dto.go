package dto

import "github.com/shopspring/decimal"

// CardRequest entrada para crear o reemplazar una tarjeta.
type CardRequest struct {
	EmployeeName   string          `json:"employee_name" validate:"required"`
	CardNumber     string          `json:"card_number" validate:"required"`
	ExpirationDate string          `json:"expiration_date" validate:"required"`
	Status         string          `json:"status" validate:"omitempty,oneof=Activa Inactiva Bloqueada"`
	Balance        decimal.Decimal `json:"balance"`
}

// CardResponse salida de una tarjeta.
type CardResponse struct {
	ID             string          `json:"id"`
	EmployeeName   string          `json:"employee_name"`
	CardNumber     string          `json:"card_number"`
	ExpirationDate string          `json:"expiration_date"`
	Status         string          `json:"status"`
	Balance        decimal.Decimal `json:"balance"`
}

// CardListResponse listado filtrado de tarjetas.
type CardListResponse struct {
	Items []CardResponse `json:"items"`
	ListMeta
}
