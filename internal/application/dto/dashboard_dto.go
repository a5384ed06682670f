package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/{admin,client}/dashboard.
// KPIs del programa de tarjetas más el resumen por cuenta cliente.
type DashboardSummaryDTO struct {
	TotalAccounts   int `json:"total_accounts"`
	TotalEmployees  int `json:"total_employees"`
	ActiveCards     int `json:"active_cards"`     // tarjetas con estado Activa
	ActiveBenefits  int `json:"active_benefits"`  // beneficios con estado Activo
	BlockedCards    int `json:"blocked_cards"`    // tarjetas con estado Bloqueada
	TotalSucursales int `json:"total_sucursales"` // puntos de venta afiliados

	// Saldo disponible sumando todas las tarjetas activas.
	AvailableBalance decimal.Decimal `json:"available_balance"`

	Accounts []AccountSummaryDTO `json:"accounts"`
}

// AccountSummaryDTO fila de la tabla de clientes del dashboard.
type AccountSummaryDTO struct {
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Employees   int    `json:"employees"`    // derivado de Employee.AccountID
	ActiveCards int    `json:"active_cards"` // dato declarado en la cuenta
}
