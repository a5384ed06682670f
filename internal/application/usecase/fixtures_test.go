package usecase_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/memory"
)

func accountsRepo() *memory.AccountRepo {
	return memory.NewAccountRepository(
		&entity.Account{ID: "1", Name: "Corporación ABC", Type: "Empresa", Status: entity.StatusActiva, ActiveCards: 450},
		&entity.Account{ID: "2", Name: "XYZ Inc.", Type: "PYME", Status: entity.StatusActiva, ActiveCards: 45},
		&entity.Account{ID: "3", Name: "Compañía 123", Type: "Startup", Status: entity.StatusInactiva, ActiveCards: 18},
	)
}

func employeesRepo() *memory.EmployeeRepo {
	return memory.NewEmployeeRepository(
		&entity.Employee{ID: "1", Name: "Juan Pérez", Email: "juan@example.com", Position: "Gerente", Department: "Ventas", Status: entity.StatusActivo, AccountID: "1"},
		&entity.Employee{ID: "2", Name: "María García", Email: "maria@example.com", Position: "Analista", Department: "Finanzas", Status: entity.StatusActivo, AccountID: "2"},
		&entity.Employee{ID: "3", Name: "Carlos Rodríguez", Email: "carlos@example.com", Position: "Desarrollador", Department: "TI", Status: entity.StatusInactivo, AccountID: "1"},
	)
}

func cardsRepo() *memory.CardRepo {
	return memory.NewCardRepository(
		&entity.Card{ID: "1", EmployeeName: "Juan Pérez", CardNumber: "**** **** **** 1234", ExpirationDate: "12/25", Status: entity.StatusActiva, Balance: decimal.NewFromInt(500)},
		&entity.Card{ID: "2", EmployeeName: "María García", CardNumber: "**** **** **** 5678", ExpirationDate: "06/24", Status: entity.StatusActiva, Balance: decimal.NewFromInt(750)},
		&entity.Card{ID: "3", EmployeeName: "Carlos Rodríguez", CardNumber: "**** **** **** 9012", ExpirationDate: "03/23", Status: entity.StatusBloqueada, Balance: decimal.Zero},
	)
}

func rolesRepo() *memory.RoleRepo {
	return memory.NewRoleRepository(
		&entity.Role{ID: "1", Name: "Super Admin", Description: "Acceso total al sistema", Permissions: []string{entity.PermissionAll}},
		&entity.Role{ID: "2", Name: "Gestor de Cuentas", Description: "Gestiona cuentas y empleados", Permissions: []string{"Gestionar Cuentas", "Gestionar Empleados"}},
	)
}
