package seed_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/memory"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/seed"
)

func TestDefault(t *testing.T) {
	fx, err := seed.Default()
	require.NoError(t, err)

	require.Len(t, fx.Accounts, 3)
	assert.Equal(t, "XYZ Inc.", fx.Accounts[1].Name)
	assert.Equal(t, 450, fx.Accounts[0].ActiveCards)

	require.Len(t, fx.Employees, 7)
	assert.Equal(t, "Ana López", fx.Employees[3].Name)
	assert.Equal(t, "1", fx.Employees[3].AccountID)

	require.Len(t, fx.Cards, 3)
	assert.True(t, fx.Cards[1].Balance.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, entity.StatusBloqueada, fx.Cards[2].Status)

	require.Len(t, fx.Roles, 3)
	assert.Equal(t, []string{entity.PermissionAll}, fx.Roles[0].Permissions)
	assert.Empty(t, fx.Benefits)
}

func TestParse_SucursalesYErrores(t *testing.T) {
	fx, err := seed.Parse([]byte(`
benefits:
  - id: "1"
    razon_comercial: Super 99
    estado: Activo
    sucursales:
      - {id: s1, nombre: Centro, direccion: Calle 50, mcc: "5411, 5412 ,5413"}
`))
	require.NoError(t, err)
	require.Len(t, fx.Benefits, 1)
	assert.Equal(t, []string{"5411", "5412", "5413"}, fx.Benefits[0].Sucursales[0].MCC)

	_, err = seed.Parse([]byte("cards:\n  - {id: \"1\", balance: diez}\n"))
	assert.ErrorContains(t, err, "balance")

	_, err = seed.Parse([]byte("facturas: []\n"))
	assert.Error(t, err)
}

func TestApply_EnMemoria(t *testing.T) {
	fx, err := seed.Default()
	require.NoError(t, err)

	repos := seed.Repositories{
		Accounts:  memory.NewAccountRepository(),
		Employees: memory.NewEmployeeRepository(),
		Cards:     memory.NewCardRepository(),
		Benefits:  memory.NewBenefitRepository(),
		Roles:     memory.NewRoleRepository(),
	}
	require.NoError(t, seed.Apply(context.Background(), fx, repos))

	employees, err := repos.Employees.ListByAccount(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "María Rodríguez", employees[0].Name)
}
