package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
)

func TestRoleUseCase_PermisosSinRepetidos(t *testing.T) {
	uc := usecase.NewRoleUseCase(rolesRepo())

	created, err := uc.Create(context.Background(), dto.RoleRequest{
		Name:        "Auditor",
		Description: "Solo lectura",
		Permissions: []string{"Ver Transacciones", "Ver Transacciones", "Gestionar Tarjetas"},
	})
	require.NoError(t, err)
	assert.Equal(t, "3", created.ID)
	assert.Equal(t, []string{"Ver Transacciones", "Gestionar Tarjetas"}, created.Permissions)
}

func TestRoleUseCase_FiltroYCatalogo(t *testing.T) {
	uc := usecase.NewRoleUseCase(rolesRepo())

	list, err := uc.List(context.Background(), "empleados")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Gestor de Cuentas", list.Items[0].Name)

	catalog := uc.Permissions()
	assert.Len(t, catalog.Permissions, 5)
	assert.Contains(t, catalog.Permissions, "Gestionar Beneficios")
}
