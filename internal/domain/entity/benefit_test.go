package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

func TestParseMCC_RecortaYConservaOrden(t *testing.T) {
	codes := entity.ParseMCC("5411, 5412 ,5413")
	assert.Equal(t, []string{"5411", "5412", "5413"}, codes)
	assert.Equal(t, "5411, 5412, 5413", entity.JoinMCC(codes))
}

func TestParseMCC_DescartaVacios(t *testing.T) {
	assert.Empty(t, entity.ParseMCC(""))
	assert.Empty(t, entity.ParseMCC(" , ,"))
	assert.Equal(t, []string{"5411", "5812"}, entity.ParseMCC("5411,,5812,"))
}

func TestJoinMCC_IdaYVueltaConComasEsLossy(t *testing.T) {
	codes := []string{"54,11"}
	assert.NotEqual(t, codes, entity.ParseMCC(entity.JoinMCC(codes)))
}

func TestRole_TogglePermission(t *testing.T) {
	r := &entity.Role{Permissions: []string{"Gestionar Cuentas"}}
	r.TogglePermission("Gestionar Tarjetas")
	assert.Equal(t, []string{"Gestionar Cuentas", "Gestionar Tarjetas"}, r.Permissions)

	r.TogglePermission("Gestionar Cuentas")
	assert.Equal(t, []string{"Gestionar Tarjetas"}, r.Permissions)
	assert.False(t, r.HasPermission("Gestionar Cuentas"))
}

func TestRole_CloneNoCompartePermisos(t *testing.T) {
	r := &entity.Role{ID: "1", Permissions: []string{"Todos"}}
	c := r.Clone()
	c.TogglePermission("Ver Transacciones")
	assert.Equal(t, []string{"Todos"}, r.Permissions)
}

func TestBenefit_SucursalIndex(t *testing.T) {
	b := &entity.Benefit{Sucursales: []entity.Sucursal{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, 1, b.SucursalIndex("b"))
	assert.Equal(t, -1, b.SucursalIndex("z"))
}
