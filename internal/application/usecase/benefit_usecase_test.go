package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/memory"
)

func benefitRequest() dto.BenefitRequest {
	return dto.BenefitRequest{
		RazonComercial: "Super 99",
		RazonSocial:    "Supermercados 99 S.A.",
		RUC:            "155-1234-5678",
		DV:             "45",
		Telefono:       "+507 300-0000",
		Correo:         "contacto@super99.example",
		Contacto:       "Laura Díaz",
		Direccion:      "Vía España",
		Sucursales: []dto.SucursalRequest{
			{Nombre: "Centro", Direccion: "Calle 50", MCC: []string{"5411", "5412"}},
		},
	}
}

func TestBenefitUseCase_AsignaIDASucursalesNuevas(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBenefitUseCase(memory.NewBenefitRepository())

	created, err := uc.Create(ctx, benefitRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
	assert.Equal(t, "Activo", created.Estado)
	require.Len(t, created.Sucursales, 1)
	assert.NotEmpty(t, created.Sucursales[0].ID)
	assert.Equal(t, "5411, 5412", created.Sucursales[0].MCCText)

	// conservar el ID reemplaza; ID vacío agrega
	in := benefitRequest()
	in.Sucursales = []dto.SucursalRequest{
		{ID: created.Sucursales[0].ID, Nombre: "Centro Renovado", Direccion: "Calle 50", MCC: []string{"5411"}},
		{Nombre: "Norte", Direccion: "Vía Transístmica"},
	}
	updated, err := uc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	require.Len(t, updated.Sucursales, 2)
	assert.Equal(t, created.Sucursales[0].ID, updated.Sucursales[0].ID)
	assert.Equal(t, "Centro Renovado", updated.Sucursales[0].Nombre)
	assert.NotEqual(t, updated.Sucursales[0].ID, updated.Sucursales[1].ID)
	assert.Equal(t, []string{}, updated.Sucursales[1].MCC)
}

func TestBenefitUseCase_Validacion(t *testing.T) {
	uc := usecase.NewBenefitUseCase(memory.NewBenefitRepository())

	in := benefitRequest()
	in.Sucursales[0].Direccion = ""
	_, err := uc.Create(context.Background(), in)
	var rf *domain.RequiredFieldsError
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, []string{"sucursales[0].direccion"}, rf.Fields)

	in = benefitRequest()
	in.Estado = "Activa"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = benefitRequest()
	in.Direccion2 = ""
	in.Correo = " "
	_, err = uc.Create(context.Background(), in)
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, []string{"correo"}, rf.Fields)
}

func TestBenefitUseCase_FiltroPorRazon(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBenefitUseCase(memory.NewBenefitRepository())
	_, err := uc.Create(ctx, benefitRequest())
	require.NoError(t, err)

	list, err := uc.List(ctx, "supermercados")
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	list, err = uc.List(ctx, "farmacia")
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
