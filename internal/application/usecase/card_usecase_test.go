package usecase_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain"
)

func cardIDs(t *testing.T, uc *usecase.CardUseCase) []string {
	t.Helper()
	list, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	out := make([]string, 0, len(list.Items))
	for _, c := range list.Items {
		out = append(out, c.ID)
	}
	return out
}

func TestCardUseCase_AltaYBajaRestauraLaColeccion(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCardUseCase(cardsRepo())

	created, err := uc.Create(ctx, dto.CardRequest{
		EmployeeName:   "Ana Ruiz",
		CardNumber:     "**** **** **** 3456",
		ExpirationDate: "09/27",
		Balance:        decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "4", created.ID)
	assert.Equal(t, "Activa", created.Status)
	assert.True(t, created.Balance.Equal(decimal.NewFromInt(100)))

	list, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list.Items, 4)
	assert.Equal(t, "Ana Ruiz", list.Items[3].EmployeeName)

	require.NoError(t, uc.Delete(ctx, created.ID))
	if diff := cmp.Diff([]string{"1", "2", "3"}, cardIDs(t, uc)); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
}

func TestCardUseCase_FaltanCampos(t *testing.T) {
	uc := usecase.NewCardUseCase(cardsRepo())

	_, err := uc.Create(context.Background(), dto.CardRequest{EmployeeName: "Ana Ruiz"})
	require.ErrorIs(t, err, domain.ErrRequiredFields)

	var rf *domain.RequiredFieldsError
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, []string{"card_number", "expiration_date"}, rf.Fields)
	assert.Len(t, cardIDs(t, uc), 3)
}

func TestCardUseCase_EstadoYSaldoInvalidos(t *testing.T) {
	uc := usecase.NewCardUseCase(cardsRepo())
	base := dto.CardRequest{EmployeeName: "Ana", CardNumber: "1", ExpirationDate: "01/30"}

	bad := base
	bad.Status = "Robada"
	_, err := uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = base
	bad.Balance = decimal.NewFromInt(-1)
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCardUseCase_UpdateConservaPosicion(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCardUseCase(cardsRepo())

	updated, err := uc.Update(ctx, "2", dto.CardRequest{
		EmployeeName:   "María García",
		CardNumber:     "**** **** **** 5678",
		ExpirationDate: "06/24",
		Status:         "Bloqueada",
		Balance:        decimal.NewFromInt(750),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	list, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Bloqueada", list.Items[1].Status)
	assert.Equal(t, []string{"1", "2", "3"}, cardIDs(t, uc))
}

func TestCardUseCase_IDInexistente(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCardUseCase(cardsRepo())

	got, err := uc.GetByID(ctx, "99")
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := uc.Update(ctx, "99", dto.CardRequest{EmployeeName: "X", CardNumber: "1", ExpirationDate: "01/30"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	require.NoError(t, uc.Delete(ctx, "99"))
	assert.Equal(t, []string{"1", "2", "3"}, cardIDs(t, uc))
}

func TestCardUseCase_Filtro(t *testing.T) {
	uc := usecase.NewCardUseCase(cardsRepo())

	list, err := uc.List(context.Background(), "bloqueada")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Carlos Rodríguez", list.Items[0].EmployeeName)
	assert.Equal(t, 1, list.Total)

	list, err = uc.List(context.Background(), "5678")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "2", list.Items[0].ID)
}
