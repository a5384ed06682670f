package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/memory"
)

func seedCards() []*entity.Card {
	return []*entity.Card{
		{ID: "1", EmployeeName: "Juan Pérez", CardNumber: "**** **** **** 1234", ExpirationDate: "12/25", Status: entity.StatusActiva, Balance: decimal.NewFromInt(500)},
		{ID: "2", EmployeeName: "María García", CardNumber: "**** **** **** 5678", ExpirationDate: "06/24", Status: entity.StatusActiva, Balance: decimal.NewFromInt(750)},
		{ID: "3", EmployeeName: "Carlos Rodríguez", CardNumber: "**** **** **** 9012", ExpirationDate: "03/23", Status: entity.StatusBloqueada, Balance: decimal.Zero},
	}
}

func ids(cards []*entity.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestCollection_InsertAgregaAlFinalConIDNuevo(t *testing.T) {
	col := memory.NewCollection((*entity.Card).Clone)
	col.Seed(seedCards()...)

	card := &entity.Card{EmployeeName: "Ana Ruiz", Status: entity.StatusActiva, Balance: decimal.NewFromInt(100)}
	col.Insert(card)

	all := col.All()
	require.Len(t, all, 4)
	assert.Equal(t, "4", card.ID, "el ID asignado se devuelve en el registro")
	assert.Equal(t, "Ana Ruiz", all[3].EmployeeName)
	assert.True(t, all[3].Balance.Equal(decimal.NewFromInt(100)))
}

func TestCollection_IDsNoSeReutilizanTrasBorrar(t *testing.T) {
	col := memory.NewCollection((*entity.Card).Clone)
	col.Seed(seedCards()...)

	require.True(t, col.Remove("3"))
	col.Insert(&entity.Card{EmployeeName: "Nuevo"})

	got := ids(col.All())
	if diff := cmp.Diff([]string{"1", "2", "4"}, got); diff != "" {
		t.Fatalf("IDs inesperados (-want +got):\n%s", diff)
	}
}

func TestCollection_ReplaceConservaPosicion(t *testing.T) {
	col := memory.NewCollection((*entity.Card).Clone)
	col.Seed(seedCards()...)
	before := col.All()

	edited := before[1].Clone()
	edited.EmployeeName = "María G."
	edited.Status = entity.StatusInactiva
	require.True(t, col.Replace(edited))

	after := col.All()
	require.Len(t, after, len(before))
	assert.Equal(t, edited, after[1])
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
}

func TestCollection_OperacionesSobreIDInexistenteNoHacenNada(t *testing.T) {
	col := memory.NewCollection((*entity.Card).Clone)
	col.Seed(seedCards()...)
	before := col.All()

	assert.False(t, col.Replace(&entity.Card{ID: "99", EmployeeName: "X"}))
	assert.False(t, col.Remove("99"))
	assert.Equal(t, before, col.All())
}

func TestCollection_RemoveEsIdempotente(t *testing.T) {
	col := memory.NewCollection((*entity.Card).Clone)
	col.Seed(seedCards()...)

	assert.True(t, col.Remove("2"))
	assert.Equal(t, 2, col.Len())
	assert.False(t, col.Remove("2"))
	assert.Equal(t, 2, col.Len())
	assert.Equal(t, []string{"1", "3"}, ids(col.All()))
}

func TestCollection_EntregaCopias(t *testing.T) {
	col := memory.NewCollection((*entity.Benefit).Clone)
	col.Seed(&entity.Benefit{ID: "1", RazonComercial: "Súper", Sucursales: []entity.Sucursal{{ID: "s1", MCC: []string{"5411"}}}})

	got, ok := col.Get("1")
	require.True(t, ok)
	got.RazonComercial = "modificado"
	got.Sucursales[0].MCC[0] = "0000"

	again, _ := col.Get("1")
	assert.Equal(t, "Súper", again.RazonComercial)
	assert.Equal(t, []string{"5411"}, again.Sucursales[0].MCC)
}

func TestCollection_InsercionesConcurrentesGeneranIDsUnicos(t *testing.T) {
	col := memory.NewCollection((*entity.Role).Clone)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			col.Insert(&entity.Role{Name: "r"})
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, r := range col.All() {
		assert.False(t, seen[r.ID], "ID duplicado %s", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestEmployeeRepo_ListByAccount(t *testing.T) {
	repo := memory.NewEmployeeRepository(
		&entity.Employee{ID: "1", Name: "Juan Pérez", AccountID: "1"},
		&entity.Employee{ID: "2", Name: "María García", AccountID: "2"},
		&entity.Employee{ID: "3", Name: "Carlos Rodríguez", AccountID: "1"},
	)
	list, err := repo.ListByAccount(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Juan Pérez", list[0].Name)
	assert.Equal(t, "Carlos Rodríguez", list[1].Name)
}
