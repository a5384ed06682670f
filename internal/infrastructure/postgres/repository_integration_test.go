//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Beneficios-api/pkg/config"
)

// Se ejecuta con: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/infrastructure/postgres/
// La base indicada se vacía en cada prueba.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	require.NoError(t, postgres.Reset(ctx, pool))
	return pool
}

func branch(id, nombre string, mcc ...string) entity.Sucursal {
	return entity.Sucursal{ID: id, Nombre: nombre, Direccion: "Av. " + nombre, MCC: mcc}
}

func benefit(razon string, sucursales ...entity.Sucursal) *entity.Benefit {
	return &entity.Benefit{
		RazonComercial: razon, RazonSocial: razon + " S.A.", RUC: "155", DV: "01",
		Telefono: "6000-0000", Correo: "info@example.com", Contacto: "Ana",
		Direccion: "Calle 50", Estado: entity.StatusActivo, Sucursales: sucursales,
	}
}

func TestAccountRepo_ListaEnOrdenDeAlta(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewAccountRepository(testPool(t))

	names := []string{"Zeta", "Alfa", "Media"}
	for _, n := range names {
		require.NoError(t, repo.Create(ctx, &entity.Account{Name: n, Type: "PYME", Status: entity.StatusActiva}))
	}

	// editar no cambia la posición
	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "Zeta editada"
	found, err := repo.Update(ctx, list[0])
	require.NoError(t, err)
	assert.True(t, found)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	got := make([]string, 0, len(list))
	for _, a := range list {
		got = append(got, a.Name)
	}
	assert.Equal(t, []string{"Zeta editada", "Alfa", "Media"}, got)
}

func TestCardRepo_SaldoDecimal(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewCardRepository(testPool(t))

	card := &entity.Card{EmployeeName: "Juan Pérez", CardNumber: "**** 1234", ExpirationDate: "12/25",
		Status: entity.StatusActiva, Balance: decimal.RequireFromString("1250.50")}
	require.NoError(t, repo.Create(ctx, card))

	got, err := repo.GetByID(ctx, card.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Balance.Equal(card.Balance))

	missing, err := repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBenefitRepo_SucursalesEnOrdenYReemplazo(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewBenefitRepository(testPool(t))

	b := benefit("Super 99", branch("s-2", "Costa del Este", "5411"), branch("s-1", "Albrook", "5411", "5812"))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, got.Sucursales, 2)
	assert.Equal(t, "s-2", got.Sucursales[0].ID)
	assert.Equal(t, []string{"5411", "5812"}, got.Sucursales[1].MCC)

	got.Sucursales = []entity.Sucursal{branch("s-1", "Albrook"), branch("s-3", "El Dorado")}
	found, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.True(t, found)

	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, got.Sucursales, 2)
	assert.Equal(t, "s-1", got.Sucursales[0].ID)
	assert.Equal(t, "s-3", got.Sucursales[1].ID)
	assert.Empty(t, got.Sucursales[0].MCC)
}

func TestBenefitRepo_SucursalAjenaRevierteLaTransaccion(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewBenefitRepository(testPool(t))

	require.NoError(t, repo.Create(ctx, benefit("Farmacia Arrocha", branch("s-1", "Vía España"))))

	err := repo.Create(ctx, benefit("Otro comercio", branch("s-9", "Nueva"), branch("s-1", "Repetida")))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "ni el beneficio ni sus sucursales quedan guardados")
	assert.Equal(t, "Farmacia Arrocha", list[0].RazonComercial)
}

func TestBenefitRepo_DeleteBorraSucursalesEnCascada(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	repo := postgres.NewBenefitRepository(pool)

	b := benefit("Riba Smith", branch("s-1", "Bella Vista"), branch("s-2", "Multiplaza"))
	require.NoError(t, repo.Create(ctx, b))

	removed, err := repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM benefit_sucursales WHERE benefit_id = $1`, b.ID).Scan(&count))
	assert.Zero(t, count)

	removed, err = repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	// los IDs de sucursal quedan libres
	require.NoError(t, repo.Create(ctx, benefit("Riba Smith", branch("s-1", "Bella Vista"))))
}
