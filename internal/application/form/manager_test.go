package form_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/form"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/accountsource"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/memory"
)

type fixture struct {
	manager   *form.Manager
	accounts  *usecase.AccountUseCase
	employees *usecase.EmployeeUseCase
	cards     *usecase.CardUseCase
	benefits  *usecase.BenefitUseCase
	roles     *usecase.RoleUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	accountRepo := memory.NewAccountRepository(
		&entity.Account{ID: "1", Name: "Corporación ABC", Type: "Empresa", Status: entity.StatusActiva, ActiveCards: 450},
		&entity.Account{ID: "2", Name: "XYZ Inc.", Type: "PYME", Status: entity.StatusActiva, ActiveCards: 45},
		&entity.Account{ID: "3", Name: "Compañía 123", Type: "Startup", Status: entity.StatusInactiva, ActiveCards: 18},
	)
	employeeRepo := memory.NewEmployeeRepository(
		&entity.Employee{ID: "1", Name: "Juan Pérez", Email: "juan@example.com", Position: "Gerente", Department: "Ventas", Status: entity.StatusActivo, AccountID: "1"},
	)
	cardRepo := memory.NewCardRepository(
		&entity.Card{ID: "1", EmployeeName: "Juan Pérez", CardNumber: "**** **** **** 1234", ExpirationDate: "12/25", Status: entity.StatusActiva, Balance: decimal.NewFromInt(500)},
	)

	f := &fixture{
		accounts:  usecase.NewAccountUseCase(accountRepo, employeeRepo),
		employees: usecase.NewEmployeeUseCase(employeeRepo, accountRepo),
		cards:     usecase.NewCardUseCase(cardRepo),
		benefits:  usecase.NewBenefitUseCase(memory.NewBenefitRepository()),
		roles:     usecase.NewRoleUseCase(memory.NewRoleRepository()),
	}
	f.manager = form.NewManager(form.Stores{
		Accounts:  f.accounts,
		Employees: f.employees,
		Cards:     f.cards,
		Benefits:  f.benefits,
		Roles:     f.roles,
	}, accountsource.NewDelayedSource(accountRepo, 0), time.Hour)
	return f
}

func setAll(t *testing.T, f form.Form, fields map[string]string) {
	t.Helper()
	for k, v := range fields {
		require.NoError(t, f.Set(k, v), k)
	}
}

func TestRoleForm_QuitarPermisoAntesDeEnviar(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f, err := fx.manager.Open(ctx, form.KindRole, "")
	require.NoError(t, err)
	setAll(t, f, map[string]string{"name": "Operador", "description": "Opera tarjetas"})

	role, err := fx.manager.Role(f.ID())
	require.NoError(t, err)
	perms, err := role.TogglePermission("Gestionar Tarjetas")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gestionar Tarjetas"}, perms)
	perms, err = role.TogglePermission("Gestionar Tarjetas")
	require.NoError(t, err)
	assert.Empty(t, perms)

	res, err := f.Submit(ctx)
	require.NoError(t, err)
	submitted := res.(*dto.RoleResponse)
	assert.Empty(t, submitted.Permissions)

	stored, err := fx.roles.GetByID(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Permissions)
}

func TestRoleForm_PermisoFueraDelCatalogo(t *testing.T) {
	fx := newFixture(t)
	f, err := fx.manager.Open(context.Background(), form.KindRole, "")
	require.NoError(t, err)

	role, err := fx.manager.Role(f.ID())
	require.NoError(t, err)
	_, err = role.TogglePermission("Todos")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeForm_BuscadorDeCuentas(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f, err := fx.manager.Open(ctx, form.KindEmployee, "")
	require.NoError(t, err)
	emp, err := fx.manager.Employee(f.ID())
	require.NoError(t, err)

	suggestions, err := emp.Search("XYZ")
	require.NoError(t, err)
	assert.Equal(t, []dto.AccountOptionDTO{{ID: "2", Name: "XYZ Inc."}}, suggestions)
	assert.True(t, emp.View().Lookup.Open)

	require.NoError(t, emp.Select("2"))
	view := emp.View()
	assert.Equal(t, "XYZ Inc.", view.Lookup.Display)
	assert.False(t, view.Lookup.Open)
	assert.Empty(t, view.Lookup.Suggestions)
	assert.Equal(t, "2", view.Record.(*dto.EmployeeResponse).AccountID)

	// escribir no cambia la cuenta asignada
	_, err = emp.Search("Comp")
	require.NoError(t, err)
	assert.Equal(t, "2", emp.View().Record.(*dto.EmployeeResponse).AccountID)

	require.NoError(t, emp.CloseSuggestions())
	assert.False(t, emp.View().Lookup.Open)
	require.NoError(t, emp.Focus())
	view = emp.View()
	assert.True(t, view.Lookup.Open)
	assert.Equal(t, "Comp", view.Lookup.Display)
	require.Len(t, view.Lookup.Suggestions, 1)
	assert.Equal(t, "Compañía 123", view.Lookup.Suggestions[0].Name)

	assert.ErrorIs(t, emp.Select("99"), domain.ErrNotFound)
}

func TestEmployeeForm_EdicionMuestraNombreDeCuenta(t *testing.T) {
	fx := newFixture(t)
	f, err := fx.manager.Open(context.Background(), form.KindEmployee, "1")
	require.NoError(t, err)

	view := f.View()
	assert.Equal(t, "edit", view.Mode)
	assert.Equal(t, "Corporación ABC", view.Lookup.Display)
	assert.Equal(t, "Corporación ABC", view.Record.(*dto.EmployeeResponse).AccountName)
}

func TestEmployeeForm_CuentaObligatoria(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f, err := fx.manager.Open(ctx, form.KindEmployee, "")
	require.NoError(t, err)
	setAll(t, f, map[string]string{"name": "Lucía", "email": "l@x.com", "position": "QA", "department": "TI"})

	_, err = f.Submit(ctx)
	var rf *domain.RequiredFieldsError
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, []string{"account_id"}, rf.Fields)
	assert.False(t, f.View().Closed)

	assert.ErrorIs(t, f.Set("account_id", "1"), domain.ErrUnknownField)
}

func TestCardForm_AltaConValoresPorDefecto(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f, err := fx.manager.Open(ctx, form.KindCard, "")
	require.NoError(t, err)
	assert.Equal(t, "Activa", f.View().Record.(*dto.CardResponse).Status)

	setAll(t, f, map[string]string{
		"employee_name":   "Ana Ruiz",
		"card_number":     "**** **** **** 3456",
		"expiration_date": "09/27",
		"balance":         "100",
	})
	res, err := f.Submit(ctx)
	require.NoError(t, err)
	card := res.(*dto.CardResponse)
	assert.Equal(t, "2", card.ID)
	assert.True(t, card.Balance.Equal(decimal.NewFromInt(100)))

	_, err = f.Submit(ctx)
	assert.ErrorIs(t, err, domain.ErrDraftClosed)
	assert.ErrorIs(t, f.Set("balance", "1"), domain.ErrDraftClosed)
}

func TestCardForm_CamposInvalidos(t *testing.T) {
	fx := newFixture(t)
	f, err := fx.manager.Open(context.Background(), form.KindCard, "")
	require.NoError(t, err)

	assert.ErrorIs(t, f.Set("status", "Robada"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.Set("balance", "diez"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.Set("color", "rojo"), domain.ErrUnknownField)
	assert.Equal(t, "Activa", f.View().Record.(*dto.CardResponse).Status)
}

func TestAccountForm_CancelarDescartaCambios(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f, err := fx.manager.Open(ctx, form.KindAccount, "2")
	require.NoError(t, err)
	require.NoError(t, f.Set("name", "Otro nombre"))
	assert.Equal(t, "Otro nombre", f.View().Record.(*dto.AccountResponse).Name)

	f.Cancel()
	f.Cancel()
	assert.True(t, f.View().Closed)

	stored, err := fx.accounts.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "XYZ Inc.", stored.Name)

	_, err = f.Submit(ctx)
	assert.ErrorIs(t, err, domain.ErrDraftClosed)
}

func TestAccountForm_EdicionReemplazaEnSuLugar(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f, err := fx.manager.Open(ctx, form.KindAccount, "2")
	require.NoError(t, err)
	setAll(t, f, map[string]string{"status": "Inactiva", "active_cards": "50"})
	_, err = f.Submit(ctx)
	require.NoError(t, err)

	list, err := fx.accounts.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "XYZ Inc.", list.Items[1].Name)
	assert.Equal(t, "Inactiva", list.Items[1].Status)
	assert.Equal(t, 50, list.Items[1].ActiveCards)
}

func TestManager_OpenErrores(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	_, err := fx.manager.Open(ctx, form.KindAccount, "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = fx.manager.Open(ctx, form.KindSucursal, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = form.ParseKind("factura")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.manager.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f, err := fx.manager.Open(ctx, form.KindCard, "")
	require.NoError(t, err)
	_, err = fx.manager.Employee(f.ID())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestManager_SweepDescartaInactivos(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f, err := fx.manager.Open(ctx, form.KindCard, "")
	require.NoError(t, err)
	assert.Equal(t, 1, fx.manager.Len())

	assert.Zero(t, fx.manager.Sweep(time.Now()))
	assert.Equal(t, 1, fx.manager.Sweep(time.Now().Add(2*time.Hour)))
	_, err = fx.manager.Get(f.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
