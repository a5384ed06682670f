package graphql_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gql "github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/memory"
	"github.com/jhoicas/Beneficios-api/internal/infrastructure/seed"
	appgraphql "github.com/jhoicas/Beneficios-api/internal/interfaces/graphql"
)

func newSchema(t *testing.T) gql.Schema {
	t.Helper()
	f, err := seed.Default()
	require.NoError(t, err)
	accounts := memory.NewAccountRepository(f.Accounts...)
	employees := memory.NewEmployeeRepository(f.Employees...)

	schema, err := appgraphql.NewSchema(appgraphql.Deps{
		Accounts:  usecase.NewAccountUseCase(accounts, employees),
		Employees: usecase.NewEmployeeUseCase(employees, accounts),
		Cards:     usecase.NewCardUseCase(memory.NewCardRepository(f.Cards...)),
		Benefits:  usecase.NewBenefitUseCase(memory.NewBenefitRepository(f.Benefits...)),
		Roles:     usecase.NewRoleUseCase(memory.NewRoleRepository(f.Roles...)),
	})
	require.NoError(t, err)
	return schema
}

func run(t *testing.T, schema gql.Schema, query string) map[string]any {
	t.Helper()
	res := gql.Do(gql.Params{Schema: schema, RequestString: query, Context: context.Background()})
	require.Empty(t, res.Errors)
	b, err := json.Marshal(res.Data)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestAccount_EmpleadosPorJoin(t *testing.T) {
	data := run(t, newSchema(t), `{ account(id: "3") { name employees { name position } } }`)
	account := data["account"].(map[string]any)
	assert.Equal(t, "Compañía 123", account["name"])
	employees := account["employees"].([]any)
	require.Len(t, employees, 2)
	assert.Equal(t, "Pedro Sánchez", employees[1].(map[string]any)["name"])
}

func TestEmployee_CuentaPorJoin(t *testing.T) {
	data := run(t, newSchema(t), `{ employees(query: "maría garcía") { name account { id name } } }`)
	employees := data["employees"].([]any)
	require.Len(t, employees, 1)
	account := employees[0].(map[string]any)["account"].(map[string]any)
	assert.Equal(t, "XYZ Inc.", account["name"])
}

func TestCards_SaldoComoTexto(t *testing.T) {
	data := run(t, newSchema(t), `{ cards(query: "bloqueada") { employeeName balance } }`)
	cards := data["cards"].([]any)
	require.Len(t, cards, 1)
	assert.Equal(t, "0", cards[0].(map[string]any)["balance"])
}

func TestAccount_Inexistente_EsNull(t *testing.T) {
	data := run(t, newSchema(t), `{ account(id: "99") { id } }`)
	assert.Nil(t, data["account"])
}

func TestHandler_POST(t *testing.T) {
	h := appgraphql.NewHandler(newSchema(t))
	body, _ := json.Marshal(map[string]any{"query": `{ roles { name permissions } }`})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Super Admin")
}
