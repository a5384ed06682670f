package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Beneficios-api/internal/domain/search"
)

type person struct {
	name  string
	email string
}

func personFields(p person) []string { return []string{p.name, p.email} }

var people = []person{
	{"Juan Pérez", "juan@ejemplo.com"},
	{"María García", "maria@ejemplo.com"},
	{"Carlos Rodríguez", "carlos@ejemplo.com"},
}

func TestFilter_ConsultaVaciaDevuelveTodo(t *testing.T) {
	assert.Equal(t, people, search.Filter(people, "", personFields))
}

func TestFilter_LosEspaciosNoSeRecortan(t *testing.T) {
	assert.Empty(t, search.Filter(people, "   ", personFields))
	assert.Equal(t, []person{people[0]}, search.Filter(people, "juan ", personFields))
	assert.Empty(t, search.Filter(people, " juan", personFields))
	assert.False(t, search.Matches(" ", "ABC"))
	assert.True(t, search.Matches("", "ABC"))
}

func TestFilter_SinDistinguirMayusculas(t *testing.T) {
	got := search.Filter(people, "MARÍA", personFields)
	assert.Equal(t, []person{people[1]}, got)

	got = search.Filter(people, "pérez", personFields)
	assert.Equal(t, []person{people[0]}, got)
}

func TestFilter_BuscaEnCualquierCampo(t *testing.T) {
	got := search.Filter(people, "carlos@", personFields)
	assert.Equal(t, []person{people[2]}, got)

	got = search.Filter(people, "ejemplo", personFields)
	assert.Equal(t, people, got, "el orden de la colección se conserva")
}

func TestFilter_Idempotente(t *testing.T) {
	for _, q := range []string{"", "a", "GARC", "zzz", "ejemplo.com"} {
		once := search.Filter(people, q, personFields)
		twice := search.Filter(once, q, personFields)
		assert.Equal(t, once, twice, "filter(filter(C,q),q) = filter(C,q) para %q", q)
	}
}

func TestFilter_NoModificaLaColeccion(t *testing.T) {
	src := append([]person(nil), people...)
	_ = search.Filter(src, "juan", personFields)
	assert.Equal(t, people, src)
}

func TestMatches(t *testing.T) {
	assert.True(t, search.Matches("xyz", "Corporación ABC", "XYZ Inc."))
	assert.False(t, search.Matches("xyz", "Compañía 123"))
	assert.True(t, search.Matches("", "cualquier cosa"))
}
