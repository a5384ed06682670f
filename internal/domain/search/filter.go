// Package search implementa el filtro de texto libre de los listados.
//
// Un registro coincide cuando la consulta es subcadena, sin distinguir
// mayúsculas (case folding Unicode), de alguno de sus campos buscables.
// Solo la consulta vacía coincide con todo; los espacios cuentan como texto. Filter nunca modifica la colección.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fields extrae los campos buscables de un registro.
type Fields[T any] func(T) []string

// Filter devuelve, en el mismo orden, los elementos de items que coinciden con query.
func Filter[T any](items []T, query string, fields Fields[T]) []T {
	q := fold(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q == "" || matchesFolded(q, fields(it)) {
			out = append(out, it)
		}
	}
	return out
}

// Matches informa si query aparece en alguno de los valores.
func Matches(query string, values ...string) bool {
	q := fold(query)
	if q == "" {
		return true
	}
	return matchesFolded(q, values)
}

func matchesFolded(q string, values []string) bool {
	for _, v := range values {
		if strings.Contains(fold(v), q) {
			return true
		}
	}
	return false
}

// Un Caser guarda estado; se crea uno por llamada.
func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}
