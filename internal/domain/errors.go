package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnknownField   = errors.New("campo desconocido")
	ErrRequiredFields = errors.New("faltan campos obligatorios")
	ErrDraftClosed    = errors.New("el formulario ya fue cerrado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
)

// RequiredFieldsError indica qué campos obligatorios están vacíos.
// errors.Is(err, ErrRequiredFields) es verdadero.
type RequiredFieldsError struct {
	Fields []string
}

func (e *RequiredFieldsError) Error() string {
	return ErrRequiredFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *RequiredFieldsError) Unwrap() error { return ErrRequiredFields }

// RequireFields devuelve *RequiredFieldsError si alguno de los valores está vacío
// (tras recortar espacios). pairs alterna nombre, valor.
func RequireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &RequiredFieldsError{Fields: missing}
}
