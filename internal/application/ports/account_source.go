package ports

import (
	"context"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// AccountSource define el puerto de lectura asíncrona de cuentas que consume la vista de empleados.
// Devuelve la lista completa en orden; no pagina ni filtra. Solo falla si ctx se cancela antes.
type AccountSource interface {
	FetchAccounts(ctx context.Context) ([]*entity.Account, error)
}
