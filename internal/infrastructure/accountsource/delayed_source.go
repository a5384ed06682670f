// Package accountsource implementa ports.AccountSource sobre el repositorio de cuentas.
package accountsource

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Beneficios-api/internal/application/ports"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ ports.AccountSource = (*DelayedSource)(nil)

// DelayedSource entrega la lista de cuentas tras un retardo fijo, como la llamada
// de red simulada de la consola original.
type DelayedSource struct {
	repo  repository.AccountRepository
	delay time.Duration
}

// NewDelayedSource construye la fuente. delay <= 0 responde de inmediato.
func NewDelayedSource(repo repository.AccountRepository, delay time.Duration) *DelayedSource {
	return &DelayedSource{repo: repo, delay: delay}
}

// FetchAccounts espera el retardo configurado y devuelve todas las cuentas.
func (s *DelayedSource) FetchAccounts(ctx context.Context) ([]*entity.Account, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("accountsource: listar cuentas: %w", err)
	}
	return list, nil
}
