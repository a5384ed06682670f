// Package analytics contiene el caso de uso del dashboard de ambos portales.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

// DashboardUseCase arma los KPIs del programa de tarjetas.
//
// Fuente de datos: los repositorios de cada colección (solo lectura).
type DashboardUseCase struct {
	accountRepo  repository.AccountRepository
	employeeRepo repository.EmployeeRepository
	cardRepo     repository.CardRepository
	benefitRepo  repository.BenefitRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	accountRepo repository.AccountRepository,
	employeeRepo repository.EmployeeRepository,
	cardRepo repository.CardRepository,
	benefitRepo repository.BenefitRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
		cardRepo:     cardRepo,
		benefitRepo:  benefitRepo,
	}
}

// GetSummary lee las cuatro colecciones en paralelo y calcula el resumen.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		accounts  []*entity.Account
		employees []*entity.Employee
		cards     []*entity.Card
		benefits  []*entity.Benefit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		accounts, err = uc.accountRepo.List(gctx)
		return wrap("cuentas", err)
	})
	g.Go(func() (err error) {
		employees, err = uc.employeeRepo.List(gctx)
		return wrap("empleados", err)
	})
	g.Go(func() (err error) {
		cards, err = uc.cardRepo.List(gctx)
		return wrap("tarjetas", err)
	})
	g.Go(func() (err error) {
		benefits, err = uc.benefitRepo.List(gctx)
		return wrap("beneficios", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		TotalAccounts:    len(accounts),
		TotalEmployees:   len(employees),
		AvailableBalance: decimal.Zero,
		Accounts:         make([]dto.AccountSummaryDTO, 0, len(accounts)),
	}

	for _, c := range cards {
		switch c.Status {
		case entity.StatusActiva:
			out.ActiveCards++
			out.AvailableBalance = out.AvailableBalance.Add(c.Balance)
		case entity.StatusBloqueada:
			out.BlockedCards++
		}
	}

	for _, b := range benefits {
		if b.Estado == entity.StatusActivo {
			out.ActiveBenefits++
		}
		out.TotalSucursales += len(b.Sucursales)
	}

	// Empleados por cuenta
	perAccount := make(map[string]int, len(accounts))
	for _, e := range employees {
		perAccount[e.AccountID]++
	}
	for _, a := range accounts {
		out.Accounts = append(out.Accounts, dto.AccountSummaryDTO{
			AccountID:   a.ID,
			Name:        a.Name,
			Type:        a.Type,
			Status:      a.Status,
			Employees:   perAccount[a.ID],
			ActiveCards: a.ActiveCards,
		})
	}

	return out, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: listar %s: %w", what, err)
	}
	return nil
}
