package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

func text[T any](ptr func(T) *string) setter[T] {
	return func(rec T, v string) error {
		*ptr(rec) = v
		return nil
	}
}

// choice restringe el campo a una enumeración (los select del formulario).
func choice[T any](name string, allowed []string, ptr func(T) *string) setter[T] {
	return func(rec T, v string) error {
		if !entity.ValidStatus(v, allowed) {
			return fmt.Errorf("%w: %s debe ser uno de %s", domain.ErrInvalidInput, name, strings.Join(allowed, ", "))
		}
		*ptr(rec) = v
		return nil
	}
}

func accountBinding(store Store[*entity.Account]) *binding[*entity.Account] {
	return &binding[*entity.Account]{
		kind: KindAccount,
		fields: map[string]setter[*entity.Account]{
			"name":   text(func(a *entity.Account) *string { return &a.Name }),
			"type":   text(func(a *entity.Account) *string { return &a.Type }),
			"status": choice("status", entity.AccountStatuses, func(a *entity.Account) *string { return &a.Status }),
			"active_cards": func(a *entity.Account, v string) error {
				n, err := strconv.Atoi(strings.TrimSpace(v))
				if err != nil || n < 0 {
					return fmt.Errorf("%w: active_cards debe ser un entero no negativo", domain.ErrInvalidInput)
				}
				a.ActiveCards = n
				return nil
			},
		},
		clone:  (*entity.Account).Clone,
		submit: persist(store),
		view:   func(a *entity.Account) any { return usecase.ToAccountResponse(a) },
	}
}

func cardBinding(store Store[*entity.Card]) *binding[*entity.Card] {
	return &binding[*entity.Card]{
		kind: KindCard,
		fields: map[string]setter[*entity.Card]{
			"employee_name":   text(func(c *entity.Card) *string { return &c.EmployeeName }),
			"card_number":     text(func(c *entity.Card) *string { return &c.CardNumber }),
			"expiration_date": text(func(c *entity.Card) *string { return &c.ExpirationDate }),
			"status":          choice("status", entity.CardStatuses, func(c *entity.Card) *string { return &c.Status }),
			"balance": func(c *entity.Card, v string) error {
				d, err := decimal.NewFromString(strings.TrimSpace(v))
				if err != nil {
					return fmt.Errorf("%w: balance no es un número", domain.ErrInvalidInput)
				}
				c.Balance = d
				return nil
			},
		},
		clone:  (*entity.Card).Clone,
		submit: persist(store),
		view:   func(c *entity.Card) any { return usecase.ToCardResponse(c) },
	}
}

func roleBinding(store Store[*entity.Role]) *binding[*entity.Role] {
	return &binding[*entity.Role]{
		kind: KindRole,
		fields: map[string]setter[*entity.Role]{
			"name":        text(func(r *entity.Role) *string { return &r.Name }),
			"description": text(func(r *entity.Role) *string { return &r.Description }),
		},
		clone:  (*entity.Role).Clone,
		submit: persist(store),
		view:   func(r *entity.Role) any { return usecase.ToRoleResponse(r) },
	}
}

func employeeBinding(store Store[*entity.Employee], accountNames map[string]string) *binding[*entity.Employee] {
	return &binding[*entity.Employee]{
		kind: KindEmployee,
		fields: map[string]setter[*entity.Employee]{
			"name":       text(func(e *entity.Employee) *string { return &e.Name }),
			"email":      text(func(e *entity.Employee) *string { return &e.Email }),
			"position":   text(func(e *entity.Employee) *string { return &e.Position }),
			"department": text(func(e *entity.Employee) *string { return &e.Department }),
			"status":     choice("status", entity.EmployeeStatuses, func(e *entity.Employee) *string { return &e.Status }),
		},
		clone:  (*entity.Employee).Clone,
		submit: persist(store),
		view:   func(e *entity.Employee) any { return usecase.ToEmployeeResponse(e, accountNames) },
	}
}

func benefitBinding(store Store[*entity.Benefit]) *binding[*entity.Benefit] {
	return &binding[*entity.Benefit]{
		kind: KindBenefit,
		fields: map[string]setter[*entity.Benefit]{
			"razon_comercial": text(func(b *entity.Benefit) *string { return &b.RazonComercial }),
			"razon_social":    text(func(b *entity.Benefit) *string { return &b.RazonSocial }),
			"ruc":             text(func(b *entity.Benefit) *string { return &b.RUC }),
			"dv":              text(func(b *entity.Benefit) *string { return &b.DV }),
			"telefono":        text(func(b *entity.Benefit) *string { return &b.Telefono }),
			"correo":          text(func(b *entity.Benefit) *string { return &b.Correo }),
			"contacto":        text(func(b *entity.Benefit) *string { return &b.Contacto }),
			"direccion":       text(func(b *entity.Benefit) *string { return &b.Direccion }),
			"direccion2":      text(func(b *entity.Benefit) *string { return &b.Direccion2 }),
			"estado":          choice("estado", entity.BenefitStatuses, func(b *entity.Benefit) *string { return &b.Estado }),
		},
		clone:  (*entity.Benefit).Clone,
		submit: persist(store),
		view:   func(b *entity.Benefit) any { return usecase.ToBenefitResponse(b) },
	}
}

func cloneSucursal(s *entity.Sucursal) *entity.Sucursal {
	c := s.Clone()
	return &c
}
