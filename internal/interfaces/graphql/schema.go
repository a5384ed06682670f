// Package graphql expone un modelo de lectura GraphQL sobre las colecciones del panel.
// Cuenta y empleado se resuelven uno a otro por AccountID.
package graphql

import (
	"errors"
	"net/http"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// Deps casos de uso que consultan los resolvers.
type Deps struct {
	Accounts  *usecase.AccountUseCase
	Employees *usecase.EmployeeUseCase
	Cards     *usecase.CardUseCase
	Benefits  *usecase.BenefitUseCase
	Roles     *usecase.RoleUseCase
}

// field campo escalar leído de la entidad T.
func field[T any](typ gql.Output, get func(T) any) *gql.Field {
	return &gql.Field{
		Type: typ,
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			src, ok := p.Source.(T)
			if !ok {
				return nil, nil
			}
			return get(src), nil
		},
	}
}

var queryArg = gql.FieldConfigArgument{
	"query": &gql.ArgumentConfig{Type: gql.String, DefaultValue: ""},
}

func queryOf(p gql.ResolveParams) string {
	q, _ := p.Args["query"].(string)
	return q
}

// NewSchema construye el esquema de solo lectura.
func NewSchema(d Deps) (gql.Schema, error) {
	var accountType, employeeType *gql.Object

	accountType = gql.NewObject(gql.ObjectConfig{
		Name: "Account",
		Fields: gql.FieldsThunk(func() gql.Fields {
			return gql.Fields{
				"id":          field(gql.NewNonNull(gql.ID), func(a *entity.Account) any { return a.ID }),
				"name":        field(gql.String, func(a *entity.Account) any { return a.Name }),
				"type":        field(gql.String, func(a *entity.Account) any { return a.Type }),
				"status":      field(gql.String, func(a *entity.Account) any { return a.Status }),
				"activeCards": field(gql.Int, func(a *entity.Account) any { return a.ActiveCards }),
				"employees": &gql.Field{
					Type: gql.NewList(employeeType),
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						return d.Accounts.EmployeeRecords(p.Context, p.Source.(*entity.Account).ID)
					},
				},
			}
		}),
	})

	employeeType = gql.NewObject(gql.ObjectConfig{
		Name: "Employee",
		Fields: gql.FieldsThunk(func() gql.Fields {
			return gql.Fields{
				"id":         field(gql.NewNonNull(gql.ID), func(e *entity.Employee) any { return e.ID }),
				"name":       field(gql.String, func(e *entity.Employee) any { return e.Name }),
				"email":      field(gql.String, func(e *entity.Employee) any { return e.Email }),
				"position":   field(gql.String, func(e *entity.Employee) any { return e.Position }),
				"department": field(gql.String, func(e *entity.Employee) any { return e.Department }),
				"status":     field(gql.String, func(e *entity.Employee) any { return e.Status }),
				"accountId":  field(gql.String, func(e *entity.Employee) any { return e.AccountID }),
				// account es null si la referencia no apunta a una cuenta existente.
				"account": &gql.Field{
					Type: accountType,
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						a, err := d.Accounts.Record(p.Context, p.Source.(*entity.Employee).AccountID)
						if errors.Is(err, domain.ErrNotFound) {
							return nil, nil
						}
						return a, err
					},
				},
			}
		}),
	})

	cardType := gql.NewObject(gql.ObjectConfig{
		Name: "Card",
		Fields: gql.Fields{
			"id":             field(gql.NewNonNull(gql.ID), func(c *entity.Card) any { return c.ID }),
			"employeeName":   field(gql.String, func(c *entity.Card) any { return c.EmployeeName }),
			"cardNumber":     field(gql.String, func(c *entity.Card) any { return c.CardNumber }),
			"expirationDate": field(gql.String, func(c *entity.Card) any { return c.ExpirationDate }),
			"status":         field(gql.String, func(c *entity.Card) any { return c.Status }),
			"balance":        field(gql.String, func(c *entity.Card) any { return c.Balance.String() }),
		},
	})

	sucursalType := gql.NewObject(gql.ObjectConfig{
		Name: "Sucursal",
		Fields: gql.Fields{
			"id":        field(gql.NewNonNull(gql.ID), func(s entity.Sucursal) any { return s.ID }),
			"nombre":    field(gql.String, func(s entity.Sucursal) any { return s.Nombre }),
			"direccion": field(gql.String, func(s entity.Sucursal) any { return s.Direccion }),
			"mcc":       field(gql.NewList(gql.String), func(s entity.Sucursal) any { return s.MCC }),
		},
	})

	benefitType := gql.NewObject(gql.ObjectConfig{
		Name: "Benefit",
		Fields: gql.Fields{
			"id":             field(gql.NewNonNull(gql.ID), func(b *entity.Benefit) any { return b.ID }),
			"razonComercial": field(gql.String, func(b *entity.Benefit) any { return b.RazonComercial }),
			"razonSocial":    field(gql.String, func(b *entity.Benefit) any { return b.RazonSocial }),
			"ruc":            field(gql.String, func(b *entity.Benefit) any { return b.RUC }),
			"dv":             field(gql.String, func(b *entity.Benefit) any { return b.DV }),
			"telefono":       field(gql.String, func(b *entity.Benefit) any { return b.Telefono }),
			"correo":         field(gql.String, func(b *entity.Benefit) any { return b.Correo }),
			"contacto":       field(gql.String, func(b *entity.Benefit) any { return b.Contacto }),
			"direccion":      field(gql.String, func(b *entity.Benefit) any { return b.Direccion }),
			"direccion2":     field(gql.String, func(b *entity.Benefit) any { return b.Direccion2 }),
			"estado":         field(gql.String, func(b *entity.Benefit) any { return b.Estado }),
			"sucursales":     field(gql.NewList(sucursalType), func(b *entity.Benefit) any { return b.Sucursales }),
		},
	})

	roleType := gql.NewObject(gql.ObjectConfig{
		Name: "Role",
		Fields: gql.Fields{
			"id":          field(gql.NewNonNull(gql.ID), func(r *entity.Role) any { return r.ID }),
			"name":        field(gql.String, func(r *entity.Role) any { return r.Name }),
			"description": field(gql.String, func(r *entity.Role) any { return r.Description }),
			"permissions": field(gql.NewList(gql.String), func(r *entity.Role) any { return r.Permissions }),
		},
	})

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"accounts": &gql.Field{
				Type: gql.NewList(accountType),
				Args: queryArg,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return d.Accounts.Records(p.Context, queryOf(p))
				},
			},
			"account": &gql.Field{
				Type: accountType,
				Args: gql.FieldConfigArgument{"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)}},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					a, err := d.Accounts.Record(p.Context, id)
					if errors.Is(err, domain.ErrNotFound) {
						return nil, nil
					}
					return a, err
				},
			},
			"employees": &gql.Field{
				Type: gql.NewList(employeeType),
				Args: queryArg,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return d.Employees.Records(p.Context, queryOf(p))
				},
			},
			"cards": &gql.Field{
				Type: gql.NewList(cardType),
				Args: queryArg,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return d.Cards.Records(p.Context, queryOf(p))
				},
			},
			"benefits": &gql.Field{
				Type: gql.NewList(benefitType),
				Args: queryArg,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return d.Benefits.Records(p.Context, queryOf(p))
				},
			},
			"roles": &gql.Field{
				Type: gql.NewList(roleType),
				Args: queryArg,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return d.Roles.Records(p.Context, queryOf(p))
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{Query: query})
}

// NewHandler handler net/http del esquema (GET y POST).
func NewHandler(schema gql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: false,
	})
}
