// Package seed carga los datos de ejemplo (YAML) en los repositorios.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

//go:embed data.yaml
var defaultData []byte

// Fixtures contenido de un archivo de datos de ejemplo.
type Fixtures struct {
	Accounts  []*entity.Account
	Employees []*entity.Employee
	Cards     []*entity.Card
	Benefits  []*entity.Benefit
	Roles     []*entity.Role
}

type file struct {
	Accounts []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Type        string `yaml:"type"`
		Status      string `yaml:"status"`
		ActiveCards int    `yaml:"active_cards"`
	} `yaml:"accounts"`
	Employees []struct {
		ID         string `yaml:"id"`
		Name       string `yaml:"name"`
		Email      string `yaml:"email"`
		Position   string `yaml:"position"`
		Department string `yaml:"department"`
		Status     string `yaml:"status"`
		AccountID  string `yaml:"account_id"`
	} `yaml:"employees"`
	Cards []struct {
		ID             string `yaml:"id"`
		EmployeeName   string `yaml:"employee_name"`
		CardNumber     string `yaml:"card_number"`
		ExpirationDate string `yaml:"expiration_date"`
		Status         string `yaml:"status"`
		Balance        string `yaml:"balance"`
	} `yaml:"cards"`
	Benefits []struct {
		ID             string `yaml:"id"`
		RazonComercial string `yaml:"razon_comercial"`
		RazonSocial    string `yaml:"razon_social"`
		RUC            string `yaml:"ruc"`
		DV             string `yaml:"dv"`
		Telefono       string `yaml:"telefono"`
		Correo         string `yaml:"correo"`
		Contacto       string `yaml:"contacto"`
		Direccion      string `yaml:"direccion"`
		Direccion2     string `yaml:"direccion2"`
		Estado         string `yaml:"estado"`
		Sucursales     []struct {
			ID        string `yaml:"id"`
			Nombre    string `yaml:"nombre"`
			Direccion string `yaml:"direccion"`
			MCC       string `yaml:"mcc"` // "5411, 5412"
		} `yaml:"sucursales"`
	} `yaml:"benefits"`
	Roles []struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Permissions []string `yaml:"permissions"`
	} `yaml:"roles"`
}

// Default devuelve los datos de ejemplo embebidos en el binario.
func Default() (*Fixtures, error) {
	return Parse(defaultData)
}

// LoadFile lee un archivo YAML con el mismo formato que data.yaml.
func LoadFile(path string) (*Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodifica el YAML. Campos desconocidos son error.
func Parse(b []byte) (*Fixtures, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("seed: yaml: %w", err)
	}

	out := &Fixtures{}
	for _, a := range f.Accounts {
		out.Accounts = append(out.Accounts, &entity.Account{
			ID: a.ID, Name: a.Name, Type: a.Type, Status: a.Status, ActiveCards: a.ActiveCards,
		})
	}
	for _, e := range f.Employees {
		out.Employees = append(out.Employees, &entity.Employee{
			ID: e.ID, Name: e.Name, Email: e.Email, Position: e.Position,
			Department: e.Department, Status: e.Status, AccountID: e.AccountID,
		})
	}
	for _, c := range f.Cards {
		balance := decimal.Zero
		if c.Balance != "" {
			var err error
			if balance, err = decimal.NewFromString(c.Balance); err != nil {
				return nil, fmt.Errorf("seed: tarjeta %s: balance %q: %w", c.ID, c.Balance, err)
			}
		}
		out.Cards = append(out.Cards, &entity.Card{
			ID: c.ID, EmployeeName: c.EmployeeName, CardNumber: c.CardNumber,
			ExpirationDate: c.ExpirationDate, Status: c.Status, Balance: balance,
		})
	}
	for _, b := range f.Benefits {
		benefit := &entity.Benefit{
			ID: b.ID, RazonComercial: b.RazonComercial, RazonSocial: b.RazonSocial, RUC: b.RUC, DV: b.DV,
			Telefono: b.Telefono, Correo: b.Correo, Contacto: b.Contacto, Direccion: b.Direccion,
			Direccion2: b.Direccion2, Estado: b.Estado, Sucursales: []entity.Sucursal{},
		}
		for _, s := range b.Sucursales {
			benefit.Sucursales = append(benefit.Sucursales, entity.Sucursal{
				ID: s.ID, Nombre: s.Nombre, Direccion: s.Direccion, MCC: entity.ParseMCC(s.MCC),
			})
		}
		out.Benefits = append(out.Benefits, benefit)
	}
	for _, r := range f.Roles {
		out.Roles = append(out.Roles, &entity.Role{
			ID: r.ID, Name: r.Name, Description: r.Description, Permissions: append([]string{}, r.Permissions...),
		})
	}
	return out, nil
}

// Repositories destino de Apply.
type Repositories struct {
	Accounts  repository.AccountRepository
	Employees repository.EmployeeRepository
	Cards     repository.CardRepository
	Benefits  repository.BenefitRepository
	Roles     repository.RoleRepository
}

// Apply inserta los datos en orden conservando sus IDs.
func Apply(ctx context.Context, f *Fixtures, repos Repositories) error {
	for _, a := range f.Accounts {
		if err := repos.Accounts.Create(ctx, a.Clone()); err != nil {
			return fmt.Errorf("seed cuenta %s: %w", a.ID, err)
		}
	}
	for _, e := range f.Employees {
		if err := repos.Employees.Create(ctx, e.Clone()); err != nil {
			return fmt.Errorf("seed empleado %s: %w", e.ID, err)
		}
	}
	for _, c := range f.Cards {
		if err := repos.Cards.Create(ctx, c.Clone()); err != nil {
			return fmt.Errorf("seed tarjeta %s: %w", c.ID, err)
		}
	}
	for _, b := range f.Benefits {
		if err := repos.Benefits.Create(ctx, b.Clone()); err != nil {
			return fmt.Errorf("seed beneficio %s: %w", b.ID, err)
		}
	}
	for _, r := range f.Roles {
		if err := repos.Roles.Create(ctx, r.Clone()); err != nil {
			return fmt.Errorf("seed rol %s: %w", r.ID, err)
		}
	}
	return nil
}
