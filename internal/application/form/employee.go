package form

import (
	"fmt"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/search"
)

// EmployeeDraft formulario de empleado con el buscador de cuentas.
// El texto del buscador (display) es independiente de AccountID: solo Select
// cambia la cuenta asignada.
type EmployeeDraft struct {
	*Draft[*entity.Employee]

	accounts []*entity.Account // leídas de AccountSource al abrir; no cambian
	display  string
	open     bool
}

func accountName(a *entity.Account) []string { return []string{a.Name} }

// Search escribe en el buscador: actualiza el texto, abre la lista y devuelve las
// cuentas cuyo nombre contiene query.
func (d *EmployeeDraft) Search(query string) ([]dto.AccountOptionDTO, error) {
	var out []dto.AccountOptionDTO
	err := d.with(func(*entity.Employee) error {
		d.display = query
		d.open = true
		out = d.suggestions()
		return nil
	})
	return out, err
}

// Focus abre la lista sin cambiar el texto.
func (d *EmployeeDraft) Focus() error {
	return d.with(func(*entity.Employee) error {
		d.open = true
		return nil
	})
}

// CloseSuggestions cierra la lista (clic fuera del buscador).
func (d *EmployeeDraft) CloseSuggestions() error {
	return d.with(func(*entity.Employee) error {
		d.open = false
		return nil
	})
}

// Select asigna la cuenta al empleado, copia su nombre al buscador y cierra la lista.
func (d *EmployeeDraft) Select(accountID string) error {
	return d.with(func(e *entity.Employee) error {
		for _, a := range d.accounts {
			if a.ID == accountID {
				e.AccountID = a.ID
				d.display = a.Name
				d.open = false
				return nil
			}
		}
		return fmt.Errorf("%w: cuenta %s", domain.ErrNotFound, accountID)
	})
}

func (d *EmployeeDraft) View() dto.FormResponse {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := d.viewLocked()
	v.Lookup = &dto.AccountLookupDTO{Display: d.display, Open: d.open, Suggestions: []dto.AccountOptionDTO{}}
	if d.open {
		v.Lookup.Suggestions = d.suggestions()
	}
	return v
}

func (d *EmployeeDraft) suggestions() []dto.AccountOptionDTO {
	matches := search.Filter(d.accounts, d.display, accountName)
	out := make([]dto.AccountOptionDTO, 0, len(matches))
	for _, a := range matches {
		out = append(out, dto.AccountOptionDTO{ID: a.ID, Name: a.Name})
	}
	return out
}
