package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Beneficios-api/internal/application/ports"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// Stores casos de uso sobre los que escriben los formularios.
type Stores struct {
	Accounts  Store[*entity.Account]
	Employees Store[*entity.Employee]
	Cards     Store[*entity.Card]
	Benefits  Store[*entity.Benefit]
	Roles     Store[*entity.Role]
}

// Manager registro de formularios abiertos, indexados por ID.
// Los formularios cerrados se conservan hasta que vence ttl para poder responder
// ErrDraftClosed a un segundo envío.
type Manager struct {
	stores Stores
	source ports.AccountSource
	ttl    time.Duration

	mu    sync.Mutex
	forms map[string]Form
}

// NewManager construye el registro. ttl es el tiempo máximo sin actividad de un formulario.
func NewManager(stores Stores, source ports.AccountSource, ttl time.Duration) *Manager {
	return &Manager{stores: stores, source: source, ttl: ttl, forms: make(map[string]Form)}
}

// ParseKind valida el tipo de formulario que se puede abrir directamente.
// Las sucursales se abren desde un formulario de beneficio.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindAccount, KindEmployee, KindCard, KindBenefit, KindRole:
		return k, nil
	}
	return "", fmt.Errorf("%w: tipo de formulario %q", domain.ErrInvalidInput, s)
}

// Open abre un formulario. recordID vacío abre en modo alta con los valores por
// defecto; si no, copia el registro actual (ErrNotFound si no existe).
func (m *Manager) Open(ctx context.Context, kind Kind, recordID string) (Form, error) {
	mode := ModeCreate
	if recordID != "" {
		mode = ModeEdit
	}

	var (
		f   Form
		err error
	)
	switch kind {
	case KindAccount:
		f, err = open(ctx, m.stores.Accounts, accountBinding(m.stores.Accounts), mode, recordID, usecase.NewAccount)
	case KindCard:
		f, err = open(ctx, m.stores.Cards, cardBinding(m.stores.Cards), mode, recordID, usecase.NewCard)
	case KindRole:
		var d *Draft[*entity.Role]
		d, err = open(ctx, m.stores.Roles, roleBinding(m.stores.Roles), mode, recordID, usecase.NewRole)
		f = &RoleDraft{Draft: d}
	case KindBenefit:
		var d *Draft[*entity.Benefit]
		d, err = open(ctx, m.stores.Benefits, benefitBinding(m.stores.Benefits), mode, recordID, usecase.NewBenefit)
		f = &BenefitDraft{Draft: d}
	case KindEmployee:
		f, err = m.openEmployee(ctx, mode, recordID)
	default:
		err = fmt.Errorf("%w: tipo de formulario %q", domain.ErrInvalidInput, kind)
	}
	if err != nil {
		return nil, err
	}

	m.register(f)
	log.Debug().Str("form_id", f.ID()).Str("kind", string(kind)).Str("mode", string(mode)).Msg("formulario abierto")
	return f, nil
}

func open[T any](ctx context.Context, store Store[T], b *binding[T], mode Mode, id string, empty func() T) (*Draft[T], error) {
	if mode == ModeCreate {
		return newDraft(b, mode, empty()), nil
	}
	rec, err := store.Record(ctx, id)
	if err != nil {
		return nil, err
	}
	return newDraft(b, mode, rec), nil
}

// openEmployee lee las cuentas de AccountSource (con su demora) para el buscador.
func (m *Manager) openEmployee(ctx context.Context, mode Mode, id string) (*EmployeeDraft, error) {
	var rec *entity.Employee
	if mode == ModeEdit {
		var err error
		if rec, err = m.stores.Employees.Record(ctx, id); err != nil {
			return nil, err
		}
	} else {
		rec = usecase.NewEmployee()
	}

	accounts, err := m.source.FetchAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar cuentas: %w", err)
	}
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	d := &EmployeeDraft{accounts: accounts, display: names[rec.AccountID]}
	d.Draft = newDraft(employeeBinding(m.stores.Employees, names), mode, rec)
	return d, nil
}

// OpenSucursal abre el formulario anidado de sucursal dentro del beneficio parentID.
func (m *Manager) OpenSucursal(parentID, sucursalID string) (*SucursalDraft, error) {
	parent, err := m.Benefit(parentID)
	if err != nil {
		return nil, err
	}
	child, err := parent.OpenSucursal(sucursalID)
	if err != nil {
		return nil, err
	}
	m.register(child)
	return child, nil
}

// Get devuelve el formulario id, abierto o recién cerrado.
func (m *Manager) Get(id string) (Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.forms[id]
	if !ok {
		return nil, fmt.Errorf("%w: formulario %s", domain.ErrNotFound, id)
	}
	return f, nil
}

// Employee devuelve el formulario id si es de empleado.
func (m *Manager) Employee(id string) (*EmployeeDraft, error) { return getAs[*EmployeeDraft](m, id, KindEmployee) }

// Role devuelve el formulario id si es de rol.
func (m *Manager) Role(id string) (*RoleDraft, error) { return getAs[*RoleDraft](m, id, KindRole) }

// Benefit devuelve el formulario id si es de beneficio.
func (m *Manager) Benefit(id string) (*BenefitDraft, error) { return getAs[*BenefitDraft](m, id, KindBenefit) }

func getAs[F Form](m *Manager, id string, want Kind) (F, error) {
	var zero F
	f, err := m.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := f.(F)
	if !ok {
		return zero, fmt.Errorf("%w: el formulario %s es de tipo %s, no %s", domain.ErrInvalidInput, id, f.Kind(), want)
	}
	return typed, nil
}

// Len cantidad de formularios registrados.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.forms)
}

// Sweep descarta los formularios sin actividad desde antes de now-ttl.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, f := range m.forms {
		if now.Sub(f.lastTouched()) > m.ttl {
			f.Cancel()
			delete(m.forms, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) register(f Form) {
	if m.ttl > 0 {
		m.Sweep(time.Now())
	}
	m.mu.Lock()
	m.forms[f.ID()] = f
	m.mu.Unlock()
}
