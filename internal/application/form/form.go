// Package form implementa los formularios modales del panel: una copia de trabajo
// por registro que se abre en modo alta o edición, se modifica campo a campo y
// termina enviada o cancelada. Cerrar por cualquier vía descarta la copia.
package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
)

// Kind tipo de registro que edita un formulario.
type Kind string

const (
	KindAccount  Kind = "account"
	KindEmployee Kind = "employee"
	KindCard     Kind = "card"
	KindBenefit  Kind = "benefit"
	KindRole     Kind = "role"
	KindSucursal Kind = "sucursal"
)

// Mode alta o edición.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Form operaciones comunes a todos los formularios.
type Form interface {
	ID() string
	Kind() Kind
	Mode() Mode
	// Set reemplaza un campo de la copia de trabajo conservando el resto.
	Set(field, value string) error
	// Submit guarda la copia en su colección y cierra el formulario.
	Submit(ctx context.Context) (any, error)
	// Cancel cierra el formulario sin guardar. Cancelar dos veces no es error.
	Cancel()
	View() dto.FormResponse
	lastTouched() time.Time
}

// Store es lo que un formulario necesita de su caso de uso.
type Store[T any] interface {
	Store(ctx context.Context, rec T) error
	Replace(ctx context.Context, rec T) error
	Record(ctx context.Context, id string) (T, error)
}

type setter[T any] func(rec T, value string) error

type binding[T any] struct {
	kind   Kind
	fields map[string]setter[T]
	clone  func(T) T
	submit func(ctx context.Context, mode Mode, rec T) error
	view   func(T) any
}

// Draft copia de trabajo de un registro de tipo T.
type Draft[T any] struct {
	mu      sync.Mutex
	id      string
	mode    Mode
	b       *binding[T]
	rec     T
	closed  bool
	touched time.Time
}

func newDraft[T any](b *binding[T], mode Mode, rec T) *Draft[T] {
	return &Draft[T]{id: uuid.NewString(), mode: mode, b: b, rec: rec, touched: time.Now()}
}

func (d *Draft[T]) ID() string { return d.id }
func (d *Draft[T]) Kind() Kind { return d.b.kind }
func (d *Draft[T]) Mode() Mode { return d.mode }

func (d *Draft[T]) Set(field, value string) error {
	set, ok := d.b.fields[field]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownField, field)
	}
	return d.with(func(rec T) error { return set(rec, value) })
}

// Submit valida y guarda. Si falla la validación el formulario sigue abierto.
func (d *Draft[T]) Submit(ctx context.Context) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, domain.ErrDraftClosed
	}
	d.touched = time.Now()
	rec := d.b.clone(d.rec)
	if err := d.b.submit(ctx, d.mode, rec); err != nil {
		return nil, err
	}
	d.rec = rec
	d.closed = true
	return d.b.view(rec), nil
}

func (d *Draft[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.touched = time.Now()
}

// Closed informa si el formulario ya fue enviado o cancelado.
func (d *Draft[T]) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *Draft[T]) View() dto.FormResponse {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewLocked()
}

func (d *Draft[T]) viewLocked() dto.FormResponse {
	return dto.FormResponse{
		ID:     d.id,
		Kind:   string(d.b.kind),
		Mode:   string(d.mode),
		Closed: d.closed,
		Record: d.b.view(d.rec),
	}
}

func (d *Draft[T]) lastTouched() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.touched
}

// with ejecuta fn sobre la copia de trabajo si el formulario sigue abierto.
func (d *Draft[T]) with(fn func(rec T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return domain.ErrDraftClosed
	}
	d.touched = time.Now()
	return fn(d.rec)
}

// persist guarda en modo alta o reemplaza en modo edición.
func persist[T any](store Store[T]) func(ctx context.Context, mode Mode, rec T) error {
	return func(ctx context.Context, mode Mode, rec T) error {
		if mode == ModeEdit {
			return store.Replace(ctx, rec)
		}
		return store.Store(ctx, rec)
	}
}
