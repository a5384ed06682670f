package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// BenefitDraft formulario de beneficio. Las sucursales se editan en formularios
// anidados que escriben sobre la copia de trabajo de este formulario.
//
// Orden de bloqueo: un hijo puede tomar el lock del padre, nunca al revés.
type BenefitDraft struct {
	*Draft[*entity.Benefit]

	children []*SucursalDraft // guardado por Draft.mu
}

func (d *BenefitDraft) Submit(ctx context.Context) (any, error) {
	res, err := d.Draft.Submit(ctx)
	if err == nil {
		d.closeChildren()
	}
	return res, err
}

func (d *BenefitDraft) Cancel() {
	d.Draft.Cancel()
	d.closeChildren()
}

func (d *BenefitDraft) closeChildren() {
	d.mu.Lock()
	kids := d.children
	d.children = nil
	d.mu.Unlock()
	for _, k := range kids {
		k.Cancel()
	}
}

// OpenSucursal abre el formulario anidado. id vacío agrega una sucursal nueva;
// si no, se edita la sucursal con ese ID.
func (d *BenefitDraft) OpenSucursal(id string) (*SucursalDraft, error) {
	var child *SucursalDraft
	err := d.with(func(b *entity.Benefit) error {
		s := &entity.Sucursal{MCC: []string{}}
		mode := ModeCreate
		if id != "" {
			i := b.SucursalIndex(id)
			if i < 0 {
				return fmt.Errorf("%w: sucursal %s", domain.ErrNotFound, id)
			}
			s = cloneSucursal(&b.Sucursales[i])
			mode = ModeEdit
		}
		child = &SucursalDraft{parent: d}
		child.Draft = newDraft(sucursalBinding(d), mode, s)
		d.children = append(d.children, child)
		return nil
	})
	return child, err
}

// upsert reemplaza la sucursal con el mismo ID o la agrega al final.
func (d *BenefitDraft) upsert(s entity.Sucursal) error {
	return d.with(func(b *entity.Benefit) error {
		if i := b.SucursalIndex(s.ID); i >= 0 {
			b.Sucursales[i] = s
			return nil
		}
		b.Sucursales = append(b.Sucursales, s)
		return nil
	})
}

func (d *BenefitDraft) View() dto.FormResponse {
	d.mu.Lock()
	v := d.viewLocked()
	kids := append([]*SucursalDraft(nil), d.children...)
	d.mu.Unlock()
	for _, k := range kids {
		if !k.Closed() {
			v.Children = append(v.Children, k.ID())
		}
	}
	return v
}

// SucursalDraft formulario anidado de sucursal. Enviar no toca la colección de
// beneficios; solo la copia de trabajo del padre.
type SucursalDraft struct {
	*Draft[*entity.Sucursal]

	parent *BenefitDraft
}

// ParentID ID del formulario de beneficio.
func (d *SucursalDraft) ParentID() string { return d.parent.ID() }

func (d *SucursalDraft) View() dto.FormResponse {
	v := d.Draft.View()
	v.ParentID = d.parent.ID()
	return v
}

func sucursalBinding(parent *BenefitDraft) *binding[*entity.Sucursal] {
	return &binding[*entity.Sucursal]{
		kind: KindSucursal,
		fields: map[string]setter[*entity.Sucursal]{
			"nombre":    text(func(s *entity.Sucursal) *string { return &s.Nombre }),
			"direccion": text(func(s *entity.Sucursal) *string { return &s.Direccion }),
			"mcc": func(s *entity.Sucursal, v string) error {
				s.MCC = entity.ParseMCC(v)
				return nil
			},
		},
		clone: cloneSucursal,
		submit: func(_ context.Context, _ Mode, s *entity.Sucursal) error {
			if err := usecase.ValidateSucursal(s); err != nil {
				return err
			}
			if s.ID == "" {
				s.ID = uuid.NewString()
			}
			return parent.upsert(s.Clone())
		},
		view: func(s *entity.Sucursal) any { return usecase.ToSucursalResponse(*s) },
	}
}
