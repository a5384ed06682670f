package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
	"github.com/jhoicas/Beneficios-api/internal/domain/search"
)

// BenefitUseCase casos de uso CRUD para beneficios (comercios afiliados) y sus sucursales.
type BenefitUseCase struct {
	repo repository.BenefitRepository
}

// NewBenefitUseCase construye el caso de uso.
func NewBenefitUseCase(repo repository.BenefitRepository) *BenefitUseCase {
	return &BenefitUseCase{repo: repo}
}

// NewBenefit valores por defecto del formulario de alta.
func NewBenefit() *entity.Benefit {
	return &entity.Benefit{Estado: entity.StatusActivo, Sucursales: []entity.Sucursal{}}
}

func benefitFields(b *entity.Benefit) []string {
	return []string{b.RazonComercial, b.RazonSocial}
}

// ValidateSucursal verifica los campos obligatorios de una sucursal.
func ValidateSucursal(s *entity.Sucursal) error {
	return domain.RequireFields("nombre", s.Nombre, "direccion", s.Direccion)
}

// ValidateBenefit aplica valores por defecto, verifica campos obligatorios y estado,
// y asigna ID a las sucursales nuevas. Direccion2 es opcional.
func ValidateBenefit(b *entity.Benefit) error {
	if b.Estado == "" {
		b.Estado = entity.StatusActivo
	}
	if err := domain.RequireFields(
		"razon_comercial", b.RazonComercial,
		"razon_social", b.RazonSocial,
		"ruc", b.RUC,
		"dv", b.DV,
		"telefono", b.Telefono,
		"correo", b.Correo,
		"contacto", b.Contacto,
		"direccion", b.Direccion,
	); err != nil {
		return err
	}
	if !entity.ValidStatus(b.Estado, entity.BenefitStatuses) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, b.Estado)
	}
	seen := make(map[string]bool, len(b.Sucursales))
	for i := range b.Sucursales {
		s := &b.Sucursales[i]
		if err := ValidateSucursal(s); err != nil {
			var rf *domain.RequiredFieldsError
			if errors.As(err, &rf) {
				for j, f := range rf.Fields {
					rf.Fields[j] = "sucursales[" + strconv.Itoa(i) + "]." + f
				}
			}
			return err
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: sucursal %s repetida", domain.ErrInvalidInput, s.ID)
		}
		seen[s.ID] = true
		if s.MCC == nil {
			s.MCC = []string{}
		}
	}
	if b.Sucursales == nil {
		b.Sucursales = []entity.Sucursal{}
	}
	return nil
}

func (uc *BenefitUseCase) Store(ctx context.Context, benefit *entity.Benefit) error {
	if err := ValidateBenefit(benefit); err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, benefit); err != nil {
		return err
	}
	log.Debug().Str("benefit_id", benefit.ID).Int("sucursales", len(benefit.Sucursales)).Msg("beneficio creado")
	return nil
}

func (uc *BenefitUseCase) Replace(ctx context.Context, benefit *entity.Benefit) error {
	if err := ValidateBenefit(benefit); err != nil {
		return err
	}
	ok, err := uc.repo.Update(ctx, benefit)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	log.Debug().Str("benefit_id", benefit.ID).Int("sucursales", len(benefit.Sucursales)).Msg("beneficio actualizado")
	return nil
}

func (uc *BenefitUseCase) Record(ctx context.Context, id string) (*entity.Benefit, error) {
	benefit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if benefit == nil {
		return nil, domain.ErrNotFound
	}
	return benefit, nil
}

func (uc *BenefitUseCase) Records(ctx context.Context, query string) ([]*entity.Benefit, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(list, query, benefitFields), nil
}

// Create crea un beneficio nuevo con sus sucursales.
func (uc *BenefitUseCase) Create(ctx context.Context, in dto.BenefitRequest) (*dto.BenefitResponse, error) {
	benefit := benefitFromRequest(in)
	if err := uc.Store(ctx, benefit); err != nil {
		return nil, err
	}
	return ToBenefitResponse(benefit), nil
}

// GetByID devuelve nil si no existe.
func (uc *BenefitUseCase) GetByID(ctx context.Context, id string) (*dto.BenefitResponse, error) {
	benefit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBenefitResponse(benefit), nil
}

// Update reemplaza el beneficio id junto con su lista de sucursales. Devuelve nil si no existe.
func (uc *BenefitUseCase) Update(ctx context.Context, id string, in dto.BenefitRequest) (*dto.BenefitResponse, error) {
	benefit := benefitFromRequest(in)
	benefit.ID = id
	if err := uc.Replace(ctx, benefit); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return ToBenefitResponse(benefit), nil
}

// List lista los beneficios filtrados por razón comercial o razón social.
func (uc *BenefitUseCase) List(ctx context.Context, query string) (*dto.BenefitListResponse, error) {
	list, err := uc.Records(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BenefitResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *ToBenefitResponse(b))
	}
	return &dto.BenefitListResponse{Items: items, ListMeta: dto.ListMeta{Query: query, Total: len(items)}}, nil
}

// Delete elimina un beneficio y sus sucursales. Un ID inexistente no es error.
func (uc *BenefitUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	log.Debug().Str("benefit_id", id).Bool("removed", removed).Msg("beneficio eliminado")
	return nil
}

func benefitFromRequest(in dto.BenefitRequest) *entity.Benefit {
	b := &entity.Benefit{
		RazonComercial: in.RazonComercial,
		RazonSocial:    in.RazonSocial,
		RUC:            in.RUC,
		DV:             in.DV,
		Telefono:       in.Telefono,
		Correo:         in.Correo,
		Contacto:       in.Contacto,
		Direccion:      in.Direccion,
		Direccion2:     in.Direccion2,
		Estado:         in.Estado,
		Sucursales:     make([]entity.Sucursal, 0, len(in.Sucursales)),
	}
	for _, s := range in.Sucursales {
		b.Sucursales = append(b.Sucursales, entity.Sucursal{
			ID:        s.ID,
			Nombre:    s.Nombre,
			Direccion: s.Direccion,
			MCC:       append([]string(nil), s.MCC...),
		})
	}
	return b
}

// ToBenefitResponse convierte la entidad a su DTO; nil si b es nil.
func ToBenefitResponse(b *entity.Benefit) *dto.BenefitResponse {
	if b == nil {
		return nil
	}
	resp := &dto.BenefitResponse{
		ID:             b.ID,
		RazonComercial: b.RazonComercial,
		RazonSocial:    b.RazonSocial,
		RUC:            b.RUC,
		DV:             b.DV,
		Telefono:       b.Telefono,
		Correo:         b.Correo,
		Contacto:       b.Contacto,
		Direccion:      b.Direccion,
		Direccion2:     b.Direccion2,
		Estado:         b.Estado,
		Sucursales:     make([]dto.SucursalResponse, 0, len(b.Sucursales)),
	}
	for _, s := range b.Sucursales {
		resp.Sucursales = append(resp.Sucursales, ToSucursalResponse(s))
	}
	return resp
}

func ToSucursalResponse(s entity.Sucursal) dto.SucursalResponse {
	mcc := s.MCC
	if mcc == nil {
		mcc = []string{}
	}
	return dto.SucursalResponse{ID: s.ID, Nombre: s.Nombre, Direccion: s.Direccion, MCC: mcc, MCCText: entity.JoinMCC(mcc)}
}
