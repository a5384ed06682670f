package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

// ProfileUseCase lee y guarda la información de la empresa cliente.
// Ningún campo es obligatorio.
type ProfileUseCase struct {
	repo repository.AccountProfileRepository
}

func NewProfileUseCase(repo repository.AccountProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get devuelve el perfil; vacío si nunca se guardó.
func (uc *ProfileUseCase) Get(ctx context.Context) (*dto.AccountProfileDTO, error) {
	p, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toProfileDTO(p), nil
}

// Update reemplaza el perfil completo.
func (uc *ProfileUseCase) Update(ctx context.Context, in dto.AccountProfileDTO) (*dto.AccountProfileDTO, error) {
	p := &entity.AccountProfile{
		RazonSocial:    strings.TrimSpace(in.RazonSocial),
		RazonComercial: strings.TrimSpace(in.RazonComercial),
		RUC:            strings.TrimSpace(in.RUC),
		DV:             strings.TrimSpace(in.DV),
		Ubicacion:      strings.TrimSpace(in.Ubicacion),
		Ubicacion2:     strings.TrimSpace(in.Ubicacion2),
		Provincia:      strings.TrimSpace(in.Provincia),
		NombreContacto: strings.TrimSpace(in.NombreContacto),
		Email:          strings.TrimSpace(in.Email),
		Telefono:       strings.TrimSpace(in.Telefono),
		WhatsApp:       strings.TrimSpace(in.WhatsApp),
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	log.Debug().Str("ruc", p.RUC).Msg("perfil de cuenta actualizado")
	return toProfileDTO(p), nil
}

func toProfileDTO(p *entity.AccountProfile) *dto.AccountProfileDTO {
	if p == nil {
		return &dto.AccountProfileDTO{}
	}
	return &dto.AccountProfileDTO{
		RazonSocial:    p.RazonSocial,
		RazonComercial: p.RazonComercial,
		RUC:            p.RUC,
		DV:             p.DV,
		Ubicacion:      p.Ubicacion,
		Ubicacion2:     p.Ubicacion2,
		Provincia:      p.Provincia,
		NombreContacto: p.NombreContacto,
		Email:          p.Email,
		Telefono:       p.Telefono,
		WhatsApp:       p.WhatsApp,
	}
}
