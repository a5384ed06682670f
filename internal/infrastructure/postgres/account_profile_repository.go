package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.AccountProfileRepository = (*AccountProfileRepo)(nil)

// AccountProfileRepo guarda el perfil único en la fila id = 1 de account_profile.
type AccountProfileRepo struct {
	q Querier
}

func NewAccountProfileRepository(q Querier) *AccountProfileRepo {
	return &AccountProfileRepo{q: q}
}

func (r *AccountProfileRepo) Get(ctx context.Context) (*entity.AccountProfile, error) {
	var p entity.AccountProfile
	err := r.q.QueryRow(ctx, `
		SELECT razon_social, razon_comercial, ruc, dv, ubicacion, ubicacion2, provincia,
		       nombre_contacto, email, telefono, whatsapp
		FROM account_profile WHERE id = 1`).Scan(
		&p.RazonSocial, &p.RazonComercial, &p.RUC, &p.DV, &p.Ubicacion, &p.Ubicacion2, &p.Provincia,
		&p.NombreContacto, &p.Email, &p.Telefono, &p.WhatsApp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.AccountProfile{}, nil
		}
		return nil, fmt.Errorf("get account profile: %w", err)
	}
	return &p, nil
}

func (r *AccountProfileRepo) Save(ctx context.Context, p *entity.AccountProfile) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO account_profile (id, razon_social, razon_comercial, ruc, dv, ubicacion, ubicacion2,
		                             provincia, nombre_contacto, email, telefono, whatsapp)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			razon_social = EXCLUDED.razon_social,
			razon_comercial = EXCLUDED.razon_comercial,
			ruc = EXCLUDED.ruc,
			dv = EXCLUDED.dv,
			ubicacion = EXCLUDED.ubicacion,
			ubicacion2 = EXCLUDED.ubicacion2,
			provincia = EXCLUDED.provincia,
			nombre_contacto = EXCLUDED.nombre_contacto,
			email = EXCLUDED.email,
			telefono = EXCLUDED.telefono,
			whatsapp = EXCLUDED.whatsapp`,
		p.RazonSocial, p.RazonComercial, p.RUC, p.DV, p.Ubicacion, p.Ubicacion2,
		p.Provincia, p.NombreContacto, p.Email, p.Telefono, p.WhatsApp,
	)
	if err != nil {
		return fmt.Errorf("save account profile: %w", err)
	}
	return nil
}
