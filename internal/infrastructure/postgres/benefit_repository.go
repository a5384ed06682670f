package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.BenefitRepository = (*BenefitRepo)(nil)

// BenefitRepo implementación del puerto BenefitRepository sobre PostgreSQL.
// Las sucursales viven en benefit_sucursales; position conserva su orden.
// Alta y reemplazo escriben beneficio y sucursales en una sola transacción.
type BenefitRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

func NewBenefitRepository(pool *pgxpool.Pool) *BenefitRepo {
	return &BenefitRepo{pool: pool, tx: NewTxRunner(pool)}
}

const benefitColumns = `id, razon_comercial, razon_social, ruc, dv, telefono, correo, contacto, direccion, direccion2, estado`

func scanBenefit(row pgx.Row) (*entity.Benefit, error) {
	var b entity.Benefit
	err := row.Scan(&b.ID, &b.RazonComercial, &b.RazonSocial, &b.RUC, &b.DV, &b.Telefono,
		&b.Correo, &b.Contacto, &b.Direccion, &b.Direccion2, &b.Estado)
	if err != nil {
		return nil, err
	}
	b.Sucursales = []entity.Sucursal{}
	return &b, nil
}

func (r *BenefitRepo) Create(ctx context.Context, b *entity.Benefit) error {
	ensureID(&b.ID)
	return r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx,
			`INSERT INTO benefits (`+benefitColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			b.ID, b.RazonComercial, b.RazonSocial, b.RUC, b.DV, b.Telefono,
			b.Correo, b.Contacto, b.Direccion, b.Direccion2, b.Estado,
		)
		if err != nil {
			return fmt.Errorf("insert benefit: %w", err)
		}
		return insertSucursales(ctx, q, b)
	})
}

func (r *BenefitRepo) Update(ctx context.Context, b *entity.Benefit) (bool, error) {
	found := false
	err := r.tx.Run(ctx, func(q Querier) error {
		cmd, err := q.Exec(ctx, `
			UPDATE benefits
			SET razon_comercial = $2, razon_social = $3, ruc = $4, dv = $5, telefono = $6,
			    correo = $7, contacto = $8, direccion = $9, direccion2 = $10, estado = $11
			WHERE id = $1`,
			b.ID, b.RazonComercial, b.RazonSocial, b.RUC, b.DV, b.Telefono,
			b.Correo, b.Contacto, b.Direccion, b.Direccion2, b.Estado,
		)
		if err != nil {
			return fmt.Errorf("update benefit: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return nil
		}
		found = true
		if _, err := q.Exec(ctx, `DELETE FROM benefit_sucursales WHERE benefit_id = $1`, b.ID); err != nil {
			return fmt.Errorf("delete sucursales: %w", err)
		}
		return insertSucursales(ctx, q, b)
	})
	return found, err
}

func insertSucursales(ctx context.Context, q Querier, b *entity.Benefit) error {
	for i := range b.Sucursales {
		s := &b.Sucursales[i]
		ensureID(&s.ID)
		_, err := q.Exec(ctx, `
			INSERT INTO benefit_sucursales (id, benefit_id, position, nombre, direccion, mcc)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			s.ID, b.ID, i, s.Nombre, s.Direccion, nonNil(s.MCC),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: la sucursal %s ya pertenece a otro beneficio", domain.ErrInvalidInput, s.ID)
			}
			return fmt.Errorf("insert sucursal: %w", err)
		}
	}
	return nil
}

func (r *BenefitRepo) GetByID(ctx context.Context, id string) (*entity.Benefit, error) {
	b, err := scanBenefit(r.pool.QueryRow(ctx, `SELECT `+benefitColumns+` FROM benefits WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get benefit: %w", err)
	}
	if err := r.loadSucursales(ctx, map[string]*entity.Benefit{b.ID: b}); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete elimina el beneficio; sus sucursales caen por ON DELETE CASCADE.
func (r *BenefitRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM benefits WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete benefit: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *BenefitRepo) List(ctx context.Context) ([]*entity.Benefit, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+benefitColumns+` FROM benefits ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list benefits: %w", err)
	}
	list := []*entity.Benefit{}
	byID := make(map[string]*entity.Benefit)
	for rows.Next() {
		b, err := scanBenefit(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan benefit: %w", err)
		}
		list = append(list, b)
		byID[b.ID] = b
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	if err := r.loadSucursales(ctx, byID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BenefitRepo) loadSucursales(ctx context.Context, byID map[string]*entity.Benefit) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT benefit_id, id, nombre, direccion, mcc
		FROM benefit_sucursales
		WHERE benefit_id = ANY($1)
		ORDER BY benefit_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list sucursales: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var benefitID string
		var s entity.Sucursal
		if err := rows.Scan(&benefitID, &s.ID, &s.Nombre, &s.Direccion, &s.MCC); err != nil {
			return fmt.Errorf("scan sucursal: %w", err)
		}
		if b := byID[benefitID]; b != nil {
			b.Sucursales = append(b.Sucursales, s)
		}
	}
	return rows.Err()
}
