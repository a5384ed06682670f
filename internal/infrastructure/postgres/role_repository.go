package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL. Los permisos
// se guardan como TEXT[] conservando el orden.
type RoleRepo struct {
	q Querier
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

const roleColumns = `id, name, description, permissions`

func scanRole(row pgx.Row) (*entity.Role, error) {
	var ro entity.Role
	if err := row.Scan(&ro.ID, &ro.Name, &ro.Description, &ro.Permissions); err != nil {
		return nil, err
	}
	return &ro, nil
}

func (r *RoleRepo) Create(ctx context.Context, ro *entity.Role) error {
	ensureID(&ro.ID)
	_, err := r.q.Exec(ctx,
		`INSERT INTO roles (`+roleColumns+`) VALUES ($1, $2, $3, $4)`,
		ro.ID, ro.Name, ro.Description, nonNil(ro.Permissions),
	)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	ro, err := scanRole(r.q.QueryRow(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return ro, nil
}

func (r *RoleRepo) Update(ctx context.Context, ro *entity.Role) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE roles SET name = $2, description = $3, permissions = $4 WHERE id = $1`,
		ro.ID, ro.Name, ro.Description, nonNil(ro.Permissions),
	)
	if err != nil {
		return false, fmt.Errorf("update role: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *RoleRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete role: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	list := []*entity.Role{}
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, ro)
	}
	return list, rows.Err()
}
