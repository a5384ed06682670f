package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `id, name, type, status, active_cards`

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	if err := row.Scan(&a.ID, &a.Name, &a.Type, &a.Status, &a.ActiveCards); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una nueva cuenta al final del orden.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	ensureID(&a.ID)
	_, err := r.q.Exec(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Name, a.Type, a.Status, a.ActiveCards,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID; nil si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// Update reemplaza la cuenta; false si no existe.
func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE accounts SET name = $2, type = $3, status = $4, active_cards = $5 WHERE id = $1`,
		a.ID, a.Name, a.Type, a.Status, a.ActiveCards,
	)
	if err != nil {
		return false, fmt.Errorf("update account: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una cuenta por ID. Sus empleados se conservan.
func (r *AccountRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve las cuentas en orden de inserción.
func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	rows, err := r.q.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	list := []*entity.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
