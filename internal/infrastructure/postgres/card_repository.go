package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
)

var _ repository.CardRepository = (*CardRepo)(nil)

// CardRepo implementación del puerto CardRepository sobre PostgreSQL.
// balance es NUMERIC y se lee como decimal.Decimal gracias al codec registrado en NewPool.
type CardRepo struct {
	q Querier
}

func NewCardRepository(q Querier) *CardRepo {
	return &CardRepo{q: q}
}

const cardColumns = `id, employee_name, card_number, expiration_date, status, balance`

func scanCard(row pgx.Row) (*entity.Card, error) {
	var c entity.Card
	if err := row.Scan(&c.ID, &c.EmployeeName, &c.CardNumber, &c.ExpirationDate, &c.Status, &c.Balance); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CardRepo) Create(ctx context.Context, c *entity.Card) error {
	ensureID(&c.ID)
	_, err := r.q.Exec(ctx,
		`INSERT INTO cards (`+cardColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.EmployeeName, c.CardNumber, c.ExpirationDate, c.Status, c.Balance,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

func (r *CardRepo) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	c, err := scanCard(r.q.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	return c, nil
}

func (r *CardRepo) Update(ctx context.Context, c *entity.Card) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE cards
		SET employee_name = $2, card_number = $3, expiration_date = $4, status = $5, balance = $6
		WHERE id = $1`,
		c.ID, c.EmployeeName, c.CardNumber, c.ExpirationDate, c.Status, c.Balance,
	)
	if err != nil {
		return false, fmt.Errorf("update card: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *CardRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete card: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *CardRepo) List(ctx context.Context) ([]*entity.Card, error) {
	rows, err := r.q.Query(ctx, `SELECT `+cardColumns+` FROM cards ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()
	list := []*entity.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
