package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
	"github.com/jhoicas/Beneficios-api/internal/domain/search"
)

// CardUseCase casos de uso CRUD para tarjetas.
type CardUseCase struct {
	repo repository.CardRepository
}

// NewCardUseCase construye el caso de uso.
func NewCardUseCase(repo repository.CardRepository) *CardUseCase {
	return &CardUseCase{repo: repo}
}

// NewCard valores por defecto del formulario de alta.
func NewCard() *entity.Card {
	return &entity.Card{Status: entity.StatusActiva, Balance: decimal.Zero}
}

func cardFields(c *entity.Card) []string {
	return []string{c.EmployeeName, c.CardNumber, c.Status}
}

// ValidateCard aplica valores por defecto y verifica campos obligatorios, estado y saldo.
func ValidateCard(c *entity.Card) error {
	if c.Status == "" {
		c.Status = entity.StatusActiva
	}
	if err := domain.RequireFields(
		"employee_name", c.EmployeeName,
		"card_number", c.CardNumber,
		"expiration_date", c.ExpirationDate,
	); err != nil {
		return err
	}
	if !entity.ValidStatus(c.Status, entity.CardStatuses) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, c.Status)
	}
	if c.Balance.IsNegative() {
		return fmt.Errorf("%w: balance no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// Store valida y agrega la tarjeta al final de la colección; card recibe su ID.
func (uc *CardUseCase) Store(ctx context.Context, card *entity.Card) error {
	if err := ValidateCard(card); err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, card); err != nil {
		return err
	}
	log.Debug().Str("card_id", card.ID).Msg("tarjeta creada")
	return nil
}

// Replace valida y reemplaza en su lugar la tarjeta con el mismo ID. Devuelve ErrNotFound si no existe.
func (uc *CardUseCase) Replace(ctx context.Context, card *entity.Card) error {
	if err := ValidateCard(card); err != nil {
		return err
	}
	ok, err := uc.repo.Update(ctx, card)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	log.Debug().Str("card_id", card.ID).Msg("tarjeta actualizada")
	return nil
}

// Record devuelve la tarjeta o ErrNotFound.
func (uc *CardUseCase) Record(ctx context.Context, id string) (*entity.Card, error) {
	card, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	return card, nil
}

// Records devuelve las tarjetas que coinciden con query, en orden de inserción.
func (uc *CardUseCase) Records(ctx context.Context, query string) ([]*entity.Card, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(list, query, cardFields), nil
}

// Create crea una tarjeta nueva.
func (uc *CardUseCase) Create(ctx context.Context, in dto.CardRequest) (*dto.CardResponse, error) {
	card := cardFromRequest(in)
	if err := uc.Store(ctx, card); err != nil {
		return nil, err
	}
	return ToCardResponse(card), nil
}

// GetByID obtiene una tarjeta por ID. Devuelve nil si no existe.
func (uc *CardUseCase) GetByID(ctx context.Context, id string) (*dto.CardResponse, error) {
	card, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCardResponse(card), nil
}

// Update reemplaza la tarjeta id. Devuelve nil si no existe.
func (uc *CardUseCase) Update(ctx context.Context, id string, in dto.CardRequest) (*dto.CardResponse, error) {
	card := cardFromRequest(in)
	card.ID = id
	if err := uc.Replace(ctx, card); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return ToCardResponse(card), nil
}

// List lista las tarjetas filtradas por query.
func (uc *CardUseCase) List(ctx context.Context, query string) (*dto.CardListResponse, error) {
	list, err := uc.Records(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CardResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCardResponse(c))
	}
	return &dto.CardListResponse{Items: items, ListMeta: dto.ListMeta{Query: query, Total: len(items)}}, nil
}

// Delete elimina una tarjeta por ID. Un ID inexistente no es error.
func (uc *CardUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	log.Debug().Str("card_id", id).Bool("removed", removed).Msg("tarjeta eliminada")
	return nil
}

func cardFromRequest(in dto.CardRequest) *entity.Card {
	return &entity.Card{
		EmployeeName:   in.EmployeeName,
		CardNumber:     in.CardNumber,
		ExpirationDate: in.ExpirationDate,
		Status:         in.Status,
		Balance:        in.Balance,
	}
}

// ToCardResponse convierte la entidad a su DTO; nil si c es nil.
func ToCardResponse(c *entity.Card) *dto.CardResponse {
	if c == nil {
		return nil
	}
	return &dto.CardResponse{
		ID:             c.ID,
		EmployeeName:   c.EmployeeName,
		CardNumber:     c.CardNumber,
		ExpirationDate: c.ExpirationDate,
		Status:         c.Status,
		Balance:        c.Balance,
	}
}
