package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
	"github.com/jhoicas/Beneficios-api/internal/domain/search"
)

// AccountUseCase casos de uso para cuentas cliente, incluida la expansión de la
// subtabla de empleados (una cuenta expandida a la vez).
type AccountUseCase struct {
	repo         repository.AccountRepository
	employeeRepo repository.EmployeeRepository

	mu       sync.Mutex
	expanded string
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository, employeeRepo repository.EmployeeRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo, employeeRepo: employeeRepo}
}

// NewAccount valores por defecto del formulario de alta.
func NewAccount() *entity.Account {
	return &entity.Account{Status: entity.StatusActiva}
}

func accountFields(a *entity.Account) []string {
	return []string{a.Name, a.Type, a.Status}
}

// ValidateAccount aplica valores por defecto y verifica campos obligatorios y estado.
func ValidateAccount(a *entity.Account) error {
	if a.Status == "" {
		a.Status = entity.StatusActiva
	}
	if err := domain.RequireFields("name", a.Name, "type", a.Type); err != nil {
		return err
	}
	if !entity.ValidStatus(a.Status, entity.AccountStatuses) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, a.Status)
	}
	if a.ActiveCards < 0 {
		return fmt.Errorf("%w: active_cards no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *AccountUseCase) Store(ctx context.Context, account *entity.Account) error {
	if err := ValidateAccount(account); err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, account); err != nil {
		return err
	}
	log.Debug().Str("account_id", account.ID).Msg("cuenta creada")
	return nil
}

func (uc *AccountUseCase) Replace(ctx context.Context, account *entity.Account) error {
	if err := ValidateAccount(account); err != nil {
		return err
	}
	ok, err := uc.repo.Update(ctx, account)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	log.Debug().Str("account_id", account.ID).Msg("cuenta actualizada")
	return nil
}

func (uc *AccountUseCase) Record(ctx context.Context, id string) (*entity.Account, error) {
	account, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (uc *AccountUseCase) Records(ctx context.Context, query string) ([]*entity.Account, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(list, query, accountFields), nil
}

// Create crea una cuenta nueva.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.AccountRequest) (*dto.AccountResponse, error) {
	account := accountFromRequest(in)
	if err := uc.Store(ctx, account); err != nil {
		return nil, err
	}
	return ToAccountResponse(account), nil
}

// GetByID devuelve nil si no existe.
func (uc *AccountUseCase) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAccountResponse(account), nil
}

// Update reemplaza la cuenta id. Devuelve nil si no existe.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.AccountRequest) (*dto.AccountResponse, error) {
	account := accountFromRequest(in)
	account.ID = id
	if err := uc.Replace(ctx, account); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return ToAccountResponse(account), nil
}

// List lista las cuentas filtradas; la cuenta expandida incluye sus empleados.
func (uc *AccountUseCase) List(ctx context.Context, query string) (*dto.AccountListResponse, error) {
	list, err := uc.Records(ctx, query)
	if err != nil {
		return nil, err
	}
	expanded := uc.Expanded()
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		resp := ToAccountResponse(a)
		if a.ID == expanded {
			if resp.Employees, err = uc.Employees(ctx, a.ID); err != nil {
				return nil, err
			}
		}
		items = append(items, *resp)
	}
	return &dto.AccountListResponse{
		Items:             items,
		ExpandedAccountID: expanded,
		ListMeta:          dto.ListMeta{Query: query, Total: len(items)},
	}, nil
}

// Delete elimina una cuenta por ID. No elimina a sus empleados; si era la
// expandida, ya no hay cuenta expandida.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		uc.mu.Lock()
		if uc.expanded == id {
			uc.expanded = ""
		}
		uc.mu.Unlock()
	}
	log.Debug().Str("account_id", id).Bool("removed", removed).Msg("cuenta eliminada")
	return nil
}

// EmployeeRecords empleados cuyo AccountID es accountID, en el orden de la colección.
func (uc *AccountUseCase) EmployeeRecords(ctx context.Context, accountID string) ([]*entity.Employee, error) {
	list, err := uc.employeeRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("empleados de la cuenta: %w", err)
	}
	return list, nil
}

// Employees devuelve los empleados de la cuenta, derivados de Employee.AccountID.
func (uc *AccountUseCase) Employees(ctx context.Context, accountID string) ([]dto.EmployeeSummary, error) {
	list, err := uc.EmployeeRecords(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeSummary, 0, len(list))
	for _, e := range list {
		out = append(out, dto.EmployeeSummary{ID: e.ID, Name: e.Name, Position: e.Position, Email: e.Email})
	}
	return out, nil
}

// Expanded devuelve el ID de la cuenta expandida, o "".
func (uc *AccountUseCase) Expanded() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.expanded
}

// ToggleExpanded expande la cuenta id, o la colapsa si ya estaba expandida.
// Expandir una cuenta colapsa la anterior. ErrNotFound si la cuenta no existe.
func (uc *AccountUseCase) ToggleExpanded(ctx context.Context, id string) (*dto.ExpandResponse, error) {
	if _, err := uc.Record(ctx, id); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	if uc.expanded == id {
		uc.expanded = ""
	} else {
		uc.expanded = id
	}
	expanded := uc.expanded
	uc.mu.Unlock()

	resp := &dto.ExpandResponse{ExpandedAccountID: expanded, Employees: []dto.EmployeeSummary{}}
	if expanded == "" {
		return resp, nil
	}
	employees, err := uc.Employees(ctx, expanded)
	if err != nil {
		return nil, err
	}
	resp.Employees = employees
	return resp, nil
}

func accountFromRequest(in dto.AccountRequest) *entity.Account {
	return &entity.Account{Name: in.Name, Type: in.Type, Status: in.Status, ActiveCards: in.ActiveCards}
}

// ToAccountResponse convierte la entidad a su DTO; nil si a es nil.
func ToAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{ID: a.ID, Name: a.Name, Type: a.Type, Status: a.Status, ActiveCards: a.ActiveCards}
}
