package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
	"github.com/jhoicas/Beneficios-api/internal/domain/repository"
	"github.com/jhoicas/Beneficios-api/internal/domain/search"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo        repository.EmployeeRepository
	accountRepo repository.AccountRepository
}

// NewEmployeeUseCase construye el caso de uso. accountRepo se usa solo para
// resolver el nombre de la cuenta en las respuestas.
func NewEmployeeUseCase(repo repository.EmployeeRepository, accountRepo repository.AccountRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, accountRepo: accountRepo}
}

// NewEmployee valores por defecto del formulario de alta.
func NewEmployee() *entity.Employee {
	return &entity.Employee{Status: entity.StatusActivo}
}

func employeeFields(e *entity.Employee) []string {
	return []string{e.Name, e.Email, e.Position, e.Department}
}

// ValidateEmployee aplica valores por defecto y verifica campos obligatorios y estado.
// No se comprueba que AccountID exista.
func ValidateEmployee(e *entity.Employee) error {
	if e.Status == "" {
		e.Status = entity.StatusActivo
	}
	if err := domain.RequireFields(
		"name", e.Name,
		"email", e.Email,
		"position", e.Position,
		"department", e.Department,
		"account_id", e.AccountID,
	); err != nil {
		return err
	}
	if !entity.ValidStatus(e.Status, entity.EmployeeStatuses) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, e.Status)
	}
	return nil
}

func (uc *EmployeeUseCase) Store(ctx context.Context, employee *entity.Employee) error {
	if err := ValidateEmployee(employee); err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return err
	}
	log.Debug().Str("employee_id", employee.ID).Str("account_id", employee.AccountID).Msg("empleado creado")
	return nil
}

func (uc *EmployeeUseCase) Replace(ctx context.Context, employee *entity.Employee) error {
	if err := ValidateEmployee(employee); err != nil {
		return err
	}
	ok, err := uc.repo.Update(ctx, employee)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	log.Debug().Str("employee_id", employee.ID).Msg("empleado actualizado")
	return nil
}

func (uc *EmployeeUseCase) Record(ctx context.Context, id string) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}

func (uc *EmployeeUseCase) Records(ctx context.Context, query string) ([]*entity.Employee, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(list, query, employeeFields), nil
}

// Create crea un empleado nuevo.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee := employeeFromRequest(in)
	if err := uc.Store(ctx, employee); err != nil {
		return nil, err
	}
	names, err := uc.accountNames(ctx)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponse(employee, names), nil
}

// GetByID devuelve nil si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil || employee == nil {
		return nil, err
	}
	names, err := uc.accountNames(ctx)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponse(employee, names), nil
}

// Update reemplaza el empleado id. Devuelve nil si no existe.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee := employeeFromRequest(in)
	employee.ID = id
	if err := uc.Replace(ctx, employee); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	names, err := uc.accountNames(ctx)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponse(employee, names), nil
}

// List lista los empleados filtrados por nombre, email, cargo o departamento.
func (uc *EmployeeUseCase) List(ctx context.Context, query string) (*dto.EmployeeListResponse, error) {
	list, err := uc.Records(ctx, query)
	if err != nil {
		return nil, err
	}
	names, err := uc.accountNames(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *ToEmployeeResponse(e, names))
	}
	return &dto.EmployeeListResponse{Items: items, ListMeta: dto.ListMeta{Query: query, Total: len(items)}}, nil
}

// Delete elimina un empleado por ID. Un ID inexistente no es error.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	log.Debug().Str("employee_id", id).Bool("removed", removed).Msg("empleado eliminado")
	return nil
}

func (uc *EmployeeUseCase) accountNames(ctx context.Context) (map[string]string, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar cuentas: %w", err)
	}
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	return names, nil
}

func employeeFromRequest(in dto.EmployeeRequest) *entity.Employee {
	return &entity.Employee{
		Name:       in.Name,
		Email:      in.Email,
		Position:   in.Position,
		Department: in.Department,
		Status:     in.Status,
		AccountID:  in.AccountID,
	}
}

// ToEmployeeResponse convierte la entidad a su DTO resolviendo el nombre de la cuenta.
func ToEmployeeResponse(e *entity.Employee, accountNames map[string]string) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Position:    e.Position,
		Department:  e.Department,
		Status:      e.Status,
		AccountID:   e.AccountID,
		AccountName: accountNames[e.AccountID],
	}
}
