package employee

import (
	"log/slog"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/google/uuid"
)

// Repository is the data-access contract over employee records. Two adapters
// implement it: postgres (GORM) and localstore (JSON document file).
type Repository interface {
	Create(emp *Employee) error
	GetByID(id string) (*Employee, error)
	GetAll() ([]*Employee, error)
	Update(emp *Employee) error
	Delete(id string) error
	FindByEmail(email string) (*Employee, error)
	FindByAccountID(accountID string) (*Employee, error)
}

// Service handles employee record lifecycle. Authorization is not applied
// here; the onboarding session is the only caller that gates mutations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(dto CreateEmployeeDTO, createdBy string) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	now := time.Now()
	emp := &Employee{
		ID:         uuid.NewString(),
		Name:       dto.Name,
		Email:      dto.Email,
		Role:       dto.Role,
		Department: dto.Department,
		AccountID:  dto.AccountID,
		JoinDate:   now,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("employee created",
		"employee_id", emp.ID,
		"email", emp.Email,
		"department", emp.Department)

	return emp, nil
}

func (s *Service) GetByID(id string) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, err
	}
	return emp, nil
}

// GetAll returns all employees newest-first.
func (s *Service) GetAll() ([]*Employee, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

func (s *Service) Update(id string, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee update validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		emp.Name = *dto.Name
	}
	if dto.Email != nil {
		emp.Email = *dto.Email
	}
	if dto.Role != nil {
		emp.Role = *dto.Role
	}
	if dto.Department != nil {
		emp.Department = *dto.Department
	}
	if dto.AccountID != nil {
		emp.AccountID = dto.AccountID
	}
	emp.UpdatedAt = time.Now()

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", id)
	return emp, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return err
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

func (s *Service) FindByEmail(email string) (*Employee, error) {
	emp, err := s.repo.FindByEmail(email)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeNotFound {
			return nil, err
		}
		s.logger.Error("failed to find employee by email", "error", err, "email", email)
		return nil, err
	}
	return emp, nil
}

func (s *Service) FindByAccountID(accountID string) (*Employee, error) {
	return s.repo.FindByAccountID(accountID)
}
