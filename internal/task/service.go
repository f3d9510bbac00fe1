package task

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Repository is the data-access contract over checklist tasks. Adapters exist
// for postgres (GORM) and the localstore JSON document file.
type Repository interface {
	Create(t *Task) error
	CreateBatch(tasks []*Task) error
	GetByID(id string) (*Task, error)
	ListForEmployee(employeeID string) ([]*Task, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
	Delete(id string) error
	DeleteForEmployee(employeeID string) error
}

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

// Create adds a single admin-authored task at the end of the employee's
// checklist (rank = current max + 1).
func (s *Service) Create(employeeID string, dto CreateTaskDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("task validation failed", "error", err, "employee_id", employeeID)
		return nil, err
	}

	existing, err := s.repo.ListForEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	rank := 0
	for _, t := range existing {
		if t.Rank > rank {
			rank = t.Rank
		}
	}

	now := time.Now()
	t := &Task{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Name:       dto.Name,
		Status:     StatusPending,
		Rank:       rank + 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create task", "error", err, "employee_id", employeeID)
		return nil, err
	}

	s.logger.Info("task created", "task_id", t.ID, "employee_id", employeeID, "rank", t.Rank)
	return t, nil
}

// CreateBatch persists pre-built tasks (checklist provisioning). IDs and
// timestamps are assigned here so callers can stay declarative.
func (s *Service) CreateBatch(tasks []*Task) error {
	now := time.Now()
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = now
		}
	}

	if err := s.repo.CreateBatch(tasks); err != nil {
		s.logger.Error("failed to create task batch", "error", err, "count", len(tasks))
		return err
	}

	s.logger.Info("task batch created", "count", len(tasks))
	return nil
}

func (s *Service) GetByID(id string) (*Task, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get task", "error", err, "task_id", id)
		return nil, err
	}
	return t, nil
}

// ListForEmployee returns the employee's checklist in provisioning order.
func (s *Service) ListForEmployee(employeeID string) ([]*Task, error) {
	tasks, err := s.repo.ListForEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus sets the task status. Any valid status is accepted regardless
// of the current one; forward-only stepping is a UI convention, not a data
// invariant.
func (s *Service) UpdateStatus(id string, dto UpdateStatusDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("status validation failed", "error", err, "task_id", id)
		return nil, err
	}

	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(id, dto.Status, now); err != nil {
		s.logger.Error("failed to update task status", "error", err, "task_id", id)
		return nil, err
	}

	t.Status = dto.Status
	t.UpdatedAt = now

	s.logger.Info("task status updated", "task_id", id, "status", dto.Status)
	return t, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", id)
		return err
	}

	s.logger.Info("task deleted", "task_id", id)
	return nil
}

// DeleteForEmployee removes an employee's whole checklist. Used when the
// employee record itself is deleted so no orphan tasks linger.
func (s *Service) DeleteForEmployee(employeeID string) error {
	if err := s.repo.DeleteForEmployee(employeeID); err != nil {
		s.logger.Error("failed to delete employee tasks", "error", err, "employee_id", employeeID)
		return err
	}
	return nil
}
