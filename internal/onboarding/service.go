package onboarding

import (
	"log/slog"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	"github.com/adrianlim/onboarding-tracker/internal/task"
)

// EmployeeAPI is the slice of the employee service the session needs.
type EmployeeAPI interface {
	Create(dto employee.CreateEmployeeDTO, createdBy string) (*employee.Employee, error)
	GetByID(id string) (*employee.Employee, error)
	GetAll() ([]*employee.Employee, error)
	Update(id string, dto employee.UpdateEmployeeDTO) (*employee.Employee, error)
	Delete(id string) error
}

// TaskAPI is the slice of the task service the session needs.
type TaskAPI interface {
	Create(employeeID string, dto task.CreateTaskDTO) (*task.Task, error)
	CreateBatch(tasks []*task.Task) error
	GetByID(id string) (*task.Task, error)
	ListForEmployee(employeeID string) ([]*task.Task, error)
	UpdateStatus(id string, dto task.UpdateStatusDTO) (*task.Task, error)
	Delete(id string) error
	DeleteForEmployee(employeeID string) error
}

// Service is the onboarding session: the one place that decides who may do
// what, and the orchestrator that composes employees, checklists and
// progress. Presentation code never reaches the repositories directly.
type Service struct {
	employees EmployeeAPI
	tasks     TaskAPI
	logger    *slog.Logger
}

func NewService(employees EmployeeAPI, tasks TaskAPI, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		tasks:     tasks,
		logger:    logger,
	}
}

// AddEmployee creates the employee together with the default checklist. The
// two writes are not one storage transaction, so a failed provisioning is
// compensated by deleting the employee again; the caller sees one failed
// create, never a half-created record.
func (s *Service) AddEmployee(actor internal.Actor, dto employee.CreateEmployeeDTO) (*EmployeeState, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("add employee denied", "actor", actor.Email, "role", actor.Role)
		return nil, internal.ErrAdminRequired
	}

	emp, err := s.employees.Create(dto, actor.AccountID)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.CreateBatch(BuildDefaultTasks(emp.ID)); err != nil {
		s.logger.Error("checklist provisioning failed, rolling back employee",
			"error", err, "employee_id", emp.ID)
		if delErr := s.employees.Delete(emp.ID); delErr != nil {
			s.logger.Error("compensating delete failed", "error", delErr, "employee_id", emp.ID)
		}
		return nil, err
	}

	tasks, err := s.tasks.ListForEmployee(emp.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee onboarded",
		"employee_id", emp.ID,
		"actor", actor.Email,
		"tasks", len(tasks))

	return &EmployeeState{Employee: emp, Tasks: tasks, Progress: ComputeProgress(tasks)}, nil
}

// ListEmployees is an unrestricted read for any authenticated actor.
func (s *Service) ListEmployees(actor internal.Actor) ([]*employee.Employee, error) {
	return s.employees.GetAll()
}

// GetEmployeeState returns the employee with its ordered checklist and
// progress. Reads are not role-gated.
func (s *Service) GetEmployeeState(employeeID string) (*EmployeeState, error) {
	emp, err := s.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListForEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	return &EmployeeState{Employee: emp, Tasks: tasks, Progress: ComputeProgress(tasks)}, nil
}

// GetProgress composes the task listing with the progress calculation.
func (s *Service) GetProgress(employeeID string) (int, error) {
	if _, err := s.employees.GetByID(employeeID); err != nil {
		return 0, err
	}

	tasks, err := s.tasks.ListForEmployee(employeeID)
	if err != nil {
		return 0, err
	}
	return ComputeProgress(tasks), nil
}

func (s *Service) UpdateEmployee(actor internal.Actor, employeeID string, dto employee.UpdateEmployeeDTO) (*employee.Employee, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("update employee denied", "actor", actor.Email, "employee_id", employeeID)
		return nil, internal.ErrAdminRequired
	}
	return s.employees.Update(employeeID, dto)
}

// DeleteEmployee removes the employee and cascades its checklist so no
// orphan tasks linger.
func (s *Service) DeleteEmployee(actor internal.Actor, employeeID string) error {
	if !actor.IsAdmin() {
		s.logger.Warn("delete employee denied", "actor", actor.Email, "employee_id", employeeID)
		return internal.ErrAdminRequired
	}

	if err := s.employees.Delete(employeeID); err != nil {
		return err
	}

	if err := s.tasks.DeleteForEmployee(employeeID); err != nil {
		s.logger.Error("failed to cascade task delete", "error", err, "employee_id", employeeID)
		return err
	}

	s.logger.Info("employee removed", "employee_id", employeeID, "actor", actor.Email)
	return nil
}

func (s *Service) AddTask(actor internal.Actor, employeeID string, dto task.CreateTaskDTO) (*task.Task, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("add task denied", "actor", actor.Email, "employee_id", employeeID)
		return nil, internal.ErrAdminRequired
	}

	if _, err := s.employees.GetByID(employeeID); err != nil {
		return nil, err
	}

	return s.tasks.Create(employeeID, dto)
}

func (s *Service) DeleteTask(actor internal.Actor, taskID string) error {
	if !actor.IsAdmin() {
		s.logger.Warn("delete task denied", "actor", actor.Email, "task_id", taskID)
		return internal.ErrAdminRequired
	}
	return s.tasks.Delete(taskID)
}

// UpdateTaskStatus is permitted for an admin, or for the employee the task
// belongs to. Ownership is checked on the employee id the actor was linked
// to at authentication time, not by comparing email strings per call.
func (s *Service) UpdateTaskStatus(actor internal.Actor, taskID string, dto task.UpdateStatusDTO) (*task.Task, error) {
	t, err := s.tasks.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !actor.Owns(t.EmployeeID) {
		s.logger.Warn("task status update denied",
			"actor", actor.Email,
			"task_id", taskID,
			"owner", t.EmployeeID)
		return nil, internal.ErrNotTaskOwner
	}

	return s.tasks.UpdateStatus(taskID, dto)
}

// ProvisionChecklist re-runs default provisioning for an employee that has no
// tasks yet. An existing checklist is a conflict: provisioning twice would
// silently double every step.
func (s *Service) ProvisionChecklist(actor internal.Actor, employeeID string) ([]*task.Task, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("provision checklist denied", "actor", actor.Email, "employee_id", employeeID)
		return nil, internal.ErrAdminRequired
	}

	if _, err := s.employees.GetByID(employeeID); err != nil {
		return nil, err
	}

	existing, err := s.tasks.ListForEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, internal.ErrChecklistExists
	}

	if err := s.tasks.CreateBatch(BuildDefaultTasks(employeeID)); err != nil {
		return nil, err
	}

	return s.tasks.ListForEmployee(employeeID)
}
