package onboarding_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	"github.com/adrianlim/onboarding-tracker/internal/onboarding"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOnboardingService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Onboarding Service Suite")
}

// MockEmployeeAPI implements onboarding.EmployeeAPI for testing
type MockEmployeeAPI struct {
	employees  map[string]*employee.Employee
	shouldFail bool
	failError  error
}

func NewMockEmployeeAPI() *MockEmployeeAPI {
	return &MockEmployeeAPI{employees: make(map[string]*employee.Employee)}
}

func (m *MockEmployeeAPI) Create(dto employee.CreateEmployeeDTO, createdBy string) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	emp := &employee.Employee{
		ID:         uuid.NewString(),
		Name:       dto.Name,
		Email:      dto.Email,
		Role:       dto.Role,
		Department: dto.Department,
		AccountID:  dto.AccountID,
		JoinDate:   time.Now().UTC(),
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}
	m.employees[emp.ID] = emp
	return emp, nil
}

func (m *MockEmployeeAPI) GetByID(id string) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	emp, ok := m.employees[id]
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *MockEmployeeAPI) GetAll() ([]*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*employee.Employee
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (m *MockEmployeeAPI) Update(id string, dto employee.UpdateEmployeeDTO) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	emp, ok := m.employees[id]
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	if dto.Name != nil {
		emp.Name = *dto.Name
	}
	if dto.Department != nil {
		emp.Department = *dto.Department
	}
	return emp, nil
}

func (m *MockEmployeeAPI) Delete(id string) error {
	if m.shouldFail {
		return m.failError
	}
	if _, ok := m.employees[id]; !ok {
		return internal.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

// MockTaskAPI implements onboarding.TaskAPI for testing
type MockTaskAPI struct {
	tasks           map[string]*task.Task
	batchShouldFail bool
	batchError      error
}

func NewMockTaskAPI() *MockTaskAPI {
	return &MockTaskAPI{tasks: make(map[string]*task.Task)}
}

func (m *MockTaskAPI) Create(employeeID string, dto task.CreateTaskDTO) (*task.Task, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}
	t := &task.Task{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Name:       dto.Name,
		Status:     task.StatusPending,
		Rank:       len(m.tasks) + 1,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *MockTaskAPI) CreateBatch(tasks []*task.Task) error {
	if m.batchShouldFail {
		return m.batchError
	}
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		m.tasks[t.ID] = t
	}
	return nil
}

func (m *MockTaskAPI) GetByID(id string) (*task.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, internal.ErrTaskNotFound
	}
	return t, nil
}

func (m *MockTaskAPI) ListForEmployee(employeeID string) ([]*task.Task, error) {
	var result []*task.Task
	for _, t := range m.tasks {
		if t.EmployeeID == employeeID {
			result = append(result, t)
		}
	}
	// preserve checklist order
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Rank < result[i].Rank {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (m *MockTaskAPI) UpdateStatus(id string, dto task.UpdateStatusDTO) (*task.Task, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}
	t, ok := m.tasks[id]
	if !ok {
		return nil, internal.ErrTaskNotFound
	}
	t.Status = dto.Status
	return t, nil
}

func (m *MockTaskAPI) Delete(id string) error {
	if _, ok := m.tasks[id]; !ok {
		return internal.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *MockTaskAPI) DeleteForEmployee(employeeID string) error {
	for id, t := range m.tasks {
		if t.EmployeeID == employeeID {
			delete(m.tasks, id)
		}
	}
	return nil
}

var _ = Describe("Onboarding Service", func() {
	var (
		mockEmployees *MockEmployeeAPI
		mockTasks     *MockTaskAPI
		service       *onboarding.Service
		admin         internal.Actor
	)

	newEmployeeDTO := func(name, email string) employee.CreateEmployeeDTO {
		return employee.CreateEmployeeDTO{
			Name:       name,
			Email:      email,
			Role:       internal.RoleEmployee,
			Department: employee.DepartmentEngineering,
		}
	}

	BeforeEach(func() {
		mockEmployees = NewMockEmployeeAPI()
		mockTasks = NewMockTaskAPI()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = onboarding.NewService(mockEmployees, mockTasks, logger)

		admin = internal.Actor{
			AccountID: uuid.NewString(),
			Email:     "admin@company.test",
			Role:      internal.RoleAdmin,
		}
	})

	Describe("AddEmployee", func() {
		Context("when the actor is an admin", func() {
			It("should create the employee with the full default checklist at zero progress", func() {
				state, err := service.AddEmployee(admin, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
				Expect(err).NotTo(HaveOccurred())
				Expect(state.Employee.Name).To(Equal("Ada Lovelace"))
				Expect(state.Employee.CreatedBy).To(Equal(admin.AccountID))
				Expect(state.Tasks).To(HaveLen(len(onboarding.DefaultChecklist)))
				Expect(state.Progress).To(Equal(0))

				for i, t := range state.Tasks {
					Expect(t.Name).To(Equal(onboarding.DefaultChecklist[i]))
					Expect(t.Status).To(Equal(task.StatusPending))
				}
			})
		})

		Context("when the actor is not an admin", func() {
			It("should deny the creation and persist nothing", func() {
				actor := internal.Actor{AccountID: uuid.NewString(), Role: internal.RoleEmployee}

				state, err := service.AddEmployee(actor, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
				Expect(err).To(MatchError(internal.ErrAdminRequired))
				Expect(state).To(BeNil())
				Expect(mockEmployees.employees).To(BeEmpty())
				Expect(mockTasks.tasks).To(BeEmpty())
			})
		})

		Context("when checklist provisioning fails", func() {
			BeforeEach(func() {
				mockTasks.batchShouldFail = true
				mockTasks.batchError = errors.New("storage unavailable")
			})

			It("should roll the employee back and return the error", func() {
				state, err := service.AddEmployee(admin, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("storage unavailable"))
				Expect(state).To(BeNil())
				Expect(mockEmployees.employees).To(BeEmpty())
			})
		})
	})

	Describe("GetProgress", func() {
		var employeeID string

		BeforeEach(func() {
			state, err := service.AddEmployee(admin, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
			Expect(err).NotTo(HaveOccurred())
			employeeID = state.Employee.ID
		})

		It("should return zero for a fresh checklist", func() {
			progress, err := service.GetProgress(employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(progress).To(Equal(0))
		})

		It("should advance as tasks complete", func() {
			tasks, err := service.GetEmployeeState(employeeID)
			Expect(err).NotTo(HaveOccurred())

			for _, t := range tasks.Tasks[:2] {
				_, err := service.UpdateTaskStatus(admin, t.ID, task.UpdateStatusDTO{Status: task.StatusCompleted})
				Expect(err).NotTo(HaveOccurred())
			}

			progress, err := service.GetProgress(employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(progress).To(Equal(25))
		})

		It("should reach one hundred when every task is completed", func() {
			state, err := service.GetEmployeeState(employeeID)
			Expect(err).NotTo(HaveOccurred())

			for _, t := range state.Tasks {
				_, err := service.UpdateTaskStatus(admin, t.ID, task.UpdateStatusDTO{Status: task.StatusCompleted})
				Expect(err).NotTo(HaveOccurred())
			}

			progress, err := service.GetProgress(employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(progress).To(Equal(100))
		})

		It("should return not found for an unknown employee", func() {
			_, err := service.GetProgress(uuid.NewString())
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("UpdateTaskStatus", func() {
		var (
			owner   internal.Actor
			ownedID string
		)

		BeforeEach(func() {
			state, err := service.AddEmployee(admin, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
			Expect(err).NotTo(HaveOccurred())
			ownedID = state.Tasks[0].ID

			owner = internal.Actor{
				AccountID:  uuid.NewString(),
				Email:      "ada@company.test",
				Role:       internal.RoleEmployee,
				EmployeeID: state.Employee.ID,
			}
		})

		It("should allow the owning employee to update their own task", func() {
			updated, err := service.UpdateTaskStatus(owner, ownedID, task.UpdateStatusDTO{Status: task.StatusInProgress})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(task.StatusInProgress))
		})

		It("should allow an admin to update any task", func() {
			updated, err := service.UpdateTaskStatus(admin, ownedID, task.UpdateStatusDTO{Status: task.StatusCompleted})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(task.StatusCompleted))
		})

		It("should deny an employee updating another employee's task", func() {
			other := internal.Actor{
				AccountID:  uuid.NewString(),
				Email:      "mike@company.test",
				Role:       internal.RoleEmployee,
				EmployeeID: uuid.NewString(),
			}

			updated, err := service.UpdateTaskStatus(other, ownedID, task.UpdateStatusDTO{Status: task.StatusCompleted})
			Expect(err).To(MatchError(internal.ErrNotTaskOwner))
			Expect(updated).To(BeNil())

			unchanged, err := mockTasks.GetByID(ownedID)
			Expect(err).NotTo(HaveOccurred())
			Expect(unchanged.Status).To(Equal(task.StatusPending))
		})

		It("should deny an employee account with no linked employee record", func() {
			unlinked := internal.Actor{
				AccountID: uuid.NewString(),
				Email:     "ghost@company.test",
				Role:      internal.RoleEmployee,
			}

			_, err := service.UpdateTaskStatus(unlinked, ownedID, task.UpdateStatusDTO{Status: task.StatusCompleted})
			Expect(err).To(MatchError(internal.ErrNotTaskOwner))
		})

		It("should reject an unknown status", func() {
			_, err := service.UpdateTaskStatus(admin, ownedID, task.UpdateStatusDTO{Status: "done"})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should return not found for an unknown task", func() {
			_, err := service.UpdateTaskStatus(admin, uuid.NewString(), task.UpdateStatusDTO{Status: task.StatusCompleted})
			Expect(err).To(MatchError(internal.ErrTaskNotFound))
		})
	})

	Describe("ProvisionChecklist", func() {
		var employeeID string

		BeforeEach(func() {
			emp, err := mockEmployees.Create(newEmployeeDTO("Grace Hopper", "grace@company.test"), admin.AccountID)
			Expect(err).NotTo(HaveOccurred())
			employeeID = emp.ID
		})

		It("should provision the default checklist once", func() {
			tasks, err := service.ProvisionChecklist(admin, employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(HaveLen(len(onboarding.DefaultChecklist)))
		})

		It("should refuse to provision twice", func() {
			_, err := service.ProvisionChecklist(admin, employeeID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ProvisionChecklist(admin, employeeID)
			Expect(err).To(MatchError(internal.ErrChecklistExists))

			tasks, err := service.GetEmployeeState(employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks.Tasks).To(HaveLen(len(onboarding.DefaultChecklist)))
		})

		It("should deny non-admin actors", func() {
			actor := internal.Actor{Role: internal.RoleEmployee, EmployeeID: employeeID}
			_, err := service.ProvisionChecklist(actor, employeeID)
			Expect(err).To(MatchError(internal.ErrAdminRequired))
		})
	})

	Describe("DeleteEmployee", func() {
		It("should cascade the checklist", func() {
			state, err := service.AddEmployee(admin, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteEmployee(admin, state.Employee.ID)).To(Succeed())
			Expect(mockEmployees.employees).To(BeEmpty())
			Expect(mockTasks.tasks).To(BeEmpty())
		})

		It("should deny non-admin actors", func() {
			state, err := service.AddEmployee(admin, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
			Expect(err).NotTo(HaveOccurred())

			actor := internal.Actor{Role: internal.RoleEmployee, EmployeeID: state.Employee.ID}
			Expect(service.DeleteEmployee(actor, state.Employee.ID)).To(MatchError(internal.ErrAdminRequired))
			Expect(mockEmployees.employees).To(HaveLen(1))
		})
	})

	Describe("AddTask", func() {
		It("should append a custom task for an existing employee", func() {
			state, err := service.AddEmployee(admin, newEmployeeDTO("Ada Lovelace", "ada@company.test"))
			Expect(err).NotTo(HaveOccurred())

			t, err := service.AddTask(admin, state.Employee.ID, task.CreateTaskDTO{Name: "Shadow a teammate"})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Name).To(Equal("Shadow a teammate"))
			Expect(t.Status).To(Equal(task.StatusPending))
		})

		It("should fail for an unknown employee", func() {
			_, err := service.AddTask(admin, uuid.NewString(), task.CreateTaskDTO{Name: "Shadow a teammate"})
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})

		It("should deny non-admin actors", func() {
			actor := internal.Actor{Role: internal.RoleEmployee}
			_, err := service.AddTask(actor, uuid.NewString(), task.CreateTaskDTO{Name: "Shadow a teammate"})
			Expect(err).To(MatchError(internal.ErrAdminRequired))
		})
	})
})
