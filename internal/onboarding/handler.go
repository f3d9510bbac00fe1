package onboarding

import (
	"encoding/json"
	"log/slog"
	"net/http"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	"github.com/adrianlim/onboarding-tracker/internal/transport"
	"github.com/adrianlim/onboarding-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	AddEmployee(actor internal.Actor, dto employee.CreateEmployeeDTO) (*EmployeeState, error)
	ListEmployees(actor internal.Actor) ([]*employee.Employee, error)
	GetEmployeeState(employeeID string) (*EmployeeState, error)
	GetProgress(employeeID string) (int, error)
	UpdateEmployee(actor internal.Actor, employeeID string, dto employee.UpdateEmployeeDTO) (*employee.Employee, error)
	DeleteEmployee(actor internal.Actor, employeeID string) error
	AddTask(actor internal.Actor, employeeID string, dto task.CreateTaskDTO) (*task.Task, error)
	DeleteTask(actor internal.Actor, taskID string) error
	UpdateTaskStatus(actor internal.Actor, taskID string, dto task.UpdateStatusDTO) (*task.Task, error)
	ProvisionChecklist(actor internal.Actor, employeeID string) ([]*task.Task, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (internal.Actor, bool) {
	actor, ok := internal.ActorFromContext(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context", "path", r.URL.Path)
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return internal.Actor{}, false
	}
	return actor, true
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var dto employee.CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.Service.AddEmployee(actor, dto)
	if err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err, "actor", actor.Email)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateEmployee: employee onboarded",
		"employee_id", state.Employee.ID,
		"tasks", len(state.Tasks))

	h.WriteJSON(w, http.StatusCreated, state)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	employees, err := h.Service.ListEmployees(actor)
	if err != nil {
		h.Logger.Error("ListEmployees: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, EmployeesResponse{Employees: employees})
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	state, err := h.Service.GetEmployeeState(employeeID)
	if err != nil {
		h.Logger.Error("GetEmployee: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	var dto employee.UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.UpdateEmployee(actor, employeeID, dto)
	if err != nil {
		h.Logger.Error("UpdateEmployee: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	if err := h.Service.DeleteEmployee(actor, employeeID); err != nil {
		h.Logger.Error("DeleteEmployee: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	progress, err := h.Service.GetProgress(employeeID)
	if err != nil {
		h.Logger.Error("GetProgress: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ProgressResponse{EmployeeID: employeeID, Progress: progress})
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	state, err := h.Service.GetEmployeeState(employeeID)
	if err != nil {
		h.Logger.Error("ListTasks: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, TasksResponse{Tasks: state.Tasks})
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	var dto task.CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTask: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.AddTask(actor, employeeID, dto)
	if err != nil {
		h.Logger.Error("CreateTask: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) ProvisionChecklist(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	tasks, err := h.Service.ProvisionChecklist(actor, employeeID)
	if err != nil {
		h.Logger.Error("ProvisionChecklist: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, TasksResponse{Tasks: tasks})
}

func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	taskID := chi.URLParam(r, "id")
	var dto task.UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateTaskStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.UpdateTaskStatus(actor, taskID, dto)
	if err != nil {
		h.Logger.Error("UpdateTaskStatus: service error", "error", err, "task_id", taskID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	taskID := chi.URLParam(r, "id")
	if err := h.Service.DeleteTask(actor, taskID); err != nil {
		h.Logger.Error("DeleteTask: service error", "error", err, "task_id", taskID)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
