package onboarding

import (
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	"github.com/adrianlim/onboarding-tracker/internal/task"
)

// EmployeeState is the composed read model: the employee, the ordered
// checklist, and the computed progress percentage.
type EmployeeState struct {
	Employee *employee.Employee `json:"employee"`
	Tasks    []*task.Task       `json:"tasks"`
	Progress int                `json:"progress"`
}

type ProgressResponse struct {
	EmployeeID string `json:"employee_id"`
	Progress   int    `json:"progress"`
}

type EmployeesResponse struct {
	Employees []*employee.Employee `json:"employees"`
}

type TasksResponse struct {
	Tasks []*task.Task `json:"tasks"`
}
