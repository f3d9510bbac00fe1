package onboarding

import (
	"github.com/adrianlim/onboarding-tracker/internal/task"
)

// DefaultChecklist is the canonical ordered set of onboarding steps every new
// employee gets. The position in this list is the task's rank.
var DefaultChecklist = []string{
	"Complete HR Documentation",
	"Setup Workspace and Equipment",
	"IT Account Setup",
	"Team Introduction",
	"Company Policy Review",
	"Role-specific Training",
	"Security and Access Cards",
	"Benefits Enrollment",
}

// BuildDefaultTasks produces the default checklist for an employee: one
// pending task per step, ranks 1..N. IDs and timestamps are assigned at
// persistence time.
func BuildDefaultTasks(employeeID string) []*task.Task {
	tasks := make([]*task.Task, 0, len(DefaultChecklist))
	for i, name := range DefaultChecklist {
		tasks = append(tasks, &task.Task{
			EmployeeID: employeeID,
			Name:       name,
			Status:     task.StatusPending,
			Rank:       i + 1,
		})
	}
	return tasks
}
