package task

import (
	"time"
)

// Task is one onboarding checklist step for an employee. EmployeeID never
// changes after creation. Rank is the provisioning order (1..N) and only
// drives the canonical listing sequence, never the progress math.
type Task struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	EmployeeID string    `json:"employee_id" gorm:"column:employee_id;type:uuid;not null"`
	Name       string    `json:"name" gorm:"column:task_name;not null"`
	Status     string    `json:"status" gorm:"not null;default:pending"`
	Rank       int       `json:"rank" gorm:"column:task_rank;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Task) TableName() string {
	return "onboarding_tasks"
}

// Status is tri-state. The legacy bi-state variant (pending/completed) folds
// into this set; in_progress simply never occurs in data migrated from it.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted}
}

func ValidStatus(status string) bool {
	for _, s := range Statuses() {
		if s == status {
			return true
		}
	}
	return false
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
