package postgres

import (
	"errors"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	"gorm.io/gorm"
)

// TaskRepository implements the task.Repository interface using GORM
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(t *task.Task) error {
	if err := r.db.Create(t).Error; err != nil {
		return internal.NewPersistenceError("failed to persist task", err)
	}
	return nil
}

// CreateBatch inserts the whole set in one transaction so a provisioned
// checklist is either fully visible or not at all.
func (r *TaskRepository) CreateBatch(tasks []*task.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(tasks).Error
	})
	if err != nil {
		return internal.NewPersistenceError("failed to persist task batch", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(id string) (*task.Task, error) {
	var t task.Task
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrTaskNotFound
		}
		return nil, internal.NewPersistenceError("failed to read task", err)
	}
	return &t, nil
}

// ListForEmployee returns tasks in provisioning order; creation time breaks
// ties between admin-added tasks that share a rank after deletions.
func (r *TaskRepository) ListForEmployee(employeeID string) ([]*task.Task, error) {
	var tasks []*task.Task
	err := r.db.Where("employee_id = ?", employeeID).
		Order("task_rank ASC").
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, internal.NewPersistenceError("failed to list tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(id, status string, updatedAt time.Time) error {
	result := r.db.Model(&task.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return internal.NewPersistenceError("failed to update task status", result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&task.Task{})
	if result.Error != nil {
		return internal.NewPersistenceError("failed to delete task", result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteForEmployee(employeeID string) error {
	err := r.db.Where("employee_id = ?", employeeID).Delete(&task.Task{}).Error
	if err != nil {
		return internal.NewPersistenceError("failed to delete employee tasks", err)
	}
	return nil
}
