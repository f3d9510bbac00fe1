package localstore

import (
	"sort"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	"github.com/adrianlim/onboarding-tracker/pkg/localstore"
)

// TaskRepository implements task.Repository on the JSON document store.
type TaskRepository struct {
	store *localstore.Store
}

func NewTaskRepository(store *localstore.Store) task.Repository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Create(t *task.Task) error {
	err := r.store.Mutate(func(doc *localstore.Document) error {
		doc.Tasks = append(doc.Tasks, toRecord(t))
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to persist task", err)
	}
	return nil
}

// CreateBatch appends the whole set in one document write, so a provisioned
// checklist is either fully visible or not at all.
func (r *TaskRepository) CreateBatch(tasks []*task.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	err := r.store.Mutate(func(doc *localstore.Document) error {
		for _, t := range tasks {
			doc.Tasks = append(doc.Tasks, toRecord(t))
		}
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to persist task batch", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(id string) (*task.Task, error) {
	var found *task.Task
	err := r.store.View(func(doc *localstore.Document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				found = fromRecord(doc.Tasks[i])
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, internal.NewPersistenceError("failed to read task", err)
	}
	if found == nil {
		return nil, internal.ErrTaskNotFound
	}
	return found, nil
}

func (r *TaskRepository) ListForEmployee(employeeID string) ([]*task.Task, error) {
	var tasks []*task.Task
	err := r.store.View(func(doc *localstore.Document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].EmployeeID == employeeID {
				tasks = append(tasks, fromRecord(doc.Tasks[i]))
			}
		}
		return nil
	})
	if err != nil {
		return nil, internal.NewPersistenceError("failed to list tasks", err)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Rank != tasks[j].Rank {
			return tasks[i].Rank < tasks[j].Rank
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(id, status string, updatedAt time.Time) error {
	found := false
	err := r.store.Mutate(func(doc *localstore.Document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				doc.Tasks[i].Status = status
				doc.Tasks[i].UpdatedAt = updatedAt
				found = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to update task status", err)
	}
	if !found {
		return internal.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(id string) error {
	found := false
	err := r.store.Mutate(func(doc *localstore.Document) error {
		kept := doc.Tasks[:0]
		for _, rec := range doc.Tasks {
			if rec.ID == id {
				found = true
				continue
			}
			kept = append(kept, rec)
		}
		doc.Tasks = kept
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to delete task", err)
	}
	if !found {
		return internal.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteForEmployee(employeeID string) error {
	err := r.store.Mutate(func(doc *localstore.Document) error {
		kept := doc.Tasks[:0]
		for _, rec := range doc.Tasks {
			if rec.EmployeeID == employeeID {
				continue
			}
			kept = append(kept, rec)
		}
		doc.Tasks = kept
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to delete employee tasks", err)
	}
	return nil
}

func toRecord(t *task.Task) localstore.TaskRecord {
	return localstore.TaskRecord{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		Name:       t.Name,
		Status:     t.Status,
		Rank:       t.Rank,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func fromRecord(rec localstore.TaskRecord) *task.Task {
	return &task.Task{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Name:       rec.Name,
		Status:     rec.Status,
		Rank:       rec.Rank,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
