package localstore

import (
	"sort"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	"github.com/adrianlim/onboarding-tracker/pkg/localstore"
)

// EmployeeRepository implements employee.Repository on the JSON document
// store. Every operation goes through the store's load-all/write-all cycle.
type EmployeeRepository struct {
	store *localstore.Store
}

func NewEmployeeRepository(store *localstore.Store) employee.Repository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	err := r.store.Mutate(func(doc *localstore.Document) error {
		doc.Employees = append(doc.Employees, toRecord(emp))
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to persist employee", err)
	}
	return nil
}

func (r *EmployeeRepository) GetByID(id string) (*employee.Employee, error) {
	return r.findOne(func(rec localstore.EmployeeRecord) bool {
		return rec.ID == id
	})
}

func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.store.View(func(doc *localstore.Document) error {
		for i := range doc.Employees {
			employees = append(employees, fromRecord(doc.Employees[i]))
		}
		return nil
	})
	if err != nil {
		return nil, internal.NewPersistenceError("failed to list employees", err)
	}

	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].CreatedAt.After(employees[j].CreatedAt)
	})
	return employees, nil
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	found := false
	err := r.store.Mutate(func(doc *localstore.Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID == emp.ID {
				doc.Employees[i] = toRecord(emp)
				found = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to update employee", err)
	}
	if !found {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(id string) error {
	found := false
	err := r.store.Mutate(func(doc *localstore.Document) error {
		kept := doc.Employees[:0]
		for _, rec := range doc.Employees {
			if rec.ID == id {
				found = true
				continue
			}
			kept = append(kept, rec)
		}
		doc.Employees = kept
		return nil
	})
	if err != nil {
		return internal.NewPersistenceError("failed to delete employee", err)
	}
	if !found {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) FindByEmail(email string) (*employee.Employee, error) {
	return r.findOne(func(rec localstore.EmployeeRecord) bool {
		return rec.Email == email
	})
}

func (r *EmployeeRepository) FindByAccountID(accountID string) (*employee.Employee, error) {
	return r.findOne(func(rec localstore.EmployeeRecord) bool {
		return rec.AccountID != nil && *rec.AccountID == accountID
	})
}

func (r *EmployeeRepository) findOne(match func(localstore.EmployeeRecord) bool) (*employee.Employee, error) {
	var emp *employee.Employee
	err := r.store.View(func(doc *localstore.Document) error {
		for i := range doc.Employees {
			if match(doc.Employees[i]) {
				emp = fromRecord(doc.Employees[i])
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, internal.NewPersistenceError("failed to read employee", err)
	}
	if emp == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

func toRecord(emp *employee.Employee) localstore.EmployeeRecord {
	return localstore.EmployeeRecord{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Role:       emp.Role,
		Department: emp.Department,
		AccountID:  emp.AccountID,
		JoinDate:   emp.JoinDate,
		CreatedBy:  emp.CreatedBy,
		CreatedAt:  emp.CreatedAt,
		UpdatedAt:  emp.UpdatedAt,
	}
}

func fromRecord(rec localstore.EmployeeRecord) *employee.Employee {
	return &employee.Employee{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Role:       rec.Role,
		Department: rec.Department,
		AccountID:  rec.AccountID,
		JoinDate:   rec.JoinDate,
		CreatedBy:  rec.CreatedBy,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
