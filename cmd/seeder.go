package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/auth"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	"github.com/adrianlim/onboarding-tracker/internal/onboarding"
	"github.com/adrianlim/onboarding-tracker/internal/task"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var seedDemo bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed initial data",
	Long:  `Create the default admin account, plus demo employees with --demo`,
	Run: func(cmd *cobra.Command, args []string) {
		runSeeder()
	},
}

func runSeeder() {
	config, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	storage, err := initStorage(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}
	if storage.DB != nil {
		defer storage.DB.Close()
	}

	adminID, err := seedAccount(storage, config, "admin@company.test", "admin123", internal.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed admin account: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seeded admin account admin@company.test")

	if !seedDemo {
		return
	}

	demo := []struct {
		name       string
		email      string
		department string
		completed  int
		inProgress int
	}{
		{"Sarah Johnson", "sarah.johnson@company.test", employee.DepartmentEngineering, 3, 1},
		{"Mike Chen", "mike.chen@company.test", employee.DepartmentMarketing, 1, 2},
	}

	for _, d := range demo {
		if err := seedDemoEmployee(storage, config, adminID, d.name, d.email, d.department, d.completed, d.inProgress); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed %s: %v\n", d.name, err)
			os.Exit(1)
		}
		fmt.Printf("Seeded demo employee %s\n", d.name)
	}
}

// seedAccount creates an account if it does not already exist and returns its id.
func seedAccount(storage *storageBackends, cfg *internal.Config, email, password, role string) (string, error) {
	existing, err := storage.Accounts.GetByEmail(email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, internal.ErrAccountNotFound) {
		return "", err
	}

	hash, err := auth.HashPassword(password, cfg.Security.BCryptCost)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	account := &auth.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := storage.Accounts.Create(account); err != nil {
		return "", err
	}
	return account.ID, nil
}

// seedDemoEmployee creates an employee with a login account and a default
// checklist advanced to the given point.
func seedDemoEmployee(storage *storageBackends, cfg *internal.Config, createdBy, name, email, department string, completed, inProgress int) error {
	if _, err := storage.Employees.FindByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, internal.ErrEmployeeNotFound) {
		return err
	}

	accountID, err := seedAccount(storage, cfg, email, "changeme123", internal.RoleEmployee)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	emp := &employee.Employee{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Role:       internal.RoleEmployee,
		Department: department,
		AccountID:  &accountID,
		JoinDate:   now,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := storage.Employees.Create(emp); err != nil {
		return err
	}

	tasks := onboarding.BuildDefaultTasks(emp.ID)
	for i, t := range tasks {
		t.ID = uuid.NewString()
		t.CreatedAt = now
		t.UpdatedAt = now
		switch {
		case i < completed:
			t.Status = task.StatusCompleted
		case i < completed+inProgress:
			t.Status = task.StatusInProgress
		}
	}
	return storage.Tasks.CreateBatch(tasks)
}
