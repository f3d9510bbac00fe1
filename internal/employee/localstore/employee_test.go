package localstore_test

import (
	"path/filepath"
	"testing"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	employeeLocal "github.com/adrianlim/onboarding-tracker/internal/employee/localstore"
	"github.com/adrianlim/onboarding-tracker/pkg/localstore"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEmployeeLocalStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee LocalStore Suite")
}

var _ = Describe("Employee LocalStore Repository", func() {
	var (
		store *localstore.Store
		repo  employee.Repository
	)

	newEmployee := func(name, email string, createdAt time.Time) *employee.Employee {
		return &employee.Employee{
			ID:         uuid.NewString(),
			Name:       name,
			Email:      email,
			Role:       internal.RoleEmployee,
			Department: employee.DepartmentHR,
			JoinDate:   createdAt,
			CreatedBy:  "admin-account",
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		}
	}

	BeforeEach(func() {
		var err error
		store, err = localstore.Open(filepath.Join(GinkgoT().TempDir(), "onboarding.json"))
		Expect(err).NotTo(HaveOccurred())

		repo = employeeLocal.NewEmployeeRepository(store)
	})

	It("should round-trip an employee through the document file", func() {
		emp := newEmployee("Mike Chen", "mike@company.test", time.Now().UTC())
		Expect(repo.Create(emp)).To(Succeed())

		found, err := repo.GetByID(emp.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name).To(Equal("Mike Chen"))
		Expect(found.Department).To(Equal(employee.DepartmentHR))
	})

	It("should return not found for an unknown id", func() {
		_, err := repo.GetByID(uuid.NewString())
		Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
	})

	It("should order GetAll newest first", func() {
		older := newEmployee("Older", "older@company.test", time.Now().UTC().Add(-time.Hour))
		newer := newEmployee("Newer", "newer@company.test", time.Now().UTC())
		Expect(repo.Create(older)).To(Succeed())
		Expect(repo.Create(newer)).To(Succeed())

		all, err := repo.GetAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(2))
		Expect(all[0].Name).To(Equal("Newer"))
	})

	It("should update in place", func() {
		emp := newEmployee("Mike Chen", "mike@company.test", time.Now().UTC())
		Expect(repo.Create(emp)).To(Succeed())

		emp.Department = employee.DepartmentMarketing
		Expect(repo.Update(emp)).To(Succeed())

		found, err := repo.GetByID(emp.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Department).To(Equal(employee.DepartmentMarketing))
	})

	It("should delete and report not found afterwards", func() {
		emp := newEmployee("Mike Chen", "mike@company.test", time.Now().UTC())
		Expect(repo.Create(emp)).To(Succeed())

		Expect(repo.Delete(emp.ID)).To(Succeed())
		_, err := repo.GetByID(emp.ID)
		Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
	})

	It("should find by account id", func() {
		accountID := uuid.NewString()
		emp := newEmployee("Mike Chen", "mike@company.test", time.Now().UTC())
		emp.AccountID = &accountID
		Expect(repo.Create(emp)).To(Succeed())

		found, err := repo.FindByAccountID(accountID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(emp.ID))
	})
})
