package postgres_test

import (
	"testing"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	taskPostgres "github.com/adrianlim/onboarding-tracker/internal/task/postgres"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTaskPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Task Postgres Suite")
}

var _ = Describe("Task Repository", func() {
	var (
		db   *gorm.DB
		repo task.Repository
	)

	const employeeID = "11111111-1111-1111-1111-111111111111"

	newTask := func(name string, rank int) *task.Task {
		now := time.Now().UTC()
		return &task.Task{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Name:       name,
			Status:     task.StatusPending,
			Rank:       rank,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&task.Task{})
		Expect(err).NotTo(HaveOccurred())

		repo = taskPostgres.NewTaskRepository(db)
	})

	Describe("CreateBatch and ListForEmployee", func() {
		It("should persist the batch and list it in rank order", func() {
			batch := []*task.Task{
				newTask("Third", 3),
				newTask("First", 1),
				newTask("Second", 2),
			}
			Expect(repo.CreateBatch(batch)).To(Succeed())

			tasks, err := repo.ListForEmployee(employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(HaveLen(3))
			Expect(tasks[0].Name).To(Equal("First"))
			Expect(tasks[1].Name).To(Equal("Second"))
			Expect(tasks[2].Name).To(Equal("Third"))
		})

		It("should accept an empty batch", func() {
			Expect(repo.CreateBatch(nil)).To(Succeed())
		})

		It("should not return another employee's tasks", func() {
			mine := newTask("Mine", 1)
			theirs := newTask("Theirs", 1)
			theirs.EmployeeID = uuid.NewString()
			Expect(repo.CreateBatch([]*task.Task{mine, theirs})).To(Succeed())

			tasks, err := repo.ListForEmployee(employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(HaveLen(1))
			Expect(tasks[0].Name).To(Equal("Mine"))
		})
	})

	Describe("UpdateStatus", func() {
		It("should persist the new status and timestamp", func() {
			t := newTask("Step", 1)
			Expect(repo.Create(t)).To(Succeed())

			updatedAt := time.Now().UTC().Add(time.Minute)
			Expect(repo.UpdateStatus(t.ID, task.StatusCompleted, updatedAt)).To(Succeed())

			found, err := repo.GetByID(t.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(task.StatusCompleted))
		})

		It("should return not found for an unknown task", func() {
			err := repo.UpdateStatus(uuid.NewString(), task.StatusCompleted, time.Now().UTC())
			Expect(err).To(MatchError(internal.ErrTaskNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove a single task", func() {
			t := newTask("Step", 1)
			Expect(repo.Create(t)).To(Succeed())

			Expect(repo.Delete(t.ID)).To(Succeed())
			_, err := repo.GetByID(t.ID)
			Expect(err).To(MatchError(internal.ErrTaskNotFound))
		})

		It("should return not found for an unknown task", func() {
			Expect(repo.Delete(uuid.NewString())).To(MatchError(internal.ErrTaskNotFound))
		})
	})

	Describe("DeleteForEmployee", func() {
		It("should remove the whole checklist and nothing else", func() {
			mine := newTask("Mine", 1)
			alsoMine := newTask("Also mine", 2)
			theirs := newTask("Theirs", 1)
			theirs.EmployeeID = uuid.NewString()
			Expect(repo.CreateBatch([]*task.Task{mine, alsoMine, theirs})).To(Succeed())

			Expect(repo.DeleteForEmployee(employeeID)).To(Succeed())

			remaining, err := repo.ListForEmployee(theirs.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(remaining).To(HaveLen(1))

			none, err := repo.ListForEmployee(employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(none).To(BeEmpty())
		})
	})
})
