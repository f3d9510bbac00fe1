package onboarding_test

import (
	"github.com/adrianlim/onboarding-tracker/internal/onboarding"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func tasksWithStatuses(statuses ...string) []*task.Task {
	tasks := make([]*task.Task, 0, len(statuses))
	for i, status := range statuses {
		tasks = append(tasks, &task.Task{
			Name:   "step",
			Status: status,
			Rank:   i + 1,
		})
	}
	return tasks
}

var _ = Describe("ComputeProgress", func() {
	Context("when the checklist is empty", func() {
		It("should return zero", func() {
			Expect(onboarding.ComputeProgress(nil)).To(Equal(0))
			Expect(onboarding.ComputeProgress([]*task.Task{})).To(Equal(0))
		})
	})

	Context("when some tasks are completed", func() {
		It("should return the rounded percentage", func() {
			tasks := tasksWithStatuses(task.StatusCompleted, task.StatusPending)
			Expect(onboarding.ComputeProgress(tasks)).To(Equal(50))
		})

		It("should round half up", func() {
			tasks := tasksWithStatuses(task.StatusCompleted, task.StatusCompleted, task.StatusPending)
			Expect(onboarding.ComputeProgress(tasks)).To(Equal(67))

			tasks = tasksWithStatuses(task.StatusCompleted, task.StatusPending, task.StatusPending)
			Expect(onboarding.ComputeProgress(tasks)).To(Equal(33))
		})

		It("should not count in-progress tasks as completed", func() {
			tasks := tasksWithStatuses(task.StatusCompleted, task.StatusInProgress, task.StatusInProgress, task.StatusPending)
			Expect(onboarding.ComputeProgress(tasks)).To(Equal(25))
		})
	})

	Context("at the boundaries", func() {
		It("should return zero when nothing is completed", func() {
			tasks := tasksWithStatuses(task.StatusPending, task.StatusInProgress)
			Expect(onboarding.ComputeProgress(tasks)).To(Equal(0))
		})

		It("should return one hundred only when every task is completed", func() {
			tasks := tasksWithStatuses(task.StatusCompleted, task.StatusCompleted)
			Expect(onboarding.ComputeProgress(tasks)).To(Equal(100))

			almost := tasksWithStatuses(
				task.StatusCompleted, task.StatusCompleted, task.StatusCompleted,
				task.StatusCompleted, task.StatusCompleted, task.StatusCompleted,
				task.StatusCompleted, task.StatusInProgress,
			)
			Expect(onboarding.ComputeProgress(almost)).To(BeNumerically("<", 100))
		})
	})
})
