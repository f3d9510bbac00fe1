package onboarding_test

import (
	"github.com/adrianlim/onboarding-tracker/internal/onboarding"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildDefaultTasks", func() {
	const employeeID = "3f1d9a60-7c1e-4f7a-9f3d-111111111111"

	It("should build one task per default checklist step, in order", func() {
		tasks := onboarding.BuildDefaultTasks(employeeID)
		Expect(tasks).To(HaveLen(len(onboarding.DefaultChecklist)))

		for i, t := range tasks {
			Expect(t.Name).To(Equal(onboarding.DefaultChecklist[i]))
			Expect(t.Rank).To(Equal(i + 1))
			Expect(t.EmployeeID).To(Equal(employeeID))
		}
	})

	It("should start every task as pending", func() {
		for _, t := range onboarding.BuildDefaultTasks(employeeID) {
			Expect(t.Status).To(Equal(task.StatusPending))
		}
	})

	It("should include the canonical steps", func() {
		Expect(onboarding.DefaultChecklist).To(HaveLen(8))
		Expect(onboarding.DefaultChecklist[0]).To(Equal("Complete HR Documentation"))
		Expect(onboarding.DefaultChecklist).To(ContainElement("IT Account Setup"))
		Expect(onboarding.DefaultChecklist).To(ContainElement("Benefits Enrollment"))
	})
})
