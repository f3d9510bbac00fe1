package onboarding

import (
	"math"

	"github.com/adrianlim/onboarding-tracker/internal/task"
)

// ComputeProgress reduces a set of task statuses to a completion percentage.
// Empty input yields 0; otherwise the completed share of the whole set,
// rounded half-up so 2/3 reads as 67, never truncated to 66. Total function,
// no side effects; the caller pre-filters by employee.
func ComputeProgress(tasks []*task.Task) int {
	if len(tasks) == 0 {
		return 0
	}

	completed := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}
