package task

import (
	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/core/common/validation"
)

// CreateTaskDTO is the payload for adding a single checklist step.
type CreateTaskDTO struct {
	Name string `json:"name"`
}

func (dto CreateTaskDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(300)
	return v.Validate()
}

// UpdateStatusDTO carries a status transition. Any of the three statuses is
// reachable from any other; the data layer does not enforce a state machine.
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateStatusDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("status", dto.Status).Required().
		OneOf(internal.ErrCodeInvalidStatus, Statuses()...)
	return v.Validate()
}
