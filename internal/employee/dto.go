package employee

import (
	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/core/common/validation"
)

// CreateEmployeeDTO is the payload for creating an employee.
type CreateEmployeeDTO struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	AccountID  *string `json:"account_id,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("email", dto.Email).Required().Email()
	v.Field("role", dto.Role).Required().
		OneOf(internal.ErrCodeInvalidRole, internal.RoleAdmin, internal.RoleEmployee)
	v.Field("department", dto.Department).Required().
		OneOf(internal.ErrCodeInvalidDepartment, Departments()...)
	return v.Validate()
}

// UpdateEmployeeDTO carries a partial update; nil fields are left untouched.
type UpdateEmployeeDTO struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	AccountID  *string `json:"account_id,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(200)
	}
	if dto.Email != nil {
		v.Field("email", *dto.Email).Required().Email()
	}
	if dto.Role != nil {
		v.Field("role", *dto.Role).
			OneOf(internal.ErrCodeInvalidRole, internal.RoleAdmin, internal.RoleEmployee)
	}
	if dto.Department != nil {
		v.Field("department", *dto.Department).
			OneOf(internal.ErrCodeInvalidDepartment, Departments()...)
	}
	return v.Validate()
}
