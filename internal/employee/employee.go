package employee

import (
	"time"
)

// Employee is an onboarding subject. AccountID links the record to the
// authentication account of the person, so self-service ownership checks work
// on an explicit key instead of matching email strings.
type Employee struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Role       string    `json:"role" gorm:"not null;default:employee"`
	Department string    `json:"department" gorm:"not null"`
	AccountID  *string   `json:"account_id,omitempty" gorm:"column:account_id;type:uuid"`
	JoinDate   time.Time `json:"join_date" gorm:"column:join_date;type:date"`
	CreatedBy  string    `json:"created_by" gorm:"column:created_by"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

const (
	DepartmentHR          = "HR"
	DepartmentEngineering = "Engineering"
	DepartmentMarketing   = "Marketing"
)

func Departments() []string {
	return []string{DepartmentHR, DepartmentEngineering, DepartmentMarketing}
}
