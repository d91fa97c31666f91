package employee

import "time"

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type Employee struct {
	ID          string
	EmpID       string
	Name        string
	FatherName  string
	Email       string
	CNIC        string
	Mobile      string
	Designation string
	JoiningDate string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
