package employee

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	EmpID       string `json:"emp_id"`
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	Email       string `json:"email"`
	CNIC        string `json:"cnic"`
	Mobile      string `json:"mobile"`
	Designation string `json:"designation"`
	JoiningDate string `json:"joining_date"`
	Status      string `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsEmpty(r.CNIC) && !validator.IsValidCNIC(r.CNIC) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnic",
			Message: "cnic must be in #####-#######-# format",
		})
	}

	if !validator.IsEmpty(r.Mobile) && !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be in ####-####### format",
		})
	}

	if !validator.IsEmpty(r.JoiningDate) && !validator.IsValidDate(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(r.Status) && !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	Email       string `json:"email"`
	CNIC        string `json:"cnic"`
	Mobile      string `json:"mobile"`
	Designation string `json:"designation"`
	JoiningDate string `json:"joining_date"`
	Status      string `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsEmpty(r.CNIC) && !validator.IsValidCNIC(r.CNIC) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnic",
			Message: "cnic must be in #####-#######-# format",
		})
	}

	if !validator.IsEmpty(r.Mobile) && !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be in ####-####### format",
		})
	}

	if !validator.IsEmpty(r.JoiningDate) && !validator.IsValidDate(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(r.Status) && !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	EmpID       string `json:"emp_id"`
	Name        string `json:"name"`
	FatherName  string `json:"father_name,omitempty"`
	Email       string `json:"email,omitempty"`
	CNIC        string `json:"cnic,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Designation string `json:"designation,omitempty"`
	JoiningDate string `json:"joining_date,omitempty"`
	Status      string `json:"status"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}
