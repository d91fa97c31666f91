package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmpIDExists      = errors.New("employee ID already exists")
	ErrInvalidCNIC      = errors.New("CNIC must match #####-#######-#")
	ErrInvalidMobile    = errors.New("mobile must match ####-#######")
	ErrInvalidStatus    = errors.New("status must be Active or Inactive")
	ErrHasAttendance    = errors.New("employee has attendance records")
)
