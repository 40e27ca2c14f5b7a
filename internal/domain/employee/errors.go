package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmpIDExists      = errors.New("employee code already exists")
	ErrEmailExists      = errors.New("email already registered")
)
