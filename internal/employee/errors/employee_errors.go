package employeeerrors

import (
	"net/http"

	"hrfiles/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid employee code or password",
		http.StatusUnauthorized,
	)
	ErrEmployeeResigned = apperror.New(
		apperror.CodeForbidden,
		"This account is no longer active",
		http.StatusForbidden,
	)
)
