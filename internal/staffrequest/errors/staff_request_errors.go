package staffrequesterrors

import (
	"net/http"

	"hrfiles/internal/shared/apperror"
)

var (
	ErrStaffRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)
	ErrRequestAlreadyClosed = apperror.New(
		apperror.CodeInvalidState,
		"This request has already been closed",
		http.StatusConflict,
	)
)
