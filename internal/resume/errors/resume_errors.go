package resumeerrors

import (
	"net/http"

	"hrfiles/internal/shared/apperror"
)

var (
	ErrResumeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Resume not found",
		http.StatusNotFound,
	)
	ErrFileNotAttached = apperror.New(
		apperror.CodeNotFound,
		"No resume file is attached to this candidate",
		http.StatusNotFound,
	)
)
