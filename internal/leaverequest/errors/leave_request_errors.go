package leaverequesterrors

import (
	"net/http"

	"hrfiles/internal/shared/apperror"
)

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrNotManagerApprover = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to approve leave requests",
		http.StatusForbidden,
	)
	ErrNotHrApprover = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to give HR approval",
		http.StatusForbidden,
	)
	ErrDepartmentNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"This leave request is outside your approval scope",
		http.StatusForbidden,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"This leave request has already been decided",
		http.StatusConflict,
	)
	ErrManagerApprovalRequired = apperror.New(
		apperror.CodeInvalidState,
		"Manager approval is required before HR approval",
		http.StatusConflict,
	)
	ErrAlreadyFinalized = apperror.New(
		apperror.CodeInvalidState,
		"This leave request has already received HR approval",
		http.StatusConflict,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"Decision must be Approved or Rejected",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"From date must not be after to date",
		http.StatusBadRequest,
	)
	ErrUnknownUpdatePayload = apperror.New(
		apperror.CodeInvalidInput,
		"Update payload must carry a manager decision or an HR approval",
		http.StatusBadRequest,
	)
)
