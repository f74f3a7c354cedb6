package ticketerrors

import (
	"net/http"

	"hrfiles/internal/shared/apperror"
)

var (
	ErrTicketNotFound = apperror.New(
		apperror.CodeNotFound,
		"Ticket not found",
		http.StatusNotFound,
	)
	ErrNotTicketDesk = apperror.New(
		apperror.CodeForbidden,
		"Only the ticket desk can book tickets",
		http.StatusForbidden,
	)
	ErrBillNotAttached = apperror.New(
		apperror.CodeNotFound,
		"No bill is attached to this ticket",
		http.StatusNotFound,
	)
)
