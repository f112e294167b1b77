package leaveerrors

import (
	"net/http"

	"go-manpower/internal/shared/apperror"
)

// input
var (
	ErrInvalidCompanyID        = apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	ErrInvalidEmployeeID       = apperror.New(apperror.CodeInvalidInput, "invalid employee id", http.StatusBadRequest)
	ErrInvalidDateFormat       = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrInvalidDateRange        = apperror.New(apperror.CodeInvalidInput, "start_date must not be after end_date", http.StatusBadRequest)
	ErrRejectionReasonRequired = apperror.New(apperror.CodeInvalidInput, "rejection_reason is required to reject a leave", http.StatusBadRequest)
)

// lookup and state
var (
	ErrEmployeeNotInCompany = apperror.New(apperror.CodeNotFound, "employee not found in this company", http.StatusNotFound)
	ErrLeaveNotFound        = apperror.New(apperror.CodeNotFound, "leave not found", http.StatusNotFound)
	// A leave of the same employee that is neither canceled nor rejected covers part of the range.
	ErrLeaveOverlap            = apperror.New(apperror.CodeConflict, "employee already has leave in this period", http.StatusConflict)
	ErrInvalidStatusTransition = apperror.New(apperror.CodeInvalidState, "leave cannot move to that status", http.StatusConflict)
)
