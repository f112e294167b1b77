package scheduleerrors

import (
	"net/http"

	"go-manpower/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidScheduleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid schedule ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule not found",
		http.StatusNotFound,
	)
	ErrInvalidVisibility = apperror.New(
		apperror.CodeInvalidInput,
		"Visibility must be public or private",
		http.StatusBadRequest,
	)
	ErrInvalidRequestedStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Requested status must be accepted or rejected",
		http.StatusBadRequest,
	)
	ErrStatusUnchanged = apperror.New(
		apperror.CodeInvalidInput,
		"Schedule already has the requested status",
		http.StatusBadRequest,
	)
	ErrNotScheduleOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the scheduled employee can request a change",
		http.StatusForbidden,
	)
	ErrPendingChangeExists = apperror.New(
		apperror.CodeConflict,
		"A pending change request already exists for this schedule",
		http.StatusConflict,
	)
	ErrChangeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule change request not found",
		http.StatusNotFound,
	)
	ErrChangeAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"Schedule change request is no longer pending",
		http.StatusConflict,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"Decision must be approve or reject",
		http.StatusBadRequest,
	)
	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"Employee is already assigned to an overlapping shift",
		http.StatusConflict,
	)
)
