package manpowererrors

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
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid manpower request ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRequest = apperror.New(
		apperror.CodeInvalidInput,
		"Manpower request references an unknown sub-section or shift",
		http.StatusBadRequest,
	)
	ErrSubSectionNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Sub-section not found",
		http.StatusBadRequest,
	)
	ErrShiftNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Shift not found",
		http.StatusBadRequest,
	)
	ErrGenderCountExceedsAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Male and female counts exceed the requested amount",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee not found in this company",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Manpower request not found",
		http.StatusNotFound,
	)
	ErrDuplicateRequest = apperror.New(
		apperror.CodeConflict,
		"An original manpower request already exists for this sub-section, shift and date",
		http.StatusConflict,
	)
	ErrRequestRejected = apperror.New(
		apperror.CodeInvalidState,
		"Manpower request is rejected",
		http.StatusConflict,
	)
	ErrRequestHasSchedules = apperror.New(
		apperror.CodeInvalidState,
		"Manpower request has schedules, clear them before rejecting",
		http.StatusConflict,
	)
	ErrExceedsRequestedAmount = apperror.New(
		apperror.CodeInvalidState,
		"Assignment exceeds the requested amount",
		http.StatusConflict,
	)
	ErrEmployeeNotEligible = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not eligible for this request",
		http.StatusConflict,
	)
	ErrInvalidRRule = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid recurrence rule",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range",
		http.StatusBadRequest,
	)
	ErrRecurringNeedNotFound = apperror.New(
		apperror.CodeNotFound,
		"Recurring need not found",
		http.StatusNotFound,
	)
)
