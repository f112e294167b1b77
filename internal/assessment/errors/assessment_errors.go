package assessmenterrors

import (
	"net/http"

	"go-manpower/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrPointsOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"blind test points out of range",
		http.StatusBadRequest,
	)
	ErrRatingOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"rating out of range",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"test assignment not found",
		http.StatusNotFound,
	)
	ErrInvalidAssignmentTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid test assignment transition",
		http.StatusConflict,
	)
)
