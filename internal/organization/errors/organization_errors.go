package organizationerrors

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
	ErrSectionNotFound = apperror.New(
		apperror.CodeNotFound,
		"section not found",
		http.StatusNotFound,
	)
	ErrInvalidShiftTime = apperror.New(
		apperror.CodeInvalidInput,
		"invalid shift time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrZeroLengthShift = apperror.New(
		apperror.CodeInvalidInput,
		"shift start_time and end_time must differ",
		http.StatusBadRequest,
	)
	ErrDuplicateName = apperror.New(
		apperror.CodeConflict,
		"name already exists",
		http.StatusConflict,
	)
)
