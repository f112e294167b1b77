package employeeerrors

import (
	"net/http"

	"go-manpower/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNIKAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"NIK already exists in this company",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrSubSectionNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"One or more sub sections do not belong to this company",
		http.StatusBadRequest,
	)
	ErrUnknownPriorityCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown picking priority category",
		http.StatusBadRequest,
	)
	ErrDeactivationReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Deactivation reason is required",
		http.StatusBadRequest,
	)
	ErrAlreadyDeactivated = apperror.New(
		apperror.CodeInvalidState,
		"Employee is already deactivated",
		http.StatusConflict,
	)
	ErrNotDeactivated = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not deactivated",
		http.StatusConflict,
	)
)
