package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-manpower/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var errSample = apperror.New(apperror.CodeConflict, "employee already assigned", http.StatusConflict)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		got := apperror.ToHTTP(fmt.Errorf("assign: %w", errSample))
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "employee already assigned", got.Message)
		assert.Nil(t, got.Details)
	})

	t.Run("cause is exposed as details for client errors", func(t *testing.T) {
		got := apperror.ToHTTP(errSample.WithCause(errors.New("nik 123")))
		assert.Equal(t, "nik 123", got.Details)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestWithCause_IsSentinel(t *testing.T) {
	wrapped := errSample.WithCause(errors.New("duplicate key"))
	assert.ErrorIs(t, wrapped, errSample)
	assert.Contains(t, wrapped.Error(), "duplicate key")
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		EmployeeIDs []string `validate:"required"`
		Reason      string   `validate:"max=3"`
		Gender      string   `validate:"omitempty,oneof=male female"`
		ShiftID     string   `validate:"omitempty,uuid"`
		Note        string   `validate:"omitempty,email"`
	}
	v := validator.New()
	ids := []string{"a"}

	tests := []struct {
		name string
		in   payload
		want string
	}{
		{"required", payload{Reason: "ok"}, "Employeeids is required"},
		{"max", payload{EmployeeIDs: ids, Reason: "too long"}, "Reason must be at most 3"},
		{"oneof", payload{EmployeeIDs: ids, Gender: "other"}, "Gender must be one of: male, female"},
		{"uuid", payload{EmployeeIDs: ids, ShiftID: "pagi"}, "Shiftid must be a valid id"},
		{"fallback", payload{EmployeeIDs: ids, Note: "x"}, "Note is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, apperror.MapValidationError(v.Struct(tt.in)), tt.want)
		})
	}

	assert.EqualError(t, apperror.MapValidationError(errors.New("boom")), "Invalid input")
}

func TestInit_UsesJSONNames(t *testing.T) {
	apperror.Init()
	apperror.Init()

	type body struct {
		SubSectionID string `json:"sub_section_id" binding:"required"`
	}
	err := binding.Validator.ValidateStruct(&body{})

	assert.EqualError(t, apperror.MapValidationError(err), "Sub Section Id is required")
}
