package manpower_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-manpower/internal/manpower"
	manpowererrors "go-manpower/internal/manpower/errors"
	"go-manpower/internal/manpower/mock"
	"go-manpower/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupHandlerTest(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := manpower.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "company-1")
		c.Set("user_id_validated", "user-1")
		c.Next()
	})
	r.POST("/manpower-requests", h.Create)
	r.GET("/manpower-requests", h.GetAll)
	r.DELETE("/manpower-requests/:id/schedules", h.ClearSchedules)
	r.POST("/requests/:id/candidates", h.Candidates)
	r.POST("/requests/:id/assign", h.Assign)
	r.POST("/requests/:id/reject", h.Reject)
	r.POST("/recurring-needs/generate", h.Generate)
	return r, svc
}

func doJSON(r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env apiEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_Create(t *testing.T) {
	t.Run("created with actor fallback", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		body := createRequest()
		svc.EXPECT().Create(gomock.Any(), "company-1", "user-1", body).Return(manpower.RequestResponse{Number: "MPR-000001"}, nil)

		w, env := doJSON(r, http.MethodPost, "/manpower-requests", body)

		require.Equal(t, http.StatusCreated, w.Code)
		var got manpower.RequestResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "MPR-000001", got.Number)
	})

	t.Run("zero amount fails binding", func(t *testing.T) {
		r, _ := setupHandlerTest(t)
		body := createRequest()
		body.RequestedAmount = 0

		w, env := doJSON(r, http.MethodPost, "/manpower-requests", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
	})

	t.Run("duplicate original is a conflict", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(manpower.RequestResponse{}, manpowererrors.ErrDuplicateRequest)

		w, env := doJSON(r, http.MethodPost, "/manpower-requests", createRequest())

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperror.CodeConflict, env.Error.Code)
	})
}

func TestHandler_GetAll_PassesFilter(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().
		GetAll(gomock.Any(), "company-1", manpower.ListFilter{Date: "2024-06-01", Status: manpower.StatusPending}).
		Return([]manpower.RequestResponse{{Number: "MPR-000001"}}, nil)

	w, env := doJSON(r, http.MethodGet, "/manpower-requests?date=2024-06-01&status=pending", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Ok)
}

func TestHandler_Candidates(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().Candidates(gomock.Any(), "company-1", "req-1").Return(manpower.CandidatesResponse{
		Candidates: []manpower.CandidateResponse{{EmployeeID: "A", TotalScore: "0.9000"}, {EmployeeID: "B", TotalScore: "0.6000"}},
		Excluded:   []manpower.ExcludedResponse{{EmployeeID: "C", Reason: manpower.ReasonDeactivated}},
	}, nil)

	w, env := doJSON(r, http.MethodPost, "/requests/req-1/candidates", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got manpower.CandidatesResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Candidates, 2)
	assert.Equal(t, "A", got.Candidates[0].EmployeeID)
	assert.Equal(t, "C", got.Excluded[0].EmployeeID)
}

func TestHandler_Assign(t *testing.T) {
	t.Run("non-uuid ids fail binding", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		w, env := doJSON(r, http.MethodPost, "/requests/req-1/assign", manpower.AssignRequest{EmployeeIDs: []string{"x"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
	})

	t.Run("over capacity maps to invalid state", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		body := manpower.AssignRequest{EmployeeIDs: []string{empA}}
		svc.EXPECT().Assign(gomock.Any(), "company-1", "user-1", "req-1", body).Return(manpower.AssignResponse{}, manpowererrors.ErrExceedsRequestedAmount)

		w, env := doJSON(r, http.MethodPost, "/requests/req-1/assign", body)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperror.CodeInvalidState, env.Error.Code)
	})

	t.Run("created", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		body := manpower.AssignRequest{EmployeeIDs: []string{empA, empB}}
		svc.EXPECT().Assign(gomock.Any(), gomock.Any(), gomock.Any(), "req-1", body).
			Return(manpower.AssignResponse{Request: manpower.RequestResponse{Status: manpower.StatusFulfilled}}, nil)

		w, _ := doJSON(r, http.MethodPost, "/requests/req-1/assign", body)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestHandler_Reject_RequiresReason(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w, env := doJSON(r, http.MethodPost, "/requests/req-1/reject", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, env.Error.Code)
}

func TestHandler_ClearSchedules(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().ClearSchedules(gomock.Any(), "company-1", "user-1", "req-1").Return(manpower.ClearResponse{Cleared: 3}, nil)

	w, env := doJSON(r, http.MethodDelete, "/manpower-requests/req-1/schedules", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got manpower.ClearResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(3), got.Cleared)
}

func TestHandler_Generate_ReportsPartialFailure(t *testing.T) {
	r, svc := setupHandlerTest(t)
	body := manpower.GenerateRequest{From: "2024-06-01", To: "2024-06-07"}
	svc.EXPECT().Generate(gomock.Any(), "company-1", "user-1", body).Return(manpower.GenerateReport{Created: 1, Skipped: 1}, nil)

	w, env := doJSON(r, http.MethodPost, "/recurring-needs/generate", body)

	require.Equal(t, http.StatusOK, w.Code)
	var got manpower.GenerateReport
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 1, got.Skipped)
}
