package assessment

import (
	"net/http"

	"go-manpower/internal/shared/apperror"
	"go-manpower/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assessment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("assessment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, err error) {
	h.logger.Warn("http assessment validation failed", zap.Error(err))
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Input tidak valid", apperror.MapValidationError(err).Error())
}

func actorID(c *gin.Context) string {
	if id := c.GetString("employee_id"); id != "" {
		return id
	}
	return c.GetString("user_id_validated")
}

func (h *Handler) RecordBlindTest(c *gin.Context) {
	var req RecordBlindTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.RecordBlindTest(c.Request.Context(), c.GetString("company_id"), actorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RecordRating(c *gin.Context) {
	var req RecordRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.RecordRating(c.Request.Context(), c.GetString("company_id"), actorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	resp, err := h.service.GetSummary(c.Request.Context(), c.GetString("company_id"), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AssignTest(c *gin.Context) {
	var req AssignTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.AssignTest(c.Request.Context(), c.GetString("company_id"), actorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) StartTest(c *gin.Context) {
	resp, err := h.service.StartTest(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CompleteTest(c *gin.Context) {
	var req CompleteTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	resp, err := h.service.CompleteTest(c.Request.Context(), c.GetString("company_id"), actorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAssignments(c *gin.Context) {
	items, err := h.service.ListAssignments(c.Request.Context(), c.GetString("company_id"), c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, items)
	response.Success(c, http.StatusOK, page, &meta)
}
