package leaverequest

import (
	"net/http"
	"strconv"

	leaverequesterrors "hrfiles/internal/leaverequest/errors"
	"hrfiles/internal/middleware"
	"hrfiles/internal/shared/apperror"
	"hrfiles/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leaverequest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Please login again.")
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Without a page parameter the full list goes out; the history screen
	// consumes it unpaged.
	if c.Query("page") == "" && c.Query("page_size") == "" {
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByStatus(c *gin.Context) {
	resp, err := h.service.GetByManagerStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PendingApprovals(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Please login again.")
		return
	}

	resp, err := h.service.ListPendingForApprover(c.Request.Context(), caller)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Update dispatches the two-stage PUT: an hr_approval field runs the HR
// stage, an approved_by_status field runs the manager stage. Anything else
// is rejected rather than silently ignored.
func (h *Handler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Please login again.")
		return
	}

	var req UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	id := c.Param("id")

	switch {
	case req.HrApproval != "":
		resp, err := h.service.HrApprove(c.Request.Context(), caller, id)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)

	case req.ApprovedByStatus != "":
		resp, err := h.service.ManagerDecide(c.Request.Context(), caller, id, req.ApprovedByStatus)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)

	default:
		h.writeServiceError(c, leaverequesterrors.ErrUnknownUpdatePayload)
	}
}
