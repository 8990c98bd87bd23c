package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/response"
	"github.com/formbase/forms-go/services"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetAuditLogs godoc
// @Summary Query audit logs
// @Description Retrieve audit logs filtered by user, resource type, action and time range.
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query string false "User id to filter by"
// @Param resource_type query string false "Resource type to filter" example("form")
// @Param action query string false "Action to filter" example("delete")
// @Param start_time query string false "Start time, RFC3339"
// @Param end_time query string false "End time, RFC3339"
// @Param limit query int false "Max records (default 100, max 1000)"
// @Param offset query int false "Offset for pagination"
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repositories.AuditQueryParams

	if uid := c.Query("user_id"); uid != "" {
		params.UserID = &uid
	}
	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}

	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > 1000 {
		limit = 1000
	}
	params.Limit = limit
	params.Offset = offset

	logs, err := h.service.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
