package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/response"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query audit logs
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Actor user ID"
// @Param resource_type query string false "scholarship, application, review, user"
// @Param action query string false "create, update, delete"
// @Param start query string false "RFC3339 start time"
// @Param end query string false "RFC3339 end time"
// @Param limit query int false "Max rows (default 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} audit.AuditLog
// @Failure 400 {object} response.ErrorResponse
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err == nil {
		params.UserID = &uid
	}
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	for key, dst := range map[string]**time.Time{"start": &params.StartTime, "end": &params.EndTime} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: key + " must be RFC3339"})
			return
		}
		*dst = &t
	}
	params.Limit = utils.QueryInt(c, "limit", 100)
	params.Offset = utils.QueryInt(c, "offset", 0)

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
