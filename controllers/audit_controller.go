package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/utils"
)

type AuditLister interface {
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type AuditController struct {
	Logs AuditLister
}

func NewAuditController(logs AuditLister) *AuditController {
	return &AuditController{Logs: logs}
}

const defaultAuditLimit = 100

// GetAuditLogs (GET /api/audit-logs?limit=)
func (ctrl *AuditController) GetAuditLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultAuditLimit
	}
	logs, err := ctrl.Logs.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}
