package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-admin/models"
)

type AuditRecorder interface {
	Record(ctx context.Context, entry *models.AuditLog) error
}

// Audit stores one entry per mutating request after the handler ran. A failed
// write is logged and never affects the response.
func Audit(rec AuditRecorder, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		entry := &models.AuditLog{
			Method:   c.Request.Method,
			Path:     c.Request.URL.Path,
			Status:   c.Writer.Status(),
			ClientIP: c.ClientIP(),
		}
		if id, ok := UserID(c); ok {
			entry.UserID = &id
		}

		if err := rec.Record(context.WithoutCancel(c.Request.Context()), entry); err != nil && log != nil {
			log.WithError(err).WithField("path", entry.Path).Warn("audit write failed")
		}
	}
}
