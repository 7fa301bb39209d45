package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminDirectory lists administrator email addresses.
type AdminDirectory interface {
	ListAdminEmails(ctx context.Context) ([]string, error)
}

// DigestRunner runs one digest pass synchronously.
type DigestRunner interface {
	Run(ctx context.Context) error
}

// NoticeRelay stores and pops one-time admin banners.
type NoticeRelay interface {
	Set(ctx context.Context, userID int64, message string)
	Pop(ctx context.Context, userID int64) (string, error)
}

// AdminHandler serves the notifier's admin surfaces: the administrator
// email listing, the manual digest trigger, and the one-time notice relay.
type AdminHandler struct {
	admins  AdminDirectory
	digest  DigestRunner
	notices NoticeRelay
	logger  *zap.Logger
}

func NewAdminHandler(admins AdminDirectory, digest DigestRunner, notices NoticeRelay, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admins:  admins,
		digest:  digest,
		notices: notices,
		logger:  logger,
	}
}

// GetAdministrators returns every administrator email address.
// GET /api/v1/administrators
func (h *AdminHandler) GetAdministrators(c *gin.Context) {
	emails, err := h.admins.ListAdminEmails(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list administrator emails", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to list administrators",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"emails":  emails,
		"total":   len(emails),
	})
}

// TriggerDigest runs the daily digest synchronously and leaves a one-time
// confirmation for the caller.
// POST /api/v1/digest/run
func (h *AdminHandler) TriggerDigest(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.digest.Run(c.Request.Context()); err != nil {
		h.logger.Error("Manual digest run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "digest run failed",
		})
		return
	}

	h.notices.Set(c.Request.Context(), userID,
		"Status-based daily summary has been triggered manually! Check your email inbox.")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "triggered",
	})
}

// GetNotice returns and clears the caller's pending one-time notice.
// GET /api/v1/notices
func (h *AdminHandler) GetNotice(c *gin.Context) {
	userID := c.GetInt64("user_id")

	notice, err := h.notices.Pop(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to read admin notice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to read notice",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"notice":  notice,
	})
}
