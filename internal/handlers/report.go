package handlers

import (
	"errors"

	"diary_gateway/internal/backend"
	"diary_gateway/internal/models"
	"diary_gateway/internal/service"

	"github.com/gin-gonic/gin"
)

// Failure categories used in logs.
const (
	categoryUnreachable = "unreachable"
	categoryBadStatus   = "bad_status"
	categoryRejected    = "rejected"
	categoryOther       = "other"
)

// logBackendFailure logs a failed backend-bound operation with its category.
// Unreachable backends are errors; the rest is expected traffic.
func (h *Handler) logBackendFailure(c *gin.Context, op string, err error) {
	if h.log == nil || err == nil {
		return
	}
	rid := c.GetString(ctxRequestIDKey)

	var (
		statusErr *backend.StatusError
		rejected  *service.RejectedError
	)
	switch {
	case errors.As(err, &statusErr):
		h.log.Warnw("backend_bad_status", "op", op, "category", categoryBadStatus,
			"endpoint", statusErr.Endpoint, "status_code", statusErr.Code, "request_id", rid)
	case errors.Is(err, backend.ErrUnreachable):
		h.log.Errorw("backend_unreachable", "op", op, "category", categoryUnreachable,
			"err", err, "request_id", rid)
	case errors.As(err, &rejected):
		h.log.Infow("backend_rejected", "op", op, "category", categoryRejected,
			"message", rejected.Message, "request_id", rid)
	default:
		h.log.Errorw("backend_call_failed", "op", op, "category", categoryOther,
			"err", err, "request_id", rid)
	}
}

// record appends to the activity log. Failures are logged and otherwise ignored.
func (h *Handler) record(c *gin.Context, username, typ, description string, meta any) {
	if h.services == nil || h.services.ActivityLog == nil {
		return
	}
	a := models.Activity{
		Username:    username,
		Type:        typ,
		Description: description,
		RequestID:   c.GetString(ctxRequestIDKey),
		Metadata:    meta,
	}
	if err := h.services.Record(c.Request.Context(), a); err != nil && h.log != nil {
		h.log.Warnw("activity_record_failed", "type", typ, "username", username, "err", err)
	}
}
