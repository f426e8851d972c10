package handlers

import (
	"net/http"

	"diary_gateway/internal/backend"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUsernameKey  = "username"
	ctxRequestIDKey = "requestId"

	requestIDHeader   = "X-Request-ID"
	maxRequestIDBytes = 128
)

// sessionMiddleware lets only requests with a valid session cookie through.
// Anonymous requests are redirected to the login page and never reach the backend.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	username, ok := h.sessions.Username(c.Request)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Set(ctxUsernameKey, username)
	c.Next()
}

// requestIDMiddleware keeps an inbound X-Request-ID or assigns a new one, and
// makes it available to backend calls.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" || len(id) > maxRequestIDBytes {
		id = uuid.NewString()
	}
	c.Set(ctxRequestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Request = c.Request.WithContext(backend.WithRequestID(c.Request.Context(), id))
	c.Next()
}

// throttle applies the per-IP limiter to credential-forwarding routes.
func (h *Handler) throttle(c *gin.Context) {
	if h.limiter == nil || h.limiter.allow(c.ClientIP()) {
		c.Next()
		return
	}
	if h.log != nil {
		h.log.Warnw("rate_limit_exceeded", "ip", c.ClientIP(), "path", c.FullPath(), "request_id", c.GetString(ctxRequestIDKey))
	}
	h.renderForm(c, http.StatusTooManyRequests, formTemplate(c.FullPath()), msgTooManyAttempts)
	c.Abort()
}

func sessionUsername(c *gin.Context) string {
	return c.GetString(ctxUsernameKey)
}
