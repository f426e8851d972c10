package handlers

import (
	"context"
	"errors"
	"net/http"

	"diary_gateway/internal/models"
	"diary_gateway/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingCredentials = "username and password are required"
	msgLoginFailed        = "login failed"
	msgRegisterFailed     = "registration failed"
	msgBackendUnavailable = "backend service unavailable, please try again later"
	msgTooManyAttempts    = "too many attempts, please wait a moment"
	msgSessionFailed      = "could not start a session"
)

// @Summary      Login page
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *Handler) loginPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, loginTemplate, "")
}

// @Summary      Log in
// @Description  Forwards credentials to the backend. On success sets the session cookie and redirects to "/"; otherwise re-renders the form with a message.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      html
// @Param        input  body  models.Credentials  true  "credentials"
// @Success      302
// @Failure      400
// @Failure      429
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	h.authenticate(c, loginTemplate, msgLoginFailed,
		h.services.Login, models.ActivityLogin, models.ActivityLoginFailed)
}

// @Summary      Registration page
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /register [get]
func (h *Handler) registerPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, registerTemplate, "")
}

// @Summary      Register
// @Description  Creates the account on the backend and logs the user in on success.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      html
// @Param        input  body  models.Credentials  true  "credentials"
// @Success      302
// @Failure      400
// @Failure      429
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	h.authenticate(c, registerTemplate, msgRegisterFailed,
		h.services.Register, models.ActivityRegister, models.ActivityRegisterFailed)
}

type credentialCheck func(ctx context.Context, creds models.Credentials) error

// authenticate is the shared login/register flow: bind, forward, and either
// establish the session or re-render the form.
func (h *Handler) authenticate(c *gin.Context, tmpl, fallback string, check credentialCheck, okType, failType string) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "path", c.FullPath(), "err", err)
		}
		h.renderForm(c, http.StatusBadRequest, tmpl, msgMissingCredentials)
		return
	}

	if err := check(c.Request.Context(), creds); err != nil {
		h.logBackendFailure(c, c.FullPath(), err)
		msg := authFailureMessage(err, fallback)
		h.record(c, creds.Username, failType, msg, nil)
		h.renderForm(c, http.StatusOK, tmpl, msg)
		return
	}

	if err := h.sessions.Establish(c.Writer, creds.Username); err != nil {
		h.logAndRenderError(c, tmpl, msgSessionFailed, "session_issue_failed", err, "username", creds.Username)
		return
	}
	h.record(c, creds.Username, okType, c.FullPath()+" succeeded", nil)
	c.Redirect(http.StatusFound, "/")
}

// @Summary      Log out
// @Description  Clears the session cookie and redirects to "/".
// @Tags         auth
// @Success      302
// @Router       /logout [post]
func (h *Handler) logout(c *gin.Context) {
	if username, ok := h.sessions.Username(c.Request); ok {
		h.record(c, username, models.ActivityLogout, "logout", nil)
	}
	h.sessions.Clear(c.Writer)
	c.Redirect(http.StatusFound, "/")
}

// authFailureMessage picks what the user sees after a failed login or registration.
func authFailureMessage(err error, fallback string) string {
	var rejected *service.RejectedError
	switch {
	case errors.As(err, &rejected):
		if rejected.Message != "" {
			return rejected.Message
		}
		return fallback
	case errors.Is(err, service.ErrBackendUnavailable):
		return msgBackendUnavailable
	default:
		return fallback
	}
}

func (h *Handler) logAndRenderError(c *gin.Context, tmpl, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.renderForm(c, http.StatusInternalServerError, tmpl, userMsg)
}
