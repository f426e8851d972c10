package handlers

import (
	"net/http"

	"diary_gateway/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Validate blockchain
// @Description  Relays the backend integrity verdict ("success" or "warning"). An unreachable backend yields {"status":"error","message":"cannot connect to backend service"}.
// @Tags         ledger
// @Produce      json
// @Success      200  {object}  models.Envelope
// @Router       /validate [get]
func (h *Handler) validate(c *gin.Context) {
	env, _ := h.checkLedger(c)
	c.JSON(http.StatusOK, env)
}

// checkLedger runs the integrity check and records the outcome for a
// logged-in caller. The envelope is always usable.
func (h *Handler) checkLedger(c *gin.Context) (models.Envelope, error) {
	env, err := h.services.Validate(c.Request.Context())
	if err != nil {
		h.logBackendFailure(c, "validate", err)
	}

	username, ok := h.sessions.Username(c.Request)
	if !ok {
		return env, err
	}
	if err != nil {
		h.record(c, username, models.ActivityValidateFailed, env.Message, nil)
	} else {
		h.record(c, username, models.ActivityValidate, "blockchain "+env.Status, nil)
	}
	return env, err
}
