package handlers

import (
	"net/http"

	"diary_gateway/internal/models"

	"github.com/gin-gonic/gin"
)

const errInvalidDiaryBody = "invalid request body; expected {\"content\": \"...\"}"

// @Summary      Read diary
// @Description  Relays the backend diary view of the logged-in user. Failures are reported as {"status":"error","message":...} with HTTP 200.
// @Tags         diary
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, blockchainInfo, diaryInfo, refresh"
// @Failure      302  "no session, redirected to /login"
// @Router       /loginin [get]
func (h *Handler) getDiary(c *gin.Context) {
	username := sessionUsername(c)
	env, err := h.services.Read(c.Request.Context(), username)
	if err != nil {
		h.logBackendFailure(c, "diary_read", err)
	}
	c.JSON(http.StatusOK, env)
}

// @Summary      Write diary entry
// @Description  Appends an entry through the backend and returns the refreshed diary view, also when the write itself failed. Write and re-read are two separate backend calls.
// @Tags         diary
// @Accept       json
// @Produce      json
// @Param        input  body  models.DiaryEntry  true  "entry"
// @Success      200  {object}  map[string]interface{}  "status, blockchainInfo, diaryInfo, refresh"
// @Failure      400  {object}  models.Envelope
// @Failure      302  "no session, redirected to /login"
// @Router       /loginin [post]
func (h *Handler) writeDiary(c *gin.Context) {
	username := sessionUsername(c)

	var entry models.DiaryEntry
	if err := c.ShouldBind(&entry); err != nil {
		if h.log != nil {
			h.log.Infow("diary_bad_request_body", "username", username, "err", err)
		}
		c.JSON(http.StatusBadRequest, models.ErrorEnvelope(errInvalidDiaryBody))
		return
	}

	env, err := h.services.Write(c.Request.Context(), username, entry)
	meta := map[string]any{"content_length": len(entry.Content)}
	if err != nil {
		h.logBackendFailure(c, "diary_write", err)
		h.record(c, username, models.ActivityDiaryWriteFailed, "diary write failed", meta)
	} else {
		h.record(c, username, models.ActivityDiaryWrite, "diary entry written", meta)
	}
	c.JSON(http.StatusOK, env)
}
