package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	indexTemplate    = "index.html"
	loginTemplate    = "login.html"
	registerTemplate = "register.html"
	errorTemplate    = "error.html"

	statusOK = "ok"
)

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Home page
// @Description  Renders the diary page; login state comes from the session cookie only.
// @Tags         pages
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) home(c *gin.Context) {
	data := gin.H{"loggedIn": false}
	if username, ok := h.sessions.Username(c.Request); ok {
		data["loggedIn"] = true
		data["currentUser"] = gin.H{"Username": username}
	}
	c.HTML(http.StatusOK, indexTemplate, data)
}

// @Summary      Error page
// @Tags         pages
// @Produce      html
// @Success      200
// @Router       /error [get]
func (h *Handler) errorPage(c *gin.Context) {
	c.HTML(http.StatusOK, errorTemplate, gin.H{})
}

// renderForm renders the login or register page with a message.
func (h *Handler) renderForm(c *gin.Context, code int, tmpl, message string) {
	c.HTML(code, tmpl, gin.H{"message": message})
}

func formTemplate(route string) string {
	if route == "/register" {
		return registerTemplate
	}
	return loginTemplate
}
