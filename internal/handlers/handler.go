package handlers

import (
	"html/template"

	_ "diary_gateway/docs"
	"diary_gateway/internal/logger"
	"diary_gateway/internal/metrics"
	"diary_gateway/internal/service"
	"diary_gateway/internal/session"
	"diary_gateway/web"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tune optional behaviour of the HTTP layer.
type Options struct {
	// LoginRate limits POST /login and /register per client IP; 0 disables it.
	LoginRate  rate.Limit
	LoginBurst int
	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Empty trusts no one,
	// so limits key on the peer address.
	TrustedProxies []string
	// StaticDir serves /static from disk instead of the embedded assets.
	StaticDir string
}

// Handler wires the HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	log      *logger.Logger
	limiter  *ipRateLimiter
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger, opts Options) *Handler {
	h := &Handler{services: services, sessions: sessions, log: log, opts: opts}
	if opts.LoginRate > 0 {
		h.limiter = newIPRateLimiter(opts.LoginRate, opts.LoginBurst)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(h.opts.TrustedProxies); err != nil {
		if h.log != nil {
			h.log.Errorw("invalid_trusted_proxies", "proxies", h.opts.TrustedProxies, "err", err)
		}
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(gin.Recovery(), h.requestIDMiddleware, metrics.Middleware())
	router.SetHTMLTemplate(template.Must(web.Templates()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if h.opts.StaticDir != "" {
		router.Static("/static", h.opts.StaticDir)
	} else {
		router.StaticFS("/static", web.Static())
	}

	h.registerPageRoutes(router)
	h.registerAuthRoutes(router)
	h.registerDiaryRoutes(router)
	h.registerLedgerRoutes(router)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/error", h.errorPage)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/login", h.loginPage)
	r.POST("/login", h.throttle, h.login)
	r.GET("/register", h.registerPage)
	r.POST("/register", h.throttle, h.register)
	r.POST("/logout", h.logout)
}

func (h *Handler) registerDiaryRoutes(r *gin.Engine) {
	authed := r.Group("/", h.sessionMiddleware)
	{
		authed.GET("/loginin", h.getDiary)
		authed.POST("/loginin", h.writeDiary)
		authed.GET("/activity", h.listActivity)
	}
}

func (h *Handler) registerLedgerRoutes(r *gin.Engine) {
	r.GET("/validate", h.validate)
	r.GET("/ws/validate", h.wsValidate)
}
