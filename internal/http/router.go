package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/julenag/bot/internal/config"
	h "github.com/julenag/bot/internal/http/handlers"
	"github.com/julenag/bot/internal/http/middleware"
	"github.com/julenag/bot/internal/services"
)

// NewRouter builds the producer-facing API: health probes plus the
// authenticated notification ingest endpoints.
func NewRouter(env intconfig.Env, db *sql.DB, notifications services.NotificationService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	sys := h.SystemHandler{DB: db}
	notif := h.NotificationHandler{Service: notifications}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", sys.DBCheck)

		protected := api.Group("/notifications", middleware.Auth(env.APIJWTSecret))
		protected.POST("", notif.Create)
		protected.GET("/pending", notif.Pending)
	}

	return r
}
