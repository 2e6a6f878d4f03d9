package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	handlers "mvp_launchpad/internal/api"
)

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(h *handlers.APIHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Add structured logger middleware
	router.Use(gin.Recovery()) // Add panic recovery middleware

	if len(allowedOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = allowedOrigins
		config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
		router.Use(cors.New(config))
	}

	RegisterRoutes(router, h)
	return router
}

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *handlers.APIHandler) {

	// --- Generation ---
	mvpGroup := router.Group("/mvp")
	{
		mvpGroup.POST("/generate", h.Generate) // Plan + landing page for one idea
		mvpGroup.GET("/status", h.Status)      // Idle / generating / error / limit-reached view
	}

	// --- History ---
	historyGroup := router.Group("/history")
	{
		historyGroup.GET("", h.ListHistory)
		historyGroup.DELETE("", h.ClearHistory)
		historyGroup.GET("/latest", h.LatestHistory)
		historyGroup.GET("/:id", h.GetHistory)
		historyGroup.GET("/:id/markdown", h.HistoryMarkdown)
		historyGroup.GET("/:id/preview", h.HistoryPreview)
	}

	router.GET("/usage", h.Usage)

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
