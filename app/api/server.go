package api

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Rendered pages
	r.GET("/", handler.Home)
	r.GET("/datasources", handler.ShowDataSources)
	r.GET("/savedsearches", handler.ShowSavedSearches)

	// Import and listing
	r.POST("/search", handler.Search)
	r.GET("/resources", handler.ListResources)
	r.POST("/resources/save", handler.SaveFetched)

	// Data source and saved search management
	r.POST("/datasources", handler.CreateDataSource)
	r.POST("/savedsearches", handler.CreateSavedSearch)
	r.POST("/savedsearches/:id/edit", handler.EditSavedSearch)
	r.POST("/savedsearches/:id/delete", handler.DeleteSavedSearch)
	r.POST("/savedsearches/:id/run", handler.RunSavedSearch)

	// JSON API
	api := r.Group("/api")
	{
		api.GET("/savedsearches", handler.APIListSavedSearches)
		api.POST("/resources_for_searches", handler.APIResourcesForSearches)
		api.POST("/resources/:id/status/:status", handler.UpdateStatus)
		api.POST("/resources/:id/notes", handler.UpdateNotes)
	}

	// Health and liveness endpoints
	r.GET("/health", handler.GetHealth)
	r.GET("/test", handler.Test)

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
