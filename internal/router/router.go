package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/handler"
	"github.com/quizforge/quizforge-backend/internal/middleware"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Generator  *handler.GeneratorHandler
	Generation *handler.GenerationHandler
	Question   *handler.QuestionHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(tokens *service.TokenService, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Operator API (token required) ─────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireOperator(tokens))
	{
		api.POST("/generators", handlers.Generator.CreateGenerator)
		api.GET("/generators", handlers.Generator.ListGenerators)
		api.GET("/generators/:id", handlers.Generator.GetGenerator)
		api.PUT("/generators/:id", handlers.Generator.UpdateGenerator)
		api.DELETE("/generators/:id", handlers.Generator.DeleteGenerator)
		api.POST("/generators/:id/generate", handlers.Generation.Generate)

		api.GET("/batches/:batch_id", handlers.Generation.GetBatch)
		api.POST("/batches/:batch_id/commit", handlers.Generation.CommitBatch)

		api.GET("/courses/:course_id/documents", handlers.Generation.ListDocuments)
		api.GET("/courses/:course_id/questions", handlers.Question.ListCourseQuestions)
		api.GET("/questions/:id", handlers.Question.GetQuestion)
	}

	return router
}
