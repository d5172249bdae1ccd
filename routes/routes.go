package routes

import (
	"net/http"

	"solvenow/handlers"
	"solvenow/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	uploadHandler *handlers.UploadHandler,
	quizHandler *handlers.QuizHandler,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.Auth(jwtSecret))
		{
			protected.POST("/upload", uploadHandler.ProcessPDF)

			quiz := protected.Group("/quiz")
			{
				quiz.POST("/generate", quizHandler.GenerateQuiz)
				quiz.POST("/submit", quizHandler.SubmitQuiz)
				quiz.GET("/attempts", quizHandler.GetAttempts)
				quiz.GET("/:id", quizHandler.GetQuiz)
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
