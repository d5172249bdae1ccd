package main

import (
	"log"
	"os"
	"time"

	"solvenow/config"
	"solvenow/handlers"
	"solvenow/middleware"
	"solvenow/models"
	"solvenow/routes"
	"solvenow/services"
	"solvenow/services/extractor"
	"solvenow/services/generator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Attempt{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Upload directory for PDFs
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	// External capabilities
	questionGen := generator.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel)
	pdfExtractor := extractor.NewPDF()

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	quizService := services.NewQuizService(db, questionGen, pdfExtractor, cfg.UploadDir,
		time.Duration(cfg.GenTimeoutS)*time.Second)
	gradeService := services.NewGradeService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	uploadHandler := handlers.NewUploadHandler(pdfExtractor, cfg.UploadDir, cfg.MaxUploadMB)
	quizHandler := handlers.NewQuizHandler(quizService, gradeService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, uploadHandler, quizHandler, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
