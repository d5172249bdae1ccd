package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"solvenow/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService  *services.QuizService
	gradeService *services.GradeService
}

func NewQuizHandler(quizService *services.QuizService, gradeService *services.GradeService) *QuizHandler {
	return &QuizHandler{
		quizService:  quizService,
		gradeService: gradeService,
	}
}

func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Filename == "" && req.TextContent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing filename or text content."})
		return
	}

	quiz, count, err := h.quizService.CreateQuiz(c.Request.Context(), userID.(uint), &req)
	if errors.Is(err, services.ErrSourceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "PDF file not found on server."})
		return
	}
	if errors.Is(err, services.ErrGenerationFailed) {
		log.Printf("Quiz generation failed for user %v: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate quiz."})
		return
	}
	if err != nil {
		log.Printf("Quiz creation error for user %v: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quiz."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Quiz generated successfully",
		"quizId":  quiz.ID,
		"count":   count,
	})
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	view, err := h.quizService.GetQuiz(uint(quizID), userID.(uint))
	if errors.Is(err, services.ErrQuizNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	if err != nil {
		log.Printf("Fetch quiz error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gradeService.SubmitQuiz(userID.(uint), &req)
	if errors.Is(err, services.ErrQuizNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	if errors.Is(err, services.ErrAnswerCountMismatch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "More answers than questions."})
		return
	}
	if err != nil {
		log.Printf("Grading error for user %v: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grade quiz."})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QuizHandler) GetAttempts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	attempts, err := h.gradeService.ListAttempts(userID.(uint))
	if err != nil {
		log.Printf("Fetch attempts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}
