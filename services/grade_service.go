package services

import (
	"errors"
	"math"

	"solvenow/models"

	"gorm.io/gorm"
)

type GradeService struct {
	db *gorm.DB
}

func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{db: db}
}

type SubmitQuizRequest struct {
	QuizID      uint      `json:"quizId" binding:"required"`
	UserAnswers []*string `json:"userAnswers"`
	TimeSpent   int       `json:"timeSpent" binding:"omitempty,min=0"`
}

// AnswerDetail reports one question's outcome. UserAnswer is null when the
// question was skipped. The explanation is always present so correct answers
// can be reviewed too.
type AnswerDetail struct {
	QuestionID    uint    `json:"question_id"`
	IsCorrect     bool    `json:"isCorrect"`
	UserAnswer    *string `json:"userAnswer"`
	CorrectAnswer string  `json:"correctAnswer"`
	Explanation   string  `json:"explanation"`
}

type GradeResult struct {
	Score      int            `json:"score"`
	Total      int            `json:"total"`
	Percentage int            `json:"percentage"`
	Details    []AnswerDetail `json:"details"`
}

// SubmitQuiz scores a submission against the stored answer key and records
// the attempt. Answers correspond positionally to questions in position
// order, the same order GetQuiz presents them. Comparison is exact string
// equality: no case, whitespace, or LaTeX normalization. A submission with
// fewer answers than questions treats the missing tail as unanswered; more
// answers than questions is rejected. The read and the attempt insert share
// one transaction, so a scored submission is never lost before its attempt
// row exists.
func (s *GradeService) SubmitQuiz(userID uint, req *SubmitQuizRequest) (*GradeResult, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var quiz models.Quiz
	err := tx.Where("id = ? AND user_id = ?", req.QuizID, userID).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, ErrQuizNotFound
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	var questions []models.Question
	if err := tx.Where("quiz_id = ?", req.QuizID).Order("position").Find(&questions).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if len(questions) == 0 {
		tx.Rollback()
		return nil, ErrQuizNotFound
	}
	if len(req.UserAnswers) > len(questions) {
		tx.Rollback()
		return nil, ErrAnswerCountMismatch
	}

	score := 0
	details := make([]AnswerDetail, 0, len(questions))
	for i, q := range questions {
		var answer *string
		if i < len(req.UserAnswers) {
			answer = req.UserAnswers[i]
		}

		isCorrect := answer != nil && *answer == q.CorrectAnswer
		if isCorrect {
			score++
		}
		details = append(details, AnswerDetail{
			QuestionID:    q.ID,
			IsCorrect:     isCorrect,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.SolutionExplanation,
		})
	}

	attempt := models.Attempt{
		UserID:           userID,
		QuizID:           req.QuizID,
		Score:            score,
		TotalQuestions:   len(questions),
		TimeSpentSeconds: req.TimeSpent,
	}
	if err := tx.Create(&attempt).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &GradeResult{
		Score:      score,
		Total:      len(questions),
		Percentage: scorePercentage(score, len(questions)),
		Details:    details,
	}, nil
}

// scorePercentage rounds half away from zero, so 12.5% reports as 13.
func scorePercentage(score, total int) int {
	return int(math.Round(float64(score) / float64(total) * 100))
}

// ListAttempts returns the user's attempt history, newest first.
func (s *GradeService) ListAttempts(userID uint) ([]models.Attempt, error) {
	var attempts []models.Attempt
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}
