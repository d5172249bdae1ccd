package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"solvenow/models"
	"solvenow/services/extractor"
	"solvenow/services/generator"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call gets its own named memory database so tests stay isolated while
// gorm's connection pool still sees a single shared store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Quiz{}, &models.Question{}, &models.Attempt{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Username:     "student",
		Email:        email,
		PasswordHash: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// seedQuiz stores a quiz whose questions all offer options A-D, with the
// given correct answers in position order.
func seedQuiz(t *testing.T, db *gorm.DB, userID uint, correctAnswers []string) *models.Quiz {
	t.Helper()

	quiz := models.Quiz{
		UserID:     userID,
		Title:      "Seeded Quiz",
		Topic:      "General",
		Difficulty: "BSc Undergraduate",
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to create test quiz: %v", err)
	}

	for i, answer := range correctAnswers {
		question := models.Question{
			QuizID:              quiz.ID,
			Text:                fmt.Sprintf("Question %d", i+1),
			CorrectAnswer:       answer,
			SolutionExplanation: fmt.Sprintf("The answer is %s.", answer),
			MetadataTags:        "General",
			Position:            i,
		}
		if err := question.SetOptions([]string{"A", "B", "C", "D"}); err != nil {
			t.Fatalf("failed to encode options: %v", err)
		}
		if err := db.Create(&question).Error; err != nil {
			t.Fatalf("failed to create test question: %v", err)
		}
	}
	return &quiz
}

type fakeGenerator struct {
	questions []generator.Question
	err       error

	// captured arguments of the last Generate call
	gotSource     string
	gotCount      int
	gotDifficulty string
}

func (f *fakeGenerator) Generate(_ context.Context, sourceText string, numQuestions int, difficulty string) ([]generator.Question, error) {
	f.gotSource = sourceText
	f.gotCount = numQuestions
	f.gotDifficulty = difficulty
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type fakeExtractor struct {
	result *extractor.Result
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(string) (*extractor.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func generatedQuestion(text, correct, topic string) generator.Question {
	return generator.Question{
		Text:          text,
		Options:       []string{"A", correct, "C", "D"},
		CorrectAnswer: correct,
		Solution:      "Explained.",
		Topic:         topic,
	}
}

func strPtr(s string) *string {
	return &s
}
