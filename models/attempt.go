package models

import (
	"time"
)

type Attempt struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"not null"`
	QuizID           uint      `json:"quiz_id" gorm:"not null"`
	Score            int       `json:"score" gorm:"not null"`
	TotalQuestions   int       `json:"total_questions" gorm:"not null"`
	TimeSpentSeconds int       `json:"time_spent_seconds" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`

	// Relationships
	User User `json:"user,omitempty"`
	Quiz Quiz `json:"quiz,omitempty"`
}
