package models

import (
	"time"
)

type Quiz struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	Title      string    `json:"title" gorm:"not null"`
	Topic      string    `json:"topic" gorm:"not null;default:'General'"`
	Difficulty string    `json:"difficulty" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	User      User       `json:"user,omitempty"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}
