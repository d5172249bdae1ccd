package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Quizzes  []Quiz    `json:"quizzes,omitempty" gorm:"foreignKey:UserID"`
	Attempts []Attempt `json:"attempts,omitempty" gorm:"foreignKey:UserID"`
}
