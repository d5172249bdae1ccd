package models

import (
	"encoding/json"
	"time"
)

type Question struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	QuizID              uint      `json:"quiz_id" gorm:"not null"`
	Text                string    `json:"question_text" gorm:"not null"`
	Options             string    `json:"-" gorm:"not null"` // JSON-encoded []string
	CorrectAnswer       string    `json:"-" gorm:"not null"`
	SolutionExplanation string    `json:"-" gorm:"not null"`
	MetadataTags        string    `json:"metadata_tags"`
	Position            int       `json:"position" gorm:"not null"`
	CreatedAt           time.Time `json:"created_at"`

	// Relationships
	Quiz Quiz `json:"quiz,omitempty"`
}

// SetOptions stores the option list in its serialized column form.
func (q *Question) SetOptions(options []string) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	q.Options = string(data)
	return nil
}

// OptionList decodes the stored options back into their ordered list form.
func (q *Question) OptionList() ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
		return nil, err
	}
	return options, nil
}
