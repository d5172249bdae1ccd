package generator

import (
	"context"
)

// Question is one generated multiple-choice question. CorrectAnswer must be
// an exact, byte-for-byte copy of one of the four options.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Solution      string   `json:"solution"`
	Topic         string   `json:"topic"`
}

// Generator produces quiz questions from extracted source text.
type Generator interface {
	Generate(ctx context.Context, sourceText string, numQuestions int, difficulty string) ([]Question, error)
}
