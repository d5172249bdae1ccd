package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a strict university examiner. " +
	"You generate high-quality multiple choice quizzes from lecture material and respond with JSON only."

// OpenAIGenerator generates questions through the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a generator backed by the OpenAI API. An empty model
// selects GPT-4o mini.
func NewOpenAI(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, sourceText string, numQuestions int, difficulty string) ([]Question, error) {
	log.Printf("Generating %d %s questions (%d chars of source)", numQuestions, difficulty, len(sourceText))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.4,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(sourceText, numQuestions, difficulty),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion response")
	}

	questions, err := ParseQuestions(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	log.Printf("Model returned %d questions", len(questions))
	return questions, nil
}

func buildPrompt(sourceText string, numQuestions int, difficulty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `TASK:
Analyze the lecture material below. Generate a %s level quiz with %d multiple-choice questions based strictly on the material.

REQUIREMENTS:
1. Detect the specific subject of the material (e.g. "Linear Algebra", "Cell Biology").
2. Each question has exactly 4 options and exactly one correct answer.
3. "correct_answer" must be an exact copy of one of the options.
4. Use LaTeX for any equations (e.g. $\int$).
5. Output a JSON object of the form:
{"questions": [{"question": "...", "options": ["A", "B", "C", "D"], "correct_answer": "...", "solution": "...", "topic": "..."}]}

MATERIAL:
`, difficulty, numQuestions)
	b.WriteString(sourceText)
	return b.String()
}

// ParseQuestions decodes a model response into questions. It accepts either
// the requested {"questions": [...]} object or a bare array, with or without
// a ```json fence, and rejects structurally unusable output.
func ParseQuestions(content string) ([]Question, error) {
	content = stripFence(strings.TrimSpace(content))

	var wrapper struct {
		Questions []Question `json:"questions"`
	}
	var questions []Question
	if err := json.Unmarshal([]byte(content), &wrapper); err == nil && len(wrapper.Questions) > 0 {
		questions = wrapper.Questions
	} else if err := json.Unmarshal([]byte(content), &questions); err != nil {
		return nil, fmt.Errorf("model output is not a question list: %w", err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned zero questions")
	}
	for i, q := range questions {
		if q.Text == "" || q.CorrectAnswer == "" || len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d is missing required fields", i)
		}
	}
	return questions, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
