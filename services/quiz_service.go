package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"solvenow/models"
	"solvenow/services/extractor"
	"solvenow/services/generator"

	"gorm.io/gorm"
)

const (
	defaultTitle       = "Untitled Quiz"
	defaultDifficulty  = "BSc Undergraduate"
	defaultQuestions   = 5
	optionsPerQuestion = 4
)

type QuizService struct {
	db        *gorm.DB
	generator generator.Generator
	extractor extractor.Extractor
	uploadDir string
	timeout   time.Duration
}

func NewQuizService(db *gorm.DB, gen generator.Generator, ext extractor.Extractor, uploadDir string, genTimeout time.Duration) *QuizService {
	return &QuizService{
		db:        db,
		generator: gen,
		extractor: ext,
		uploadDir: uploadDir,
		timeout:   genTimeout,
	}
}

type GenerateQuizRequest struct {
	Filename     string `json:"filename"`
	TextContent  string `json:"textContent"`
	Title        string `json:"title"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions" binding:"omitempty,min=1,max=25"`
}

// QuestionView is the presentation-safe question shape: options decoded to a
// list, answer key and explanation absent.
type QuestionView struct {
	ID           uint     `json:"question_id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	MetadataTags string   `json:"metadata_tags"`
	Position     int      `json:"position"`
}

type QuizView struct {
	Meta      models.Quiz    `json:"meta"`
	Questions []QuestionView `json:"questions"`
}

// CreateQuiz runs the full lifecycle: resolve the source text, call the
// generator, validate its output, and persist the quiz with all of its
// questions in one transaction. A quiz is never observable with fewer
// questions than were generated.
func (s *QuizService) CreateQuiz(ctx context.Context, userID uint, req *GenerateQuizRequest) (*models.Quiz, int, error) {
	source, err := s.resolveSource(req)
	if err != nil {
		return nil, 0, err
	}

	title := req.Title
	if title == "" {
		title = defaultTitle
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}
	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = defaultQuestions
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	questions, err := s.generator.Generate(genCtx, source, numQuestions, difficulty)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if err := validateQuestions(questions); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	// Topic detected by the first question, or "General".
	topic := questions[0].Topic
	if topic == "" {
		topic = "General"
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	quiz := models.Quiz{
		UserID:     userID,
		Title:      title,
		Topic:      topic,
		Difficulty: difficulty,
	}
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	for i, gq := range questions {
		question := models.Question{
			QuizID:              quiz.ID,
			Text:                gq.Text,
			CorrectAnswer:       gq.CorrectAnswer,
			SolutionExplanation: gq.Solution,
			MetadataTags:        gq.Topic,
			Position:            i,
		}
		if err := question.SetOptions(gq.Options); err != nil {
			tx.Rollback()
			return nil, 0, err
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, 0, err
	}

	return &quiz, len(questions), nil
}

func (s *QuizService) resolveSource(req *GenerateQuizRequest) (string, error) {
	if req.TextContent != "" {
		return req.TextContent, nil
	}
	if req.Filename == "" {
		return "", ErrSourceNotFound
	}

	// Base strips any directory components a client might smuggle in.
	path := filepath.Join(s.uploadDir, filepath.Base(req.Filename))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, req.Filename)
	}

	result, err := s.extractor.Extract(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	if strings.TrimSpace(result.Text) == "" {
		return "", fmt.Errorf("%w: document contains no extractable text", ErrSourceNotFound)
	}
	return result.Text, nil
}

func validateQuestions(questions []generator.Question) error {
	if len(questions) == 0 {
		return errors.New("generator returned zero questions")
	}
	for i, q := range questions {
		if len(q.Options) != optionsPerQuestion {
			return fmt.Errorf("question %d has %d options, want %d", i, len(q.Options), optionsPerQuestion)
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %d: correct answer is not among the options", i)
		}
	}
	return nil
}

// GetQuiz fetches a quiz owned by userID with its questions in position
// order, shaped for presentation (no answer keys).
func (s *QuizService) GetQuiz(quizID uint, userID uint) (*QuizView, error) {
	var quiz models.Quiz
	err := s.db.Where("id = ? AND user_id = ?", quizID, userID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position")
		}).
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	view := QuizView{Questions: make([]QuestionView, 0, len(quiz.Questions))}
	for _, q := range quiz.Questions {
		options, err := q.OptionList()
		if err != nil {
			return nil, fmt.Errorf("question %d has corrupt options: %w", q.ID, err)
		}
		view.Questions = append(view.Questions, QuestionView{
			ID:           q.ID,
			QuestionText: q.Text,
			Options:      options,
			MetadataTags: q.MetadataTags,
			Position:     q.Position,
		})
	}
	quiz.Questions = nil
	view.Meta = quiz
	return &view, nil
}
