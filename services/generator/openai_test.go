package generator

import (
	"testing"
)

const validBody = `{"questions": [{"question": "What is $2+2$?", "options": ["1", "2", "3", "4"], "correct_answer": "4", "solution": "Basic addition.", "topic": "Arithmetic"}]}`

func TestParseQuestionsObjectForm(t *testing.T) {
	questions, err := ParseQuestions(validBody)
	if err != nil {
		t.Fatalf("ParseQuestions returned error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	q := questions[0]
	if q.Text != "What is $2+2$?" || q.CorrectAnswer != "4" || q.Topic != "Arithmetic" {
		t.Errorf("parsed question = %+v", q)
	}
	if len(q.Options) != 4 {
		t.Errorf("got %d options, want 4", len(q.Options))
	}
}

func TestParseQuestionsBareArray(t *testing.T) {
	body := `[{"question": "Q", "options": ["A", "B", "C", "D"], "correct_answer": "A", "solution": "S", "topic": "T"}]`
	questions, err := ParseQuestions(body)
	if err != nil {
		t.Fatalf("ParseQuestions returned error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestParseQuestionsFencedBlock(t *testing.T) {
	body := "```json\n" + validBody + "\n```"
	questions, err := ParseQuestions(body)
	if err != nil {
		t.Fatalf("ParseQuestions returned error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestParseQuestionsRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "I cannot help with that."},
		{"empty object", `{}`},
		{"empty list", `{"questions": []}`},
		{"missing correct answer", `{"questions": [{"question": "Q", "options": ["A", "B", "C", "D"], "solution": "S"}]}`},
		{"missing question text", `{"questions": [{"options": ["A", "B", "C", "D"], "correct_answer": "A"}]}`},
		{"no options", `{"questions": [{"question": "Q", "correct_answer": "A"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQuestions(tt.body); err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
}
