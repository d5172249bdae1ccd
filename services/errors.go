package services

import "errors"

var (
	// ErrEmailTaken is returned by registration when the email is already in use.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password, so a
	// login failure never reveals whether the email is registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrQuizNotFound is returned when a quiz id does not exist or is not
	// owned by the requesting user.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrSourceNotFound is returned when quiz generation references an
	// uploaded file that does not exist or yields no text.
	ErrSourceNotFound = errors.New("source document not found")

	// ErrGenerationFailed is returned when the question generator produces
	// zero questions or questions that fail validation.
	ErrGenerationFailed = errors.New("question generation failed")

	// ErrAnswerCountMismatch is returned when a submission carries more
	// answers than the quiz has questions.
	ErrAnswerCountMismatch = errors.New("answer count exceeds question count")
)
