package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QuizStore defines persistence operations for quiz aggregates.
type QuizStore interface {
	// Create writes the quiz with all of its questions in one atomic operation
	// and returns the stored form with the store-assigned ID.
	Create(ctx context.Context, quiz Quiz) (Quiz, error)
	GetByID(ctx context.Context, id uuid.UUID) (Quiz, error)
	GetByCreator(ctx context.Context, creatorUsername string) ([]Quiz, error)
	// Delete removes the quiz and returns what was removed.
	Delete(ctx context.Context, id uuid.UUID) (Quiz, error)
}

// Quiz is an aggregate of quiz metadata and its ordered questions.
type Quiz struct {
	ID              uuid.UUID
	Topic           string
	Difficulty      string
	NumQuestions    int
	Questions       []Question
	CreatorUsername string
	CreatedAt       time.Time
}

// Question is a multiple-choice question owned by a Quiz.
type Question struct {
	Question string   `validate:"notblank"`
	Choices  []string `validate:"required,min=1"`
	Answer   string   `validate:"required"`
}

// CreateQuizParams contains parameters to create a quiz.
// NumQuestions is nil when the caller omitted it.
type CreateQuizParams struct {
	Topic           string     `validate:"notblank"`
	Difficulty      string     `validate:"notblank"`
	NumQuestions    *int
	Questions       []Question `validate:"omitempty,dive"`
	CreatorUsername string     `validate:"notblank,max=256"`
}
