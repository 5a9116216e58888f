package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dtroode/workgen-server/internal/apierror"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

// ArchivePrefix is the object key prefix for deleted quizzes.
const ArchivePrefix = "quizzes/"

type Quiz struct {
	quizStore model.QuizStore
	archive   model.Storage
	logger    *logger.Logger
}

// NewQuiz creates a quiz service. archive may be nil, in which case deleted
// quizzes are not archived.
func NewQuiz(quizStore model.QuizStore, archive model.Storage, logger *logger.Logger) *Quiz {
	return &Quiz{
		quizStore: quizStore,
		archive:   archive,
		logger:    logger,
	}
}

// Create validates params and stores the quiz with its questions in one write.
// When NumQuestions is omitted it is set to the number of questions.
func (s *Quiz) Create(ctx context.Context, params model.CreateQuizParams) (model.Quiz, error) {
	ctx, span := tracer.Start(ctx, "Quiz.Create")
	defer span.End()
	span.SetAttributes(
		attribute.String("creator", params.CreatorUsername),
		attribute.Int("questions", len(params.Questions)),
	)

	s.logger.Debug("Quiz service: creating quiz",
		"creator", params.CreatorUsername,
		"topic", params.Topic)

	if err := params.Validate(); err != nil {
		s.logger.Info("Quiz service: invalid quiz",
			"creator", params.CreatorUsername,
			"error", err.Error())
		return model.Quiz{}, apierror.NewErrValidation(err)
	}

	questions := make([]model.Question, 0, len(params.Questions))
	questions = append(questions, params.Questions...)

	quiz, err := s.quizStore.Create(ctx, model.Quiz{
		Topic:           params.Topic,
		Difficulty:      params.Difficulty,
		NumQuestions:    len(questions),
		Questions:       questions,
		CreatorUsername: params.CreatorUsername,
	})
	if err != nil {
		s.logger.Error("Quiz service: failed to create quiz",
			"creator", params.CreatorUsername,
			"error", err.Error())
		return model.Quiz{}, recordError(span, storeError("create quiz", err))
	}

	s.logger.Info("Quiz service: quiz created",
		"quiz_id", quiz.ID,
		"creator", quiz.CreatorUsername)

	return quiz, nil
}

// FindByCreator returns every quiz whose creator matches exactly. The result is never nil.
func (s *Quiz) FindByCreator(ctx context.Context, creatorUsername string) ([]model.Quiz, error) {
	ctx, span := tracer.Start(ctx, "Quiz.FindByCreator")
	defer span.End()
	span.SetAttributes(attribute.String("creator", creatorUsername))

	quizzes, err := s.quizStore.GetByCreator(ctx, creatorUsername)
	if err != nil {
		s.logger.Error("Quiz service: failed to get quizzes by creator",
			"creator", creatorUsername,
			"error", err.Error())
		return nil, recordError(span, storeError("get quizzes by creator", err))
	}
	if quizzes == nil {
		quizzes = []model.Quiz{}
	}

	return quizzes, nil
}

// FindByID returns the quiz with the given id. A malformed id is reported as not found.
func (s *Quiz) FindByID(ctx context.Context, id string) (model.Quiz, error) {
	ctx, span := tracer.Start(ctx, "Quiz.FindByID")
	defer span.End()
	span.SetAttributes(attribute.String("quiz_id", id))

	quizID, err := uuid.Parse(id)
	if err != nil {
		return model.Quiz{}, apierror.NewErrQuizNotFound(id)
	}

	quiz, err := s.quizStore.GetByID(ctx, quizID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Quiz{}, apierror.NewErrQuizNotFound(id)
	}
	if err != nil {
		s.logger.Error("Quiz service: failed to get quiz",
			"quiz_id", id,
			"error", err.Error())
		return model.Quiz{}, recordError(span, storeError("get quiz", err))
	}

	return quiz, nil
}

// DeleteByID removes the quiz and all of its questions.
func (s *Quiz) DeleteByID(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Quiz.DeleteByID")
	defer span.End()
	span.SetAttributes(attribute.String("quiz_id", id))

	quizID, err := uuid.Parse(id)
	if err != nil {
		return apierror.NewErrQuizNotFound(id)
	}

	quiz, err := s.quizStore.Delete(ctx, quizID)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrQuizNotFound(id)
	}
	if err != nil {
		s.logger.Error("Quiz service: failed to delete quiz",
			"quiz_id", id,
			"error", err.Error())
		return recordError(span, storeError("delete quiz", err))
	}

	s.logger.Info("Quiz service: quiz deleted",
		"quiz_id", id,
		"creator", quiz.CreatorUsername)

	s.archiveQuiz(ctx, quiz)

	return nil
}

type archivedQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

type archivedQuiz struct {
	ID              uuid.UUID          `json:"id"`
	Topic           string             `json:"topic"`
	Difficulty      string             `json:"difficulty"`
	NumQuestions    int                `json:"numQuestions"`
	Questions       []archivedQuestion `json:"questions"`
	CreatorUsername string             `json:"creatorUsername"`
	CreatedAt       time.Time          `json:"createdAt"`
	DeletedAt       time.Time          `json:"deletedAt"`
}

// ArchiveKey returns the object key of an archived quiz.
func ArchiveKey(id uuid.UUID) string {
	return ArchivePrefix + id.String() + ".json"
}

// archiveQuiz never fails the delete; errors are only logged.
func (s *Quiz) archiveQuiz(ctx context.Context, quiz model.Quiz) {
	if s.archive == nil {
		return
	}

	doc := archivedQuiz{
		ID:              quiz.ID,
		Topic:           quiz.Topic,
		Difficulty:      quiz.Difficulty,
		NumQuestions:    quiz.NumQuestions,
		Questions:       make([]archivedQuestion, 0, len(quiz.Questions)),
		CreatorUsername: quiz.CreatorUsername,
		CreatedAt:       quiz.CreatedAt,
		DeletedAt:       time.Now().UTC(),
	}
	for _, q := range quiz.Questions {
		doc.Questions = append(doc.Questions, archivedQuestion(q))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("Quiz service: failed to marshal archived quiz",
			"quiz_id", quiz.ID,
			"error", err.Error())
		return
	}

	key := ArchiveKey(quiz.ID)
	if err := s.archive.Upload(ctx, key, bytes.NewReader(data)); err != nil {
		s.logger.Warn("Quiz service: failed to archive deleted quiz",
			"quiz_id", quiz.ID,
			"key", key,
			"error", err.Error())
		return
	}

	s.logger.Debug("Quiz service: deleted quiz archived",
		"quiz_id", quiz.ID,
		"key", key)
}
