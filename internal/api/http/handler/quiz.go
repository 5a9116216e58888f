package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/workgen-server/internal/api/http/response"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

// QuizService defines quiz persistence operations.
type QuizService interface {
	Create(ctx context.Context, params model.CreateQuizParams) (model.Quiz, error)
	FindByCreator(ctx context.Context, creatorUsername string) ([]model.Quiz, error)
	FindByID(ctx context.Context, id string) (model.Quiz, error)
	DeleteByID(ctx context.Context, id string) error
}

type questionBody struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

type createQuizRequest struct {
	Topic           string         `json:"topic"`
	Difficulty      string         `json:"difficulty"`
	NumQuestions    *int           `json:"numQuestions"`
	Questions       []questionBody `json:"questions"`
	CreatorUsername string         `json:"creatorUsername"`
}

type quizResponse struct {
	ID              string         `json:"id"`
	Topic           string         `json:"topic"`
	Difficulty      string         `json:"difficulty"`
	NumQuestions    int            `json:"numQuestions"`
	Questions       []questionBody `json:"questions"`
	CreatorUsername string         `json:"creatorUsername"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Quiz handles HTTP endpoints for quizzes.
type Quiz struct {
	quizService    QuizService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewQuiz(quizService QuizService, contextManager model.ContextManager, logger *logger.Logger) *Quiz {
	return &Quiz{
		quizService:    quizService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// requestLogger tags records with the authenticated user when there is one.
func (h *Quiz) requestLogger(r *http.Request) *logger.Logger {
	if userID, ok := h.contextManager.GetUserIDFromContext(r.Context()); ok {
		return h.logger.With("user_id", userID.String())
	}
	return h.logger
}

// Create handles POST /api/quiz/create.
func (h *Quiz) Create(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	var req createQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Info("Quiz handler: malformed create request",
			"error", err.Error())
		response.Error(w, err)
		return
	}

	params := model.CreateQuizParams{
		Topic:           req.Topic,
		Difficulty:      req.Difficulty,
		NumQuestions:    req.NumQuestions,
		Questions:       make([]model.Question, 0, len(req.Questions)),
		CreatorUsername: req.CreatorUsername,
	}
	for _, q := range req.Questions {
		params.Questions = append(params.Questions, model.Question(q))
	}

	quiz, err := h.quizService.Create(r.Context(), params)
	if err != nil {
		log.Info("Quiz handler: create failed",
			"creator", req.CreatorUsername,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	log.Info("Quiz handler: quiz created",
		"quiz_id", quiz.ID.String(),
		"creator", quiz.CreatorUsername)
	response.JSON(w, http.StatusCreated, newQuizResponse(quiz))
}

// FindByCreator handles GET /api/quiz/creator/{creatorName}.
func (h *Quiz) FindByCreator(w http.ResponseWriter, r *http.Request) {
	creator := r.PathValue("creatorName")

	quizzes, err := h.quizService.FindByCreator(r.Context(), creator)
	if err != nil {
		h.logger.Error("Quiz handler: find by creator failed",
			"creator", creator,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	out := make([]quizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		out = append(out, newQuizResponse(quiz))
	}

	response.JSON(w, http.StatusOK, out)
}

// FindByID handles GET /api/quiz/{id}.
func (h *Quiz) FindByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	quiz, err := h.quizService.FindByID(r.Context(), id)
	if err != nil {
		h.logger.Info("Quiz handler: find by id failed",
			"quiz_id", id,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, newQuizResponse(quiz))
}

// DeleteByID handles DELETE /api/quiz/delete/{id}.
func (h *Quiz) DeleteByID(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)
	id := r.PathValue("id")

	if err := h.quizService.DeleteByID(r.Context(), id); err != nil {
		log.Info("Quiz handler: delete failed",
			"quiz_id", id,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	log.Info("Quiz handler: quiz deleted",
		"quiz_id", id)

	response.JSON(w, http.StatusOK, messageResponse{Message: "Quiz deleted"})
}

func newQuizResponse(quiz model.Quiz) quizResponse {
	questions := make([]questionBody, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		choices := q.Choices
		if choices == nil {
			choices = []string{}
		}
		questions = append(questions, questionBody{Question: q.Question, Choices: choices, Answer: q.Answer})
	}

	return quizResponse{
		ID:              quiz.ID.String(),
		Topic:           quiz.Topic,
		Difficulty:      quiz.Difficulty,
		NumQuestions:    quiz.NumQuestions,
		Questions:       questions,
		CreatorUsername: quiz.CreatorUsername,
		CreatedAt:       quiz.CreatedAt,
	}
}
