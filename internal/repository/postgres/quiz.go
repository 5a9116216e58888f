package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/workgen-server/internal/model"
)

var _ model.QuizStore = (*QuizRepository)(nil)

// questionDoc is the JSONB element stored in quizzes.questions.
type questionDoc struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

const quizColumns = `id, topic, difficulty, num_questions, questions, creator_username, created_at`

type QuizRepository struct {
	db *Connection
}

func NewQuizRepository(db *Connection) *QuizRepository {
	return &QuizRepository{
		db: db,
	}
}

// Create inserts the quiz row with its questions array in a single statement.
func (r *QuizRepository) Create(ctx context.Context, quiz model.Quiz) (model.Quiz, error) {
	questions, err := encodeQuestions(quiz.Questions)
	if err != nil {
		return model.Quiz{}, err
	}

	query := `INSERT INTO quizzes (topic, difficulty, num_questions, questions, creator_username)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + quizColumns

	saved, err := scanQuiz(r.db.QueryRowContext(ctx, query,
		quiz.Topic, quiz.Difficulty, quiz.NumQuestions, questions, quiz.CreatorUsername,
	))
	if err != nil {
		return model.Quiz{}, fmt.Errorf("failed to insert quiz: %w", mapError(err))
	}

	return saved, nil
}

func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`

	quiz, err := scanQuiz(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Quiz{}, model.ErrNotFound
		}
		return model.Quiz{}, fmt.Errorf("failed to query quiz: %w", mapError(err))
	}

	return quiz, nil
}

func (r *QuizRepository) GetByCreator(ctx context.Context, creatorUsername string) ([]model.Quiz, error) {
	query := `SELECT ` + quizColumns + `
			  FROM quizzes
			  WHERE creator_username = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, creatorUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", mapError(err))
	}
	defer rows.Close()

	quizzes := make([]model.Quiz, 0)
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quizzes: %w", mapError(err))
	}

	return quizzes, nil
}

// Delete removes the row and returns it. Questions live in the same row.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) (model.Quiz, error) {
	query := `DELETE FROM quizzes WHERE id = $1 RETURNING ` + quizColumns

	quiz, err := scanQuiz(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Quiz{}, model.ErrNotFound
		}
		return model.Quiz{}, fmt.Errorf("failed to delete quiz row: %w", mapError(err))
	}

	return quiz, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (model.Quiz, error) {
	var (
		quiz      model.Quiz
		questions []byte
	)
	if err := row.Scan(
		&quiz.ID, &quiz.Topic, &quiz.Difficulty, &quiz.NumQuestions,
		&questions, &quiz.CreatorUsername, &quiz.CreatedAt,
	); err != nil {
		return model.Quiz{}, err
	}

	decoded, err := decodeQuestions(questions)
	if err != nil {
		return model.Quiz{}, err
	}
	quiz.Questions = decoded

	return quiz, nil
}

func encodeQuestions(questions []model.Question) (string, error) {
	docs := make([]questionDoc, 0, len(questions))
	for _, q := range questions {
		docs = append(docs, questionDoc{Question: q.Question, Choices: q.Choices, Answer: q.Answer})
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("failed to encode questions: %w", err)
	}
	return string(data), nil
}

func decodeQuestions(data []byte) ([]model.Question, error) {
	var docs []questionDoc
	if len(data) > 0 {
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("failed to decode questions: %w", err)
		}
	}

	questions := make([]model.Question, 0, len(docs))
	for _, d := range docs {
		questions = append(questions, model.Question{Question: d.Question, Choices: d.Choices, Answer: d.Answer})
	}
	return questions, nil
}
