package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/dtroode/workgen-server/internal/model"
)

var _ model.QuizStore = (*QuizRepository)(nil)

type questionDoc struct {
	Question string   `cbor:"1,keyasint"`
	Choices  []string `cbor:"2,keyasint"`
	Answer   string   `cbor:"3,keyasint"`
}

type quizDoc struct {
	ID              uuid.UUID     `cbor:"1,keyasint"`
	Topic           string        `cbor:"2,keyasint"`
	Difficulty      string        `cbor:"3,keyasint"`
	NumQuestions    int           `cbor:"4,keyasint"`
	Questions       []questionDoc `cbor:"5,keyasint"`
	CreatorUsername string        `cbor:"6,keyasint"`
	CreatedAt       time.Time     `cbor:"7,keyasint"`
}

type QuizRepository struct {
	db *Connection
}

func NewQuizRepository(db *Connection) *QuizRepository {
	return &QuizRepository{db: db}
}

// Create writes the quiz document and its creator index entry in one transaction.
func (r *QuizRepository) Create(ctx context.Context, quiz model.Quiz) (model.Quiz, error) {
	doc := quizDoc{
		ID:              uuid.New(),
		Topic:           quiz.Topic,
		Difficulty:      quiz.Difficulty,
		NumQuestions:    quiz.NumQuestions,
		Questions:       make([]questionDoc, 0, len(quiz.Questions)),
		CreatorUsername: quiz.CreatorUsername,
		CreatedAt:       time.Now().UTC(),
	}
	for _, q := range quiz.Questions {
		doc.Questions = append(doc.Questions, questionDoc{Question: q.Question, Choices: q.Choices, Answer: q.Answer})
	}

	err := r.db.update(ctx, func(tx *bbolt.Tx) error {
		data, err := r.db.enc.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal quiz: %w", err)
		}
		if err := tx.Bucket(bucketQuizzes).Put(doc.ID[:], data); err != nil {
			return err
		}
		return tx.Bucket(bucketQuizzesByCreator).Put(creatorKey(doc), nil)
	})
	if err != nil {
		return model.Quiz{}, fmt.Errorf("failed to put quiz: %w", err)
	}

	return doc.toModel(), nil
}

func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Quiz, error) {
	var doc quizDoc
	err := r.db.view(ctx, func(tx *bbolt.Tx) error {
		return r.load(tx, id[:], &doc)
	})
	if err != nil {
		return model.Quiz{}, err
	}

	return doc.toModel(), nil
}

// GetByCreator scans the creator index; results are newest first.
func (r *QuizRepository) GetByCreator(ctx context.Context, creatorUsername string) ([]model.Quiz, error) {
	quizzes := make([]model.Quiz, 0)
	prefix := creatorPrefix(creatorUsername)

	err := r.db.view(ctx, func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketQuizzesByCreator).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			id := k[len(k)-len(uuid.UUID{}):]

			var doc quizDoc
			if err := r.load(tx, id, &doc); err != nil {
				return err
			}
			quizzes = append(quizzes, doc.toModel())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan creator index: %w", err)
	}

	slices.Reverse(quizzes)
	return quizzes, nil
}

// Delete removes the document and its index entry in one transaction.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) (model.Quiz, error) {
	var doc quizDoc
	err := r.db.update(ctx, func(tx *bbolt.Tx) error {
		if err := r.load(tx, id[:], &doc); err != nil {
			return err
		}
		if err := tx.Bucket(bucketQuizzes).Delete(id[:]); err != nil {
			return err
		}
		return tx.Bucket(bucketQuizzesByCreator).Delete(creatorKey(doc))
	})
	if err != nil {
		return model.Quiz{}, err
	}

	return doc.toModel(), nil
}

func (r *QuizRepository) load(tx *bbolt.Tx, id []byte, doc *quizDoc) error {
	data := tx.Bucket(bucketQuizzes).Get(id)
	if data == nil {
		return model.ErrNotFound
	}
	if err := r.db.dec.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("unmarshal quiz: %w", err)
	}
	return nil
}

// creatorPrefix is the length-prefixed username so that "al" never matches "alice".
func creatorPrefix(username string) []byte {
	key := binary.BigEndian.AppendUint16(nil, uint16(len(username)))
	return append(key, username...)
}

// creatorKey is prefix | created_at nanos | quiz id.
func creatorKey(doc quizDoc) []byte {
	key := creatorPrefix(doc.CreatorUsername)
	key = binary.BigEndian.AppendUint64(key, uint64(doc.CreatedAt.UnixNano()))
	return append(key, doc.ID[:]...)
}

func (d quizDoc) toModel() model.Quiz {
	questions := make([]model.Question, 0, len(d.Questions))
	for _, q := range d.Questions {
		questions = append(questions, model.Question{Question: q.Question, Choices: q.Choices, Answer: q.Answer})
	}
	return model.Quiz{
		ID:              d.ID,
		Topic:           d.Topic,
		Difficulty:      d.Difficulty,
		NumQuestions:    d.NumQuestions,
		Questions:       questions,
		CreatorUsername: d.CreatorUsername,
		CreatedAt:       d.CreatedAt,
	}
}
