package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func validParams() CreateQuizParams {
	return CreateQuizParams{
		Topic:      "Math",
		Difficulty: "easy",
		Questions: []Question{
			{Question: "2+2?", Choices: []string{"3", "4"}, Answer: "4"},
		},
		CreatorUsername: "alice",
	}
}

func TestCreateQuizParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(p *CreateQuizParams)
		wantField string
	}{
		{name: "valid without numQuestions", modify: func(p *CreateQuizParams) {}},
		{name: "valid with matching numQuestions", modify: func(p *CreateQuizParams) { p.NumQuestions = intPtr(1) }},
		{name: "valid with no questions", modify: func(p *CreateQuizParams) { p.Questions = nil }},
		{name: "missing topic", modify: func(p *CreateQuizParams) { p.Topic = " " }, wantField: "topic"},
		{name: "missing difficulty", modify: func(p *CreateQuizParams) { p.Difficulty = "" }, wantField: "difficulty"},
		{name: "missing creator", modify: func(p *CreateQuizParams) { p.CreatorUsername = "" }, wantField: "creatorUsername"},
		{name: "creator at length limit", modify: func(p *CreateQuizParams) { p.CreatorUsername = strings.Repeat("a", 256) }},
		{name: "creator too long", modify: func(p *CreateQuizParams) { p.CreatorUsername = strings.Repeat("a", 257) }, wantField: "creatorUsername"},
		{name: "negative numQuestions", modify: func(p *CreateQuizParams) { p.NumQuestions = intPtr(-1) }, wantField: "numQuestions"},
		{name: "mismatched numQuestions", modify: func(p *CreateQuizParams) { p.NumQuestions = intPtr(3) }, wantField: "numQuestions"},
		{name: "empty question text", modify: func(p *CreateQuizParams) { p.Questions[0].Question = "" }, wantField: "questions[0].question"},
		{name: "blank question text", modify: func(p *CreateQuizParams) { p.Questions[0].Question = "\t" }, wantField: "questions[0].question"},
		{name: "no choices", modify: func(p *CreateQuizParams) { p.Questions[0].Choices = nil }, wantField: "questions[0].choices"},
		{name: "empty choices", modify: func(p *CreateQuizParams) { p.Questions[0].Choices = []string{} }, wantField: "questions[0].choices"},
		{name: "second question invalid", modify: func(p *CreateQuizParams) {
			p.Questions = append(p.Questions, Question{Question: "1+1?", Choices: []string{"2"}})
		}, wantField: "questions[1].answer"},
		{name: "missing answer", modify: func(p *CreateQuizParams) { p.Questions[0].Answer = "" }, wantField: "questions[0].answer"},
		{name: "answer not in choices", modify: func(p *CreateQuizParams) { p.Questions[0].Answer = "5" }, wantField: "questions[0].answer"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validParams()
			tt.modify(&p)

			err := p.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *FieldError
			if assert.ErrorAs(t, err, &fieldErr) {
				assert.Equal(t, tt.wantField, fieldErr.Field)
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		username   string
		password   string
		wantField  string
		wantReason string
	}{
		{name: "valid", username: "alice", password: "secret1"},
		{name: "password at bcrypt limit", username: "alice", password: strings.Repeat("x", 72)},
		{name: "username at length limit", username: strings.Repeat("u", 256), password: "secret1"},
		{name: "empty username", username: "", password: "secret1", wantField: "username", wantReason: "is required"},
		{name: "blank username", username: "   ", password: "secret1", wantField: "username", wantReason: "is required"},
		{name: "username too long", username: strings.Repeat("u", 257), password: "secret1", wantField: "username", wantReason: "must be at most 256 characters"},
		{name: "huge username", username: strings.Repeat("u", 40000), password: "secret1", wantField: "username", wantReason: "must be at most 256 characters"},
		{name: "empty password", username: "alice", password: "", wantField: "password", wantReason: "is required"},
		{name: "password too long", username: "alice", password: strings.Repeat("x", 73), wantField: "password", wantReason: "must be at most 72 bytes"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCredentials(tt.username, tt.password)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *FieldError
			if assert.ErrorAs(t, err, &fieldErr) {
				assert.Equal(t, tt.wantField, fieldErr.Field)
				assert.Equal(t, tt.wantReason, fieldErr.Reason)
			}
		})
	}
}
