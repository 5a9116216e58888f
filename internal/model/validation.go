package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Usernames are capped at 256 characters to stay inside the bbolt key and
// postgres index row limits.
type credentials struct {
	Username string `validate:"notblank,max=256"`
	Password string `validate:"required"`
}

// ValidateCredentials checks a username/password pair.
func ValidateCredentials(username, password string) error {
	if err := validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return fieldError(err)
	}
	if len(password) > maxPasswordBytes {
		return &FieldError{Field: "password", Reason: fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)}
	}
	return nil
}

// Validate checks required fields and question shape. It does not modify p.
func (p CreateQuizParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fieldError(err)
	}

	if p.NumQuestions != nil {
		if *p.NumQuestions < 0 {
			return &FieldError{Field: "numQuestions", Reason: "must not be negative"}
		}
		if *p.NumQuestions != len(p.Questions) {
			return &FieldError{
				Field:  "numQuestions",
				Reason: fmt.Sprintf("is %d but %d questions were given", *p.NumQuestions, len(p.Questions)),
			}
		}
	}

	for i, q := range p.Questions {
		if !slices.Contains(q.Choices, q.Answer) {
			return &FieldError{Field: fmt.Sprintf("questions[%d].answer", i), Reason: "must be one of choices"}
		}
	}

	return nil
}

// fieldError converts the first validator failure into a FieldError.
func fieldError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	return &FieldError{Field: fieldPath(fe.StructNamespace()), Reason: reason(fe)}
}

// fieldPath turns "CreateQuizParams.Questions[0].Question" into "questions[0].question".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		r := []rune(part)
		r[0] = unicode.ToLower(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, ".")
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
