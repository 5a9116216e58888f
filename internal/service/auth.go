package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/dtroode/workgen-server/internal/apierror"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

// dummyPassword is hashed once and compared against when a login names an unknown user.
const dummyPassword = "workgen-dummy-password"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a user and returns a token for it.
// The store's unique username constraint is the only source of conflicts.
func (a *Auth) Register(ctx context.Context, username, password string) (model.AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Register")
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	a.logger.Debug("Auth service: registering user",
		"username", username)

	if err := model.ValidateCredentials(username, password); err != nil {
		a.logger.Info("Auth service: invalid registration request",
			"username", username,
			"error", err.Error())
		return model.AuthResult{}, apierror.NewErrValidation(err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.AuthResult{}, recordError(span, err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Username:     username,
		PasswordHash: hash,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return model.AuthResult{}, apierror.NewErrUsernameTaken(username)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.AuthResult{}, recordError(span, storeError("create user", err))
	}

	result, err := a.issue(user)
	if err != nil {
		return model.AuthResult{}, recordError(span, err)
	}

	a.logger.Info("Auth service: user registered",
		"username", username,
		"user_id", user.ID)

	return result, nil
}

// Login verifies credentials and returns a fresh token.
// Unknown users and wrong passwords produce the same error.
func (a *Auth) Login(ctx context.Context, username, password string) (model.AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Login")
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	a.logger.Debug("Auth service: logging in user",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.compareDummy(password)
		a.logger.Info("Auth service: login failed",
			"username", username)
		return model.AuthResult{}, apierror.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.AuthResult{}, recordError(span, storeError("get user by username", err))
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Info("Auth service: login failed",
			"username", username)
		return model.AuthResult{}, apierror.NewErrInvalidCredentials()
	}

	result, err := a.issue(user)
	if err != nil {
		return model.AuthResult{}, recordError(span, err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", username,
		"user_id", user.ID)

	return result, nil
}

func (a *Auth) issue(user model.User) (model.AuthResult, error) {
	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to generate token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return model.AuthResult{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// compareDummy spends about as long as a real password check.
func (a *Auth) compareDummy(password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Error("Auth service: failed to hash dummy password",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash != nil {
		_ = a.hasher.Compare(a.dummyHash, password)
	}
}
