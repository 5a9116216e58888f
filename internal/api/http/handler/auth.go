package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/workgen-server/internal/api/http/response"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) (model.AuthResult, error)
	Login(ctx context.Context, username, password string) (model.AuthResult, error)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Info("Auth handler: malformed registration request",
			"error", err.Error())
		response.Error(w, err)
		return
	}

	result, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, newAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Info("Auth handler: malformed login request",
			"error", err.Error())
		response.Error(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, newAuthResponse(result))
}

func newAuthResponse(result model.AuthResult) authResponse {
	return authResponse{
		ID:       result.ID.String(),
		Username: result.Username,
		Token:    result.Token,
	}
}
