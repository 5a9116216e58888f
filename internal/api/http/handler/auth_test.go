package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/workgen-server/internal/apierror"
	"github.com/dtroode/workgen-server/internal/mocks"
	"github.com/dtroode/workgen-server/internal/model"
	"github.com/dtroode/workgen-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.AuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"username":"alice","password":"secret1"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "alice", "secret1").
					Return(model.AuthResult{ID: userID, Username: "alice", Token: "tok"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"` + userID.String() + `","username":"alice","token":"tok"}`,
		},
		{
			name: "conflict",
			body: `{"username":"alice","password":"secret1"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "alice", "secret1").
					Return(model.AuthResult{}, apierror.NewErrUsernameTaken("alice"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"user \"alice\" already exists"}`,
		},
		{
			name: "validation",
			body: `{"username":"","password":"secret1"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "", "secret1").
					Return(model.AuthResult{}, apierror.NewErrValidation(&model.FieldError{Field: "username", Reason: "is required"}))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"username is required"}`,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"malformed request body"}`,
		},
		{
			name:       "unknown field",
			body:       `{"username":"alice","password":"secret1","admin":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"malformed request body"}`,
		},
		{
			name:       "trailing data",
			body:       `{"username":"alice","password":"secret1"}{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"malformed request body"}`,
		},
		{
			name: "internal error is hidden",
			body: `{"username":"alice","password":"secret1"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "alice", "secret1").
					Return(model.AuthResult{}, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			h := NewAuth(svc, testutil.MakeNoopLogger())
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "alice", "secret1").
			Return(model.AuthResult{ID: userID, Username: "alice", Token: "tok"}, nil)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"secret1"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"`+userID.String()+`","username":"alice","token":"tok"}`, rec.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "alice", "wrong").
			Return(model.AuthResult{}, apierror.NewErrInvalidCredentials())

		h := NewAuth(svc, testutil.MakeNoopLogger())
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"invalid username or password"}`, rec.Body.String())
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		body := `{"username":"alice","password":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
		h := NewAuth(mocks.NewAuthService(t), testutil.MakeNoopLogger())
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
