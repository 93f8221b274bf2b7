package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/service"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	expiresAt := time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		loginErr   error
		tokenErr   error
		wantStatus int
		wantToken  bool
	}{
		{
			name:       "success",
			body:       `{"login":"anna","password":"secret"}`,
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:       "invalid json",
			body:       `{"login":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong password",
			body:       `{"login":"anna","password":"nope"}`,
			loginErr:   service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       `{}`,
			loginErr:   service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "token creation fails",
			body:       `{"login":"anna","password":"secret"}`,
			tokenErr:   service.ErrTokenCreationFailed,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &stubAuthService{
				loginFn: func(_ context.Context, user models.User) (models.User, error) {
					if tt.loginErr != nil {
						return models.User{}, tt.loginErr
					}
					return models.User{UserID: 3, Login: user.Login, Role: models.RoleManager}, nil
				},
				createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
					if tt.tokenErr != nil {
						return models.Token{}, tt.tokenErr
					}
					return models.Token{
						SignedString: "signed.jwt.token",
						UserID:       user.UserID,
						Role:         user.Role,
						TokenClaims: models.Claims{
							RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
							Role:             user.Role,
						},
					}, nil
				},
			}
			h := newTestHandler(&service.Services{AuthService: authSvc})

			rec := httptest.NewRecorder()
			h.login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantToken {
				assert.Empty(t, rec.Header().Get("Authorization"))
				return
			}

			assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

			var resp tokenResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "signed.jwt.token", resp.Token)
			assert.Equal(t, models.RoleManager, resp.Role)
			assert.Equal(t, expiresAt.Unix(), resp.ExpiresAt)
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
	}{
		{
			name:       "success",
			body:       `{"login":"oleg","name":"Oleg","password":"p4ss","role":"accountant"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "invalid role",
			body:        `{"login":"oleg","password":"p4ss","role":"owner"}`,
			registerErr: service.ErrInvalidRole,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "login taken",
			body:        `{"login":"oleg","password":"p4ss","role":"cashier"}`,
			registerErr: fmt.Errorf("error saving user: %w", store.ErrLoginAlreadyExists),
			wantStatus:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &stubAuthService{
				registerUserFn: func(_ context.Context, user models.User) (models.User, error) {
					if tt.registerErr != nil {
						return models.User{}, tt.registerErr
					}
					user.UserID = 10
					user.PasswordHash = "$2a$hash"
					return user, nil
				},
			}
			h := newTestHandler(&service.Services{AuthService: authSvc})

			rec := httptest.NewRecorder()
			h.register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusCreated {
				return
			}

			var user map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
			assert.Equal(t, "oleg", user["login"])
			assert.Equal(t, "accountant", user["role"])
			// пароль и хеш не должны возвращаться клиенту
			assert.NotContains(t, user, "password")
			assert.NotContains(t, rec.Body.String(), "$2a$hash")
		})
	}
}
