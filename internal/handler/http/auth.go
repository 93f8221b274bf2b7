package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/utils"
	"github.com/MKhiriev/go-fuel-dashboard/models"
)

// tokenResponse is the body returned on a successful login.
type tokenResponse struct {
	Token     string      `json:"token"`
	Role      models.Role `json:"role"`
	ExpiresAt int64       `json:"expires_at"`
}

// register creates a staff account. It is mounted behind auth and is
// available to administrators only; the new user does not get a token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("login", registeredUser.Login).Str("role", registeredUser.Role.String()).Msg("user registered")

	registeredUser.Password = ""
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("role", foundUser.Role.String()).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := tokenResponse{Token: token.SignedString, Role: token.Role}
	if token.TokenClaims.ExpiresAt != nil {
		response.ExpiresAt = token.TokenClaims.ExpiresAt.Unix()
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, response, http.StatusOK)
}
