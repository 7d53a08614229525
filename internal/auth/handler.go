package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coinkeeper/CoinKeeper/internal/user"
)

type Handler struct {
	authService Service
}

func NewHandler(authService Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func (s *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		LastName string `json:"lastName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newUser, token, err := s.authService.Register(req.Name, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrMissingFields) || errors.Is(err, user.ErrInvalidEmail) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, user.ErrEmailAlreadyExists.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "User registered successfully",
		"data": map[string]interface{}{
			"access_token": token,
			"user": map[string]interface{}{
				"user_id":  newUser.ID,
				"name":     newUser.Name,
				"lastName": newUser.LastName,
				"email":    newUser.Email,
			},
		},
	})
}

func (s *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	existingUser, token, err := s.authService.Login(req.Email, req.Password, req.RememberMe)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"access_token": token,
			"user": map[string]interface{}{
				"user_id":  existingUser.ID,
				"name":     existingUser.Name,
				"lastName": existingUser.LastName,
				"email":    existingUser.Email,
			},
		},
	})
}

// HandleLogout is stateless, tokens stay valid until they expire. The client
// is expected to drop its copy.
func (s *Handler) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Logged out successfully",
	})
}
