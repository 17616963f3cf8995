package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/syp-project/authd/internal/common"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *HTTPServer) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.users.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		var mfe *common.MissingFieldError
		switch {
		case errors.As(err, &mfe):
			s.writeError(w, http.StatusBadRequest, mfe.Error())
		case errors.Is(err, common.ErrorEmailTaken):
			s.writeError(w, http.StatusConflict, common.ErrorEmailTaken.Error())
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			s.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "email", req.Email)
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			// One message for unknown email and wrong password alike.
			s.writeError(w, http.StatusUnauthorized, common.ErrorInvalidCredentials.Error())
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, loginResponse{
		Token: result.Token,
		User:  userView{Email: result.User.Email, FullName: result.User.FullName},
	})
}

func (s *HTTPServer) handleProfile(w http.ResponseWriter, r *http.Request) {

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		// requireToken always sets claims; reaching here is a routing bug.
		s.writeError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]userView{
		"user": {Email: claims.Email, FullName: claims.FullName},
	})
}
