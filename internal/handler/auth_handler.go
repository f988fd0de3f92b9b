package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/daniswhoiam/movie-api/internal/auth"
	"github.com/daniswhoiam/movie-api/internal/models"
	"github.com/daniswhoiam/movie-api/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type registerRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	Email    string `json:"Email"`
	Birth    string `json:"Birth,omitempty"`
}

// @Summary Register
// @Description Creates a new user. The password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param body body registerRequest true "new user"
// @Success 201 {object} models.User
// @Failure 400 {string} string "malformed JSON body"
// @Failure 422 {object} map[string]any
// @Router /users [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON body", http.StatusBadRequest)
		return
	}

	var errs validationErrors
	checkUsername(&errs, req.Username)
	checkPassword(&errs, req.Password)
	checkEmail(&errs, req.Email)
	var birth *time.Time
	if req.Birth != "" {
		birth = parseBirth(&errs, req.Birth)
	}
	if len(errs) > 0 {
		errs.write(w)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birth:    birth,
	})
	if err != nil {
		if conflict, ok := conflictErrors(err); ok {
			conflict.write(w)
			return
		}
		serverError(w, r, "register user", err)
		return
	}

	writeJSON(w, http.StatusCreated, u)
}

type loginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type loginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// @Summary Login
// @Description Exchanges credentials for a bearer token. Credentials may also be sent as query parameters.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest false "credentials"
// @Param Username query string false "username"
// @Param Password query string false "password"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "Username and Password are required"
// @Failure 401 {string} string "Incorrect username or password."
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "malformed JSON body", http.StatusBadRequest)
		return
	}
	if req.Username == "" && req.Password == "" {
		req.Username = r.URL.Query().Get("Username")
		req.Password = r.URL.Query().Get("Password")
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and Password are required", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		var loginErr *service.LoginError
		if errors.As(err, &loginErr) {
			http.Error(w, "Incorrect username or password.", http.StatusUnauthorized)
			return
		}
		serverError(w, r, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{User: u, Token: token})
}

// conflictErrors turns a uniqueness failure or an unusable password into a
// 422 body.
func conflictErrors(err error) (validationErrors, bool) {
	var errs validationErrors
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		errs.add("Username", "The username you chose already exists. Please choose another one.")
	case errors.Is(err, service.ErrEmailTaken):
		errs.add("Email", "The email you chose is already used by another user. Please choose another one.")
	case errors.Is(err, auth.ErrPasswordTooLong):
		errs.add("Password", passwordTooLongMsg)
	case errors.Is(err, service.ErrInvalidPassword):
		errs.add("Password", "Password is required")
	default:
		return nil, false
	}
	return errs, true
}
