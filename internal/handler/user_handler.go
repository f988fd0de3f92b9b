package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daniswhoiam/movie-api/internal/service"
)

const userNotFoundMsg = "No user with this username was found."

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

// @Summary Get user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} models.User
// @Failure 404 {string} string "No user with this username was found."
// @Router /users/{username} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.fail(w, r, "get user", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// @Summary List favorite movie ids
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param username path string true "username"
// @Success 200 {array} string
// @Failure 404 {string} string "No user with this username was found."
// @Router /users/{username}/favoritemovies [get]
func (h *UserHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.Favorites(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.fail(w, r, "get favorites", err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

type updateUserRequest struct {
	Username *string `json:"Username"`
	Password *string `json:"Password"`
	Email    *string `json:"Email"`
	Birth    *string `json:"Birth"`
}

// @Summary Update user
// @Description Replaces only the fields present in the body. A new password is hashed before storage.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param username path string true "username"
// @Param body body updateUserRequest true "fields to change"
// @Success 200 {object} models.User
// @Failure 403 {string} string "You can only modify your own account."
// @Failure 404 {string} string "No user with this username was found."
// @Failure 422 {object} map[string]any
// @Router /users/{username} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON body", http.StatusBadRequest)
		return
	}

	var errs validationErrors
	data := service.UpdateUserData{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Username != nil {
		checkUsername(&errs, *req.Username)
	}
	if req.Password != nil {
		checkPassword(&errs, *req.Password)
	}
	if req.Email != nil {
		checkEmail(&errs, *req.Email)
	}
	if req.Birth != nil {
		data.Birth = parseBirth(&errs, *req.Birth)
	}
	if len(errs) > 0 {
		errs.write(w)
		return
	}

	u, err := h.svc.Update(r.Context(), chi.URLParam(r, "username"), data)
	if err != nil {
		if conflict, ok := conflictErrors(err); ok {
			conflict.write(w)
			return
		}
		h.fail(w, r, "update user", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// @Summary Add a movie to favorites
// @Description Adding a movie that is already a favorite changes nothing.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param username path string true "username"
// @Param movieID path string true "movie ObjectID"
// @Success 200 {object} models.User
// @Failure 400 {string} string "invalid movie id"
// @Router /users/{username}/movies/{movieID} [patch]
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	u, err := h.svc.AddFavorite(r.Context(), chi.URLParam(r, "username"), movieID)
	if err != nil {
		h.fail(w, r, "add favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// @Summary Remove a movie from favorites
// @Description Removing a movie that is not a favorite changes nothing.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param username path string true "username"
// @Param movieID path string true "movie ObjectID"
// @Success 200 {object} models.User
// @Failure 400 {string} string "invalid movie id"
// @Router /users/{username}/movies/{movieID} [delete]
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}
	u, err := h.svc.RemoveFavorite(r.Context(), chi.URLParam(r, "username"), movieID)
	if err != nil {
		h.fail(w, r, "remove favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// @Summary Deregister
// @Tags users
// @Security BearerAuth
// @Produce plain
// @Param username path string true "username"
// @Success 200 {string} string "<username> was deleted."
// @Failure 404 {string} string "No user with this username was found."
// @Router /users/{username} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.svc.Delete(r.Context(), username); err != nil {
		h.fail(w, r, "delete user", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "%s was deleted.", username)
}

func (h *UserHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		http.Error(w, userNotFoundMsg, http.StatusNotFound)
		return
	}
	serverError(w, r, op, err)
}

func movieIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "movieID"))
	if err != nil {
		http.Error(w, "invalid movie id", http.StatusBadRequest)
		return primitive.NilObjectID, false
	}
	return id, true
}
