package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"woofer/internal/app/service"
	"woofer/internal/common"
	"woofer/internal/common/validation"

	"github.com/go-chi/chi/v5"
)

// validationErrorsResponse is the 422 body: the complete violation list in
// one response.
type validationErrorsResponse struct {
	Errors []validation.Violation `json:"errors"`
}

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createUser)
	r.Get("/", h.listUsers)
	r.Get("/{username}", h.getUser)
	r.Put("/{username}", h.updateUser)
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			common.RespondWithJSON(w, http.StatusUnprocessableEntity, validationErrorsResponse{Errors: verr.Violations})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	// 201 for a read is a quirk of the legacy wire contract, kept on purpose.
	common.RespondWithJSON(w, http.StatusCreated, users)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// The contract returns a JSON null rather than a 404.
			common.RespondWithJSON(w, http.StatusOK, nil)
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req service.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.UpdateByUsername(r.Context(), username, req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			common.RespondWithJSON(w, http.StatusUnprocessableEntity, validationErrorsResponse{Errors: verr.Violations})
			return
		}
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithJSON(w, http.StatusOK, nil)
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}
