package handler

import (
	"log/slog"
	"net/http"

	"github.com/stridehq/stride/internal/ctxkeys"
	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/service"
)

type GoalHandler struct {
	userService *service.UserService
	goalService *service.GoalService
}

func NewGoalHandler(userService *service.UserService, goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		userService: userService,
		goalService: goalService,
	}
}

type createGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Deadline    string `json:"deadline"`
}

// Create is the goal ingestion endpoint: authenticate, resolve the owning
// user row, validate and persist, return the created goal. Anonymous
// callers are rejected before any store access.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := ctxkeys.Identity(r.Context())
	if caller == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.EnsureUser(caller.ExternalID, caller.Email)
	if err != nil {
		slog.Error("failed to resolve user", "error", err, "external_id", caller.ExternalID)
		respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	var req createGoalRequest
	err = decodeJSON(r, &req)
	if err != nil {
		slog.Warn("failed to decode goal payload", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	goal, err := h.goalService.Create(user.ID, req.Title, req.Description, req.Type, req.Deadline)
	if err != nil {
		// Validation and persistence failures are deliberately collapsed
		// into one generic response so callers can't probe which layer
		// failed. A stricter split would return 400 for validation here.
		if service.IsValidationError(err) {
			slog.Warn("goal rejected", "error", err, "user_id", user.ID)
		} else {
			slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		}
		respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

// List returns the caller's goals in creation order. Identities that have
// never created anything list empty; no user row is created on reads.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := ctxkeys.Identity(r.Context())
	if caller == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.ByExternalID(caller.ExternalID)
	if err == repository.ErrUserNotFound {
		respondJSON(w, http.StatusOK, []*model.Goal{})
		return
	}
	if err != nil {
		slog.Error("failed to resolve user", "error", err, "external_id", caller.ExternalID)
		respondError(w, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	respondJSON(w, http.StatusOK, goals)
}
