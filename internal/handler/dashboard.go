package handler

import (
	"log/slog"
	"net/http"

	"github.com/stridehq/stride/internal/ctxkeys"
	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/service"
)

type DashboardHandler struct {
	userService *service.UserService
	goalService *service.GoalService
}

func NewDashboardHandler(userService *service.UserService, goalService *service.GoalService) *DashboardHandler {
	return &DashboardHandler{
		userService: userService,
		goalService: goalService,
	}
}

type dashboardResponse struct {
	TotalGoals     int           `json:"totalGoals"`
	ShortTermGoals int           `json:"shortTermGoals"`
	LongTermGoals  int           `json:"longTermGoals"`
	Goals          []*model.Goal `json:"goals"`
}

// Summary reads the caller's live goals and derives the dashboard counts
// from them.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	caller := ctxkeys.Identity(r.Context())
	if caller == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.ByExternalID(caller.ExternalID)
	if err == repository.ErrUserNotFound {
		respondJSON(w, http.StatusOK, &dashboardResponse{Goals: []*model.Goal{}})
		return
	}
	if err != nil {
		slog.Error("failed to resolve user", "error", err, "external_id", caller.ExternalID)
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to load dashboard", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	resp := &dashboardResponse{
		TotalGoals: len(goals),
		Goals:      goals,
	}
	for _, goal := range goals {
		switch goal.Type {
		case model.GoalTypeShortTerm:
			resp.ShortTermGoals++
		case model.GoalTypeLongTerm:
			resp.LongTermGoals++
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
