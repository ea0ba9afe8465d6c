package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stridehq/stride/internal/identity"
	"github.com/stridehq/stride/internal/model"
)

type dashboardBody struct {
	TotalGoals     int          `json:"totalGoals"`
	ShortTermGoals int          `json:"shortTermGoals"`
	LongTermGoals  int          `json:"longTermGoals"`
	Goals          []model.Goal `json:"goals"`
}

func TestDashboard_SummaryFromLiveGoals(t *testing.T) {
	caller := &identity.Identity{ExternalID: "idp_alice", Email: "alice@example.com"}
	srv, _ := newTestServer(t, caller)

	for _, body := range []string{
		`{"title":"Run 5k","type":"SHORT_TERM"}`,
		`{"title":"Ship the app","type":"SHORT_TERM"}`,
		`{"title":"Run a marathon","type":"LONG_TERM","deadline":"2025-12-31"}`,
	} {
		w := postGoal(t, srv, body)
		if w.Code != http.StatusCreated {
			t.Fatalf("create: %d: %s", w.Code, w.Body.String())
		}
	}

	r := httptest.NewRequest("GET", "/app/dashboard", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp := decodeBody[dashboardBody](t, w)
	if resp.TotalGoals != 3 {
		t.Fatalf("expected 3 total, got %d", resp.TotalGoals)
	}
	if resp.ShortTermGoals != 2 || resp.LongTermGoals != 1 {
		t.Fatalf("expected 2 short / 1 long, got %d / %d", resp.ShortTermGoals, resp.LongTermGoals)
	}
	if len(resp.Goals) != 3 {
		t.Fatalf("expected 3 goals in payload, got %d", len(resp.Goals))
	}
}

func TestDashboard_EmptyForNewIdentity(t *testing.T) {
	caller := &identity.Identity{ExternalID: "idp_new", Email: "new@example.com"}
	srv, _ := newTestServer(t, caller)

	r := httptest.NewRequest("GET", "/app/dashboard", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp := decodeBody[dashboardBody](t, w)
	if resp.TotalGoals != 0 || len(resp.Goals) != 0 {
		t.Fatalf("expected empty dashboard, got %+v", resp)
	}
}

func TestDashboard_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	r := httptest.NewRequest("GET", "/app/dashboard", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
