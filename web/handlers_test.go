package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/testutils"
	"github.com/unrolled/render"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()

	if err := testutils.InsertTestPlayers(testDB.DB); err != nil {
		fmt.Printf("error inserting test players: %v", err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	ctrl, err := controller.New(testDB.Clock, testDB.DB, testDB.UploadsDir())
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return getRouter(ctrl, render.New(), testDB.UploadsDir())
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("error encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("error decoding response %q: %v", w.Body.String(), err)
	}
}

func TestPlayerEndpoints(t *testing.T) {
	router := newTestRouter(t)

	// The client has sent flags as strings, numbers, and booleans over time.
	payload := map[string]any{
		"id":              "dylan-sampson",
		"name":            "Dylan Sampson",
		"team":            "CLE",
		"position":        "RB",
		"colleges":        []string{"Tennessee"},
		"draftYear":       2025,
		"draftPick":       126,
		"isPlayer":        "1",
		"isBrownsStarter": false,
		"templateId":      "tmpl-rb",
	}

	w := doJSON(t, router, http.MethodPost, "/api/players", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/players/dylan-sampson", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	var got struct {
		ID        string   `json:"id"`
		Name      string   `json:"name"`
		Team      string   `json:"team"`
		Position  string   `json:"position"`
		Colleges  []string `json:"colleges"`
		IsPlayer  bool     `json:"isPlayer"`
		DraftYear *int     `json:"draftYear"`
	}
	decodeBody(t, w, &got)
	if got.Team != "CLE" {
		t.Errorf("expected team CLE, got: %s", got.Team)
	}
	if got.Position != "RB" {
		t.Errorf("expected position RB, got: %s", got.Position)
	}
	if !got.IsPlayer {
		t.Error("expected isPlayer to be coerced to true")
	}
	if got.DraftYear == nil || *got.DraftYear != 2025 {
		t.Errorf("unexpected draftYear: %v", got.DraftYear)
	}

	// A roster player save provisions the rookie binder page.
	w = doJSON(t, router, http.MethodGet, "/api/binderPages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	var pages []struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		PlayerID string `json:"playerId"`
	}
	decodeBody(t, w, &pages)
	found := false
	for _, p := range pages {
		if p.ID == "bp-dylan-sampson" && p.Type == "Rookie" && p.PlayerID == "dylan-sampson" {
			found = true
		}
	}
	if !found {
		t.Error("rookie page was not provisioned")
	}

	// Missing required fields map to a 400.
	w = doJSON(t, router, http.MethodPost, "/api/players", map[string]any{"id": "incomplete"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for incomplete payload, got: %d", w.Code)
	}

	// Unknown player is a 404.
	w = doJSON(t, router, http.MethodGet, "/api/players/nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown player, got: %d", w.Code)
	}

	// Cleanup.
	w = doJSON(t, router, http.MethodDelete, "/api/players/dylan-sampson", nil)
	if w.Code != http.StatusOK {
		t.Errorf("unexpected status code deleting player: %d", w.Code)
	}
}

// Entering a game stat as text keeps it text all the way through: the value
// "275" against tmpl-qb's YDS line must come back as a JSON string.
func TestGameEndpoints(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]any{
		"id":           "game-shedeur-wk1",
		"playerId":     testutils.ShedeurSanders.ID,
		"templateId":   "tmpl-qb",
		"date":         "2025-09-07",
		"isBye":        0,
		"opponentAbbr": "CIN",
		"teamScore":    17,
		"oppScore":     16,
		"values":       map[string]any{"YDS": "275", "TD": 2},
	}

	w := doJSON(t, router, http.MethodPost, "/api/games", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/players/"+testutils.ShedeurSanders.ID+"/games", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	var games []struct {
		ID     string         `json:"id"`
		IsBye  bool           `json:"isBye"`
		Values map[string]any `json:"values"`
	}
	decodeBody(t, w, &games)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got: %d", len(games))
	}
	if games[0].IsBye {
		t.Error("isBye 0 should coerce to false")
	}
	if v, ok := games[0].Values["YDS"].(string); !ok || v != "275" {
		t.Errorf("YDS should stay the string \"275\", got: %v (%T)", games[0].Values["YDS"], games[0].Values["YDS"])
	}
	if v, ok := games[0].Values["TD"].(float64); !ok || v != 2 {
		t.Errorf("TD should stay the number 2, got: %v (%T)", games[0].Values["TD"], games[0].Values["TD"])
	}

	// A key the template doesn't declare is rejected.
	payload["id"] = "game-shedeur-wk2"
	payload["values"] = map[string]any{"BOGUS": 1}
	w = doJSON(t, router, http.MethodPost, "/api/games", payload)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for undeclared key, got: %d, body: %s", w.Code, w.Body.String())
	}

	// A malformed date is rejected before reaching the controller.
	payload["id"] = "game-shedeur-wk3"
	payload["values"] = map[string]any{}
	payload["date"] = "Sept 7th"
	w = doJSON(t, router, http.MethodPost, "/api/games", payload)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got: %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/games/game-shedeur-wk1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("unexpected status code deleting game: %d", w.Code)
	}
}

func TestSheetEndpoints(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]any{
		"playerId":   testutils.QuinshonJudkins.ID,
		"templateId": "tmpl-rb",
		"seasonYear": 2025,
		"values":     map[string]any{"YDS": 1042, "TD": 11},
	}

	// No id in the payload, the server generates one.
	w := doJSON(t, router, http.MethodPost, "/api/sheets", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/players/"+testutils.QuinshonJudkins.ID+"/sheets", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	var sheets []struct {
		ID         string         `json:"id"`
		SeasonYear int            `json:"seasonYear"`
		Values     map[string]any `json:"values"`
	}
	decodeBody(t, w, &sheets)
	if len(sheets) != 1 {
		t.Fatalf("expected 1 sheet, got: %d", len(sheets))
	}
	if sheets[0].ID == "" {
		t.Error("expected a generated sheet id")
	}
	if sheets[0].SeasonYear != 2025 {
		t.Errorf("unexpected seasonYear: %d", sheets[0].SeasonYear)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/sheets/"+sheets[0].ID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("unexpected status code deleting sheet: %d", w.Code)
	}
}

func TestTeamEndpoints(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]any{
		"id":           "team-cle",
		"name":         "Cleveland Browns",
		"code":         "CLE",
		"city":         "Cleveland",
		"colorPrimary": "#311D00",
		"conference":   "AFC",
		"division":     "North",
	}

	w := doJSON(t, router, http.MethodPost, "/api/teams", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/teams/team-cle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	var got struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
		City string `json:"city"`
	}
	decodeBody(t, w, &got)
	if got.Name != "Cleveland Browns" || got.Code != "CLE" || got.City != "Cleveland" {
		t.Errorf("unexpected team: %+v", got)
	}

	w = doJSON(t, router, http.MethodGet, "/api/teams/no-such-team", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown team, got: %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/teams/team-cle", nil)
	if w.Code != http.StatusOK {
		t.Errorf("unexpected status code deleting team: %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/teams/team-cle", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got: %d", w.Code)
	}
}

func TestMetaEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/meta/positions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	var positions []string
	decodeBody(t, w, &positions)
	if len(positions) != 12 {
		t.Errorf("expected 12 positions, got: %d", len(positions))
	}
	if positions[0] != "QB" {
		t.Errorf("expected QB first, got: %s", positions[0])
	}

	w = doJSON(t, router, http.MethodGet, "/api/meta/teams", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	var teams []struct {
		Abbr string `json:"abbr"`
		Name string `json:"name"`
	}
	decodeBody(t, w, &teams)
	if len(teams) != 32 {
		t.Errorf("expected 32 teams, got: %d", len(teams))
	}

	w = doJSON(t, router, http.MethodGet, "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	var stats struct {
		Players     int `json:"players"`
		Templates   int `json:"templates"`
		BinderPages int `json:"binderPages"`
	}
	decodeBody(t, w, &stats)
	if stats.Players == 0 {
		t.Error("expected players to be counted")
	}
	if stats.Templates == 0 {
		t.Error("expected seeded templates to be counted")
	}
}

func TestExportEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	var export struct {
		Players     []json.RawMessage `json:"players"`
		Templates   []json.RawMessage `json:"templates"`
		Sheets      []json.RawMessage `json:"sheets"`
		Binders     []json.RawMessage `json:"binders"`
		BinderPages []json.RawMessage `json:"binderPages"`
	}
	decodeBody(t, w, &export)
	if len(export.Players) == 0 {
		t.Error("expected players in the export")
	}
	if len(export.Templates) == 0 {
		t.Error("expected templates in the export")
	}
	if len(export.Binders) == 0 {
		t.Error("expected the default binder in the export")
	}
}

func TestSeedEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/seed/draft2025", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	var report struct {
		Inserted int `json:"inserted"`
		Skipped  int `json:"skipped"`
	}
	decodeBody(t, w, &report)
	if report.Inserted+report.Skipped != 32 {
		t.Errorf("expected 32 picks accounted for, got: %d inserted, %d skipped", report.Inserted, report.Skipped)
	}

	// Seeding again skips everything inserted the first time.
	w = doJSON(t, router, http.MethodPost, "/api/admin/seed/draft2025", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	decodeBody(t, w, &report)
	if report.Inserted != 0 {
		t.Errorf("expected 0 inserted on the second run, got: %d", report.Inserted)
	}
	if report.Skipped != 32 {
		t.Errorf("expected 32 skipped on the second run, got: %d", report.Skipped)
	}
}
