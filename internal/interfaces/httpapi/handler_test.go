package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/pitchside/leagueops/internal/infrastructure/notifier"
	"github.com/pitchside/leagueops/internal/infrastructure/repository/memory"
	idgen "github.com/pitchside/leagueops/internal/platform/id"
	"github.com/pitchside/leagueops/internal/platform/logging"
	"github.com/pitchside/leagueops/internal/usecase"
)

const testAdminToken = "test-admin-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	if err := memory.Seed(context.Background(), store); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	logger := logging.NewNop()
	ids := idgen.NewUUIDGenerator()
	tokens := idgen.NewRandomTokenGenerator()

	orgs := memory.NewOrganizationRepository(store)
	seasons := memory.NewSeasonRepository(store)
	divisions := memory.NewDivisionRepository(store)
	venues := memory.NewVenueRepository(store)
	teams := memory.NewTeamRepository(store)
	teamSeasons := memory.NewTeamSeasonRepository(store)
	members := memory.NewTeamMemberRepository(store)
	matches := memory.NewMatchRepository(store)
	results := memory.NewResultRepository(store)
	events := memory.NewEventRepository(store)
	invites := memory.NewInviteRepository(store)
	requests := memory.NewRegistrationRepository(store)

	leagueSvc := usecase.NewLeagueService(orgs, seasons, divisions, venues, matches, ids, logger)
	rosterSvc := usecase.NewRosterService(teams, teamSeasons, members, divisions, seasons, matches, ids, logger)
	matchSvc := usecase.NewMatchService(matches, results, events, divisions, venues, teams, teamSeasons, members, ids, logger)
	inviteSvc := usecase.NewInviteService(invites, teamSeasons, teams, seasons, divisions, ids, tokens, store, logger)
	registrationSvc := usecase.NewRegistrationService(
		requests, seasons, divisions, teams, teamSeasons, members,
		inviteSvc, ids, store, notifier.NewLogNotifier(logger), "http://localhost:8080", logger,
	)

	handler := NewHandler(leagueSvc, rosterSvc, matchSvc, inviteSvc, registrationSvc, logger)
	return NewRouter(handler, logger, []string{"*"}, testAdminToken)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("X-Admin-Token", testAdminToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func envelopeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %s", rec.Body.String())
	}
	return data
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestListOrganizations_SeededData(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/organizations", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	items, ok := body["data"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected seeded organizations, got %s", rec.Body.String())
	}
}

func TestAdminRoutes_RejectWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/admin/registrations/pending", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestGetInviteInfo_UnknownTokenIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/invites/not-a-real-token", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestSubmitCreateTeamRequest_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/registrations/teams",
		`{"season_id":"season-summer-2026","team_name":"Falcons","surprise":true,"captain":{"full_name":"Dana Cole","email":"dana@example.com"}}`,
		false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

// Walks the whole intake path over HTTP: submit, approve with division
// context, then resolve the invite token the approval issued.
func TestRegistrationApprovalFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/registrations/teams",
		`{"season_id":"season-summer-2026","division_id":"div-a","team_name":"Falcons","level":"MEDIUM_LEVEL","captain":{"full_name":"Dana Cole","email":"dana@example.com","phone":"204-555-0101"}}`,
		false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	submitted := envelopeData(t, rec)
	requestID, _ := submitted["id"].(string)
	if requestID == "" {
		t.Fatalf("submit: missing request id in %v", submitted)
	}
	if got, _ := submitted["status"].(string); got != "PENDING" {
		t.Fatalf("submit: expected PENDING, got %q", got)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/admin/registrations/pending", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("pending: expected status 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/admin/registrations/"+requestID+"/approve",
		`{"approver":"admin@prairie-rec.example"}`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	approval := envelopeData(t, rec)
	inviteToken, _ := approval["invite_token"].(string)
	if inviteToken == "" {
		t.Fatalf("approve: missing invite token in %v", approval)
	}
	if got, _ := approval["team_name"].(string); got != "Falcons" {
		t.Fatalf("approve: unexpected team name %q", got)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/invites/"+inviteToken, "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("invite info: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	info := envelopeData(t, rec)
	if got, _ := info["team_name"].(string); got != "Falcons" {
		t.Fatalf("invite info: unexpected team name %q", got)
	}
	if got, _ := info["season_name"].(string); got != "Summer 2026" {
		t.Fatalf("invite info: unexpected season name %q", got)
	}

	// Second approval of the same request must lose the state check.
	rec = doJSON(t, router, http.MethodPost, "/v1/admin/registrations/"+requestID+"/approve",
		`{"approver":"admin@prairie-rec.example"}`, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("re-approve: expected status 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestJoinFlow_ResolvedFromInviteToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/registrations/teams",
		`{"season_id":"season-summer-2026","division_id":"div-b","team_name":"Harriers","captain":{"full_name":"Sam Ortiz","email":"sam@example.com"}}`,
		false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected status 201, got %d", rec.Code)
	}
	requestID := envelopeData(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/v1/admin/registrations/"+requestID+"/approve",
		`{"approver":"admin@prairie-rec.example"}`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	inviteToken := envelopeData(t, rec)["invite_token"].(string)

	rec = doJSON(t, router, http.MethodPost, "/v1/registrations/join",
		`{"token":"`+inviteToken+`","player":{"full_name":"Riley Chen","email":"riley@example.com"},"waiver_file":"files/waiver-riley.pdf"}`,
		false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("join: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	joined := envelopeData(t, rec)
	if got, _ := joined["kind"].(string); got != "JOIN_TEAM" {
		t.Fatalf("join: unexpected kind %q", got)
	}
	if got, _ := joined["team_season_id"].(string); got == "" {
		t.Fatalf("join: team season was not resolved from the token")
	}

	// A bogus token must not create a request.
	rec = doJSON(t, router, http.MethodPost, "/v1/registrations/join",
		`{"token":"bogus","player":{"full_name":"Riley Chen","email":"riley@example.com"}}`,
		false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("join bogus: expected status 404, got %d", rec.Code)
	}
}
