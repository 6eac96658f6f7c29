package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/rbarros/matchday/internal/domain/competition"
	"github.com/rbarros/matchday/internal/domain/fixture"
	"github.com/rbarros/matchday/internal/infrastructure/repository/memory"
	"github.com/rbarros/matchday/internal/platform/logging"
	"github.com/rbarros/matchday/internal/usecase"
)

type fakeProvider struct {
	fixtures []usecase.ExternalFixture
	teams    []usecase.ExternalTeam
	err      error
}

func (p *fakeProvider) FetchTeamFixtures(_ context.Context, _, _ int64, _ int) ([]usecase.ExternalFixture, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.fixtures, nil
}

func (p *fakeProvider) FetchFixtureByID(_ context.Context, fixtureID int64) (usecase.ExternalFixture, bool, error) {
	for _, item := range p.fixtures {
		if item.FixtureID == fixtureID {
			return item, true, nil
		}
	}
	return usecase.ExternalFixture{}, false, nil
}

func (p *fakeProvider) SearchTeams(_ context.Context, _, _ string) ([]usecase.ExternalTeam, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.teams, nil
}

type testEnv struct {
	router   http.Handler
	fixtures *memory.FixtureRepository
	marks    *memory.AttendanceRepository
}

func newTestEnv(provider *fakeProvider) testEnv {
	logger := logging.NewNop()
	fixtures := memory.NewFixtureRepository()
	marks := memory.NewAttendanceRepository(fixtures)
	leagues := memory.NewLeagueRepository()
	teams := memory.NewTeamRepository()
	table := competition.DefaultTable()

	handler := NewHandler(
		usecase.NewSyncService(provider, fixtures, leagues, table, usecase.SyncConfig{Enabled: true, DefaultSeason: 2025}, logger),
		usecase.NewFixtureService(fixtures),
		usecase.NewAttendanceService(marks, logger),
		usecase.NewStatsService(marks),
		usecase.NewTeamService(provider, teams, usecase.TeamSearchConfig{Enabled: true, DefaultCountry: "Brazil"}, logger),
		table,
		logger,
	)

	return testEnv{
		router:   NewRouter(handler, logger, []string{"*"}),
		fixtures: fixtures,
		marks:    marks,
	}
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, googleResponseEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var envelope googleResponseEnvelope
	if err := sonic.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response envelope: %v body=%s", err, recorder.Body.String())
	}

	return recorder, envelope
}

func seedFixture(t *testing.T, env testEnv, id int64, status string, homeGoals, awayGoals *int) {
	t.Helper()
	f := fixture.Fixture{
		FixtureID:    id,
		Date:         time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC),
		Venue:        "Maracanã",
		VenueCity:    "Rio de Janeiro",
		Status:       status,
		LeagueID:     71,
		LeagueName:   "Brasileirão Série A",
		Season:       2025,
		HomeTeamID:   127,
		HomeTeamName: "Flamengo",
		AwayTeamID:   131,
		AwayTeamName: "Corinthians",
		HomeGoals:    homeGoals,
		AwayGoals:    awayGoals,
	}
	if err := env.fixtures.Upsert(context.Background(), f); err != nil {
		t.Fatalf("seed fixture: %v", err)
	}
}

func intPtr(v int) *int { return &v }

func TestSyncEndpoint(t *testing.T) {
	provider := &fakeProvider{fixtures: []usecase.ExternalFixture{
		{
			FixtureID:    1001,
			KickoffAt:    time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC),
			StatusShort:  "FT",
			HomeTeamID:   127,
			HomeTeamName: "Flamengo",
			AwayTeamID:   131,
			AwayTeamName: "Corinthians",
			HomeGoals:    intPtr(2),
			AwayGoals:    intPtr(1),
		},
	}}
	env := newTestEnv(provider)

	recorder, envelope := doRequest(t, env.router, http.MethodPost, "/v1/sync",
		`{"competition":"brasileirao_a","team_id":127,"season":2025}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d body=%s", recorder.Code, recorder.Body.String())
	}

	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %T", envelope.Data)
	}
	if data["fetched"].(float64) != 1 || data["reconciled"].(float64) != 1 {
		t.Fatalf("unexpected sync result: %v", data)
	}

	views, err := env.fixtures.List(context.Background(), fixture.Filter{})
	if err != nil || len(views) != 1 {
		t.Fatalf("expected 1 stored fixture, got %d err=%v", len(views), err)
	}
}

func TestSyncEndpointUnknownCompetition(t *testing.T) {
	env := newTestEnv(&fakeProvider{})

	recorder, envelope := doRequest(t, env.router, http.MethodPost, "/v1/sync",
		`{"competition":"premier_league","team_id":127}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if envelope.Error == nil || envelope.Error.Errors[0].Reason != "unknownCompetition" {
		t.Fatalf("unexpected error payload: %+v", envelope.Error)
	}
}

func TestSyncEndpointRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(&fakeProvider{})

	recorder, _ := doRequest(t, env.router, http.MethodPost, "/v1/sync", `{"competition":`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}

	recorder, _ = doRequest(t, env.router, http.MethodPost, "/v1/sync", `{"competition":"brasileirao_a"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing team_id, got %d", recorder.Code)
	}
}

func TestListFixturesEndpoint(t *testing.T) {
	env := newTestEnv(&fakeProvider{})
	seedFixture(t, env, 1001, fixture.StatusFinished, intPtr(2), intPtr(1))
	seedFixture(t, env, 1002, fixture.StatusScheduled, nil, nil)

	recorder, envelope := doRequest(t, env.router, http.MethodGet, "/v1/fixtures?status=finished&team_id=127", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	items, ok := envelope.Data.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 fixture, got %v", envelope.Data)
	}

	recorder, _ = doRequest(t, env.router, http.MethodGet, "/v1/fixtures?status=cancelled", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", recorder.Code)
	}

	recorder, _ = doRequest(t, env.router, http.MethodGet, "/v1/fixtures?team_id=abc", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric team id, got %d", recorder.Code)
	}
}

func TestGetFixtureEndpoint(t *testing.T) {
	env := newTestEnv(&fakeProvider{})
	seedFixture(t, env, 1001, fixture.StatusFinished, intPtr(2), intPtr(1))

	recorder, envelope := doRequest(t, env.router, http.MethodGet, "/v1/fixtures/1001", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	data := envelope.Data.(map[string]any)
	if data["display_date"] != "10/05/2025 19:30" {
		t.Fatalf("unexpected display date: %v", data["display_date"])
	}

	recorder, _ = doRequest(t, env.router, http.MethodGet, "/v1/fixtures/9999", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestAttendanceEndpoints(t *testing.T) {
	env := newTestEnv(&fakeProvider{})
	seedFixture(t, env, 1001, fixture.StatusFinished, intPtr(2), intPtr(1))

	recorder, envelope := doRequest(t, env.router, http.MethodPost, "/v1/fixtures/1001/attendance", `{"notes":"south stand"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first mark, got %d body=%s", recorder.Code, recorder.Body.String())
	}
	if envelope.Data.(map[string]any)["marked"] != true {
		t.Fatalf("expected marked=true: %v", envelope.Data)
	}

	recorder, envelope = doRequest(t, env.router, http.MethodPost, "/v1/fixtures/1001/attendance", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 on duplicate mark, got %d", recorder.Code)
	}
	if envelope.Data.(map[string]any)["marked"] != false {
		t.Fatalf("expected marked=false on duplicate: %v", envelope.Data)
	}

	recorder, _ = doRequest(t, env.router, http.MethodPost, "/v1/fixtures/4040/attendance", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown fixture, got %d", recorder.Code)
	}

	recorder, envelope = doRequest(t, env.router, http.MethodDelete, "/v1/fixtures/1001/attendance", "")
	if recorder.Code != http.StatusOK || envelope.Data.(map[string]any)["removed"] != true {
		t.Fatalf("expected removal, got status=%d data=%v", recorder.Code, envelope.Data)
	}

	recorder, envelope = doRequest(t, env.router, http.MethodDelete, "/v1/fixtures/1001/attendance", "")
	if recorder.Code != http.StatusOK || envelope.Data.(map[string]any)["removed"] != false {
		t.Fatalf("expected removed=false on second delete, got status=%d data=%v", recorder.Code, envelope.Data)
	}
}

func TestStatisticsEndpoint(t *testing.T) {
	env := newTestEnv(&fakeProvider{})
	seedFixture(t, env, 1, fixture.StatusFinished, intPtr(2), intPtr(1))
	seedFixture(t, env, 2, fixture.StatusFinished, intPtr(1), intPtr(1))
	for _, id := range []int64{1, 2} {
		if _, err := env.marks.Mark(context.Background(), id, ""); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}

	recorder, envelope := doRequest(t, env.router, http.MethodGet, "/v1/statistics?team_id=127", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	data := envelope.Data.(map[string]any)
	if data["total_attended"].(float64) != 2 {
		t.Fatalf("unexpected total: %v", data)
	}
	record := data["record"].(map[string]any)
	if record["wins"].(float64) != 1 || record["draws"].(float64) != 1 || record["win_rate_pct"].(float64) != 50 {
		t.Fatalf("unexpected record: %v", record)
	}

	recorder, envelope = doRequest(t, env.router, http.MethodGet, "/v1/statistics", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	if _, hasRecord := envelope.Data.(map[string]any)["record"]; hasRecord {
		t.Fatalf("record must be omitted without team scope: %v", envelope.Data)
	}
}

func TestCompetitionsEndpoint(t *testing.T) {
	env := newTestEnv(&fakeProvider{})

	recorder, envelope := doRequest(t, env.router, http.MethodGet, "/v1/competitions", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	items := envelope.Data.([]any)
	if len(items) != 5 {
		t.Fatalf("expected 5 competitions, got %d", len(items))
	}
	first := items[0].(map[string]any)
	if first["key"] != "brasileirao_a" || first["league_id"].(float64) != 71 {
		t.Fatalf("unexpected first competition: %v", first)
	}
}

func TestSearchTeamsEndpoint(t *testing.T) {
	provider := &fakeProvider{teams: []usecase.ExternalTeam{
		{TeamID: 127, Name: "Flamengo", Country: "Brazil", Founded: 1895},
	}}
	env := newTestEnv(provider)

	recorder, envelope := doRequest(t, env.router, http.MethodGet, "/v1/teams/search?name=flamengo", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	items := envelope.Data.([]any)
	if len(items) != 1 || items[0].(map[string]any)["name"] != "Flamengo" {
		t.Fatalf("unexpected teams: %v", items)
	}

	recorder, _ = doRequest(t, env.router, http.MethodGet, "/v1/teams/search", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", recorder.Code)
	}
}
