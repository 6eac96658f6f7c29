package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/rbarros/matchday/internal/domain/attendance"
	"github.com/rbarros/matchday/internal/domain/competition"
	"github.com/rbarros/matchday/internal/domain/fixture"
	"github.com/rbarros/matchday/internal/domain/team"
	"github.com/rbarros/matchday/internal/platform/logging"
	"github.com/rbarros/matchday/internal/usecase"
)

type Handler struct {
	syncService       *usecase.SyncService
	fixtureService    *usecase.FixtureService
	attendanceService *usecase.AttendanceService
	statsService      *usecase.StatsService
	teamService       *usecase.TeamService
	competitions      competition.Table
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	syncService *usecase.SyncService,
	fixtureService *usecase.FixtureService,
	attendanceService *usecase.AttendanceService,
	statsService *usecase.StatsService,
	teamService *usecase.TeamService,
	competitions competition.Table,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if competitions == nil {
		competitions = competition.DefaultTable()
	}

	return &Handler{
		syncService:       syncService,
		fixtureService:    fixtureService,
		attendanceService: attendanceService,
		statsService:      statsService,
		teamService:       teamService,
		competitions:      competitions,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type syncRequestDTO struct {
	Competition string `json:"competition" validate:"required"`
	TeamID      int64  `json:"team_id" validate:"required,gt=0"`
	Season      int    `json:"season" validate:"omitempty,gte=2008"`
}

type syncResultDTO struct {
	Competition string `json:"competition"`
	LeagueID    int64  `json:"league_id"`
	Season      int    `json:"season"`
	Fetched     int    `json:"fetched"`
	Reconciled  int    `json:"reconciled"`
}

func (h *Handler) SyncFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncFixtures")
	defer span.End()

	var req syncRequestDTO
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.syncService.SyncTeamFixtures(ctx, usecase.SyncRequest{
		CompetitionKey: req.Competition,
		TeamID:         req.TeamID,
		Season:         req.Season,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "fixture sync failed",
			"competition", req.Competition, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncResultDTO{
		Competition: result.Competition.Key,
		LeagueID:    result.Competition.LeagueID,
		Season:      result.Season,
		Fetched:     result.Fetched,
		Reconciled:  result.Reconciled,
	})
}

type fixtureDTO struct {
	FixtureID    int64      `json:"fixture_id"`
	Date         time.Time  `json:"date"`
	DisplayDate  string     `json:"display_date"`
	Venue        string     `json:"venue"`
	VenueCity    string     `json:"venue_city"`
	Status       string     `json:"status"`
	StatusLong   string     `json:"status_long,omitempty"`
	LeagueID     int64      `json:"league_id"`
	LeagueName   string     `json:"league_name"`
	Season       int        `json:"season"`
	Round        string     `json:"round,omitempty"`
	HomeTeamID   int64      `json:"home_team_id"`
	HomeTeamName string     `json:"home_team_name"`
	AwayTeamID   int64      `json:"away_team_id"`
	AwayTeamName string     `json:"away_team_name"`
	HomeGoals    *int       `json:"home_goals"`
	AwayGoals    *int       `json:"away_goals"`
	HalftimeHome *int       `json:"halftime_home,omitempty"`
	HalftimeAway *int       `json:"halftime_away,omitempty"`
	Attended     bool       `json:"attended"`
	AttendedAt   *time.Time `json:"attended_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

func fixtureToDTO(view fixture.View) fixtureDTO {
	return fixtureDTO{
		FixtureID:    view.FixtureID,
		Date:         view.Date,
		DisplayDate:  fixture.DisplayDate(view.Date),
		Venue:        view.Venue,
		VenueCity:    view.VenueCity,
		Status:       view.Status,
		StatusLong:   view.StatusLong,
		LeagueID:     view.LeagueID,
		LeagueName:   view.LeagueName,
		Season:       view.Season,
		Round:        view.Round,
		HomeTeamID:   view.HomeTeamID,
		HomeTeamName: view.HomeTeamName,
		AwayTeamID:   view.AwayTeamID,
		AwayTeamName: view.AwayTeamName,
		HomeGoals:    view.HomeGoals,
		AwayGoals:    view.AwayGoals,
		HalftimeHome: view.HalftimeHome,
		HalftimeAway: view.HalftimeAway,
		Attended:     view.Attended,
		AttendedAt:   view.AttendedAt,
		Notes:        view.AttendedNote,
	}
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	filter, err := parseFixtureFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.fixtureService.List(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(views))
	for _, view := range views {
		items = append(items, fixtureToDTO(view))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID, err := parsePathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.fixtureService.Get(ctx, fixtureID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(view))
}

type markRequestDTO struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type markResultDTO struct {
	FixtureID int64 `json:"fixture_id"`
	Marked    bool  `json:"marked"`
}

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkAttendance")
	defer span.End()

	fixtureID, err := parsePathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req markRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput))
			return
		}
		if err := h.validator.Struct(req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
	}

	created, err := h.attendanceService.Mark(ctx, fixtureID, req.Notes)
	if err != nil {
		h.logger.WarnContext(ctx, "mark attendance failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, markResultDTO{FixtureID: fixtureID, Marked: created})
}

type unmarkResultDTO struct {
	FixtureID int64 `json:"fixture_id"`
	Removed   bool  `json:"removed"`
}

func (h *Handler) UnmarkAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnmarkAttendance")
	defer span.End()

	fixtureID, err := parsePathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	removed, err := h.attendanceService.Unmark(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "unmark attendance failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, unmarkResultDTO{FixtureID: fixtureID, Removed: removed})
}

type recordDTO struct {
	Wins       int     `json:"wins"`
	Draws      int     `json:"draws"`
	Losses     int     `json:"losses"`
	WinRatePct float64 `json:"win_rate_pct"`
}

type stadiumDTO struct {
	Venue  string `json:"venue"`
	City   string `json:"city"`
	Visits int    `json:"visits"`
}

type statsDTO struct {
	TotalAttended int          `json:"total_attended"`
	Record        *recordDTO   `json:"record,omitempty"`
	Stadiums      []stadiumDTO `json:"stadiums"`
}

func statsToDTO(stats attendance.Stats) statsDTO {
	out := statsDTO{
		TotalAttended: stats.TotalAttended,
		Stadiums:      make([]stadiumDTO, 0, len(stats.Stadiums)),
	}
	for _, s := range stats.Stadiums {
		out.Stadiums = append(out.Stadiums, stadiumDTO{Venue: s.Venue, City: s.City, Visits: s.Visits})
	}
	if stats.Record != nil {
		record := recordDTO{
			Wins:   stats.Record.Wins,
			Draws:  stats.Record.Draws,
			Losses: stats.Record.Losses,
		}
		if played := record.Wins + record.Draws + record.Losses; played > 0 {
			record.WinRatePct = float64(record.Wins) / float64(played) * 100
		}
		out.Record = &record
	}
	return out
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatistics")
	defer span.End()

	teamID, err := parseQueryInt64(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statsService.Statistics(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "statistics failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}

type competitionDTO struct {
	Key      string `json:"key"`
	LeagueID int64  `json:"league_id"`
	Name     string `json:"name"`
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	keys := h.competitions.Keys()
	items := make([]competitionDTO, 0, len(keys))
	for _, key := range keys {
		comp, _ := h.competitions.Resolve(key)
		items = append(items, competitionDTO{Key: comp.Key, LeagueID: comp.LeagueID, Name: comp.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type teamDTO struct {
	TeamID  int64  `json:"team_id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Founded int    `json:"founded,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	country := strings.TrimSpace(r.URL.Query().Get("country"))

	teams, err := h.teamService.Search(ctx, name, country)
	if err != nil {
		h.logger.WarnContext(ctx, "team search failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		TeamID:  t.TeamID,
		Name:    t.Name,
		Country: t.Country,
		Founded: t.Founded,
		LogoURL: t.LogoURL,
	}
}

func parseFixtureFilter(r *http.Request) (fixture.Filter, error) {
	filter := fixture.Filter{}

	teamID, err := parseQueryInt64(r, "team_id")
	if err != nil {
		return fixture.Filter{}, err
	}
	filter.TeamID = teamID

	filter.Status = strings.TrimSpace(r.URL.Query().Get("status"))

	if raw := strings.TrimSpace(r.URL.Query().Get("attended")); raw != "" {
		attended, err := strconv.ParseBool(raw)
		if err != nil {
			return fixture.Filter{}, fmt.Errorf("%w: attended=%q", usecase.ErrInvalidInput, raw)
		}
		filter.AttendedOnly = attended
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fixture.Filter{}, fmt.Errorf("%w: limit=%q", usecase.ErrInvalidInput, raw)
		}
		filter.Limit = limit
	}

	return filter, nil
}

func parseQueryInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", usecase.ErrInvalidInput, key, raw)
	}
	return value, nil
}

func parsePathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(key))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", usecase.ErrInvalidInput, key, raw)
	}
	return value, nil
}
