package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/rbarros/matchday/external/apifootball"
	"github.com/rbarros/matchday/internal/config"
	"github.com/rbarros/matchday/internal/domain/competition"
	"github.com/rbarros/matchday/internal/infrastructure/repository/postgres"
	"github.com/rbarros/matchday/internal/interfaces/httpapi"
	"github.com/rbarros/matchday/internal/platform/logging"
	"github.com/rbarros/matchday/internal/platform/resilience"
	"github.com/rbarros/matchday/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup closes the database pool and must run after Shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	fixtureRepo := postgres.NewFixtureRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	leagueRepo := postgres.NewLeagueRepository(db)

	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		APIKey:     cfg.APIFootballKey,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailures,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMax,
		},
	})

	competitions := buildCompetitionTable(cfg.CompetitionLeagueIDs)

	syncSvc := usecase.NewSyncService(provider, fixtureRepo, leagueRepo, competitions, usecase.SyncConfig{
		Enabled:       cfg.APIFootballEnabled,
		DefaultSeason: cfg.DefaultSeason,
	}, logger)
	fixtureSvc := usecase.NewFixtureService(fixtureRepo)
	attendanceSvc := usecase.NewAttendanceService(attendanceRepo, logger)
	statsSvc := usecase.NewStatsService(attendanceRepo)
	teamSvc := usecase.NewTeamService(provider, teamRepo, usecase.TeamSearchConfig{
		Enabled:        cfg.APIFootballEnabled,
		DefaultCountry: cfg.DefaultCountry,
	}, logger)

	handler := httpapi.NewHandler(syncSvc, fixtureSvc, attendanceSvc, statsSvc, teamSvc, competitions, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}

	return server, cleanup, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func buildCompetitionTable(overrides map[string]int64) competition.Table {
	table := competition.DefaultTable()
	for key, leagueID := range overrides {
		if c, ok := table[key]; ok {
			c.LeagueID = leagueID
			table[key] = c
			continue
		}
		table[key] = competition.Competition{Key: key, LeagueID: leagueID, Name: key}
	}
	return table
}
