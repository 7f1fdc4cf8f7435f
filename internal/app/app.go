// Package app assembles the service: it picks the backing store from
// configuration, wires repositories into the use-case services and hands back
// a ready http.Server.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pitchside/leagueops/internal/config"
	"github.com/pitchside/leagueops/internal/domain/invite"
	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/registration"
	"github.com/pitchside/leagueops/internal/domain/roster"
	"github.com/pitchside/leagueops/internal/infrastructure/notifier"
	"github.com/pitchside/leagueops/internal/infrastructure/repository/memory"
	"github.com/pitchside/leagueops/internal/infrastructure/repository/postgres"
	"github.com/pitchside/leagueops/internal/interfaces/httpapi"
	idgen "github.com/pitchside/leagueops/internal/platform/id"
	"github.com/pitchside/leagueops/internal/platform/logging"
	"github.com/pitchside/leagueops/internal/usecase"
)

type repositories struct {
	orgs        league.OrganizationRepository
	seasons     league.SeasonRepository
	divisions   league.DivisionRepository
	venues      league.VenueRepository
	teams       roster.TeamRepository
	teamSeasons roster.TeamSeasonRepository
	members     roster.TeamMemberRepository
	matches     match.Repository
	results     match.ResultRepository
	events      match.EventRepository
	invites     invite.Repository
	requests    registration.Repository
	tx          usecase.TxRunner
	close       func() error
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		store := memory.NewStore()
		if err := memory.Seed(ctx, store); err != nil {
			return repositories{}, fmt.Errorf("seed memory store: %w", err)
		}
		logger.Info("using in-memory store", "seeded", true)

		return repositories{
			orgs:        memory.NewOrganizationRepository(store),
			seasons:     memory.NewSeasonRepository(store),
			divisions:   memory.NewDivisionRepository(store),
			venues:      memory.NewVenueRepository(store),
			teams:       memory.NewTeamRepository(store),
			teamSeasons: memory.NewTeamSeasonRepository(store),
			members:     memory.NewTeamMemberRepository(store),
			matches:     memory.NewMatchRepository(store),
			results:     memory.NewResultRepository(store),
			events:      memory.NewEventRepository(store),
			invites:     memory.NewInviteRepository(store),
			requests:    memory.NewRegistrationRepository(store),
			tx:          store,
			close:       func() error { return nil },
		}, nil
	}

	db, err := postgres.Connect(ctx, cfg.DBURL)
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}
	logger.Info("using postgres store")

	return repositories{
		orgs:        postgres.NewOrganizationRepository(db),
		seasons:     postgres.NewSeasonRepository(db),
		divisions:   postgres.NewDivisionRepository(db),
		venues:      postgres.NewVenueRepository(db),
		teams:       postgres.NewTeamRepository(db),
		teamSeasons: postgres.NewTeamSeasonRepository(db),
		members:     postgres.NewTeamMemberRepository(db),
		matches:     postgres.NewMatchRepository(db),
		results:     postgres.NewResultRepository(db),
		events:      postgres.NewEventRepository(db),
		invites:     postgres.NewInviteRepository(db),
		requests:    postgres.NewRegistrationRepository(db),
		tx:          postgres.NewTxRunner(db),
		close:       db.Close,
	}, nil
}

func buildNotifier(cfg config.Config, logger *logging.Logger) usecase.Notifier {
	if cfg.SMTPEnabled {
		return notifier.NewSMTPNotifier(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUsername,
			cfg.SMTPPassword,
			cfg.SMTPFrom,
			logger,
		)
	}
	return notifier.NewLogNotifier(logger)
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := idgen.NewUUIDGenerator()
	tokens := idgen.NewRandomTokenGenerator()

	leagueSvc := usecase.NewLeagueService(
		repos.orgs,
		repos.seasons,
		repos.divisions,
		repos.venues,
		repos.matches,
		ids,
		logger,
	)
	rosterSvc := usecase.NewRosterService(
		repos.teams,
		repos.teamSeasons,
		repos.members,
		repos.divisions,
		repos.seasons,
		repos.matches,
		ids,
		logger,
	)
	matchSvc := usecase.NewMatchService(
		repos.matches,
		repos.results,
		repos.events,
		repos.divisions,
		repos.venues,
		repos.teams,
		repos.teamSeasons,
		repos.members,
		ids,
		logger,
	)
	inviteSvc := usecase.NewInviteService(
		repos.invites,
		repos.teamSeasons,
		repos.teams,
		repos.seasons,
		repos.divisions,
		ids,
		tokens,
		repos.tx,
		logger,
	)
	registrationSvc := usecase.NewRegistrationService(
		repos.requests,
		repos.seasons,
		repos.divisions,
		repos.teams,
		repos.teamSeasons,
		repos.members,
		inviteSvc,
		ids,
		repos.tx,
		buildNotifier(cfg, logger),
		cfg.BaseURL,
		logger,
	)
	registrationSvc.SetBatchWorkers(cfg.ApproveWorkers)

	handler := httpapi.NewHandler(leagueSvc, rosterSvc, matchSvc, inviteSvc, registrationSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	server.RegisterOnShutdown(func() {
		if err := repos.close(); err != nil {
			logger.Error("close store failed", "error", err)
		}
	})

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
