package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pitchside/leagueops/internal/domain/registration"
	"github.com/pitchside/leagueops/internal/domain/roster"
	"github.com/pitchside/leagueops/internal/infrastructure/repository/memory"
	"github.com/pitchside/leagueops/internal/platform/logging"
)

// seqIDGenerator hands out deterministic ids so tests can predict what a
// workflow will provision. failAfter > 0 makes the generator start erroring
// once that many ids were handed out, to exercise mid-workflow failures.
type seqIDGenerator struct {
	n         int
	failAfter int
}

func (g *seqIDGenerator) NewID() (string, error) {
	if g.failAfter > 0 && g.n >= g.failAfter {
		return "", fmt.Errorf("id generator exhausted")
	}
	g.n++
	return fmt.Sprintf("id-%03d", g.n), nil
}

type seqTokenGenerator struct{ n int }

func (g *seqTokenGenerator) NewToken() (string, error) {
	g.n++
	return fmt.Sprintf("tok-%03d-%s", g.n, strings.Repeat("x", 36)), nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recordNotifier struct {
	sent []sentMail
	fail error
}

func (n *recordNotifier) Send(_ context.Context, toEmail, subject, body string) error {
	if n.fail != nil {
		return n.fail
	}
	n.sent = append(n.sent, sentMail{To: toEmail, Subject: subject, Body: body})
	return nil
}

type fixture struct {
	store    *memory.Store
	ids      *seqIDGenerator
	tokens   *seqTokenGenerator
	notifier *recordNotifier
	now      time.Time

	leagues       *LeagueService
	rosters       *RosterService
	matches       *MatchService
	invites       *InviteService
	registrations *RegistrationService

	teamRepo       *memory.TeamRepository
	teamSeasonRepo *memory.TeamSeasonRepository
	memberRepo     *memory.TeamMemberRepository
	requestRepo    *memory.RegistrationRepository
	inviteRepo     *memory.InviteRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	ids := &seqIDGenerator{}
	tokens := &seqTokenGenerator{}
	notifier := &recordNotifier{}
	logger := logging.NewNop()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	orgRepo := memory.NewOrganizationRepository(store)
	seasonRepo := memory.NewSeasonRepository(store)
	divisionRepo := memory.NewDivisionRepository(store)
	venueRepo := memory.NewVenueRepository(store)
	teamRepo := memory.NewTeamRepository(store)
	teamSeasonRepo := memory.NewTeamSeasonRepository(store)
	memberRepo := memory.NewTeamMemberRepository(store)
	matchRepo := memory.NewMatchRepository(store)
	resultRepo := memory.NewResultRepository(store)
	eventRepo := memory.NewEventRepository(store)
	inviteRepo := memory.NewInviteRepository(store)
	requestRepo := memory.NewRegistrationRepository(store)

	clock := func() time.Time { return now }

	leagues := NewLeagueService(orgRepo, seasonRepo, divisionRepo, venueRepo, matchRepo, ids, logger)
	leagues.now = clock

	rosters := NewRosterService(teamRepo, teamSeasonRepo, memberRepo, divisionRepo, seasonRepo, matchRepo, ids, logger)
	rosters.now = clock

	matches := NewMatchService(matchRepo, resultRepo, eventRepo, divisionRepo, venueRepo, teamRepo, teamSeasonRepo, memberRepo, ids, logger)
	matches.now = clock

	invites := NewInviteService(inviteRepo, teamSeasonRepo, teamRepo, seasonRepo, divisionRepo, ids, tokens, store, logger)
	invites.now = clock

	registrations := NewRegistrationService(requestRepo, seasonRepo, divisionRepo, teamRepo, teamSeasonRepo, memberRepo, invites, ids, store, notifier, "https://league.test", logger)
	registrations.now = clock

	return &fixture{
		store:          store,
		ids:            ids,
		tokens:         tokens,
		notifier:       notifier,
		now:            now,
		leagues:        leagues,
		rosters:        rosters,
		matches:        matches,
		invites:        invites,
		registrations:  registrations,
		teamRepo:       teamRepo,
		teamSeasonRepo: teamSeasonRepo,
		memberRepo:     memberRepo,
		requestRepo:    requestRepo,
		inviteRepo:     inviteRepo,
	}
}

// seedSeason provisions one organization with a season and a division and
// returns their ids.
func (f *fixture) seedSeason(t *testing.T) (orgID, seasonID, divisionID string) {
	t.Helper()
	ctx := context.Background()

	org, err := f.leagues.CreateOrganization(ctx, CreateOrganizationInput{Name: "Prairie Rec", Slug: "prairie-rec"})
	if err != nil {
		t.Fatalf("create organization: %v", err)
	}
	season, err := f.leagues.CreateSeason(ctx, CreateSeasonInput{OrganizationID: org.ID, Name: "Summer 2026", IsActive: true})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	division, err := f.leagues.CreateDivision(ctx, CreateDivisionInput{SeasonID: season.ID, Name: "Division A", SortOrder: 1})
	if err != nil {
		t.Fatalf("create division: %v", err)
	}

	return org.ID, season.ID, division.ID
}

// seedTeam creates a team in the division and enrolls it in the season.
func (f *fixture) seedTeam(t *testing.T, seasonID, divisionID, name string) (roster.Team, roster.TeamSeason) {
	t.Helper()
	ctx := context.Background()

	team, err := f.rosters.CreateTeam(ctx, CreateTeamInput{DivisionID: divisionID, Name: name})
	if err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	ts, err := f.rosters.EnrollTeam(ctx, seasonID, team.ID)
	if err != nil {
		t.Fatalf("enroll team %s: %v", name, err)
	}

	return team, ts
}

func (f *fixture) seedMember(t *testing.T, teamSeasonID, fullName string, role roster.MemberRole) roster.TeamMember {
	t.Helper()

	member, err := f.rosters.AddMember(context.Background(), AddMemberInput{
		TeamSeasonID: teamSeasonID,
		FullName:     fullName,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("add member %s: %v", fullName, err)
	}

	return member
}

func (f *fixture) submitCreateTeam(t *testing.T, seasonID, divisionID, teamName, captain string) registration.Request {
	t.Helper()

	email := strings.ToLower(strings.ReplaceAll(captain, " ", ".")) + "@example.com"
	req, err := f.registrations.SubmitCreateTeam(context.Background(), SubmitCreateTeamInput{
		SeasonID:   seasonID,
		DivisionID: divisionID,
		TeamName:   teamName,
		Level:      registration.LevelMedium,
		Person:     registration.Person{FullName: captain, Email: email},
	})
	if err != nil {
		t.Fatalf("submit create-team request: %v", err)
	}

	return req
}

func fieldErrorsFrom(t *testing.T, err error) FieldErrors {
	t.Helper()

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	return fe
}
