package memory

import (
	"context"

	"github.com/pitchside/leagueops/internal/domain/invite"
	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/registration"
	"github.com/pitchside/leagueops/internal/domain/roster"
)

// Per-entity repository views over one shared Store, so every repository
// participates in the same snapshot transactions.

type OrganizationRepository struct{ store *Store }

func NewOrganizationRepository(store *Store) *OrganizationRepository {
	return &OrganizationRepository{store: store}
}

func (r *OrganizationRepository) Create(ctx context.Context, org league.Organization) error {
	return r.store.CreateOrganization(ctx, org)
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (league.Organization, bool, error) {
	return r.store.GetOrganization(ctx, id)
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (league.Organization, bool, error) {
	return r.store.GetOrganizationBySlug(ctx, slug)
}

func (r *OrganizationRepository) List(ctx context.Context) ([]league.Organization, error) {
	return r.store.ListOrganizations(ctx)
}

type SeasonRepository struct{ store *Store }

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

func (r *SeasonRepository) Create(ctx context.Context, season league.Season) error {
	return r.store.CreateSeason(ctx, season)
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (league.Season, bool, error) {
	return r.store.GetSeason(ctx, id)
}

func (r *SeasonRepository) ListByOrganization(ctx context.Context, orgID string) ([]league.Season, error) {
	return r.store.ListSeasonsByOrganization(ctx, orgID)
}

type DivisionRepository struct{ store *Store }

func NewDivisionRepository(store *Store) *DivisionRepository {
	return &DivisionRepository{store: store}
}

func (r *DivisionRepository) Create(ctx context.Context, division league.Division) error {
	return r.store.CreateDivision(ctx, division)
}

func (r *DivisionRepository) GetByID(ctx context.Context, id string) (league.Division, bool, error) {
	return r.store.GetDivision(ctx, id)
}

func (r *DivisionRepository) ListBySeason(ctx context.Context, seasonID string) ([]league.Division, error) {
	return r.store.ListDivisionsBySeason(ctx, seasonID)
}

type VenueRepository struct{ store *Store }

func NewVenueRepository(store *Store) *VenueRepository {
	return &VenueRepository{store: store}
}

func (r *VenueRepository) Create(ctx context.Context, venue league.Venue) error {
	return r.store.CreateVenue(ctx, venue)
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (league.Venue, bool, error) {
	return r.store.GetVenue(ctx, id)
}

func (r *VenueRepository) ListByOrganization(ctx context.Context, orgID string) ([]league.Venue, error) {
	return r.store.ListVenuesByOrganization(ctx, orgID)
}

func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteVenue(ctx, id)
}

type TeamRepository struct{ store *Store }

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(ctx context.Context, team roster.Team) error {
	return r.store.CreateTeam(ctx, team)
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (roster.Team, bool, error) {
	return r.store.GetTeam(ctx, id)
}

func (r *TeamRepository) ListByDivision(ctx context.Context, divisionID string) ([]roster.Team, error) {
	return r.store.ListTeamsByDivision(ctx, divisionID)
}

func (r *TeamRepository) Update(ctx context.Context, team roster.Team) error {
	return r.store.UpdateTeam(ctx, team)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteTeam(ctx, id)
}

type TeamSeasonRepository struct{ store *Store }

func NewTeamSeasonRepository(store *Store) *TeamSeasonRepository {
	return &TeamSeasonRepository{store: store}
}

func (r *TeamSeasonRepository) Create(ctx context.Context, ts roster.TeamSeason) error {
	return r.store.CreateTeamSeason(ctx, ts)
}

func (r *TeamSeasonRepository) GetByID(ctx context.Context, id string) (roster.TeamSeason, bool, error) {
	return r.store.GetTeamSeason(ctx, id)
}

func (r *TeamSeasonRepository) GetBySeasonAndTeam(ctx context.Context, seasonID, teamID string) (roster.TeamSeason, bool, error) {
	return r.store.GetTeamSeasonBySeasonAndTeam(ctx, seasonID, teamID)
}

func (r *TeamSeasonRepository) ListBySeason(ctx context.Context, seasonID string) ([]roster.TeamSeason, error) {
	return r.store.ListTeamSeasonsBySeason(ctx, seasonID)
}

func (r *TeamSeasonRepository) Update(ctx context.Context, ts roster.TeamSeason) error {
	return r.store.UpdateTeamSeason(ctx, ts)
}

type TeamMemberRepository struct{ store *Store }

func NewTeamMemberRepository(store *Store) *TeamMemberRepository {
	return &TeamMemberRepository{store: store}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member roster.TeamMember) error {
	return r.store.CreateTeamMember(ctx, member)
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id string) (roster.TeamMember, bool, error) {
	return r.store.GetTeamMember(ctx, id)
}

func (r *TeamMemberRepository) ListByTeamSeason(ctx context.Context, teamSeasonID string) ([]roster.TeamMember, error) {
	return r.store.ListTeamMembersByTeamSeason(ctx, teamSeasonID)
}

func (r *TeamMemberRepository) Update(ctx context.Context, member roster.TeamMember) error {
	return r.store.UpdateTeamMember(ctx, member)
}

type MatchRepository struct{ store *Store }

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	return r.store.CreateMatch(ctx, m)
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	return r.store.UpdateMatch(ctx, m)
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	return r.store.GetMatch(ctx, id)
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID string) ([]match.Match, error) {
	return r.store.ListMatchesBySeason(ctx, seasonID)
}

func (r *MatchRepository) ExistsForTeam(ctx context.Context, teamID string) (bool, error) {
	return r.store.MatchExistsForTeam(ctx, teamID)
}

func (r *MatchRepository) ExistsForVenue(ctx context.Context, venueID string) (bool, error) {
	return r.store.MatchExistsForVenue(ctx, venueID)
}

type ResultRepository struct{ store *Store }

func NewResultRepository(store *Store) *ResultRepository {
	return &ResultRepository{store: store}
}

func (r *ResultRepository) GetByMatch(ctx context.Context, matchID string) (match.Result, bool, error) {
	return r.store.GetResultByMatch(ctx, matchID)
}

func (r *ResultRepository) Upsert(ctx context.Context, result match.Result) error {
	return r.store.UpsertResult(ctx, result)
}

type EventRepository struct{ store *Store }

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) CreateGoal(ctx context.Context, event match.GoalEvent) error {
	return r.store.CreateGoal(ctx, event)
}

func (r *EventRepository) CreateCard(ctx context.Context, event match.CardEvent) error {
	return r.store.CreateCard(ctx, event)
}

func (r *EventRepository) CreateAppearance(ctx context.Context, appearance match.Appearance) error {
	return r.store.CreateAppearance(ctx, appearance)
}

func (r *EventRepository) ListGoalsByMatch(ctx context.Context, matchID string) ([]match.GoalEvent, error) {
	return r.store.ListGoalsByMatch(ctx, matchID)
}

func (r *EventRepository) ListCardsByMatch(ctx context.Context, matchID string) ([]match.CardEvent, error) {
	return r.store.ListCardsByMatch(ctx, matchID)
}

func (r *EventRepository) ListAppearancesByMatch(ctx context.Context, matchID string) ([]match.Appearance, error) {
	return r.store.ListAppearancesByMatch(ctx, matchID)
}

type InviteRepository struct{ store *Store }

func NewInviteRepository(store *Store) *InviteRepository {
	return &InviteRepository{store: store}
}

func (r *InviteRepository) Create(ctx context.Context, token invite.Token) error {
	return r.store.CreateInvite(ctx, token)
}

func (r *InviteRepository) GetByTeamSeason(ctx context.Context, teamSeasonID string) (invite.Token, bool, error) {
	return r.store.GetInviteByTeamSeason(ctx, teamSeasonID)
}

func (r *InviteRepository) GetByValue(ctx context.Context, value string) (invite.Token, bool, error) {
	return r.store.GetInviteByValue(ctx, value)
}

func (r *InviteRepository) Update(ctx context.Context, token invite.Token) error {
	return r.store.UpdateInvite(ctx, token)
}

type RegistrationRepository struct{ store *Store }

func NewRegistrationRepository(store *Store) *RegistrationRepository {
	return &RegistrationRepository{store: store}
}

func (r *RegistrationRepository) Create(ctx context.Context, req registration.Request) error {
	return r.store.CreateRequest(ctx, req)
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (registration.Request, bool, error) {
	return r.store.GetRequest(ctx, id)
}

func (r *RegistrationRepository) ListByStatus(ctx context.Context, status registration.Status) ([]registration.Request, error) {
	return r.store.ListRequestsByStatus(ctx, status)
}

func (r *RegistrationRepository) Transition(ctx context.Context, req registration.Request, expect registration.Status) (bool, error) {
	return r.store.TransitionRequest(ctx, req, expect)
}
