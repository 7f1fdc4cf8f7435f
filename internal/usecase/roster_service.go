package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/roster"
	idgen "github.com/pitchside/leagueops/internal/platform/id"
	"github.com/pitchside/leagueops/internal/platform/logging"
)

// RosterService manages team identity, per-season enrollment and roster
// membership.
type RosterService struct {
	teamRepo       roster.TeamRepository
	teamSeasonRepo roster.TeamSeasonRepository
	memberRepo     roster.TeamMemberRepository
	divisionRepo   league.DivisionRepository
	seasonRepo     league.SeasonRepository
	matchRepo      match.Repository
	ids            idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewRosterService(
	teamRepo roster.TeamRepository,
	teamSeasonRepo roster.TeamSeasonRepository,
	memberRepo roster.TeamMemberRepository,
	divisionRepo league.DivisionRepository,
	seasonRepo league.SeasonRepository,
	matchRepo match.Repository,
	ids idgen.Generator,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		teamRepo:       teamRepo,
		teamSeasonRepo: teamSeasonRepo,
		memberRepo:     memberRepo,
		divisionRepo:   divisionRepo,
		seasonRepo:     seasonRepo,
		matchRepo:      matchRepo,
		ids:            ids,
		logger:         logger,
		now:            time.Now,
	}
}

type CreateTeamInput struct {
	DivisionID          string
	Name                string
	ShortName           string
	PrimaryContactName  string
	PrimaryContactEmail string
	PrimaryContactPhone string
}

func (s *RosterService) CreateTeam(ctx context.Context, input CreateTeamInput) (roster.Team, error) {
	input.DivisionID = strings.TrimSpace(input.DivisionID)
	input.Name = strings.TrimSpace(input.Name)

	if input.DivisionID == "" {
		return roster.Team{}, FieldErrors{"division": "division id is required"}
	}
	if input.Name == "" {
		return roster.Team{}, FieldErrors{"name": "name is required"}
	}

	if _, exists, err := s.divisionRepo.GetByID(ctx, input.DivisionID); err != nil {
		return roster.Team{}, fmt.Errorf("get division: %w", err)
	} else if !exists {
		return roster.Team{}, fmt.Errorf("%w: division=%s", ErrNotFound, input.DivisionID)
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return roster.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	team := roster.Team{
		ID:                  teamID,
		DivisionID:          input.DivisionID,
		Name:                input.Name,
		ShortName:           strings.TrimSpace(input.ShortName),
		PrimaryContactName:  strings.TrimSpace(input.PrimaryContactName),
		PrimaryContactEmail: strings.TrimSpace(input.PrimaryContactEmail),
		PrimaryContactPhone: strings.TrimSpace(input.PrimaryContactPhone),
		IsActive:            true,
		CreatedAt:           s.now().UTC(),
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return roster.Team{}, duplicateAsFieldError(err, "name", "a team with this name already exists in the division")
	}

	return team, nil
}

type UpdateTeamInput struct {
	TeamID              string
	DivisionID          string
	Name                string
	ShortName           string
	PrimaryContactName  string
	PrimaryContactEmail string
	PrimaryContactPhone string
	IsActive            bool
}

// UpdateTeam rewrites the team record. Moving the team to another division is
// refused once any match references it; the schedule would silently point at
// a team outside its own division otherwise.
func (s *RosterService) UpdateTeam(ctx context.Context, input UpdateTeamInput) (roster.Team, error) {
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.DivisionID = strings.TrimSpace(input.DivisionID)
	input.Name = strings.TrimSpace(input.Name)

	if input.TeamID == "" {
		return roster.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return roster.Team{}, FieldErrors{"name": "name is required"}
	}

	current, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return roster.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	if input.DivisionID != "" && input.DivisionID != current.DivisionID {
		if _, divExists, err := s.divisionRepo.GetByID(ctx, input.DivisionID); err != nil {
			return roster.Team{}, fmt.Errorf("get division: %w", err)
		} else if !divExists {
			return roster.Team{}, fmt.Errorf("%w: division=%s", ErrNotFound, input.DivisionID)
		}

		referenced, err := s.matchRepo.ExistsForTeam(ctx, current.ID)
		if err != nil {
			return roster.Team{}, fmt.Errorf("check team references: %w", err)
		}
		if referenced {
			return roster.Team{}, fmt.Errorf("%w: team has scheduled matches in its division", ErrReferentialConflict)
		}

		current.DivisionID = input.DivisionID
	}

	current.Name = input.Name
	current.ShortName = strings.TrimSpace(input.ShortName)
	current.PrimaryContactName = strings.TrimSpace(input.PrimaryContactName)
	current.PrimaryContactEmail = strings.TrimSpace(input.PrimaryContactEmail)
	current.PrimaryContactPhone = strings.TrimSpace(input.PrimaryContactPhone)
	current.IsActive = input.IsActive

	if err := s.teamRepo.Update(ctx, current); err != nil {
		return roster.Team{}, duplicateAsFieldError(err, "name", "a team with this name already exists in the division")
	}

	return current, nil
}

// DeleteTeam refuses to remove a team that any match still references.
func (s *RosterService) DeleteTeam(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return fmt.Errorf("get team: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	referenced, err := s.matchRepo.ExistsForTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("check team references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: team has scheduled matches", ErrReferentialConflict)
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		if isProtected(err) {
			return fmt.Errorf("%w: team has scheduled matches", ErrReferentialConflict)
		}
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

// EnrollTeam registers a team for a season. The enrollment row is the anchor
// for everything per-season: roster, invite token, future fees.
func (s *RosterService) EnrollTeam(ctx context.Context, seasonID, teamID string) (roster.TeamSeason, error) {
	seasonID = strings.TrimSpace(seasonID)
	teamID = strings.TrimSpace(teamID)

	if seasonID == "" {
		return roster.TeamSeason{}, FieldErrors{"season": "season id is required"}
	}
	if teamID == "" {
		return roster.TeamSeason{}, FieldErrors{"team": "team id is required"}
	}

	if _, exists, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return roster.TeamSeason{}, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return roster.TeamSeason{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return roster.TeamSeason{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return roster.TeamSeason{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	tsID, err := s.ids.NewID()
	if err != nil {
		return roster.TeamSeason{}, fmt.Errorf("generate team season id: %w", err)
	}

	ts := roster.TeamSeason{
		ID:       tsID,
		SeasonID: seasonID,
		TeamID:   teamID,
		Status:   roster.TeamSeasonActive,
	}

	if err := s.teamSeasonRepo.Create(ctx, ts); err != nil {
		return roster.TeamSeason{}, duplicateAsFieldError(err, "team", "team is already enrolled in the season")
	}

	return ts, nil
}

// WithdrawTeam flips the enrollment to WITHDRAWN. The row stays; history and
// fee anchoring survive a mid-season exit.
func (s *RosterService) WithdrawTeam(ctx context.Context, teamSeasonID string) (roster.TeamSeason, error) {
	teamSeasonID = strings.TrimSpace(teamSeasonID)
	if teamSeasonID == "" {
		return roster.TeamSeason{}, fmt.Errorf("%w: team season id is required", ErrInvalidInput)
	}

	ts, exists, err := s.teamSeasonRepo.GetByID(ctx, teamSeasonID)
	if err != nil {
		return roster.TeamSeason{}, fmt.Errorf("get team season: %w", err)
	}
	if !exists {
		return roster.TeamSeason{}, fmt.Errorf("%w: team_season=%s", ErrNotFound, teamSeasonID)
	}
	if ts.Status == roster.TeamSeasonWithdrawn {
		return roster.TeamSeason{}, fmt.Errorf("%w: enrollment is already withdrawn", ErrInvalidState)
	}

	ts.Status = roster.TeamSeasonWithdrawn
	if err := s.teamSeasonRepo.Update(ctx, ts); err != nil {
		return roster.TeamSeason{}, fmt.Errorf("update team season: %w", err)
	}

	return ts, nil
}

type AddMemberInput struct {
	TeamSeasonID string
	FullName     string
	Role         roster.MemberRole
	JerseyNumber *int
	UserRef      string
}

func (s *RosterService) AddMember(ctx context.Context, input AddMemberInput) (roster.TeamMember, error) {
	input.TeamSeasonID = strings.TrimSpace(input.TeamSeasonID)
	input.FullName = strings.TrimSpace(input.FullName)

	if input.TeamSeasonID == "" {
		return roster.TeamMember{}, FieldErrors{"team_season": "team season id is required"}
	}
	if input.FullName == "" {
		return roster.TeamMember{}, FieldErrors{"full_name": "full name is required"}
	}
	if input.Role == "" {
		input.Role = roster.RolePlayer
	}
	if input.JerseyNumber != nil && (*input.JerseyNumber < 0 || *input.JerseyNumber > 99) {
		return roster.TeamMember{}, FieldErrors{"jersey_number": "jersey number must be between 0 and 99"}
	}

	if _, exists, err := s.teamSeasonRepo.GetByID(ctx, input.TeamSeasonID); err != nil {
		return roster.TeamMember{}, fmt.Errorf("get team season: %w", err)
	} else if !exists {
		return roster.TeamMember{}, fmt.Errorf("%w: team_season=%s", ErrNotFound, input.TeamSeasonID)
	}

	memberID, err := s.ids.NewID()
	if err != nil {
		return roster.TeamMember{}, fmt.Errorf("generate team member id: %w", err)
	}

	member := roster.TeamMember{
		ID:           memberID,
		TeamSeasonID: input.TeamSeasonID,
		UserRef:      strings.TrimSpace(input.UserRef),
		Role:         input.Role,
		FullName:     input.FullName,
		JerseyNumber: input.JerseyNumber,
		IsActive:     true,
		JoinedAt:     s.now().UTC(),
	}
	if err := member.Validate(); err != nil {
		return roster.TeamMember{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return roster.TeamMember{}, duplicateAsFieldError(err, "full_name", "a member with this name is already on the roster")
	}

	return member, nil
}

func (s *RosterService) DeactivateMember(ctx context.Context, memberID string) (roster.TeamMember, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return roster.TeamMember{}, fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}

	member, exists, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return roster.TeamMember{}, fmt.Errorf("get team member: %w", err)
	}
	if !exists {
		return roster.TeamMember{}, fmt.Errorf("%w: member=%s", ErrNotFound, memberID)
	}

	member.IsActive = false
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return roster.TeamMember{}, fmt.Errorf("update team member: %w", err)
	}

	return member, nil
}

func (s *RosterService) Roster(ctx context.Context, teamSeasonID string) ([]roster.TeamMember, error) {
	teamSeasonID = strings.TrimSpace(teamSeasonID)
	if teamSeasonID == "" {
		return nil, fmt.Errorf("%w: team season id is required", ErrInvalidInput)
	}

	members, err := s.memberRepo.ListByTeamSeason(ctx, teamSeasonID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	return members, nil
}
