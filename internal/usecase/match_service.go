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

// MatchService schedules fixtures, records the single result per match and
// the in-match events, all validated against the hierarchy.
type MatchService struct {
	matchRepo      match.Repository
	resultRepo     match.ResultRepository
	eventRepo      match.EventRepository
	divisionRepo   league.DivisionRepository
	venueRepo      league.VenueRepository
	teamRepo       roster.TeamRepository
	teamSeasonRepo roster.TeamSeasonRepository
	memberRepo     roster.TeamMemberRepository
	ids            idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	resultRepo match.ResultRepository,
	eventRepo match.EventRepository,
	divisionRepo league.DivisionRepository,
	venueRepo league.VenueRepository,
	teamRepo roster.TeamRepository,
	teamSeasonRepo roster.TeamSeasonRepository,
	memberRepo roster.TeamMemberRepository,
	ids idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:      matchRepo,
		resultRepo:     resultRepo,
		eventRepo:      eventRepo,
		divisionRepo:   divisionRepo,
		venueRepo:      venueRepo,
		teamRepo:       teamRepo,
		teamSeasonRepo: teamSeasonRepo,
		memberRepo:     memberRepo,
		ids:            ids,
		logger:         logger,
		now:            time.Now,
	}
}

type UpsertMatchInput struct {
	MatchID    string // empty for create
	SeasonID   string
	DivisionID string
	HomeTeamID string
	AwayTeamID string
	VenueID    *string
	StartsAt   time.Time
	Status     match.Status
	RoundLabel string
	Notes      string
}

// CreateOrUpdateMatch validates structural consistency and stores the
// fixture. Violations are collected per field so a caller can surface all of
// them at once: home vs away, division-in-season, then each side's division.
//
// Status transitions are not enforced here; the stored value is whatever the
// caller chose. Legality of SCHEDULED -> FINAL and the POSTPONED loop is an
// admin policy hook.
func (s *MatchService) CreateOrUpdateMatch(ctx context.Context, input UpsertMatchInput) (match.Match, error) {
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.SeasonID = strings.TrimSpace(input.SeasonID)
	input.DivisionID = strings.TrimSpace(input.DivisionID)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	if input.Status == "" {
		input.Status = match.StatusScheduled
	}

	errs := FieldErrors{}
	if input.SeasonID == "" {
		errs["season"] = "season id is required"
	}
	if input.DivisionID == "" {
		errs["division"] = "division id is required"
	}
	if input.HomeTeamID == "" {
		errs["home_team"] = "home team id is required"
	}
	if input.AwayTeamID == "" {
		errs["away_team"] = "away team id is required"
	}
	if input.StartsAt.IsZero() {
		errs["starts_at"] = "start time is required"
	}
	if !match.ValidStatus(input.Status) {
		errs["status"] = fmt.Sprintf("status %q is not valid", input.Status)
	}
	if len(errs) > 0 {
		return match.Match{}, errs
	}

	division, divExists, err := s.divisionRepo.GetByID(ctx, input.DivisionID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get division: %w", err)
	}
	if !divExists {
		return match.Match{}, fmt.Errorf("%w: division=%s", ErrNotFound, input.DivisionID)
	}

	home, homeExists, err := s.teamRepo.GetByID(ctx, input.HomeTeamID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get home team: %w", err)
	}
	if !homeExists {
		return match.Match{}, fmt.Errorf("%w: home_team=%s", ErrNotFound, input.HomeTeamID)
	}

	away, awayExists, err := s.teamRepo.GetByID(ctx, input.AwayTeamID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get away team: %w", err)
	}
	if !awayExists {
		return match.Match{}, fmt.Errorf("%w: away_team=%s", ErrNotFound, input.AwayTeamID)
	}

	if input.VenueID != nil {
		venueID := strings.TrimSpace(*input.VenueID)
		if venueID == "" {
			input.VenueID = nil
		} else {
			if _, venueExists, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
				return match.Match{}, fmt.Errorf("get venue: %w", err)
			} else if !venueExists {
				return match.Match{}, fmt.Errorf("%w: venue=%s", ErrNotFound, venueID)
			}
			input.VenueID = &venueID
		}
	}

	if input.HomeTeamID == input.AwayTeamID {
		errs["away_team"] = "home and away team must differ"
	}
	if division.SeasonID != input.SeasonID {
		errs["division"] = "division must belong to the match season"
	}
	if home.DivisionID != input.DivisionID {
		errs["home_team"] = "home team must belong to the match division"
	}
	if away.DivisionID != input.DivisionID {
		errs["away_team"] = "away team must belong to the match division"
	}
	if len(errs) > 0 {
		return match.Match{}, errs
	}

	if input.MatchID != "" {
		existing, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get match: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
		}

		existing.SeasonID = input.SeasonID
		existing.DivisionID = input.DivisionID
		existing.VenueID = input.VenueID
		existing.HomeTeamID = input.HomeTeamID
		existing.AwayTeamID = input.AwayTeamID
		existing.StartsAt = input.StartsAt
		existing.Status = input.Status
		existing.RoundLabel = strings.TrimSpace(input.RoundLabel)
		existing.Notes = input.Notes

		if err := s.matchRepo.Update(ctx, existing); err != nil {
			return match.Match{}, fmt.Errorf("update match: %w", err)
		}

		return existing, nil
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	m := match.Match{
		ID:         matchID,
		SeasonID:   input.SeasonID,
		DivisionID: input.DivisionID,
		VenueID:    input.VenueID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		StartsAt:   input.StartsAt,
		Status:     input.Status,
		RoundLabel: strings.TrimSpace(input.RoundLabel),
		Notes:      input.Notes,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return m, nil
}

type RecordResultInput struct {
	MatchID    string
	HomeScore  int
	AwayScore  int
	IsForfeit  bool
	RecordedBy string
}

// RecordResult keeps exactly one result row per match; re-recording updates
// the row in place, last write wins. Scores are stored as given — negative
// values are a league policy question, not enforced here.
func (s *MatchService) RecordResult(ctx context.Context, input RecordResultInput) (match.Result, error) {
	input.MatchID = strings.TrimSpace(input.MatchID)
	if input.MatchID == "" {
		return match.Result{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, input.MatchID); err != nil {
		return match.Result{}, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return match.Result{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}

	now := s.now().UTC()

	result, exists, err := s.resultRepo.GetByMatch(ctx, input.MatchID)
	if err != nil {
		return match.Result{}, fmt.Errorf("get match result: %w", err)
	}
	if !exists {
		resultID, err := s.ids.NewID()
		if err != nil {
			return match.Result{}, fmt.Errorf("generate result id: %w", err)
		}
		result = match.Result{
			ID:         resultID,
			MatchID:    input.MatchID,
			RecordedAt: now,
		}
	}

	result.HomeScore = input.HomeScore
	result.AwayScore = input.AwayScore
	result.IsForfeit = input.IsForfeit
	result.RecordedBy = strings.TrimSpace(input.RecordedBy)
	result.UpdatedAt = now

	if err := s.resultRepo.Upsert(ctx, result); err != nil {
		return match.Result{}, fmt.Errorf("upsert match result: %w", err)
	}

	return result, nil
}

type RecordGoalInput struct {
	MatchID  string
	PlayerID string
	Minute   *int
}

func (s *MatchService) RecordGoal(ctx context.Context, input RecordGoalInput) (match.GoalEvent, error) {
	teamID, err := s.resolveEventTeam(ctx, input.MatchID, input.PlayerID)
	if err != nil {
		return match.GoalEvent{}, err
	}

	eventID, err := s.ids.NewID()
	if err != nil {
		return match.GoalEvent{}, fmt.Errorf("generate goal event id: %w", err)
	}

	event := match.GoalEvent{
		ID:        eventID,
		MatchID:   strings.TrimSpace(input.MatchID),
		TeamID:    teamID,
		PlayerID:  strings.TrimSpace(input.PlayerID),
		Minute:    input.Minute,
		CreatedAt: s.now().UTC(),
	}

	if err := s.eventRepo.CreateGoal(ctx, event); err != nil {
		return match.GoalEvent{}, fmt.Errorf("create goal event: %w", err)
	}

	return event, nil
}

type RecordCardInput struct {
	MatchID  string
	PlayerID string
	Card     match.Card
	Minute   *int
	Note     string
}

func (s *MatchService) RecordCard(ctx context.Context, input RecordCardInput) (match.CardEvent, error) {
	if input.Card != match.CardYellow && input.Card != match.CardRed {
		return match.CardEvent{}, FieldErrors{"card": "card must be YELLOW or RED"}
	}

	teamID, err := s.resolveEventTeam(ctx, input.MatchID, input.PlayerID)
	if err != nil {
		return match.CardEvent{}, err
	}

	eventID, err := s.ids.NewID()
	if err != nil {
		return match.CardEvent{}, fmt.Errorf("generate card event id: %w", err)
	}

	event := match.CardEvent{
		ID:        eventID,
		MatchID:   strings.TrimSpace(input.MatchID),
		TeamID:    teamID,
		PlayerID:  strings.TrimSpace(input.PlayerID),
		Card:      input.Card,
		Minute:    input.Minute,
		Note:      strings.TrimSpace(input.Note),
		CreatedAt: s.now().UTC(),
	}

	if err := s.eventRepo.CreateCard(ctx, event); err != nil {
		return match.CardEvent{}, fmt.Errorf("create card event: %w", err)
	}

	return event, nil
}

type RecordAppearanceInput struct {
	MatchID  string
	PlayerID string
}

func (s *MatchService) RecordAppearance(ctx context.Context, input RecordAppearanceInput) (match.Appearance, error) {
	teamID, err := s.resolveEventTeam(ctx, input.MatchID, input.PlayerID)
	if err != nil {
		return match.Appearance{}, err
	}

	appearanceID, err := s.ids.NewID()
	if err != nil {
		return match.Appearance{}, fmt.Errorf("generate appearance id: %w", err)
	}

	appearance := match.Appearance{
		ID:       appearanceID,
		MatchID:  strings.TrimSpace(input.MatchID),
		TeamID:   teamID,
		PlayerID: strings.TrimSpace(input.PlayerID),
	}

	if err := s.eventRepo.CreateAppearance(ctx, appearance); err != nil {
		return match.Appearance{}, duplicateAsFieldError(err, "player", "appearance already recorded for this player")
	}

	return appearance, nil
}

// resolveEventTeam derives the event's team from the player's enrollment and
// rejects players fielded by neither match side. The derived team always
// overrides whatever a caller might have supplied.
func (s *MatchService) resolveEventTeam(ctx context.Context, matchID, playerID string) (string, error) {
	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)

	errs := FieldErrors{}
	if matchID == "" {
		errs["match"] = "match id is required"
	}
	if playerID == "" {
		errs["player"] = "player id is required"
	}
	if len(errs) > 0 {
		return "", errs
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return "", fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	member, exists, err := s.memberRepo.GetByID(ctx, playerID)
	if err != nil {
		return "", fmt.Errorf("get team member: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	ts, exists, err := s.teamSeasonRepo.GetByID(ctx, member.TeamSeasonID)
	if err != nil {
		return "", fmt.Errorf("get team season: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: team_season=%s", ErrNotFound, member.TeamSeasonID)
	}

	if ts.TeamID != m.HomeTeamID && ts.TeamID != m.AwayTeamID {
		return "", FieldErrors{"player": "player is not fielded by either match team"}
	}

	return ts.TeamID, nil
}

// ScheduleEntry is the public read shape for a season's fixture list:
// the match plus resolved names and the inline result when one exists.
type ScheduleEntry struct {
	Match        match.Match
	HomeTeamName string
	AwayTeamName string
	DivisionName string
	VenueName    string
	Result       *match.Result
}

func (s *MatchService) SeasonSchedule(ctx context.Context, seasonID string) ([]ScheduleEntry, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	entries := make([]ScheduleEntry, 0, len(matches))
	for _, m := range matches {
		entry := ScheduleEntry{Match: m}

		if home, ok, err := s.teamRepo.GetByID(ctx, m.HomeTeamID); err != nil {
			return nil, fmt.Errorf("get home team: %w", err)
		} else if ok {
			entry.HomeTeamName = home.Name
		}
		if away, ok, err := s.teamRepo.GetByID(ctx, m.AwayTeamID); err != nil {
			return nil, fmt.Errorf("get away team: %w", err)
		} else if ok {
			entry.AwayTeamName = away.Name
		}
		if division, ok, err := s.divisionRepo.GetByID(ctx, m.DivisionID); err != nil {
			return nil, fmt.Errorf("get division: %w", err)
		} else if ok {
			entry.DivisionName = division.Name
		}
		if m.VenueID != nil {
			if venue, ok, err := s.venueRepo.GetByID(ctx, *m.VenueID); err != nil {
				return nil, fmt.Errorf("get venue: %w", err)
			} else if ok {
				entry.VenueName = venue.Name
			}
		}
		if result, ok, err := s.resultRepo.GetByMatch(ctx, m.ID); err != nil {
			return nil, fmt.Errorf("get match result: %w", err)
		} else if ok {
			entry.Result = &result
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
