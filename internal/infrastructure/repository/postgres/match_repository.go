package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/leagueops/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	const query = `
		INSERT INTO matches (id, season_id, division_id, venue_id,
			home_team_id, away_team_id, starts_at, status, round_label, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		m.ID, m.SeasonID, m.DivisionID, m.VenueID,
		m.HomeTeamID, m.AwayTeamID, m.StartsAt, string(m.Status),
		m.RoundLabel, m.Notes, m.CreatedAt,
	); err != nil {
		return fmt.Errorf("create match: %w", translate(err))
	}

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	const query = `
		UPDATE matches SET season_id = $2, division_id = $3, venue_id = $4,
			home_team_id = $5, away_team_id = $6, starts_at = $7, status = $8,
			round_label = $9, notes = $10
		WHERE id = $1`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		m.ID, m.SeasonID, m.DivisionID, m.VenueID,
		m.HomeTeamID, m.AwayTeamID, m.StartsAt, string(m.Status),
		m.RoundLabel, m.Notes,
	); err != nil {
		return fmt.Errorf("update match: %w", translate(err))
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	const query = `
		SELECT id, season_id, division_id, venue_id, home_team_id, away_team_id,
			starts_at, status, round_label, notes, created_at
		FROM matches WHERE id = $1`
	var model matchModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID string) ([]match.Match, error) {
	const query = `
		SELECT id, season_id, division_id, venue_id, home_team_id, away_team_id,
			starts_at, status, round_label, notes, created_at
		FROM matches WHERE season_id = $1 ORDER BY starts_at, id`
	var models []matchModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, seasonID); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	matches := make([]match.Match, 0, len(models))
	for _, model := range models {
		matches = append(matches, model.toDomain())
	}

	return matches, nil
}

func (r *MatchRepository) ExistsForTeam(ctx context.Context, teamID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM matches WHERE home_team_id = $1 OR away_team_id = $1
		)`
	var exists bool
	if err := q(ctx, r.db).GetContext(ctx, &exists, query, teamID); err != nil {
		return false, fmt.Errorf("check matches for team: %w", err)
	}

	return exists, nil
}

func (r *MatchRepository) ExistsForVenue(ctx context.Context, venueID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM matches WHERE venue_id = $1)`
	var exists bool
	if err := q(ctx, r.db).GetContext(ctx, &exists, query, venueID); err != nil {
		return false, fmt.Errorf("check matches for venue: %w", err)
	}

	return exists, nil
}

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) GetByMatch(ctx context.Context, matchID string) (match.Result, bool, error) {
	const query = `
		SELECT id, match_id, home_score, away_score, is_forfeit,
			recorded_by, recorded_at, updated_at
		FROM match_results WHERE match_id = $1`
	var model resultModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, matchID); err != nil {
		if isNotFound(err) {
			return match.Result{}, false, nil
		}
		return match.Result{}, false, fmt.Errorf("get match result: %w", err)
	}

	return model.toDomain(), true, nil
}

// Upsert keys the conflict on match_id so corrections rewrite the single
// result row in place.
func (r *ResultRepository) Upsert(ctx context.Context, result match.Result) error {
	const query = `
		INSERT INTO match_results (id, match_id, home_score, away_score, is_forfeit,
			recorded_by, recorded_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (match_id) DO UPDATE SET
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			is_forfeit = EXCLUDED.is_forfeit,
			recorded_by = EXCLUDED.recorded_by,
			updated_at = EXCLUDED.updated_at`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		result.ID, result.MatchID, result.HomeScore, result.AwayScore,
		result.IsForfeit, result.RecordedBy, result.RecordedAt, result.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert match result: %w", translate(err))
	}

	return nil
}

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) CreateGoal(ctx context.Context, event match.GoalEvent) error {
	const query = `
		INSERT INTO goal_events (id, match_id, team_id, player_id, minute, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		event.ID, event.MatchID, event.TeamID, event.PlayerID, event.Minute, event.CreatedAt,
	); err != nil {
		return fmt.Errorf("create goal event: %w", translate(err))
	}

	return nil
}

func (r *EventRepository) CreateCard(ctx context.Context, event match.CardEvent) error {
	const query = `
		INSERT INTO card_events (id, match_id, team_id, player_id, card, minute, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		event.ID, event.MatchID, event.TeamID, event.PlayerID,
		string(event.Card), event.Minute, event.Note, event.CreatedAt,
	); err != nil {
		return fmt.Errorf("create card event: %w", translate(err))
	}

	return nil
}

func (r *EventRepository) CreateAppearance(ctx context.Context, appearance match.Appearance) error {
	const query = `
		INSERT INTO appearances (id, match_id, team_id, player_id)
		VALUES ($1, $2, $3, $4)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		appearance.ID, appearance.MatchID, appearance.TeamID, appearance.PlayerID,
	); err != nil {
		return fmt.Errorf("create appearance: %w", translate(err))
	}

	return nil
}

func (r *EventRepository) ListGoalsByMatch(ctx context.Context, matchID string) ([]match.GoalEvent, error) {
	const query = `
		SELECT id, match_id, team_id, player_id, minute, created_at
		FROM goal_events WHERE match_id = $1 ORDER BY created_at, id`
	var models []goalEventModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, matchID); err != nil {
		return nil, fmt.Errorf("list goal events: %w", err)
	}

	events := make([]match.GoalEvent, 0, len(models))
	for _, model := range models {
		events = append(events, model.toDomain())
	}

	return events, nil
}

func (r *EventRepository) ListCardsByMatch(ctx context.Context, matchID string) ([]match.CardEvent, error) {
	const query = `
		SELECT id, match_id, team_id, player_id, card, minute, note, created_at
		FROM card_events WHERE match_id = $1 ORDER BY created_at, id`
	var models []cardEventModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, matchID); err != nil {
		return nil, fmt.Errorf("list card events: %w", err)
	}

	events := make([]match.CardEvent, 0, len(models))
	for _, model := range models {
		events = append(events, model.toDomain())
	}

	return events, nil
}

func (r *EventRepository) ListAppearancesByMatch(ctx context.Context, matchID string) ([]match.Appearance, error) {
	const query = `
		SELECT id, match_id, team_id, player_id
		FROM appearances WHERE match_id = $1 ORDER BY id`
	var models []appearanceModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, matchID); err != nil {
		return nil, fmt.Errorf("list appearances: %w", err)
	}

	appearances := make([]match.Appearance, 0, len(models))
	for _, model := range models {
		appearances = append(appearances, model.toDomain())
	}

	return appearances, nil
}
