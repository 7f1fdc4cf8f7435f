package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/leagueops/internal/domain/invite"
)

type inviteTokenModel struct {
	ID           string     `db:"id"`
	TeamSeasonID string     `db:"team_season_id"`
	Value        string     `db:"value"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	RotatedAt    *time.Time `db:"rotated_at"`
}

func (m inviteTokenModel) toDomain() invite.Token {
	return invite.Token{
		ID:           m.ID,
		TeamSeasonID: m.TeamSeasonID,
		Value:        m.Value,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		RotatedAt:    m.RotatedAt,
	}
}

type InviteRepository struct {
	db *sqlx.DB
}

func NewInviteRepository(db *sqlx.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(ctx context.Context, token invite.Token) error {
	const query = `
		INSERT INTO invite_tokens (id, team_season_id, value, is_active, created_at, rotated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		token.ID, token.TeamSeasonID, token.Value, token.IsActive,
		token.CreatedAt, token.RotatedAt,
	); err != nil {
		return fmt.Errorf("create invite token: %w", translate(err))
	}

	return nil
}

func (r *InviteRepository) GetByTeamSeason(ctx context.Context, teamSeasonID string) (invite.Token, bool, error) {
	const query = `
		SELECT id, team_season_id, value, is_active, created_at, rotated_at
		FROM invite_tokens WHERE team_season_id = $1`
	var model inviteTokenModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, teamSeasonID); err != nil {
		if isNotFound(err) {
			return invite.Token{}, false, nil
		}
		return invite.Token{}, false, fmt.Errorf("get invite token by team season: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *InviteRepository) GetByValue(ctx context.Context, value string) (invite.Token, bool, error) {
	const query = `
		SELECT id, team_season_id, value, is_active, created_at, rotated_at
		FROM invite_tokens WHERE value = $1`
	var model inviteTokenModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, value); err != nil {
		if isNotFound(err) {
			return invite.Token{}, false, nil
		}
		return invite.Token{}, false, fmt.Errorf("get invite token by value: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *InviteRepository) Update(ctx context.Context, token invite.Token) error {
	const query = `
		UPDATE invite_tokens SET value = $2, is_active = $3, rotated_at = $4
		WHERE id = $1`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		token.ID, token.Value, token.IsActive, token.RotatedAt,
	); err != nil {
		return fmt.Errorf("update invite token: %w", translate(err))
	}

	return nil
}
