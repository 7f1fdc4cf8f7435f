package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/leagueops/internal/domain/roster"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team roster.Team) error {
	const query = `
		INSERT INTO teams (id, division_id, name, short_name,
			primary_contact_name, primary_contact_email, primary_contact_phone,
			is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		team.ID, team.DivisionID, team.Name, team.ShortName,
		team.PrimaryContactName, team.PrimaryContactEmail, team.PrimaryContactPhone,
		team.IsActive, team.CreatedAt,
	); err != nil {
		return fmt.Errorf("create team: %w", translate(err))
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (roster.Team, bool, error) {
	const query = `
		SELECT id, division_id, name, short_name,
			primary_contact_name, primary_contact_email, primary_contact_phone,
			is_active, created_at
		FROM teams WHERE id = $1`
	var model teamModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return roster.Team{}, false, nil
		}
		return roster.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *TeamRepository) ListByDivision(ctx context.Context, divisionID string) ([]roster.Team, error) {
	const query = `
		SELECT id, division_id, name, short_name,
			primary_contact_name, primary_contact_email, primary_contact_phone,
			is_active, created_at
		FROM teams WHERE division_id = $1 ORDER BY name`
	var models []teamModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, divisionID); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teams := make([]roster.Team, 0, len(models))
	for _, model := range models {
		teams = append(teams, model.toDomain())
	}

	return teams, nil
}

func (r *TeamRepository) Update(ctx context.Context, team roster.Team) error {
	const query = `
		UPDATE teams SET division_id = $2, name = $3, short_name = $4,
			primary_contact_name = $5, primary_contact_email = $6, primary_contact_phone = $7,
			is_active = $8
		WHERE id = $1`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		team.ID, team.DivisionID, team.Name, team.ShortName,
		team.PrimaryContactName, team.PrimaryContactEmail, team.PrimaryContactPhone,
		team.IsActive,
	); err != nil {
		return fmt.Errorf("update team: %w", translate(err))
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM teams WHERE id = $1`
	if _, err := q(ctx, r.db).ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete team: %w", translate(err))
	}

	return nil
}

type TeamSeasonRepository struct {
	db *sqlx.DB
}

func NewTeamSeasonRepository(db *sqlx.DB) *TeamSeasonRepository {
	return &TeamSeasonRepository{db: db}
}

func (r *TeamSeasonRepository) Create(ctx context.Context, ts roster.TeamSeason) error {
	const query = `
		INSERT INTO team_seasons (id, season_id, team_id, status)
		VALUES ($1, $2, $3, $4)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		ts.ID, ts.SeasonID, ts.TeamID, string(ts.Status),
	); err != nil {
		return fmt.Errorf("create team season: %w", translate(err))
	}

	return nil
}

func (r *TeamSeasonRepository) GetByID(ctx context.Context, id string) (roster.TeamSeason, bool, error) {
	const query = `
		SELECT id, season_id, team_id, status
		FROM team_seasons WHERE id = $1`
	var model teamSeasonModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return roster.TeamSeason{}, false, nil
		}
		return roster.TeamSeason{}, false, fmt.Errorf("get team season: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *TeamSeasonRepository) GetBySeasonAndTeam(ctx context.Context, seasonID, teamID string) (roster.TeamSeason, bool, error) {
	const query = `
		SELECT id, season_id, team_id, status
		FROM team_seasons WHERE season_id = $1 AND team_id = $2`
	var model teamSeasonModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, seasonID, teamID); err != nil {
		if isNotFound(err) {
			return roster.TeamSeason{}, false, nil
		}
		return roster.TeamSeason{}, false, fmt.Errorf("get team season by season and team: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *TeamSeasonRepository) ListBySeason(ctx context.Context, seasonID string) ([]roster.TeamSeason, error) {
	const query = `
		SELECT id, season_id, team_id, status
		FROM team_seasons WHERE season_id = $1`
	var models []teamSeasonModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, seasonID); err != nil {
		return nil, fmt.Errorf("list team seasons: %w", err)
	}

	enrollments := make([]roster.TeamSeason, 0, len(models))
	for _, model := range models {
		enrollments = append(enrollments, model.toDomain())
	}

	return enrollments, nil
}

func (r *TeamSeasonRepository) Update(ctx context.Context, ts roster.TeamSeason) error {
	const query = `UPDATE team_seasons SET status = $2 WHERE id = $1`
	if _, err := q(ctx, r.db).ExecContext(ctx, query, ts.ID, string(ts.Status)); err != nil {
		return fmt.Errorf("update team season: %w", translate(err))
	}

	return nil
}

type TeamMemberRepository struct {
	db *sqlx.DB
}

func NewTeamMemberRepository(db *sqlx.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member roster.TeamMember) error {
	const query = `
		INSERT INTO team_members (id, team_season_id, user_ref, role, full_name,
			jersey_number, is_active, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		member.ID, member.TeamSeasonID, member.UserRef, string(member.Role),
		member.FullName, member.JerseyNumber, member.IsActive, member.JoinedAt,
	); err != nil {
		return fmt.Errorf("create team member: %w", translate(err))
	}

	return nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id string) (roster.TeamMember, bool, error) {
	const query = `
		SELECT id, team_season_id, user_ref, role, full_name, jersey_number, is_active, joined_at
		FROM team_members WHERE id = $1`
	var model teamMemberModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return roster.TeamMember{}, false, nil
		}
		return roster.TeamMember{}, false, fmt.Errorf("get team member: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *TeamMemberRepository) ListByTeamSeason(ctx context.Context, teamSeasonID string) ([]roster.TeamMember, error) {
	const query = `
		SELECT id, team_season_id, user_ref, role, full_name, jersey_number, is_active, joined_at
		FROM team_members WHERE team_season_id = $1 ORDER BY joined_at, full_name`
	var models []teamMemberModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, teamSeasonID); err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	members := make([]roster.TeamMember, 0, len(models))
	for _, model := range models {
		members = append(members, model.toDomain())
	}

	return members, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member roster.TeamMember) error {
	const query = `
		UPDATE team_members SET user_ref = $2, role = $3, full_name = $4,
			jersey_number = $5, is_active = $6
		WHERE id = $1`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		member.ID, member.UserRef, string(member.Role), member.FullName,
		member.JerseyNumber, member.IsActive,
	); err != nil {
		return fmt.Errorf("update team member: %w", translate(err))
	}

	return nil
}
