package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/leagueops/internal/domain/league"
)

type OrganizationRepository struct {
	db *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org league.Organization) error {
	const query = `
		INSERT INTO organizations (id, name, slug, timezone, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		org.ID, org.Name, org.Slug, org.Timezone, org.IsActive, org.CreatedAt,
	); err != nil {
		return fmt.Errorf("create organization: %w", translate(err))
	}

	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (league.Organization, bool, error) {
	const query = `
		SELECT id, name, slug, timezone, is_active, created_at
		FROM organizations WHERE id = $1`
	var model organizationModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return league.Organization{}, false, nil
		}
		return league.Organization{}, false, fmt.Errorf("get organization: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (league.Organization, bool, error) {
	const query = `
		SELECT id, name, slug, timezone, is_active, created_at
		FROM organizations WHERE slug = $1`
	var model organizationModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, slug); err != nil {
		if isNotFound(err) {
			return league.Organization{}, false, nil
		}
		return league.Organization{}, false, fmt.Errorf("get organization by slug: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]league.Organization, error) {
	const query = `
		SELECT id, name, slug, timezone, is_active, created_at
		FROM organizations ORDER BY name`
	var models []organizationModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	orgs := make([]league.Organization, 0, len(models))
	for _, model := range models {
		orgs = append(orgs, model.toDomain())
	}

	return orgs, nil
}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) Create(ctx context.Context, season league.Season) error {
	const query = `
		INSERT INTO seasons (id, organization_id, name, start_date, end_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		season.ID, season.OrganizationID, season.Name,
		season.StartDate, season.EndDate, season.IsActive, season.CreatedAt,
	); err != nil {
		return fmt.Errorf("create season: %w", translate(err))
	}

	return nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (league.Season, bool, error) {
	const query = `
		SELECT id, organization_id, name, start_date, end_date, is_active, created_at
		FROM seasons WHERE id = $1`
	var model seasonModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return league.Season{}, false, nil
		}
		return league.Season{}, false, fmt.Errorf("get season: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *SeasonRepository) ListByOrganization(ctx context.Context, orgID string) ([]league.Season, error) {
	const query = `
		SELECT id, organization_id, name, start_date, end_date, is_active, created_at
		FROM seasons WHERE organization_id = $1 ORDER BY created_at DESC`
	var models []seasonModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, orgID); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	seasons := make([]league.Season, 0, len(models))
	for _, model := range models {
		seasons = append(seasons, model.toDomain())
	}

	return seasons, nil
}

type DivisionRepository struct {
	db *sqlx.DB
}

func NewDivisionRepository(db *sqlx.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) Create(ctx context.Context, division league.Division) error {
	const query = `
		INSERT INTO divisions (id, season_id, name, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		division.ID, division.SeasonID, division.Name, division.SortOrder, division.CreatedAt,
	); err != nil {
		return fmt.Errorf("create division: %w", translate(err))
	}

	return nil
}

func (r *DivisionRepository) GetByID(ctx context.Context, id string) (league.Division, bool, error) {
	const query = `
		SELECT id, season_id, name, sort_order, created_at
		FROM divisions WHERE id = $1`
	var model divisionModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return league.Division{}, false, nil
		}
		return league.Division{}, false, fmt.Errorf("get division: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *DivisionRepository) ListBySeason(ctx context.Context, seasonID string) ([]league.Division, error) {
	const query = `
		SELECT id, season_id, name, sort_order, created_at
		FROM divisions WHERE season_id = $1 ORDER BY sort_order, name`
	var models []divisionModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, seasonID); err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	divisions := make([]league.Division, 0, len(models))
	for _, model := range models {
		divisions = append(divisions, model.toDomain())
	}

	return divisions, nil
}

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, venue league.Venue) error {
	const query = `
		INSERT INTO venues (id, organization_id, name, address, notes, lat, lng, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := q(ctx, r.db).ExecContext(ctx, query,
		venue.ID, venue.OrganizationID, venue.Name, venue.Address, venue.Notes,
		venue.Lat, venue.Lng, venue.IsActive,
	); err != nil {
		return fmt.Errorf("create venue: %w", translate(err))
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (league.Venue, bool, error) {
	const query = `
		SELECT id, organization_id, name, address, notes, lat, lng, is_active
		FROM venues WHERE id = $1`
	var model venueModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return league.Venue{}, false, nil
		}
		return league.Venue{}, false, fmt.Errorf("get venue: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *VenueRepository) ListByOrganization(ctx context.Context, orgID string) ([]league.Venue, error) {
	const query = `
		SELECT id, organization_id, name, address, notes, lat, lng, is_active
		FROM venues WHERE organization_id = $1 ORDER BY name`
	var models []venueModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, orgID); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	venues := make([]league.Venue, 0, len(models))
	for _, model := range models {
		venues = append(venues, model.toDomain())
	}

	return venues, nil
}

// Delete relies on the protecting foreign key from matches; translate turns
// the violation into storage.ErrProtected.
func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM venues WHERE id = $1`
	if _, err := q(ctx, r.db).ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete venue: %w", translate(err))
	}

	return nil
}
