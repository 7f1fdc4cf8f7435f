package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/storage"
	idgen "github.com/pitchside/leagueops/internal/platform/id"
	"github.com/pitchside/leagueops/internal/platform/logging"
)

const defaultTimezone = "America/Winnipeg"

// LeagueService maintains the organization / season / division / venue
// hierarchy and its uniqueness rules.
type LeagueService struct {
	orgRepo      league.OrganizationRepository
	seasonRepo   league.SeasonRepository
	divisionRepo league.DivisionRepository
	venueRepo    league.VenueRepository
	matchRepo    match.Repository
	ids          idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewLeagueService(
	orgRepo league.OrganizationRepository,
	seasonRepo league.SeasonRepository,
	divisionRepo league.DivisionRepository,
	venueRepo league.VenueRepository,
	matchRepo match.Repository,
	ids idgen.Generator,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueService{
		orgRepo:      orgRepo,
		seasonRepo:   seasonRepo,
		divisionRepo: divisionRepo,
		venueRepo:    venueRepo,
		matchRepo:    matchRepo,
		ids:          ids,
		logger:       logger,
		now:          time.Now,
	}
}

type CreateOrganizationInput struct {
	Name     string
	Slug     string
	Timezone string
}

func (s *LeagueService) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (league.Organization, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.ToLower(strings.TrimSpace(input.Slug))
	input.Timezone = strings.TrimSpace(input.Timezone)

	errs := FieldErrors{}
	if input.Name == "" {
		errs["name"] = "name is required"
	}
	if input.Slug == "" {
		errs["slug"] = "slug is required"
	} else if !validSlug(input.Slug) {
		errs["slug"] = "slug may contain lowercase letters, digits and hyphens only"
	}
	if len(errs) > 0 {
		return league.Organization{}, errs
	}

	if input.Timezone == "" {
		input.Timezone = defaultTimezone
	}

	orgID, err := s.ids.NewID()
	if err != nil {
		return league.Organization{}, fmt.Errorf("generate organization id: %w", err)
	}

	org := league.Organization{
		ID:        orgID,
		Name:      input.Name,
		Slug:      input.Slug,
		Timezone:  input.Timezone,
		IsActive:  true,
		CreatedAt: s.now().UTC(),
	}
	if err := org.Validate(); err != nil {
		return league.Organization{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return league.Organization{}, duplicateAsFieldError(err, "slug", "slug is already in use")
	}

	s.logger.InfoContext(ctx, "organization created", "org_id", org.ID, "slug", org.Slug)

	return org, nil
}

func (s *LeagueService) Organizations(ctx context.Context) ([]league.Organization, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	return orgs, nil
}

type CreateSeasonInput struct {
	OrganizationID string
	Name           string
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       bool
}

func (s *LeagueService) CreateSeason(ctx context.Context, input CreateSeasonInput) (league.Season, error) {
	input.OrganizationID = strings.TrimSpace(input.OrganizationID)
	input.Name = strings.TrimSpace(input.Name)

	if input.OrganizationID == "" {
		return league.Season{}, FieldErrors{"organization": "organization id is required"}
	}
	if input.Name == "" {
		return league.Season{}, FieldErrors{"name": "name is required"}
	}

	if _, exists, err := s.orgRepo.GetByID(ctx, input.OrganizationID); err != nil {
		return league.Season{}, fmt.Errorf("get organization: %w", err)
	} else if !exists {
		return league.Season{}, fmt.Errorf("%w: organization=%s", ErrNotFound, input.OrganizationID)
	}

	seasonID, err := s.ids.NewID()
	if err != nil {
		return league.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	season := league.Season{
		ID:             seasonID,
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		IsActive:       input.IsActive,
		CreatedAt:      s.now().UTC(),
	}
	if err := season.Validate(); err != nil {
		return league.Season{}, FieldErrors{"dates": err.Error()}
	}

	if err := s.seasonRepo.Create(ctx, season); err != nil {
		return league.Season{}, duplicateAsFieldError(err, "name", "a season with this name already exists for the organization")
	}

	return season, nil
}

func (s *LeagueService) Seasons(ctx context.Context, orgID string) ([]league.Season, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, fmt.Errorf("%w: organization id is required", ErrInvalidInput)
	}

	seasons, err := s.seasonRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return seasons, nil
}

type CreateDivisionInput struct {
	SeasonID  string
	Name      string
	SortOrder int
}

func (s *LeagueService) CreateDivision(ctx context.Context, input CreateDivisionInput) (league.Division, error) {
	input.SeasonID = strings.TrimSpace(input.SeasonID)
	input.Name = strings.TrimSpace(input.Name)

	if input.SeasonID == "" {
		return league.Division{}, FieldErrors{"season": "season id is required"}
	}
	if input.Name == "" {
		return league.Division{}, FieldErrors{"name": "name is required"}
	}

	if _, exists, err := s.seasonRepo.GetByID(ctx, input.SeasonID); err != nil {
		return league.Division{}, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return league.Division{}, fmt.Errorf("%w: season=%s", ErrNotFound, input.SeasonID)
	}

	divisionID, err := s.ids.NewID()
	if err != nil {
		return league.Division{}, fmt.Errorf("generate division id: %w", err)
	}

	division := league.Division{
		ID:        divisionID,
		SeasonID:  input.SeasonID,
		Name:      input.Name,
		SortOrder: input.SortOrder,
		CreatedAt: s.now().UTC(),
	}

	if err := s.divisionRepo.Create(ctx, division); err != nil {
		return league.Division{}, duplicateAsFieldError(err, "name", "a division with this name already exists in the season")
	}

	return division, nil
}

func (s *LeagueService) Divisions(ctx context.Context, seasonID string) ([]league.Division, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	divisions, err := s.divisionRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	return divisions, nil
}

type CreateVenueInput struct {
	OrganizationID string
	Name           string
	Address        string
	Notes          string
	Lat            *float64
	Lng            *float64
}

func (s *LeagueService) CreateVenue(ctx context.Context, input CreateVenueInput) (league.Venue, error) {
	input.OrganizationID = strings.TrimSpace(input.OrganizationID)
	input.Name = strings.TrimSpace(input.Name)

	if input.OrganizationID == "" {
		return league.Venue{}, FieldErrors{"organization": "organization id is required"}
	}
	if input.Name == "" {
		return league.Venue{}, FieldErrors{"name": "name is required"}
	}

	if _, exists, err := s.orgRepo.GetByID(ctx, input.OrganizationID); err != nil {
		return league.Venue{}, fmt.Errorf("get organization: %w", err)
	} else if !exists {
		return league.Venue{}, fmt.Errorf("%w: organization=%s", ErrNotFound, input.OrganizationID)
	}

	venueID, err := s.ids.NewID()
	if err != nil {
		return league.Venue{}, fmt.Errorf("generate venue id: %w", err)
	}

	venue := league.Venue{
		ID:             venueID,
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Address:        input.Address,
		Notes:          input.Notes,
		Lat:            input.Lat,
		Lng:            input.Lng,
		IsActive:       true,
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return league.Venue{}, duplicateAsFieldError(err, "name", "a venue with this name already exists for the organization")
	}

	return venue, nil
}

// DeleteVenue refuses to remove a venue that any match still references.
func (s *LeagueService) DeleteVenue(ctx context.Context, venueID string) error {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}

	if _, exists, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return fmt.Errorf("get venue: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: venue=%s", ErrNotFound, venueID)
	}

	referenced, err := s.matchRepo.ExistsForVenue(ctx, venueID)
	if err != nil {
		return fmt.Errorf("check venue references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: venue is on the match schedule", ErrReferentialConflict)
	}

	if err := s.venueRepo.Delete(ctx, venueID); err != nil {
		if isProtected(err) {
			return fmt.Errorf("%w: venue is on the match schedule", ErrReferentialConflict)
		}
		return fmt.Errorf("delete venue: %w", err)
	}

	return nil
}

func isProtected(err error) bool {
	return errors.Is(err, storage.ErrProtected)
}

func validSlug(slug string) bool {
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
