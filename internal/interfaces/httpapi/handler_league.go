package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/usecase"
)

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateOrganization")
	defer span.End()

	var req createOrganizationRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	org, err := h.leagueService.CreateOrganization(ctx, usecase.CreateOrganizationInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Timezone: req.Timezone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create organization failed", "slug", req.Slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, organizationToDTO(org))
}

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOrganizations")
	defer span.End()

	orgs, err := h.leagueService.Organizations(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list organizations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]organizationDTO, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, organizationToDTO(org))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	organizationID := r.PathValue("organizationID")

	var req createSeasonRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	season, err := h.leagueService.CreateSeason(ctx, usecase.CreateSeasonInput{
		OrganizationID: organizationID,
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "organization_id", organizationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(season))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	organizationID := r.PathValue("organizationID")
	seasons, err := h.leagueService.Seasons(ctx, organizationID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "organization_id", organizationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, season := range seasons {
		items = append(items, seasonToDTO(season))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDivision")
	defer span.End()

	seasonID := r.PathValue("seasonID")

	var req createDivisionRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	division, err := h.leagueService.CreateDivision(ctx, usecase.CreateDivisionInput{
		SeasonID:  seasonID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create division failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, divisionToDTO(division))
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	divisions, err := h.leagueService.Divisions(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list divisions failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, division := range divisions {
		items = append(items, divisionToDTO(division))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateVenue")
	defer span.End()

	organizationID := r.PathValue("organizationID")

	var req createVenueRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	venue, err := h.leagueService.CreateVenue(ctx, usecase.CreateVenueInput{
		OrganizationID: organizationID,
		Name:           req.Name,
		Address:        req.Address,
		Notes:          req.Notes,
		Lat:            req.Lat,
		Lng:            req.Lng,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create venue failed", "organization_id", organizationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, venueToDTO(venue))
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteVenue")
	defer span.End()

	venueID := r.PathValue("venueID")
	if err := h.leagueService.DeleteVenue(ctx, venueID); err != nil {
		h.logger.WarnContext(ctx, "delete venue failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

type createOrganizationRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Slug     string `json:"slug" validate:"required,max=100"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

type createSeasonRequest struct {
	Name      string     `json:"name" validate:"required,max=200"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `json:"is_active"`
}

type createDivisionRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type createVenueRequest struct {
	Name    string   `json:"name" validate:"required,max=200"`
	Address string   `json:"address" validate:"omitempty,max=500"`
	Notes   string   `json:"notes" validate:"omitempty,max=1000"`
	Lat     *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
}

type organizationDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Timezone  string    `json:"timezone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func organizationToDTO(org league.Organization) organizationDTO {
	return organizationDTO{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		Timezone:  org.Timezone,
		IsActive:  org.IsActive,
		CreatedAt: org.CreatedAt,
	}
}

type seasonDTO struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

func seasonToDTO(season league.Season) seasonDTO {
	return seasonDTO{
		ID:             season.ID,
		OrganizationID: season.OrganizationID,
		Name:           season.Name,
		StartDate:      season.StartDate,
		EndDate:        season.EndDate,
		IsActive:       season.IsActive,
		CreatedAt:      season.CreatedAt,
	}
}

type divisionDTO struct {
	ID        string    `json:"id"`
	SeasonID  string    `json:"season_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func divisionToDTO(division league.Division) divisionDTO {
	return divisionDTO{
		ID:        division.ID,
		SeasonID:  division.SeasonID,
		Name:      division.Name,
		SortOrder: division.SortOrder,
		CreatedAt: division.CreatedAt,
	}
}

type venueDTO struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
	IsActive       bool     `json:"is_active"`
}

func venueToDTO(venue league.Venue) venueDTO {
	return venueDTO{
		ID:             venue.ID,
		OrganizationID: venue.OrganizationID,
		Name:           venue.Name,
		Address:        venue.Address,
		Notes:          venue.Notes,
		Lat:            venue.Lat,
		Lng:            venue.Lng,
		IsActive:       venue.IsActive,
	}
}
