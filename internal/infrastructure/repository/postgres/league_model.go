package postgres

import (
	"time"

	"github.com/pitchside/leagueops/internal/domain/league"
)

type organizationModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Timezone  string    `db:"timezone"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

func (m organizationModel) toDomain() league.Organization {
	return league.Organization{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Timezone:  m.Timezone,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

type seasonModel struct {
	ID             string     `db:"id"`
	OrganizationID string     `db:"organization_id"`
	Name           string     `db:"name"`
	StartDate      *time.Time `db:"start_date"`
	EndDate        *time.Time `db:"end_date"`
	IsActive       bool       `db:"is_active"`
	CreatedAt      time.Time  `db:"created_at"`
}

func (m seasonModel) toDomain() league.Season {
	return league.Season{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

type divisionModel struct {
	ID        string    `db:"id"`
	SeasonID  string    `db:"season_id"`
	Name      string    `db:"name"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

func (m divisionModel) toDomain() league.Division {
	return league.Division{
		ID:        m.ID,
		SeasonID:  m.SeasonID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

type venueModel struct {
	ID             string   `db:"id"`
	OrganizationID string   `db:"organization_id"`
	Name           string   `db:"name"`
	Address        string   `db:"address"`
	Notes          string   `db:"notes"`
	Lat            *float64 `db:"lat"`
	Lng            *float64 `db:"lng"`
	IsActive       bool     `db:"is_active"`
}

func (m venueModel) toDomain() league.Venue {
	return league.Venue{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Address:        m.Address,
		Notes:          m.Notes,
		Lat:            m.Lat,
		Lng:            m.Lng,
		IsActive:       m.IsActive,
	}
}
