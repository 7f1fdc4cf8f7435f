package postgres

import (
	"time"

	"github.com/pitchside/leagueops/internal/domain/roster"
)

type teamModel struct {
	ID                  string    `db:"id"`
	DivisionID          string    `db:"division_id"`
	Name                string    `db:"name"`
	ShortName           string    `db:"short_name"`
	PrimaryContactName  string    `db:"primary_contact_name"`
	PrimaryContactEmail string    `db:"primary_contact_email"`
	PrimaryContactPhone string    `db:"primary_contact_phone"`
	IsActive            bool      `db:"is_active"`
	CreatedAt           time.Time `db:"created_at"`
}

func (m teamModel) toDomain() roster.Team {
	return roster.Team{
		ID:                  m.ID,
		DivisionID:          m.DivisionID,
		Name:                m.Name,
		ShortName:           m.ShortName,
		PrimaryContactName:  m.PrimaryContactName,
		PrimaryContactEmail: m.PrimaryContactEmail,
		PrimaryContactPhone: m.PrimaryContactPhone,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
	}
}

type teamSeasonModel struct {
	ID       string `db:"id"`
	SeasonID string `db:"season_id"`
	TeamID   string `db:"team_id"`
	Status   string `db:"status"`
}

func (m teamSeasonModel) toDomain() roster.TeamSeason {
	return roster.TeamSeason{
		ID:       m.ID,
		SeasonID: m.SeasonID,
		TeamID:   m.TeamID,
		Status:   roster.TeamSeasonStatus(m.Status),
	}
}

type teamMemberModel struct {
	ID           string    `db:"id"`
	TeamSeasonID string    `db:"team_season_id"`
	UserRef      string    `db:"user_ref"`
	Role         string    `db:"role"`
	FullName     string    `db:"full_name"`
	JerseyNumber *int      `db:"jersey_number"`
	IsActive     bool      `db:"is_active"`
	JoinedAt     time.Time `db:"joined_at"`
}

func (m teamMemberModel) toDomain() roster.TeamMember {
	return roster.TeamMember{
		ID:           m.ID,
		TeamSeasonID: m.TeamSeasonID,
		UserRef:      m.UserRef,
		Role:         roster.MemberRole(m.Role),
		FullName:     m.FullName,
		JerseyNumber: m.JerseyNumber,
		IsActive:     m.IsActive,
		JoinedAt:     m.JoinedAt,
	}
}
