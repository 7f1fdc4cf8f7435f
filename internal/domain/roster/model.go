// Package roster covers team identity and per-season participation: the team
// record itself, its enrollment in a season (the payment and roster anchor),
// and the members on that enrollment.
package roster

import (
	"fmt"
	"time"
)

// Team is a club registered under one division. (division, name) is unique.
// Matches reference teams with protect semantics.
type Team struct {
	ID         string
	DivisionID string
	Name       string
	ShortName  string

	PrimaryContactName  string
	PrimaryContactEmail string
	PrimaryContactPhone string

	IsActive  bool
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.DivisionID == "" {
		return fmt.Errorf("team division id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

type TeamSeasonStatus string

const (
	TeamSeasonActive    TeamSeasonStatus = "ACTIVE"
	TeamSeasonWithdrawn TeamSeasonStatus = "WITHDRAWN"
)

// TeamSeason is a team's participation record for one season, decoupled from
// the team's identity across seasons. (season, team) is unique. Fees owed to
// the league anchor here, not on Team.
type TeamSeason struct {
	ID       string
	SeasonID string
	TeamID   string
	Status   TeamSeasonStatus
}

func (ts TeamSeason) Validate() error {
	if ts.ID == "" {
		return fmt.Errorf("team season id is required")
	}
	if ts.SeasonID == "" {
		return fmt.Errorf("team season season id is required")
	}
	if ts.TeamID == "" {
		return fmt.Errorf("team season team id is required")
	}
	if ts.Status != TeamSeasonActive && ts.Status != TeamSeasonWithdrawn {
		return fmt.Errorf("team season status %q is not valid", ts.Status)
	}

	return nil
}

type MemberRole string

const (
	RoleCaptain MemberRole = "CAPTAIN"
	RolePlayer  MemberRole = "PLAYER"
)

// TeamMember is one person on a team-season roster. (team_season, full_name)
// is unique. User is an opaque external identity reference and may be empty.
//
// Jersey numbers are range-checked only; uniqueness per team season is an
// intent, not a constraint.
type TeamMember struct {
	ID           string
	TeamSeasonID string
	UserRef      string
	Role         MemberRole
	FullName     string
	JerseyNumber *int
	IsActive     bool
	JoinedAt     time.Time
}

func (m TeamMember) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("team member id is required")
	}
	if m.TeamSeasonID == "" {
		return fmt.Errorf("team member team season id is required")
	}
	if m.FullName == "" {
		return fmt.Errorf("team member full name is required")
	}
	if m.Role != RoleCaptain && m.Role != RolePlayer {
		return fmt.Errorf("team member role %q is not valid", m.Role)
	}
	if m.JerseyNumber != nil && (*m.JerseyNumber < 0 || *m.JerseyNumber > 99) {
		return fmt.Errorf("jersey number must be between 0 and 99")
	}

	return nil
}
