// Package match models the schedule: fixtures, their single result, and the
// in-match facts (goals, cards, appearances) tied to fielded roster members.
package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusFinal     Status = "FINAL"
	StatusCancelled Status = "CANCELLED"
	StatusPostponed Status = "POSTPONED"
)

// ValidStatus reports whether s is a storable match status. Transitions
// between statuses are a caller policy; only the value set is checked here.
func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusFinal, StatusCancelled, StatusPostponed:
		return true
	}
	return false
}

// Match is one fixture. Home and away must differ, both teams must belong to
// the match division, and the division must belong to the match season.
type Match struct {
	ID         string
	SeasonID   string
	DivisionID string
	VenueID    *string
	HomeTeamID string
	AwayTeamID string
	StartsAt   time.Time
	Status     Status
	RoundLabel string
	Notes      string
	CreatedAt  time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.SeasonID == "" {
		return fmt.Errorf("match season id is required")
	}
	if m.DivisionID == "" {
		return fmt.Errorf("match division id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match home and away team ids are required")
	}
	if !ValidStatus(m.Status) {
		return fmt.Errorf("match status %q is not valid", m.Status)
	}

	return nil
}

// Result is the single final score row for a match. Scores carry no
// non-negativity constraint; forfeits and admin corrections use whatever the
// league records.
type Result struct {
	ID         string
	MatchID    string
	HomeScore  int
	AwayScore  int
	IsForfeit  bool
	RecordedBy string
	RecordedAt time.Time
	UpdatedAt  time.Time
}

type Card string

const (
	CardYellow Card = "YELLOW"
	CardRed    Card = "RED"
)

// GoalEvent credits a goal to a fielded player. TeamID is always derived from
// the scorer's team season, never taken from input.
type GoalEvent struct {
	ID        string
	MatchID   string
	TeamID    string
	PlayerID  string
	Minute    *int
	CreatedAt time.Time
}

// CardEvent records a booking for a fielded player. TeamID is derived the
// same way as for goals.
type CardEvent struct {
	ID        string
	MatchID   string
	TeamID    string
	PlayerID  string
	Card      Card
	Minute    *int
	Note      string
	CreatedAt time.Time
}

// Appearance is the lineup fact that a roster member played in a match.
// (match, player) is unique.
type Appearance struct {
	ID       string
	MatchID  string
	TeamID   string
	PlayerID string
}
