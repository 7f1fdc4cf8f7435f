package postgres

import (
	"time"

	"github.com/pitchside/leagueops/internal/domain/match"
)

type matchModel struct {
	ID         string    `db:"id"`
	SeasonID   string    `db:"season_id"`
	DivisionID string    `db:"division_id"`
	VenueID    *string   `db:"venue_id"`
	HomeTeamID string    `db:"home_team_id"`
	AwayTeamID string    `db:"away_team_id"`
	StartsAt   time.Time `db:"starts_at"`
	Status     string    `db:"status"`
	RoundLabel string    `db:"round_label"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
}

func (m matchModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		SeasonID:   m.SeasonID,
		DivisionID: m.DivisionID,
		VenueID:    m.VenueID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		StartsAt:   m.StartsAt,
		Status:     match.Status(m.Status),
		RoundLabel: m.RoundLabel,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}

type resultModel struct {
	ID         string    `db:"id"`
	MatchID    string    `db:"match_id"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	IsForfeit  bool      `db:"is_forfeit"`
	RecordedBy string    `db:"recorded_by"`
	RecordedAt time.Time `db:"recorded_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (m resultModel) toDomain() match.Result {
	return match.Result{
		ID:         m.ID,
		MatchID:    m.MatchID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		IsForfeit:  m.IsForfeit,
		RecordedBy: m.RecordedBy,
		RecordedAt: m.RecordedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type goalEventModel struct {
	ID        string    `db:"id"`
	MatchID   string    `db:"match_id"`
	TeamID    string    `db:"team_id"`
	PlayerID  string    `db:"player_id"`
	Minute    *int      `db:"minute"`
	CreatedAt time.Time `db:"created_at"`
}

func (m goalEventModel) toDomain() match.GoalEvent {
	return match.GoalEvent{
		ID:        m.ID,
		MatchID:   m.MatchID,
		TeamID:    m.TeamID,
		PlayerID:  m.PlayerID,
		Minute:    m.Minute,
		CreatedAt: m.CreatedAt,
	}
}

type cardEventModel struct {
	ID        string    `db:"id"`
	MatchID   string    `db:"match_id"`
	TeamID    string    `db:"team_id"`
	PlayerID  string    `db:"player_id"`
	Card      string    `db:"card"`
	Minute    *int      `db:"minute"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

func (m cardEventModel) toDomain() match.CardEvent {
	return match.CardEvent{
		ID:        m.ID,
		MatchID:   m.MatchID,
		TeamID:    m.TeamID,
		PlayerID:  m.PlayerID,
		Card:      match.Card(m.Card),
		Minute:    m.Minute,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

type appearanceModel struct {
	ID       string `db:"id"`
	MatchID  string `db:"match_id"`
	TeamID   string `db:"team_id"`
	PlayerID string `db:"player_id"`
}

func (m appearanceModel) toDomain() match.Appearance {
	return match.Appearance{
		ID:       m.ID,
		MatchID:  m.MatchID,
		TeamID:   m.TeamID,
		PlayerID: m.PlayerID,
	}
}
