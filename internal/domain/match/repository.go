package match

import "context"

type Repository interface {
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	GetByID(ctx context.Context, id string) (Match, bool, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Match, error)
	// ExistsForTeam reports whether any match references the team as a side.
	ExistsForTeam(ctx context.Context, teamID string) (bool, error)
	// ExistsForVenue reports whether any match is scheduled at the venue.
	ExistsForVenue(ctx context.Context, venueID string) (bool, error)
}

type ResultRepository interface {
	GetByMatch(ctx context.Context, matchID string) (Result, bool, error)
	// Upsert keeps the one-result-per-match invariant: an existing row is
	// overwritten in place.
	Upsert(ctx context.Context, result Result) error
}

type EventRepository interface {
	CreateGoal(ctx context.Context, event GoalEvent) error
	CreateCard(ctx context.Context, event CardEvent) error
	CreateAppearance(ctx context.Context, appearance Appearance) error
	ListGoalsByMatch(ctx context.Context, matchID string) ([]GoalEvent, error)
	ListCardsByMatch(ctx context.Context, matchID string) ([]CardEvent, error)
	ListAppearancesByMatch(ctx context.Context, matchID string) ([]Appearance, error)
}
