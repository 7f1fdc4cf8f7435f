package invite

import "context"

type Repository interface {
	Create(ctx context.Context, token Token) error
	GetByTeamSeason(ctx context.Context, teamSeasonID string) (Token, bool, error)
	// GetByValue is an exact-match lookup; activity is checked by callers so
	// unknown and inactive tokens stay indistinguishable at the service edge.
	GetByValue(ctx context.Context, value string) (Token, bool, error)
	Update(ctx context.Context, token Token) error
}
