package roster

import "context"

type TeamRepository interface {
	Create(ctx context.Context, team Team) error
	GetByID(ctx context.Context, id string) (Team, bool, error)
	ListByDivision(ctx context.Context, divisionID string) ([]Team, error)
	Update(ctx context.Context, team Team) error
	// Delete must fail with storage.ErrProtected while any match references
	// the team.
	Delete(ctx context.Context, id string) error
}

type TeamSeasonRepository interface {
	Create(ctx context.Context, ts TeamSeason) error
	GetByID(ctx context.Context, id string) (TeamSeason, bool, error)
	GetBySeasonAndTeam(ctx context.Context, seasonID, teamID string) (TeamSeason, bool, error)
	ListBySeason(ctx context.Context, seasonID string) ([]TeamSeason, error)
	Update(ctx context.Context, ts TeamSeason) error
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member TeamMember) error
	GetByID(ctx context.Context, id string) (TeamMember, bool, error)
	ListByTeamSeason(ctx context.Context, teamSeasonID string) ([]TeamMember, error)
	Update(ctx context.Context, member TeamMember) error
}
