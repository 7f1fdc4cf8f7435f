package league

import "context"

type OrganizationRepository interface {
	Create(ctx context.Context, org Organization) error
	GetByID(ctx context.Context, id string) (Organization, bool, error)
	GetBySlug(ctx context.Context, slug string) (Organization, bool, error)
	List(ctx context.Context) ([]Organization, error)
}

type SeasonRepository interface {
	Create(ctx context.Context, season Season) error
	GetByID(ctx context.Context, id string) (Season, bool, error)
	ListByOrganization(ctx context.Context, orgID string) ([]Season, error)
}

type DivisionRepository interface {
	Create(ctx context.Context, division Division) error
	GetByID(ctx context.Context, id string) (Division, bool, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Division, error)
}

type VenueRepository interface {
	Create(ctx context.Context, venue Venue) error
	GetByID(ctx context.Context, id string) (Venue, bool, error)
	ListByOrganization(ctx context.Context, orgID string) ([]Venue, error)
	// Delete must fail with storage.ErrProtected while any match references
	// the venue.
	Delete(ctx context.Context, id string) error
}
