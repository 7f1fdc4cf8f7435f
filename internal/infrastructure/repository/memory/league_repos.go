package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/storage"
)

func (s *Store) CreateOrganization(ctx context.Context, org league.Organization) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.orgs {
		if existing.Slug == org.Slug {
			return fmt.Errorf("%w: organization slug %q", storage.ErrDuplicate, org.Slug)
		}
	}

	s.data.orgs[org.ID] = org
	return nil
}

func (s *Store) GetOrganization(ctx context.Context, id string) (league.Organization, bool, error) {
	defer s.enter(ctx)()

	org, ok := s.data.orgs[id]
	return org, ok, nil
}

func (s *Store) GetOrganizationBySlug(ctx context.Context, slug string) (league.Organization, bool, error) {
	defer s.enter(ctx)()

	for _, org := range s.data.orgs {
		if org.Slug == slug {
			return org, true, nil
		}
	}
	return league.Organization{}, false, nil
}

func (s *Store) ListOrganizations(ctx context.Context) ([]league.Organization, error) {
	defer s.enter(ctx)()

	out := make([]league.Organization, 0, len(s.data.orgs))
	for _, org := range s.data.orgs {
		out = append(out, org)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (s *Store) CreateSeason(ctx context.Context, season league.Season) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.seasons {
		if existing.OrganizationID == season.OrganizationID && existing.Name == season.Name {
			return fmt.Errorf("%w: season %q in organization %s", storage.ErrDuplicate, season.Name, season.OrganizationID)
		}
	}

	s.data.seasons[season.ID] = season
	return nil
}

func (s *Store) GetSeason(ctx context.Context, id string) (league.Season, bool, error) {
	defer s.enter(ctx)()

	season, ok := s.data.seasons[id]
	return season, ok, nil
}

func (s *Store) ListSeasonsByOrganization(ctx context.Context, orgID string) ([]league.Season, error) {
	defer s.enter(ctx)()

	out := make([]league.Season, 0)
	for _, season := range s.data.seasons {
		if season.OrganizationID == orgID {
			out = append(out, season)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateDivision(ctx context.Context, division league.Division) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.divisions {
		if existing.SeasonID == division.SeasonID && existing.Name == division.Name {
			return fmt.Errorf("%w: division %q in season %s", storage.ErrDuplicate, division.Name, division.SeasonID)
		}
	}

	s.data.divisions[division.ID] = division
	return nil
}

func (s *Store) GetDivision(ctx context.Context, id string) (league.Division, bool, error) {
	defer s.enter(ctx)()

	division, ok := s.data.divisions[id]
	return division, ok, nil
}

func (s *Store) ListDivisionsBySeason(ctx context.Context, seasonID string) ([]league.Division, error) {
	defer s.enter(ctx)()

	out := make([]league.Division, 0)
	for _, division := range s.data.divisions {
		if division.SeasonID == seasonID {
			out = append(out, division)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) CreateVenue(ctx context.Context, venue league.Venue) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.venues {
		if existing.OrganizationID == venue.OrganizationID && existing.Name == venue.Name {
			return fmt.Errorf("%w: venue %q in organization %s", storage.ErrDuplicate, venue.Name, venue.OrganizationID)
		}
	}

	s.data.venues[venue.ID] = venue
	return nil
}

func (s *Store) GetVenue(ctx context.Context, id string) (league.Venue, bool, error) {
	defer s.enter(ctx)()

	venue, ok := s.data.venues[id]
	return venue, ok, nil
}

func (s *Store) ListVenuesByOrganization(ctx context.Context, orgID string) ([]league.Venue, error) {
	defer s.enter(ctx)()

	out := make([]league.Venue, 0)
	for _, venue := range s.data.venues {
		if venue.OrganizationID == orgID {
			out = append(out, venue)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) DeleteVenue(ctx context.Context, id string) error {
	defer s.enter(ctx)()

	if _, ok := s.data.venues[id]; !ok {
		return fmt.Errorf("%w: venue=%s", storage.ErrNotFound, id)
	}
	for _, m := range s.data.matches {
		if m.VenueID != nil && *m.VenueID == id {
			return fmt.Errorf("%w: venue=%s has matches", storage.ErrProtected, id)
		}
	}

	delete(s.data.venues, id)
	return nil
}
