// Package league holds the organizational hierarchy: an organization runs
// seasons, a season is split into divisions, and venues belong to the
// organization.
package league

import (
	"fmt"
	"time"
)

// Organization is the league operator. Slug is globally unique.
type Organization struct {
	ID        string
	Name      string
	Slug      string
	Timezone  string
	IsActive  bool
	CreatedAt time.Time
}

func (o Organization) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("organization id is required")
	}
	if o.Name == "" {
		return fmt.Errorf("organization name is required")
	}
	if o.Slug == "" {
		return fmt.Errorf("organization slug is required")
	}

	return nil
}

// Season is one competition cycle. (organization, name) is unique.
type Season struct {
	ID             string
	OrganizationID string
	Name           string
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       bool
	CreatedAt      time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.OrganizationID == "" {
		return fmt.Errorf("season organization id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return fmt.Errorf("season end date precedes start date")
	}

	return nil
}

// Division groups teams inside a season. (season, name) is unique.
type Division struct {
	ID        string
	SeasonID  string
	Name      string
	SortOrder int
	CreatedAt time.Time
}

func (d Division) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("division id is required")
	}
	if d.SeasonID == "" {
		return fmt.Errorf("division season id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("division name is required")
	}

	return nil
}

// Venue is a playing location owned by the organization. (organization, name)
// is unique. Matches reference venues with protect semantics: a venue on any
// match schedule cannot be deleted.
type Venue struct {
	ID             string
	OrganizationID string
	Name           string
	Address        string
	Notes          string
	Lat            *float64
	Lng            *float64
	IsActive       bool
}

func (v Venue) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("venue id is required")
	}
	if v.OrganizationID == "" {
		return fmt.Errorf("venue organization id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("venue name is required")
	}

	return nil
}
