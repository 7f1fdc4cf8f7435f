// Package invite models the opaque bearer tokens that scope self-service
// player registration to exactly one team season.
package invite

import (
	"fmt"
	"time"
)

// Token is the single live invite credential for a team season. Rotation
// replaces the value in place and reactivates the row; the token value is
// never settable from outside the service.
type Token struct {
	ID           string
	TeamSeasonID string
	Value        string
	IsActive     bool
	CreatedAt    time.Time
	RotatedAt    *time.Time
}

func (t Token) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("invite token id is required")
	}
	if t.TeamSeasonID == "" {
		return fmt.Errorf("invite token team season id is required")
	}
	if t.Value == "" {
		return fmt.Errorf("invite token value is required")
	}

	return nil
}
