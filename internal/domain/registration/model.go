// Package registration models the self-service intake workflow: a pending
// request either asks to create a new team or to join an existing one via an
// invite token. The two kinds share one audit envelope and carry their own
// detail payloads.
package registration

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindCreateTeam Kind = "CREATE_TEAM"
	KindJoinTeam   Kind = "JOIN_TEAM"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusNeedsInfo Status = "NEEDS_INFO"
)

type Level string

const (
	LevelHigh   Level = "HIGH_LEVEL"
	LevelMedium Level = "MEDIUM_LEVEL"
	LevelLow    Level = "LOW_LEVEL"
)

// ValidLevel accepts the empty level; the field is optional on intake.
func ValidLevel(l Level) bool {
	switch l {
	case "", LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// Person is the submitter: the prospective captain on a create-team request,
// the prospective player on a join request.
type Person struct {
	FullName string
	Email    string
	Phone    string
}

// Documents are externally stored file references collected on join requests.
type Documents struct {
	WaiverFile string
	IDFile     string
}

// CreateTeamDetails is the payload specific to KindCreateTeam.
type CreateTeamDetails struct {
	TeamName string
	Level    Level
	Notes    string
}

// JoinDetails is the payload specific to KindJoinTeam.
type JoinDetails struct {
	Documents Documents
}

// Request is the audit envelope shared by both kinds. Exactly one of
// CreateTeam / Join is set, matching Kind.
//
// SeasonID is always present. DivisionID is the intake context for
// create-team requests and the resolved division for join requests.
// TeamSeasonID is captured at submission for join requests and stamped after
// approval for create-team requests.
type Request struct {
	ID     string
	Kind   Kind
	Status Status

	SeasonID     string
	DivisionID   string
	TeamSeasonID string

	CreateTeam *CreateTeamDetails
	Join       *JoinDetails

	Person     Person
	AdminNotes string

	ApprovedAt *time.Time
	ApprovedBy string
	RejectedAt *time.Time
	RejectedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Request) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("registration request id is required")
	}
	if r.SeasonID == "" {
		return fmt.Errorf("registration request season id is required")
	}
	if r.Person.FullName == "" {
		return fmt.Errorf("registration request full name is required")
	}

	switch r.Kind {
	case KindCreateTeam:
		if r.CreateTeam == nil {
			return fmt.Errorf("create-team request is missing its details")
		}
		if r.Join != nil {
			return fmt.Errorf("create-team request carries join details")
		}
		if r.CreateTeam.TeamName == "" {
			return fmt.Errorf("create-team request team name is required")
		}
		if !ValidLevel(r.CreateTeam.Level) {
			return fmt.Errorf("create-team request level %q is not valid", r.CreateTeam.Level)
		}
	case KindJoinTeam:
		if r.Join == nil {
			return fmt.Errorf("join request is missing its details")
		}
		if r.CreateTeam != nil {
			return fmt.Errorf("join request carries create-team details")
		}
		if r.TeamSeasonID == "" {
			return fmt.Errorf("join request team season id is required")
		}
	default:
		return fmt.Errorf("registration request kind %q is not valid", r.Kind)
	}

	switch r.Status {
	case StatusPending, StatusApproved, StatusRejected, StatusNeedsInfo:
	default:
		return fmt.Errorf("registration request status %q is not valid", r.Status)
	}

	return nil
}
