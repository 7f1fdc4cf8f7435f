package usecase

import (
	"errors"
	"sort"
	"strings"

	"github.com/pitchside/leagueops/internal/domain/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// ErrInvalidState marks an operation attempted in the wrong lifecycle
	// state, e.g. approving a request that is no longer pending.
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrInvalidToken covers unknown, inactive and malformed invite tokens
	// alike; callers cannot distinguish the three.
	ErrInvalidToken = errors.New("invalid invite token")

	// ErrMissingContext marks a workflow step whose required linked record
	// was never captured.
	ErrMissingContext = errors.New("required linked record is missing")

	// ErrReferentialConflict marks a delete blocked by a protected reference.
	ErrReferentialConflict = errors.New("record is referenced by protected relations")

	// ErrDelivery marks a notifier failure. It is reported as a warning and
	// never rolls back the workflow that triggered the notification.
	ErrDelivery = errors.New("notification delivery failed")

	// ErrUnauthorized marks a request missing a valid admin credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDependencyUnavailable marks a request that cannot be served because a
	// required piece of configuration or infrastructure is absent.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// FieldErrors carries caller-correctable validation problems keyed by field,
// so a UI can surface every violation at once. It unwraps to ErrInvalidInput.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("invalid input:")
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e[k])
		b.WriteString(";")
	}

	return strings.TrimSuffix(b.String(), ";")
}

func (e FieldErrors) Unwrap() error {
	return ErrInvalidInput
}

// duplicateAsFieldError translates a storage-level unique violation into a
// field-keyed validation error; other errors pass through untouched.
func duplicateAsFieldError(err error, field, message string) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return FieldErrors{field: message}
	}
	return err
}
