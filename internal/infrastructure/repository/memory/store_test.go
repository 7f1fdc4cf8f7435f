package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/registration"
)

func TestRunInTxRollsBackOnError(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.RunInTx(ctx, func(ctx context.Context) error {
		if err := store.CreateOrganization(ctx, league.Organization{ID: "org-1", Name: "One", Slug: "one"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if _, exists, _ := store.GetOrganization(ctx, "org-1"); exists {
		t.Error("write must be rolled back with the failed unit of work")
	}
}

func TestRunInTxNestedCallsJoin(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.RunInTx(ctx, func(ctx context.Context) error {
		// A nested unit must not deadlock on the store lock and must share
		// the outer snapshot.
		return store.RunInTx(ctx, func(ctx context.Context) error {
			return store.CreateOrganization(ctx, league.Organization{ID: "org-1", Name: "One", Slug: "one"})
		})
	})
	if err != nil {
		t.Fatalf("nested tx: %v", err)
	}

	if _, exists, _ := store.GetOrganization(ctx, "org-1"); !exists {
		t.Error("nested write lost")
	}
}

func TestRunInTxNestedFailureRollsBackOuterWork(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.RunInTx(ctx, func(ctx context.Context) error {
		if err := store.CreateOrganization(ctx, league.Organization{ID: "org-1", Name: "One", Slug: "one"}); err != nil {
			return err
		}
		return store.RunInTx(ctx, func(ctx context.Context) error {
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if _, exists, _ := store.GetOrganization(ctx, "org-1"); exists {
		t.Error("outer write must roll back when the joined inner unit fails")
	}
}

func TestTransitionRequestIsConditional(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	req := registration.Request{
		ID:       "req-1",
		Kind:     registration.KindCreateTeam,
		Status:   registration.StatusPending,
		SeasonID: "season-1",
		CreateTeam: &registration.CreateTeamDetails{
			TeamName: "Falcons",
		},
		Person:    registration.Person{FullName: "Dana Reyes"},
		CreatedAt: time.Now(),
	}
	if err := store.CreateRequest(ctx, req); err != nil {
		t.Fatalf("create request: %v", err)
	}

	req.Status = registration.StatusApproved
	ok, err := store.TransitionRequest(ctx, req, registration.StatusPending)
	if err != nil || !ok {
		t.Fatalf("first transition ok=%v err=%v", ok, err)
	}

	// The stored status moved on; a second writer expecting PENDING loses.
	req.Status = registration.StatusRejected
	ok, err = store.TransitionRequest(ctx, req, registration.StatusPending)
	if err != nil {
		t.Fatalf("second transition: %v", err)
	}
	if ok {
		t.Error("stale transition must not win")
	}

	stored, _, _ := store.GetRequest(ctx, "req-1")
	if stored.Status != registration.StatusApproved {
		t.Errorf("status = %s, want APPROVED", stored.Status)
	}
}

func TestStoredRequestsAreDetached(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	details := &registration.CreateTeamDetails{TeamName: "Falcons"}
	req := registration.Request{
		ID:         "req-1",
		Kind:       registration.KindCreateTeam,
		Status:     registration.StatusPending,
		SeasonID:   "season-1",
		CreateTeam: details,
		Person:     registration.Person{FullName: "Dana Reyes"},
	}
	if err := store.CreateRequest(ctx, req); err != nil {
		t.Fatalf("create request: %v", err)
	}

	details.TeamName = "Mutated"

	stored, _, _ := store.GetRequest(ctx, "req-1")
	if stored.CreateTeam.TeamName != "Falcons" {
		t.Errorf("stored request shares caller memory: %q", stored.CreateTeam.TeamName)
	}
}
