// Package memory is the in-memory store used by tests and by the API when no
// database is configured. One Store implements every repository interface
// plus the transaction runner; RunInTx snapshots all state and restores it
// when the unit of work fails, so multi-row workflows stay all-or-nothing.
package memory

import (
	"context"
	"sync"

	"github.com/pitchside/leagueops/internal/domain/invite"
	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/registration"
	"github.com/pitchside/leagueops/internal/domain/roster"
)

type txKey struct{}

type state struct {
	orgs        map[string]league.Organization
	seasons     map[string]league.Season
	divisions   map[string]league.Division
	venues      map[string]league.Venue
	teams       map[string]roster.Team
	teamSeasons map[string]roster.TeamSeason
	members     map[string]roster.TeamMember
	matches     map[string]match.Match
	results     map[string]match.Result // keyed by match id
	goals       map[string]match.GoalEvent
	cards       map[string]match.CardEvent
	appearances map[string]match.Appearance
	invites     map[string]invite.Token
	requests    map[string]registration.Request
}

func newState() state {
	return state{
		orgs:        make(map[string]league.Organization),
		seasons:     make(map[string]league.Season),
		divisions:   make(map[string]league.Division),
		venues:      make(map[string]league.Venue),
		teams:       make(map[string]roster.Team),
		teamSeasons: make(map[string]roster.TeamSeason),
		members:     make(map[string]roster.TeamMember),
		matches:     make(map[string]match.Match),
		results:     make(map[string]match.Result),
		goals:       make(map[string]match.GoalEvent),
		cards:       make(map[string]match.CardEvent),
		appearances: make(map[string]match.Appearance),
		invites:     make(map[string]invite.Token),
		requests:    make(map[string]registration.Request),
	}
}

func (s state) clone() state {
	out := newState()
	for k, v := range s.orgs {
		out.orgs[k] = v
	}
	for k, v := range s.seasons {
		out.seasons[k] = v
	}
	for k, v := range s.divisions {
		out.divisions[k] = v
	}
	for k, v := range s.venues {
		out.venues[k] = v
	}
	for k, v := range s.teams {
		out.teams[k] = v
	}
	for k, v := range s.teamSeasons {
		out.teamSeasons[k] = v
	}
	for k, v := range s.members {
		out.members[k] = v
	}
	for k, v := range s.matches {
		out.matches[k] = v
	}
	for k, v := range s.results {
		out.results[k] = v
	}
	for k, v := range s.goals {
		out.goals[k] = v
	}
	for k, v := range s.cards {
		out.cards[k] = v
	}
	for k, v := range s.appearances {
		out.appearances[k] = v
	}
	for k, v := range s.invites {
		out.invites[k] = v
	}
	for k, v := range s.requests {
		out.requests[k] = v
	}
	return out
}

type Store struct {
	mu   sync.Mutex
	data state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

// RunInTx serializes units of work behind one mutex and rolls the whole
// state back when fn fails. Nested calls join the enclosing unit.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.data = snapshot
		return err
	}

	return nil
}

func inTx(ctx context.Context) bool {
	flagged, _ := ctx.Value(txKey{}).(bool)
	return flagged
}

// enter takes the store lock unless the context is already inside a unit of
// work, which holds the lock for its whole duration.
func (s *Store) enter(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
