package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/storage"
)

func (s *Store) CreateMatch(ctx context.Context, m match.Match) error {
	defer s.enter(ctx)()

	s.data.matches[m.ID] = m
	return nil
}

func (s *Store) UpdateMatch(ctx context.Context, m match.Match) error {
	defer s.enter(ctx)()

	if _, ok := s.data.matches[m.ID]; !ok {
		return fmt.Errorf("%w: match=%s", storage.ErrNotFound, m.ID)
	}

	s.data.matches[m.ID] = m
	return nil
}

func (s *Store) GetMatch(ctx context.Context, id string) (match.Match, bool, error) {
	defer s.enter(ctx)()

	m, ok := s.data.matches[id]
	return m, ok, nil
}

func (s *Store) ListMatchesBySeason(ctx context.Context, seasonID string) ([]match.Match, error) {
	defer s.enter(ctx)()

	out := make([]match.Match, 0)
	for _, m := range s.data.matches {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) MatchExistsForTeam(ctx context.Context, teamID string) (bool, error) {
	defer s.enter(ctx)()

	for _, m := range s.data.matches {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) MatchExistsForVenue(ctx context.Context, venueID string) (bool, error) {
	defer s.enter(ctx)()

	for _, m := range s.data.matches {
		if m.VenueID != nil && *m.VenueID == venueID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetResultByMatch(ctx context.Context, matchID string) (match.Result, bool, error) {
	defer s.enter(ctx)()

	result, ok := s.data.results[matchID]
	return result, ok, nil
}

func (s *Store) UpsertResult(ctx context.Context, result match.Result) error {
	defer s.enter(ctx)()

	s.data.results[result.MatchID] = result
	return nil
}

func (s *Store) CreateGoal(ctx context.Context, event match.GoalEvent) error {
	defer s.enter(ctx)()

	s.data.goals[event.ID] = event
	return nil
}

func (s *Store) CreateCard(ctx context.Context, event match.CardEvent) error {
	defer s.enter(ctx)()

	s.data.cards[event.ID] = event
	return nil
}

func (s *Store) CreateAppearance(ctx context.Context, appearance match.Appearance) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.appearances {
		if existing.MatchID == appearance.MatchID && existing.PlayerID == appearance.PlayerID {
			return fmt.Errorf("%w: appearance for player %s in match %s", storage.ErrDuplicate, appearance.PlayerID, appearance.MatchID)
		}
	}

	s.data.appearances[appearance.ID] = appearance
	return nil
}

func (s *Store) ListGoalsByMatch(ctx context.Context, matchID string) ([]match.GoalEvent, error) {
	defer s.enter(ctx)()

	out := make([]match.GoalEvent, 0)
	for _, event := range s.data.goals {
		if event.MatchID == matchID {
			out = append(out, event)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListCardsByMatch(ctx context.Context, matchID string) ([]match.CardEvent, error) {
	defer s.enter(ctx)()

	out := make([]match.CardEvent, 0)
	for _, event := range s.data.cards {
		if event.MatchID == matchID {
			out = append(out, event)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListAppearancesByMatch(ctx context.Context, matchID string) ([]match.Appearance, error) {
	defer s.enter(ctx)()

	out := make([]match.Appearance, 0)
	for _, appearance := range s.data.appearances {
		if appearance.MatchID == matchID {
			out = append(out, appearance)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
