package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pitchside/leagueops/internal/domain/roster"
	"github.com/pitchside/leagueops/internal/domain/storage"
)

func (s *Store) CreateTeam(ctx context.Context, team roster.Team) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.teams {
		if existing.DivisionID == team.DivisionID && existing.Name == team.Name {
			return fmt.Errorf("%w: team %q in division %s", storage.ErrDuplicate, team.Name, team.DivisionID)
		}
	}

	s.data.teams[team.ID] = team
	return nil
}

func (s *Store) GetTeam(ctx context.Context, id string) (roster.Team, bool, error) {
	defer s.enter(ctx)()

	team, ok := s.data.teams[id]
	return team, ok, nil
}

func (s *Store) ListTeamsByDivision(ctx context.Context, divisionID string) ([]roster.Team, error) {
	defer s.enter(ctx)()

	out := make([]roster.Team, 0)
	for _, team := range s.data.teams {
		if team.DivisionID == divisionID {
			out = append(out, team)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) UpdateTeam(ctx context.Context, team roster.Team) error {
	defer s.enter(ctx)()

	if _, ok := s.data.teams[team.ID]; !ok {
		return fmt.Errorf("%w: team=%s", storage.ErrNotFound, team.ID)
	}
	for _, existing := range s.data.teams {
		if existing.ID != team.ID && existing.DivisionID == team.DivisionID && existing.Name == team.Name {
			return fmt.Errorf("%w: team %q in division %s", storage.ErrDuplicate, team.Name, team.DivisionID)
		}
	}

	s.data.teams[team.ID] = team
	return nil
}

func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	defer s.enter(ctx)()

	if _, ok := s.data.teams[id]; !ok {
		return fmt.Errorf("%w: team=%s", storage.ErrNotFound, id)
	}
	for _, m := range s.data.matches {
		if m.HomeTeamID == id || m.AwayTeamID == id {
			return fmt.Errorf("%w: team=%s has matches", storage.ErrProtected, id)
		}
	}

	delete(s.data.teams, id)
	return nil
}

func (s *Store) CreateTeamSeason(ctx context.Context, ts roster.TeamSeason) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.teamSeasons {
		if existing.SeasonID == ts.SeasonID && existing.TeamID == ts.TeamID {
			return fmt.Errorf("%w: team %s in season %s", storage.ErrDuplicate, ts.TeamID, ts.SeasonID)
		}
	}

	s.data.teamSeasons[ts.ID] = ts
	return nil
}

func (s *Store) GetTeamSeason(ctx context.Context, id string) (roster.TeamSeason, bool, error) {
	defer s.enter(ctx)()

	ts, ok := s.data.teamSeasons[id]
	return ts, ok, nil
}

func (s *Store) GetTeamSeasonBySeasonAndTeam(ctx context.Context, seasonID, teamID string) (roster.TeamSeason, bool, error) {
	defer s.enter(ctx)()

	for _, ts := range s.data.teamSeasons {
		if ts.SeasonID == seasonID && ts.TeamID == teamID {
			return ts, true, nil
		}
	}
	return roster.TeamSeason{}, false, nil
}

func (s *Store) ListTeamSeasonsBySeason(ctx context.Context, seasonID string) ([]roster.TeamSeason, error) {
	defer s.enter(ctx)()

	out := make([]roster.TeamSeason, 0)
	for _, ts := range s.data.teamSeasons {
		if ts.SeasonID == seasonID {
			out = append(out, ts)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateTeamSeason(ctx context.Context, ts roster.TeamSeason) error {
	defer s.enter(ctx)()

	if _, ok := s.data.teamSeasons[ts.ID]; !ok {
		return fmt.Errorf("%w: team_season=%s", storage.ErrNotFound, ts.ID)
	}

	s.data.teamSeasons[ts.ID] = ts
	return nil
}

func (s *Store) CreateTeamMember(ctx context.Context, member roster.TeamMember) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.members {
		if existing.TeamSeasonID == member.TeamSeasonID && existing.FullName == member.FullName {
			return fmt.Errorf("%w: member %q on team_season %s", storage.ErrDuplicate, member.FullName, member.TeamSeasonID)
		}
	}

	s.data.members[member.ID] = member
	return nil
}

func (s *Store) GetTeamMember(ctx context.Context, id string) (roster.TeamMember, bool, error) {
	defer s.enter(ctx)()

	member, ok := s.data.members[id]
	return member, ok, nil
}

func (s *Store) ListTeamMembersByTeamSeason(ctx context.Context, teamSeasonID string) ([]roster.TeamMember, error) {
	defer s.enter(ctx)()

	out := make([]roster.TeamMember, 0)
	for _, member := range s.data.members {
		if member.TeamSeasonID == teamSeasonID {
			out = append(out, member)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (s *Store) UpdateTeamMember(ctx context.Context, member roster.TeamMember) error {
	defer s.enter(ctx)()

	if _, ok := s.data.members[member.ID]; !ok {
		return fmt.Errorf("%w: member=%s", storage.ErrNotFound, member.ID)
	}
	for _, existing := range s.data.members {
		if existing.ID != member.ID && existing.TeamSeasonID == member.TeamSeasonID && existing.FullName == member.FullName {
			return fmt.Errorf("%w: member %q on team_season %s", storage.ErrDuplicate, member.FullName, member.TeamSeasonID)
		}
	}

	s.data.members[member.ID] = member
	return nil
}
