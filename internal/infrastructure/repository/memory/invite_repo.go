package memory

import (
	"context"
	"fmt"

	"github.com/pitchside/leagueops/internal/domain/invite"
	"github.com/pitchside/leagueops/internal/domain/storage"
)

func (s *Store) CreateInvite(ctx context.Context, token invite.Token) error {
	defer s.enter(ctx)()

	for _, existing := range s.data.invites {
		if existing.TeamSeasonID == token.TeamSeasonID {
			return fmt.Errorf("%w: invite token for team_season %s", storage.ErrDuplicate, token.TeamSeasonID)
		}
		if existing.Value == token.Value {
			return fmt.Errorf("%w: invite token value", storage.ErrDuplicate)
		}
	}

	s.data.invites[token.ID] = token
	return nil
}

func (s *Store) GetInviteByTeamSeason(ctx context.Context, teamSeasonID string) (invite.Token, bool, error) {
	defer s.enter(ctx)()

	for _, token := range s.data.invites {
		if token.TeamSeasonID == teamSeasonID {
			return token, true, nil
		}
	}
	return invite.Token{}, false, nil
}

func (s *Store) GetInviteByValue(ctx context.Context, value string) (invite.Token, bool, error) {
	defer s.enter(ctx)()

	for _, token := range s.data.invites {
		if token.Value == value {
			return token, true, nil
		}
	}
	return invite.Token{}, false, nil
}

func (s *Store) UpdateInvite(ctx context.Context, token invite.Token) error {
	defer s.enter(ctx)()

	if _, ok := s.data.invites[token.ID]; !ok {
		return fmt.Errorf("%w: invite=%s", storage.ErrNotFound, token.ID)
	}
	for _, existing := range s.data.invites {
		if existing.ID != token.ID && existing.Value == token.Value {
			return fmt.Errorf("%w: invite token value", storage.ErrDuplicate)
		}
	}

	s.data.invites[token.ID] = token
	return nil
}
