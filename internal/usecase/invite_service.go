package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/leagueops/internal/domain/invite"
	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/roster"
	"github.com/pitchside/leagueops/internal/domain/storage"
	idgen "github.com/pitchside/leagueops/internal/platform/id"
	"github.com/pitchside/leagueops/internal/platform/logging"
)

// InviteService owns the invite-token lifecycle. A team season has at most
// one token row; rotation swaps the value in place and is the only way the
// value ever changes.
type InviteService struct {
	inviteRepo     invite.Repository
	teamSeasonRepo roster.TeamSeasonRepository
	teamRepo       roster.TeamRepository
	seasonRepo     league.SeasonRepository
	divisionRepo   league.DivisionRepository
	ids            idgen.Generator
	tokens         idgen.TokenGenerator
	tx             TxRunner
	logger         *logging.Logger
	now            func() time.Time
}

func NewInviteService(
	inviteRepo invite.Repository,
	teamSeasonRepo roster.TeamSeasonRepository,
	teamRepo roster.TeamRepository,
	seasonRepo league.SeasonRepository,
	divisionRepo league.DivisionRepository,
	ids idgen.Generator,
	tokens idgen.TokenGenerator,
	tx TxRunner,
	logger *logging.Logger,
) *InviteService {
	if logger == nil {
		logger = logging.Default()
	}

	return &InviteService{
		inviteRepo:     inviteRepo,
		teamSeasonRepo: teamSeasonRepo,
		teamRepo:       teamRepo,
		seasonRepo:     seasonRepo,
		divisionRepo:   divisionRepo,
		ids:            ids,
		tokens:         tokens,
		tx:             tx,
		logger:         logger,
		now:            time.Now,
	}
}

// Issue creates the one token for a team season. A second issue fails;
// callers that need a fresh value rotate instead.
func (s *InviteService) Issue(ctx context.Context, teamSeasonID string) (invite.Token, error) {
	teamSeasonID = strings.TrimSpace(teamSeasonID)
	if teamSeasonID == "" {
		return invite.Token{}, fmt.Errorf("%w: team season id is required", ErrInvalidInput)
	}

	if _, exists, err := s.teamSeasonRepo.GetByID(ctx, teamSeasonID); err != nil {
		return invite.Token{}, fmt.Errorf("get team season: %w", err)
	} else if !exists {
		return invite.Token{}, fmt.Errorf("%w: team_season=%s", ErrNotFound, teamSeasonID)
	}

	if _, exists, err := s.inviteRepo.GetByTeamSeason(ctx, teamSeasonID); err != nil {
		return invite.Token{}, fmt.Errorf("get invite token: %w", err)
	} else if exists {
		return invite.Token{}, fmt.Errorf("%w: invite token already issued; rotate it instead", ErrInvalidState)
	}

	tokenID, err := s.ids.NewID()
	if err != nil {
		return invite.Token{}, fmt.Errorf("generate invite token id: %w", err)
	}
	value, err := s.tokens.NewToken()
	if err != nil {
		return invite.Token{}, fmt.Errorf("generate invite token value: %w", err)
	}

	token := invite.Token{
		ID:           tokenID,
		TeamSeasonID: teamSeasonID,
		Value:        value,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.inviteRepo.Create(ctx, token); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return invite.Token{}, fmt.Errorf("%w: invite token already issued; rotate it instead", ErrInvalidState)
		}
		return invite.Token{}, fmt.Errorf("create invite token: %w", err)
	}

	return token, nil
}

// Rotate regenerates the token value, reactivates the row and stamps
// rotated_at, all in one transaction. The old value stops resolving the
// moment the transaction commits; mail already in flight with the old value
// is an accepted race.
func (s *InviteService) Rotate(ctx context.Context, teamSeasonID string) (invite.Token, error) {
	teamSeasonID = strings.TrimSpace(teamSeasonID)
	if teamSeasonID == "" {
		return invite.Token{}, fmt.Errorf("%w: team season id is required", ErrInvalidInput)
	}

	var rotated invite.Token
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		token, exists, err := s.inviteRepo.GetByTeamSeason(ctx, teamSeasonID)
		if err != nil {
			return fmt.Errorf("get invite token: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: no invite token for team_season=%s", ErrNotFound, teamSeasonID)
		}

		value, err := s.tokens.NewToken()
		if err != nil {
			return fmt.Errorf("generate invite token value: %w", err)
		}

		now := s.now().UTC()
		token.Value = value
		token.IsActive = true
		token.RotatedAt = &now

		if err := s.inviteRepo.Update(ctx, token); err != nil {
			return fmt.Errorf("update invite token: %w", err)
		}

		rotated = token
		return nil
	})
	if err != nil {
		return invite.Token{}, err
	}

	s.logger.InfoContext(ctx, "invite token rotated", "team_season_id", teamSeasonID)

	return rotated, nil
}

// Deactivate kills the token without replacing it. Resolution fails until
// the next rotation.
func (s *InviteService) Deactivate(ctx context.Context, teamSeasonID string) error {
	teamSeasonID = strings.TrimSpace(teamSeasonID)
	if teamSeasonID == "" {
		return fmt.Errorf("%w: team season id is required", ErrInvalidInput)
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		token, exists, err := s.inviteRepo.GetByTeamSeason(ctx, teamSeasonID)
		if err != nil {
			return fmt.Errorf("get invite token: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: no invite token for team_season=%s", ErrNotFound, teamSeasonID)
		}

		token.IsActive = false
		if err := s.inviteRepo.Update(ctx, token); err != nil {
			return fmt.Errorf("update invite token: %w", err)
		}

		return nil
	})
}

// Resolve maps a bearer value to its team season. Unknown, inactive and
// malformed values all fail with the same ErrInvalidToken so the endpoint
// leaks nothing about token existence.
func (s *InviteService) Resolve(ctx context.Context, value string) (roster.TeamSeason, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return roster.TeamSeason{}, ErrInvalidToken
	}

	token, exists, err := s.inviteRepo.GetByValue(ctx, value)
	if err != nil {
		return roster.TeamSeason{}, fmt.Errorf("get invite token: %w", err)
	}
	if !exists || !token.IsActive {
		return roster.TeamSeason{}, ErrInvalidToken
	}

	ts, exists, err := s.teamSeasonRepo.GetByID(ctx, token.TeamSeasonID)
	if err != nil {
		return roster.TeamSeason{}, fmt.Errorf("get team season: %w", err)
	}
	if !exists {
		return roster.TeamSeason{}, ErrInvalidToken
	}

	return ts, nil
}

// InviteInfo is the public preview shown on the join page.
type InviteInfo struct {
	TeamName     string
	SeasonName   string
	DivisionName string
}

func (s *InviteService) Info(ctx context.Context, value string) (InviteInfo, error) {
	ts, err := s.Resolve(ctx, value)
	if err != nil {
		return InviteInfo{}, err
	}

	var info InviteInfo

	team, exists, err := s.teamRepo.GetByID(ctx, ts.TeamID)
	if err != nil {
		return InviteInfo{}, fmt.Errorf("get team: %w", err)
	}
	if exists {
		info.TeamName = team.Name
		if division, ok, err := s.divisionRepo.GetByID(ctx, team.DivisionID); err != nil {
			return InviteInfo{}, fmt.Errorf("get division: %w", err)
		} else if ok {
			info.DivisionName = division.Name
		}
	}

	if season, ok, err := s.seasonRepo.GetByID(ctx, ts.SeasonID); err != nil {
		return InviteInfo{}, fmt.Errorf("get season: %w", err)
	} else if ok {
		info.SeasonName = season.Name
	}

	return info, nil
}
