package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/leagueops/internal/domain/invite"
)

func (h *Handler) IssueInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IssueInvite")
	defer span.End()

	teamSeasonID := r.PathValue("teamSeasonID")
	token, err := h.inviteService.Issue(ctx, teamSeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "issue invite failed", "team_season_id", teamSeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, inviteTokenToDTO(token))
}

func (h *Handler) RotateInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RotateInvite")
	defer span.End()

	teamSeasonID := r.PathValue("teamSeasonID")
	token, err := h.inviteService.Rotate(ctx, teamSeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "rotate invite failed", "team_season_id", teamSeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, inviteTokenToDTO(token))
}

func (h *Handler) DeactivateInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateInvite")
	defer span.End()

	teamSeasonID := r.PathValue("teamSeasonID")
	if err := h.inviteService.Deactivate(ctx, teamSeasonID); err != nil {
		h.logger.WarnContext(ctx, "deactivate invite failed", "team_season_id", teamSeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// GetInviteInfo is the public join-page preview. It never distinguishes
// unknown tokens from deactivated ones.
func (h *Handler) GetInviteInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetInviteInfo")
	defer span.End()

	token := r.PathValue("token")
	info, err := h.inviteService.Info(ctx, token)
	if err != nil {
		h.logger.InfoContext(ctx, "invite info lookup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, inviteInfoDTO{
		TeamName:     info.TeamName,
		SeasonName:   info.SeasonName,
		DivisionName: info.DivisionName,
	})
}

type inviteTokenDTO struct {
	ID           string     `json:"id"`
	TeamSeasonID string     `json:"team_season_id"`
	Value        string     `json:"value"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	RotatedAt    *time.Time `json:"rotated_at,omitempty"`
}

func inviteTokenToDTO(token invite.Token) inviteTokenDTO {
	return inviteTokenDTO{
		ID:           token.ID,
		TeamSeasonID: token.TeamSeasonID,
		Value:        token.Value,
		IsActive:     token.IsActive,
		CreatedAt:    token.CreatedAt,
		RotatedAt:    token.RotatedAt,
	}
}

type inviteInfoDTO struct {
	TeamName     string `json:"team_name"`
	SeasonName   string `json:"season_name"`
	DivisionName string `json:"division_name"`
}
