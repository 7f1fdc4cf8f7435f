package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/leagueops/internal/domain/roster"
	"github.com/pitchside/leagueops/internal/usecase"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.CreateTeam(ctx, usecase.CreateTeamInput{
		DivisionID:          req.DivisionID,
		Name:                req.Name,
		ShortName:           req.ShortName,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactEmail: req.PrimaryContactEmail,
		PrimaryContactPhone: req.PrimaryContactPhone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "division_id", req.DivisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(team))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req updateTeamRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.UpdateTeam(ctx, usecase.UpdateTeamInput{
		TeamID:              teamID,
		DivisionID:          req.DivisionID,
		Name:                req.Name,
		ShortName:           req.ShortName,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactEmail: req.PrimaryContactEmail,
		PrimaryContactPhone: req.PrimaryContactPhone,
		IsActive:            req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.rosterService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) EnrollTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EnrollTeam")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	teamID := r.PathValue("teamID")

	teamSeason, err := h.rosterService.EnrollTeam(ctx, seasonID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "enroll team failed", "season_id", seasonID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamSeasonToDTO(teamSeason))
}

func (h *Handler) WithdrawTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WithdrawTeam")
	defer span.End()

	teamSeasonID := r.PathValue("teamSeasonID")
	teamSeason, err := h.rosterService.WithdrawTeam(ctx, teamSeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "withdraw team failed", "team_season_id", teamSeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamSeasonToDTO(teamSeason))
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMember")
	defer span.End()

	teamSeasonID := r.PathValue("teamSeasonID")

	var req addMemberRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := h.rosterService.AddMember(ctx, usecase.AddMemberInput{
		TeamSeasonID: teamSeasonID,
		FullName:     req.FullName,
		Role:         roster.MemberRole(req.Role),
		JerseyNumber: req.JerseyNumber,
		UserRef:      req.UserRef,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add member failed", "team_season_id", teamSeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamMemberToDTO(member))
}

func (h *Handler) DeactivateMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateMember")
	defer span.End()

	memberID := r.PathValue("memberID")
	member, err := h.rosterService.DeactivateMember(ctx, memberID)
	if err != nil {
		h.logger.WarnContext(ctx, "deactivate member failed", "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamMemberToDTO(member))
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	teamSeasonID := r.PathValue("teamSeasonID")
	members, err := h.rosterService.Roster(ctx, teamSeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "team_season_id", teamSeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamMemberDTO, 0, len(members))
	for _, member := range members {
		items = append(items, teamMemberToDTO(member))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type createTeamRequest struct {
	DivisionID          string `json:"division_id" validate:"required"`
	Name                string `json:"name" validate:"required,max=200"`
	ShortName           string `json:"short_name" validate:"omitempty,max=50"`
	PrimaryContactName  string `json:"primary_contact_name" validate:"omitempty,max=200"`
	PrimaryContactEmail string `json:"primary_contact_email" validate:"omitempty,email"`
	PrimaryContactPhone string `json:"primary_contact_phone" validate:"omitempty,max=50"`
}

type updateTeamRequest struct {
	DivisionID          string `json:"division_id" validate:"required"`
	Name                string `json:"name" validate:"required,max=200"`
	ShortName           string `json:"short_name" validate:"omitempty,max=50"`
	PrimaryContactName  string `json:"primary_contact_name" validate:"omitempty,max=200"`
	PrimaryContactEmail string `json:"primary_contact_email" validate:"omitempty,email"`
	PrimaryContactPhone string `json:"primary_contact_phone" validate:"omitempty,max=50"`
	IsActive            bool   `json:"is_active"`
}

type addMemberRequest struct {
	FullName     string `json:"full_name" validate:"required,max=200"`
	Role         string `json:"role" validate:"required,oneof=CAPTAIN PLAYER"`
	JerseyNumber *int   `json:"jersey_number" validate:"omitempty,gte=0,lte=99"`
	UserRef      string `json:"user_ref" validate:"omitempty,max=100"`
}

type teamDTO struct {
	ID                  string    `json:"id"`
	DivisionID          string    `json:"division_id"`
	Name                string    `json:"name"`
	ShortName           string    `json:"short_name,omitempty"`
	PrimaryContactName  string    `json:"primary_contact_name,omitempty"`
	PrimaryContactEmail string    `json:"primary_contact_email,omitempty"`
	PrimaryContactPhone string    `json:"primary_contact_phone,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

func teamToDTO(team roster.Team) teamDTO {
	return teamDTO{
		ID:                  team.ID,
		DivisionID:          team.DivisionID,
		Name:                team.Name,
		ShortName:           team.ShortName,
		PrimaryContactName:  team.PrimaryContactName,
		PrimaryContactEmail: team.PrimaryContactEmail,
		PrimaryContactPhone: team.PrimaryContactPhone,
		IsActive:            team.IsActive,
		CreatedAt:           team.CreatedAt,
	}
}

type teamSeasonDTO struct {
	ID       string `json:"id"`
	SeasonID string `json:"season_id"`
	TeamID   string `json:"team_id"`
	Status   string `json:"status"`
}

func teamSeasonToDTO(ts roster.TeamSeason) teamSeasonDTO {
	return teamSeasonDTO{
		ID:       ts.ID,
		SeasonID: ts.SeasonID,
		TeamID:   ts.TeamID,
		Status:   string(ts.Status),
	}
}

type teamMemberDTO struct {
	ID           string    `json:"id"`
	TeamSeasonID string    `json:"team_season_id"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	JerseyNumber *int      `json:"jersey_number,omitempty"`
	UserRef      string    `json:"user_ref,omitempty"`
	IsActive     bool      `json:"is_active"`
	JoinedAt     time.Time `json:"joined_at"`
}

func teamMemberToDTO(member roster.TeamMember) teamMemberDTO {
	return teamMemberDTO{
		ID:           member.ID,
		TeamSeasonID: member.TeamSeasonID,
		FullName:     member.FullName,
		Role:         string(member.Role),
		JerseyNumber: member.JerseyNumber,
		UserRef:      member.UserRef,
		IsActive:     member.IsActive,
		JoinedAt:     member.JoinedAt,
	}
}
