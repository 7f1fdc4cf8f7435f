package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/usecase"
)

func (h *Handler) UpsertMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertMatch")
	defer span.End()

	var req upsertMatchRequest
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

	status := match.StatusScheduled
	if req.Status != "" {
		status = match.Status(req.Status)
	}

	item, err := h.matchService.CreateOrUpdateMatch(ctx, usecase.UpsertMatchInput{
		MatchID:    req.MatchID,
		SeasonID:   req.SeasonID,
		DivisionID: req.DivisionID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		VenueID:    req.VenueID,
		StartsAt:   req.StartsAt,
		Status:     status,
		RoundLabel: req.RoundLabel,
		Notes:      req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert match failed", "match_id", req.MatchID, "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	httpStatus := http.StatusCreated
	if req.MatchID != "" {
		httpStatus = http.StatusOK
	}
	writeSuccess(ctx, w, httpStatus, matchToDTO(item))
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req recordResultRequest
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

	result, err := h.matchService.RecordResult(ctx, usecase.RecordResultInput{
		MatchID:    matchID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		IsForfeit:  req.IsForfeit,
		RecordedBy: req.RecordedBy,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
}

func (h *Handler) RecordGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGoal")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req recordGoalRequest
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

	goal, err := h.matchService.RecordGoal(ctx, usecase.RecordGoalInput{
		MatchID:  matchID,
		PlayerID: req.PlayerID,
		Minute:   req.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record goal failed", "match_id", matchID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, goalEventToDTO(goal))
}

func (h *Handler) RecordCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordCard")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req recordCardRequest
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

	card, err := h.matchService.RecordCard(ctx, usecase.RecordCardInput{
		MatchID:  matchID,
		PlayerID: req.PlayerID,
		Card:     match.Card(req.Card),
		Minute:   req.Minute,
		Note:     req.Note,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record card failed", "match_id", matchID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, cardEventToDTO(card))
}

func (h *Handler) RecordAppearance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordAppearance")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req recordAppearanceRequest
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

	appearance, err := h.matchService.RecordAppearance(ctx, usecase.RecordAppearanceInput{
		MatchID:  matchID,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record appearance failed", "match_id", matchID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, appearanceToDTO(appearance))
}

func (h *Handler) GetSeasonSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSchedule")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	entries, err := h.matchService.SeasonSchedule(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "season schedule failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scheduleEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, scheduleEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type upsertMatchRequest struct {
	MatchID    string    `json:"match_id" validate:"omitempty"`
	SeasonID   string    `json:"season_id" validate:"required"`
	DivisionID string    `json:"division_id" validate:"required"`
	HomeTeamID string    `json:"home_team_id" validate:"required"`
	AwayTeamID string    `json:"away_team_id" validate:"required"`
	VenueID    *string   `json:"venue_id,omitempty"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	Status     string    `json:"status" validate:"omitempty,oneof=SCHEDULED FINAL CANCELLED POSTPONED"`
	RoundLabel string    `json:"round_label" validate:"omitempty,max=100"`
	Notes      string    `json:"notes" validate:"omitempty,max=1000"`
}

type recordResultRequest struct {
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	IsForfeit  bool   `json:"is_forfeit"`
	RecordedBy string `json:"recorded_by" validate:"required,max=200"`
}

type recordGoalRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Minute   *int   `json:"minute" validate:"omitempty,gte=0,lte=150"`
}

type recordCardRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Card     string `json:"card" validate:"required,oneof=YELLOW RED"`
	Minute   *int   `json:"minute" validate:"omitempty,gte=0,lte=150"`
	Note     string `json:"note" validate:"omitempty,max=500"`
}

type recordAppearanceRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type matchDTO struct {
	ID         string    `json:"id"`
	SeasonID   string    `json:"season_id"`
	DivisionID string    `json:"division_id"`
	VenueID    *string   `json:"venue_id,omitempty"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	StartsAt   time.Time `json:"starts_at"`
	Status     string    `json:"status"`
	RoundLabel string    `json:"round_label,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		SeasonID:   m.SeasonID,
		DivisionID: m.DivisionID,
		VenueID:    m.VenueID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		StartsAt:   m.StartsAt,
		Status:     string(m.Status),
		RoundLabel: m.RoundLabel,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}

type resultDTO struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"match_id"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	IsForfeit  bool      `json:"is_forfeit"`
	RecordedBy string    `json:"recorded_by"`
	RecordedAt time.Time `json:"recorded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func resultToDTO(result match.Result) resultDTO {
	return resultDTO{
		ID:         result.ID,
		MatchID:    result.MatchID,
		HomeScore:  result.HomeScore,
		AwayScore:  result.AwayScore,
		IsForfeit:  result.IsForfeit,
		RecordedBy: result.RecordedBy,
		RecordedAt: result.RecordedAt,
		UpdatedAt:  result.UpdatedAt,
	}
}

type goalEventDTO struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	TeamID    string    `json:"team_id"`
	PlayerID  string    `json:"player_id"`
	Minute    *int      `json:"minute,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func goalEventToDTO(event match.GoalEvent) goalEventDTO {
	return goalEventDTO{
		ID:        event.ID,
		MatchID:   event.MatchID,
		TeamID:    event.TeamID,
		PlayerID:  event.PlayerID,
		Minute:    event.Minute,
		CreatedAt: event.CreatedAt,
	}
}

type cardEventDTO struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	TeamID    string    `json:"team_id"`
	PlayerID  string    `json:"player_id"`
	Card      string    `json:"card"`
	Minute    *int      `json:"minute,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func cardEventToDTO(event match.CardEvent) cardEventDTO {
	return cardEventDTO{
		ID:        event.ID,
		MatchID:   event.MatchID,
		TeamID:    event.TeamID,
		PlayerID:  event.PlayerID,
		Card:      string(event.Card),
		Minute:    event.Minute,
		Note:      event.Note,
		CreatedAt: event.CreatedAt,
	}
}

type appearanceDTO struct {
	ID       string `json:"id"`
	MatchID  string `json:"match_id"`
	TeamID   string `json:"team_id"`
	PlayerID string `json:"player_id"`
}

func appearanceToDTO(appearance match.Appearance) appearanceDTO {
	return appearanceDTO{
		ID:       appearance.ID,
		MatchID:  appearance.MatchID,
		TeamID:   appearance.TeamID,
		PlayerID: appearance.PlayerID,
	}
}

type scheduleEntryDTO struct {
	Match        matchDTO   `json:"match"`
	HomeTeamName string     `json:"home_team_name"`
	AwayTeamName string     `json:"away_team_name"`
	DivisionName string     `json:"division_name"`
	VenueName    string     `json:"venue_name,omitempty"`
	Result       *resultDTO `json:"result,omitempty"`
}

func scheduleEntryToDTO(entry usecase.ScheduleEntry) scheduleEntryDTO {
	dto := scheduleEntryDTO{
		Match:        matchToDTO(entry.Match),
		HomeTeamName: entry.HomeTeamName,
		AwayTeamName: entry.AwayTeamName,
		DivisionName: entry.DivisionName,
		VenueName:    entry.VenueName,
	}
	if entry.Result != nil {
		result := resultToDTO(*entry.Result)
		dto.Result = &result
	}
	return dto
}
