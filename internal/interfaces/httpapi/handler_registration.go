package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/leagueops/internal/domain/registration"
	"github.com/pitchside/leagueops/internal/usecase"
)

func (h *Handler) SubmitCreateTeamRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitCreateTeamRequest")
	defer span.End()

	var req submitCreateTeamRequest
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

	request, err := h.registrationService.SubmitCreateTeam(ctx, usecase.SubmitCreateTeamInput{
		SeasonID:   req.SeasonID,
		DivisionID: req.DivisionID,
		TeamName:   req.TeamName,
		Level:      registration.Level(req.Level),
		Notes:      req.Notes,
		Person: registration.Person{
			FullName: req.Captain.FullName,
			Email:    req.Captain.Email,
			Phone:    req.Captain.Phone,
		},
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit create-team request failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, registrationRequestToDTO(request))
}

func (h *Handler) SubmitJoinRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitJoinRequest")
	defer span.End()

	var req submitJoinRequest
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

	request, err := h.registrationService.SubmitJoinTeam(ctx, usecase.SubmitJoinTeamInput{
		Token: req.Token,
		Person: registration.Person{
			FullName: req.Player.FullName,
			Email:    req.Player.Email,
			Phone:    req.Player.Phone,
		},
		Documents: registration.Documents{
			WaiverFile: req.WaiverFile,
			IDFile:     req.IDFile,
		},
	})
	if err != nil {
		h.logger.InfoContext(ctx, "submit join request failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, registrationRequestToDTO(request))
}

func (h *Handler) ResubmitRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResubmitRequest")
	defer span.End()

	requestID := r.PathValue("requestID")
	request, err := h.registrationService.Resubmit(ctx, requestID)
	if err != nil {
		h.logger.WarnContext(ctx, "resubmit request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationRequestToDTO(request))
}

func (h *Handler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPendingRequests")
	defer span.End()

	requests, err := h.registrationService.Pending(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list pending requests failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]registrationRequestDTO, 0, len(requests))
	for _, request := range requests {
		items = append(items, registrationRequestToDTO(request))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveRequest")
	defer span.End()

	requestID := r.PathValue("requestID")

	var req approveRequest
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

	result, err := h.registrationService.Approve(ctx, requestID, req.Approver)
	if err != nil {
		h.logger.WarnContext(ctx, "approve request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, approvalResultToDTO(result))
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectRequest")
	defer span.End()

	requestID := r.PathValue("requestID")

	var req rejectRequest
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

	request, err := h.registrationService.Reject(ctx, requestID, req.Rejector, req.Reason)
	if err != nil {
		h.logger.WarnContext(ctx, "reject request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationRequestToDTO(request))
}

func (h *Handler) RequireRequestInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RequireRequestInfo")
	defer span.End()

	requestID := r.PathValue("requestID")

	var req requireInfoRequest
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

	request, err := h.registrationService.RequireInfo(ctx, requestID, req.Reviewer, req.Note)
	if err != nil {
		h.logger.WarnContext(ctx, "require info failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationRequestToDTO(request))
}

func (h *Handler) ApproveRequestBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveRequestBatch")
	defer span.End()

	var req approveBatchRequest
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

	result, err := h.registrationService.ApproveBatch(ctx, req.RequestIDs, req.Approver)
	if err != nil {
		h.logger.WarnContext(ctx, "approve batch failed", "count", len(req.RequestIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, batchResultToDTO(result))
}

type personPayload struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
}

type submitCreateTeamRequest struct {
	SeasonID   string        `json:"season_id" validate:"required"`
	DivisionID string        `json:"division_id" validate:"omitempty"`
	TeamName   string        `json:"team_name" validate:"required,max=200"`
	Level      string        `json:"level" validate:"omitempty,oneof=HIGH_LEVEL MEDIUM_LEVEL LOW_LEVEL"`
	Notes      string        `json:"notes" validate:"omitempty,max=1000"`
	Captain    personPayload `json:"captain" validate:"required"`
}

type submitJoinRequest struct {
	Token      string        `json:"token" validate:"required"`
	Player     personPayload `json:"player" validate:"required"`
	WaiverFile string        `json:"waiver_file" validate:"omitempty,max=500"`
	IDFile     string        `json:"id_file" validate:"omitempty,max=500"`
}

type approveRequest struct {
	Approver string `json:"approver" validate:"required,max=200"`
}

type rejectRequest struct {
	Rejector string `json:"rejector" validate:"required,max=200"`
	Reason   string `json:"reason" validate:"omitempty,max=1000"`
}

type requireInfoRequest struct {
	Reviewer string `json:"reviewer" validate:"required,max=200"`
	Note     string `json:"note" validate:"required,max=1000"`
}

type approveBatchRequest struct {
	RequestIDs []string `json:"request_ids" validate:"required,min=1,dive,required"`
	Approver   string   `json:"approver" validate:"required,max=200"`
}

type registrationRequestDTO struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
	SeasonID     string `json:"season_id"`
	DivisionID   string `json:"division_id,omitempty"`
	TeamSeasonID string `json:"team_season_id,omitempty"`

	TeamName string `json:"team_name,omitempty"`
	Level    string `json:"level,omitempty"`
	Notes    string `json:"notes,omitempty"`

	WaiverFile string `json:"waiver_file,omitempty"`
	IDFile     string `json:"id_file,omitempty"`

	Person     personPayload `json:"person"`
	AdminNotes string        `json:"admin_notes,omitempty"`

	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	RejectedBy string     `json:"rejected_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func registrationRequestToDTO(request registration.Request) registrationRequestDTO {
	dto := registrationRequestDTO{
		ID:           request.ID,
		Kind:         string(request.Kind),
		Status:       string(request.Status),
		SeasonID:     request.SeasonID,
		DivisionID:   request.DivisionID,
		TeamSeasonID: request.TeamSeasonID,
		Person: personPayload{
			FullName: request.Person.FullName,
			Email:    request.Person.Email,
			Phone:    request.Person.Phone,
		},
		AdminNotes: request.AdminNotes,
		ApprovedAt: request.ApprovedAt,
		ApprovedBy: request.ApprovedBy,
		RejectedAt: request.RejectedAt,
		RejectedBy: request.RejectedBy,
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}
	if request.CreateTeam != nil {
		dto.TeamName = request.CreateTeam.TeamName
		dto.Level = string(request.CreateTeam.Level)
		dto.Notes = request.CreateTeam.Notes
	}
	if request.Join != nil {
		dto.WaiverFile = request.Join.Documents.WaiverFile
		dto.IDFile = request.Join.Documents.IDFile
	}
	return dto
}

type approvalResultDTO struct {
	Request      registrationRequestDTO `json:"request"`
	TeamID       string                 `json:"team_id,omitempty"`
	TeamSeasonID string                 `json:"team_season_id,omitempty"`
	MemberID     string                 `json:"member_id,omitempty"`
	InviteToken  string                 `json:"invite_token,omitempty"`
	TeamName     string                 `json:"team_name,omitempty"`
	SeasonName   string                 `json:"season_name,omitempty"`
	NotifyError  string                 `json:"notify_error,omitempty"`
}

func approvalResultToDTO(result usecase.ApprovalResult) approvalResultDTO {
	dto := approvalResultDTO{
		Request:      registrationRequestToDTO(result.Request),
		TeamID:       result.TeamID,
		TeamSeasonID: result.TeamSeasonID,
		MemberID:     result.MemberID,
		InviteToken:  result.InviteToken,
		TeamName:     result.TeamName,
		SeasonName:   result.SeasonName,
	}
	if result.NotifyErr != nil {
		dto.NotifyError = result.NotifyErr.Error()
	}
	return dto
}

type batchFailureDTO struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

type batchResultDTO struct {
	Approved int                 `json:"approved"`
	Results  []approvalResultDTO `json:"results"`
	Failures []batchFailureDTO   `json:"failures,omitempty"`
}

func batchResultToDTO(result usecase.BatchResult) batchResultDTO {
	dto := batchResultDTO{
		Approved: result.Approved,
		Results:  make([]approvalResultDTO, 0, len(result.Results)),
	}
	for _, item := range result.Results {
		dto.Results = append(dto.Results, approvalResultToDTO(item))
	}
	for _, failure := range result.Failures {
		dto.Failures = append(dto.Failures, batchFailureDTO{
			RequestID: failure.RequestID,
			Error:     failure.Err.Error(),
		})
	}
	return dto
}
