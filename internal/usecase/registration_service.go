package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/registration"
	"github.com/pitchside/leagueops/internal/domain/roster"
	idgen "github.com/pitchside/leagueops/internal/platform/id"
	"github.com/pitchside/leagueops/internal/platform/logging"
)

const defaultBatchWorkers = 4

// RegistrationService runs the self-service intake and the two-stage approval
// workflow. Approvals provision downstream records (team, enrollment,
// captain, invite token) inside one transaction; the requester notification
// goes out only after that transaction is durable.
type RegistrationService struct {
	requestRepo    registration.Repository
	seasonRepo     league.SeasonRepository
	divisionRepo   league.DivisionRepository
	teamRepo       roster.TeamRepository
	teamSeasonRepo roster.TeamSeasonRepository
	memberRepo     roster.TeamMemberRepository
	invites        *InviteService
	ids            idgen.Generator
	tx             TxRunner
	notifier       Notifier
	baseURL        string
	batchWorkers   int
	logger         *logging.Logger
	now            func() time.Time
}

// SetBatchWorkers overrides the approval pool size; values below 1 keep the
// default.
func (s *RegistrationService) SetBatchWorkers(n int) {
	if n >= 1 {
		s.batchWorkers = n
	}
}

func NewRegistrationService(
	requestRepo registration.Repository,
	seasonRepo league.SeasonRepository,
	divisionRepo league.DivisionRepository,
	teamRepo roster.TeamRepository,
	teamSeasonRepo roster.TeamSeasonRepository,
	memberRepo roster.TeamMemberRepository,
	invites *InviteService,
	ids idgen.Generator,
	tx TxRunner,
	notifier Notifier,
	baseURL string,
	logger *logging.Logger,
) *RegistrationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RegistrationService{
		requestRepo:    requestRepo,
		seasonRepo:     seasonRepo,
		divisionRepo:   divisionRepo,
		teamRepo:       teamRepo,
		teamSeasonRepo: teamSeasonRepo,
		memberRepo:     memberRepo,
		invites:        invites,
		ids:            ids,
		tx:             tx,
		notifier:       notifier,
		baseURL:        strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:         logger,
		now:            time.Now,
	}
}

type SubmitCreateTeamInput struct {
	SeasonID   string
	DivisionID string // optional; approval requires it to have been captured
	TeamName   string
	Level      registration.Level
	Notes      string
	Person     registration.Person
}

func (s *RegistrationService) SubmitCreateTeam(ctx context.Context, input SubmitCreateTeamInput) (registration.Request, error) {
	input.SeasonID = strings.TrimSpace(input.SeasonID)
	input.DivisionID = strings.TrimSpace(input.DivisionID)
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.Person.FullName = strings.TrimSpace(input.Person.FullName)
	input.Person.Email = strings.TrimSpace(input.Person.Email)
	input.Person.Phone = strings.TrimSpace(input.Person.Phone)

	errs := FieldErrors{}
	if input.SeasonID == "" {
		errs["season"] = "season id is required"
	}
	if input.TeamName == "" {
		errs["team_name"] = "team name is required"
	}
	if input.Person.FullName == "" {
		errs["full_name"] = "full name is required"
	}
	if !registration.ValidLevel(input.Level) {
		errs["level"] = fmt.Sprintf("level %q is not valid", input.Level)
	}
	if len(errs) > 0 {
		return registration.Request{}, errs
	}

	if _, exists, err := s.seasonRepo.GetByID(ctx, input.SeasonID); err != nil {
		return registration.Request{}, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return registration.Request{}, fmt.Errorf("%w: season=%s", ErrNotFound, input.SeasonID)
	}

	if input.DivisionID != "" {
		division, exists, err := s.divisionRepo.GetByID(ctx, input.DivisionID)
		if err != nil {
			return registration.Request{}, fmt.Errorf("get division: %w", err)
		}
		if !exists {
			return registration.Request{}, fmt.Errorf("%w: division=%s", ErrNotFound, input.DivisionID)
		}
		if division.SeasonID != input.SeasonID {
			return registration.Request{}, FieldErrors{"division": "division must belong to the requested season"}
		}
	}

	requestID, err := s.ids.NewID()
	if err != nil {
		return registration.Request{}, fmt.Errorf("generate request id: %w", err)
	}

	now := s.now().UTC()
	req := registration.Request{
		ID:         requestID,
		Kind:       registration.KindCreateTeam,
		Status:     registration.StatusPending,
		SeasonID:   input.SeasonID,
		DivisionID: input.DivisionID,
		CreateTeam: &registration.CreateTeamDetails{
			TeamName: input.TeamName,
			Level:    input.Level,
			Notes:    input.Notes,
		},
		Person:    input.Person,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := req.Validate(); err != nil {
		return registration.Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return registration.Request{}, fmt.Errorf("create registration request: %w", err)
	}

	s.logger.InfoContext(ctx, "create-team request submitted", "request_id", req.ID, "season_id", req.SeasonID)

	return req, nil
}

type SubmitJoinTeamInput struct {
	Token     string
	Person    registration.Person
	Documents registration.Documents
}

// SubmitJoinTeam resolves the invite token first; the request's season,
// division and team season come from the resolved enrollment, never from
// caller input, so a token for one team cannot inject members elsewhere.
// No request row is created when the token does not resolve.
func (s *RegistrationService) SubmitJoinTeam(ctx context.Context, input SubmitJoinTeamInput) (registration.Request, error) {
	input.Person.FullName = strings.TrimSpace(input.Person.FullName)
	input.Person.Email = strings.TrimSpace(input.Person.Email)
	input.Person.Phone = strings.TrimSpace(input.Person.Phone)

	ts, err := s.invites.Resolve(ctx, input.Token)
	if err != nil {
		return registration.Request{}, err
	}

	if input.Person.FullName == "" {
		return registration.Request{}, FieldErrors{"full_name": "full name is required"}
	}

	divisionID := ""
	if team, exists, err := s.teamRepo.GetByID(ctx, ts.TeamID); err != nil {
		return registration.Request{}, fmt.Errorf("get team: %w", err)
	} else if exists {
		divisionID = team.DivisionID
	}

	requestID, err := s.ids.NewID()
	if err != nil {
		return registration.Request{}, fmt.Errorf("generate request id: %w", err)
	}

	now := s.now().UTC()
	req := registration.Request{
		ID:           requestID,
		Kind:         registration.KindJoinTeam,
		Status:       registration.StatusPending,
		SeasonID:     ts.SeasonID,
		DivisionID:   divisionID,
		TeamSeasonID: ts.ID,
		Join: &registration.JoinDetails{
			Documents: input.Documents,
		},
		Person:    input.Person,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := req.Validate(); err != nil {
		return registration.Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return registration.Request{}, fmt.Errorf("create registration request: %w", err)
	}

	s.logger.InfoContext(ctx, "join-team request submitted", "request_id", req.ID, "team_season_id", ts.ID)

	return req, nil
}

// ApprovalResult reports what an approval provisioned. NotifyErr carries a
// delivery warning; the approval itself is durable regardless.
type ApprovalResult struct {
	Request      registration.Request
	TeamID       string
	TeamSeasonID string
	MemberID     string
	InviteToken  string
	TeamName     string
	SeasonName   string
	NotifyErr    error
}

// Approve moves a pending request to APPROVED and provisions its downstream
// records in one transaction. A request that is no longer pending fails
// ErrInvalidState before any side effect; when two approvals race, the
// conditional status write inside the transaction picks the single winner.
func (s *RegistrationService) Approve(ctx context.Context, requestID, approver string) (ApprovalResult, error) {
	requestID = strings.TrimSpace(requestID)
	approver = strings.TrimSpace(approver)
	if requestID == "" {
		return ApprovalResult{}, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}
	if approver == "" {
		return ApprovalResult{}, fmt.Errorf("%w: approver identity is required", ErrInvalidInput)
	}

	var result ApprovalResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		req, exists, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get registration request: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: request=%s", ErrNotFound, requestID)
		}
		if req.Status != registration.StatusPending {
			return fmt.Errorf("%w: request is %s", ErrInvalidState, req.Status)
		}

		switch req.Kind {
		case registration.KindCreateTeam:
			return s.approveCreateTeam(ctx, &result, req, approver)
		case registration.KindJoinTeam:
			return s.approveJoinTeam(ctx, &result, req, approver)
		default:
			return fmt.Errorf("%w: request kind %q", ErrInvalidInput, req.Kind)
		}
	})
	if err != nil {
		return ApprovalResult{}, err
	}

	s.logger.InfoContext(ctx, "registration request approved",
		"request_id", result.Request.ID,
		"kind", string(result.Request.Kind),
		"approved_by", approver,
	)

	// The approval is committed; a failed mail must not undo provisioning.
	if result.InviteToken != "" && result.Request.Person.Email != "" {
		if err := s.sendCaptainLink(ctx, result); err != nil {
			s.logger.WarnContext(ctx, "captain invite mail failed",
				"request_id", result.Request.ID,
				"error", err,
			)
			result.NotifyErr = fmt.Errorf("%w: %v", ErrDelivery, err)
		}
	}

	return result, nil
}

func (s *RegistrationService) approveCreateTeam(ctx context.Context, result *ApprovalResult, req registration.Request, approver string) error {
	if req.DivisionID == "" {
		return fmt.Errorf("%w: create-team request has no division context", ErrMissingContext)
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	team := roster.Team{
		ID:                  teamID,
		DivisionID:          req.DivisionID,
		Name:                strings.TrimSpace(req.CreateTeam.TeamName),
		PrimaryContactName:  req.Person.FullName,
		PrimaryContactEmail: req.Person.Email,
		PrimaryContactPhone: req.Person.Phone,
		IsActive:            true,
		CreatedAt:           now,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return duplicateAsFieldError(err, "team_name", "a team with this name already exists in the division")
	}

	tsID, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate team season id: %w", err)
	}
	ts := roster.TeamSeason{
		ID:       tsID,
		SeasonID: req.SeasonID,
		TeamID:   team.ID,
		Status:   roster.TeamSeasonActive,
	}
	if err := s.teamSeasonRepo.Create(ctx, ts); err != nil {
		return duplicateAsFieldError(err, "team_name", "team is already enrolled in the season")
	}

	memberID, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate team member id: %w", err)
	}
	captain := roster.TeamMember{
		ID:           memberID,
		TeamSeasonID: ts.ID,
		Role:         roster.RoleCaptain,
		FullName:     req.Person.FullName,
		IsActive:     true,
		JoinedAt:     now,
	}
	if err := s.memberRepo.Create(ctx, captain); err != nil {
		return duplicateAsFieldError(err, "full_name", "a member with this name is already on the roster")
	}

	token, err := s.invites.Issue(ctx, ts.ID)
	if err != nil {
		return fmt.Errorf("issue invite token: %w", err)
	}
	if token.Value == "" {
		// Should not happen; rotate rather than hand out an unusable link.
		token, err = s.invites.Rotate(ctx, ts.ID)
		if err != nil {
			return fmt.Errorf("rotate empty invite token: %w", err)
		}
	}

	req.TeamSeasonID = ts.ID
	req.Status = registration.StatusApproved
	req.ApprovedAt = &now
	req.ApprovedBy = approver
	req.UpdatedAt = now

	ok, err := s.requestRepo.Transition(ctx, req, registration.StatusPending)
	if err != nil {
		return fmt.Errorf("transition registration request: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: request was decided concurrently", ErrInvalidState)
	}

	result.Request = req
	result.TeamID = team.ID
	result.TeamSeasonID = ts.ID
	result.MemberID = captain.ID
	result.InviteToken = token.Value
	result.TeamName = team.Name
	if season, exists, err := s.seasonRepo.GetByID(ctx, req.SeasonID); err != nil {
		return fmt.Errorf("get season: %w", err)
	} else if exists {
		result.SeasonName = season.Name
	}

	return nil
}

func (s *RegistrationService) approveJoinTeam(ctx context.Context, result *ApprovalResult, req registration.Request, approver string) error {
	if req.TeamSeasonID == "" {
		return fmt.Errorf("%w: join request has no team season", ErrMissingContext)
	}

	if _, exists, err := s.teamSeasonRepo.GetByID(ctx, req.TeamSeasonID); err != nil {
		return fmt.Errorf("get team season: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: join request points at a missing team season", ErrMissingContext)
	}

	memberID, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate team member id: %w", err)
	}

	now := s.now().UTC()
	player := roster.TeamMember{
		ID:           memberID,
		TeamSeasonID: req.TeamSeasonID,
		Role:         roster.RolePlayer,
		FullName:     req.Person.FullName,
		IsActive:     true,
		JoinedAt:     now,
	}
	if err := s.memberRepo.Create(ctx, player); err != nil {
		return duplicateAsFieldError(err, "full_name", "a member with this name is already on the roster")
	}

	req.Status = registration.StatusApproved
	req.ApprovedAt = &now
	req.ApprovedBy = approver
	req.UpdatedAt = now

	ok, err := s.requestRepo.Transition(ctx, req, registration.StatusPending)
	if err != nil {
		return fmt.Errorf("transition registration request: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: request was decided concurrently", ErrInvalidState)
	}

	result.Request = req
	result.TeamSeasonID = req.TeamSeasonID
	result.MemberID = player.ID

	return nil
}

// Reject closes a request from PENDING or NEEDS_INFO. No downstream records
// are created.
func (s *RegistrationService) Reject(ctx context.Context, requestID, rejector, reason string) (registration.Request, error) {
	requestID = strings.TrimSpace(requestID)
	rejector = strings.TrimSpace(rejector)
	if requestID == "" {
		return registration.Request{}, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}
	if rejector == "" {
		return registration.Request{}, fmt.Errorf("%w: rejector identity is required", ErrInvalidInput)
	}

	var rejected registration.Request
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		req, exists, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get registration request: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: request=%s", ErrNotFound, requestID)
		}
		if req.Status != registration.StatusPending && req.Status != registration.StatusNeedsInfo {
			return fmt.Errorf("%w: request is %s", ErrInvalidState, req.Status)
		}

		now := s.now().UTC()
		from := req.Status
		req.Status = registration.StatusRejected
		req.RejectedAt = &now
		req.RejectedBy = rejector
		req.UpdatedAt = now
		if reason = strings.TrimSpace(reason); reason != "" {
			req.AdminNotes = appendNote(req.AdminNotes, reason)
		}

		ok, err := s.requestRepo.Transition(ctx, req, from)
		if err != nil {
			return fmt.Errorf("transition registration request: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: request was decided concurrently", ErrInvalidState)
		}

		rejected = req
		return nil
	})
	if err != nil {
		return registration.Request{}, err
	}

	return rejected, nil
}

// RequireInfo parks a pending request until the submitter follows up.
func (s *RegistrationService) RequireInfo(ctx context.Context, requestID, reviewer, note string) (registration.Request, error) {
	return s.loopTransition(ctx, requestID, registration.StatusPending, registration.StatusNeedsInfo, note, reviewer)
}

// Resubmit puts a NEEDS_INFO request back in the review queue.
func (s *RegistrationService) Resubmit(ctx context.Context, requestID string) (registration.Request, error) {
	return s.loopTransition(ctx, requestID, registration.StatusNeedsInfo, registration.StatusPending, "", "")
}

func (s *RegistrationService) loopTransition(ctx context.Context, requestID string, from, to registration.Status, note, reviewer string) (registration.Request, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return registration.Request{}, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}

	var moved registration.Request
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		req, exists, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get registration request: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: request=%s", ErrNotFound, requestID)
		}
		if req.Status != from {
			return fmt.Errorf("%w: request is %s", ErrInvalidState, req.Status)
		}

		req.Status = to
		req.UpdatedAt = s.now().UTC()
		if note = strings.TrimSpace(note); note != "" {
			prefix := note
			if reviewer = strings.TrimSpace(reviewer); reviewer != "" {
				prefix = reviewer + ": " + note
			}
			req.AdminNotes = appendNote(req.AdminNotes, prefix)
		}

		ok, err := s.requestRepo.Transition(ctx, req, from)
		if err != nil {
			return fmt.Errorf("transition registration request: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: request was decided concurrently", ErrInvalidState)
		}

		moved = req
		return nil
	})
	if err != nil {
		return registration.Request{}, err
	}

	return moved, nil
}

func (s *RegistrationService) Pending(ctx context.Context) ([]registration.Request, error) {
	reqs, err := s.requestRepo.ListByStatus(ctx, registration.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}

	return reqs, nil
}

// BatchFailure records one request that could not be approved; the batch
// itself keeps going.
type BatchFailure struct {
	RequestID string
	Err       error
}

type BatchResult struct {
	Approved int
	Results  []ApprovalResult
	Failures []BatchFailure
}

// ApproveBatch approves many requests independently over a worker pool. One
// request's failure (wrong state, missing context, validation) never aborts
// the rest; failures come back in input order.
func (s *RegistrationService) ApproveBatch(ctx context.Context, requestIDs []string, approver string) (BatchResult, error) {
	approver = strings.TrimSpace(approver)
	if approver == "" {
		return BatchResult{}, fmt.Errorf("%w: approver identity is required", ErrInvalidInput)
	}
	if len(requestIDs) == 0 {
		return BatchResult{}, nil
	}

	workers := defaultBatchWorkers
	if s.batchWorkers >= 1 {
		workers = s.batchWorkers
	}
	if len(requestIDs) < workers {
		workers = len(requestIDs)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create approval worker pool: %w", err)
	}
	defer pool.Release()

	type slot struct {
		result ApprovalResult
		err    error
	}

	slots := make([]slot, len(requestIDs))
	var wg sync.WaitGroup

	for i, requestID := range requestIDs {
		i, requestID := i, requestID
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			result, err := s.Approve(ctx, requestID, approver)
			slots[i] = slot{result: result, err: err}
		}); err != nil {
			wg.Done()
			slots[i] = slot{err: fmt.Errorf("submit approval task: %w", err)}
		}
	}
	wg.Wait()

	out := BatchResult{}
	for i, requestID := range requestIDs {
		if slots[i].err != nil {
			out.Failures = append(out.Failures, BatchFailure{RequestID: requestID, Err: slots[i].err})
			continue
		}
		out.Approved++
		out.Results = append(out.Results, slots[i].result)
	}

	return out, nil
}

func (s *RegistrationService) sendCaptainLink(ctx context.Context, result ApprovalResult) error {
	link := s.joinLink(result.InviteToken)
	subject := fmt.Sprintf("Team approved: %s (%s)", result.TeamName, result.SeasonName)
	body := fmt.Sprintf(
		"Your team has been approved.\n\n"+
			"Share this link with your players to register:\n%s\n\n"+
			"If you have any issues, please reply to this email.\n",
		link,
	)

	return s.notifier.Send(ctx, result.Request.Person.Email, subject, body)
}

func (s *RegistrationService) joinLink(token string) string {
	base := s.baseURL
	if base == "" {
		base = "http://localhost:8080"
	}
	return base + "/register/join/" + token
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
