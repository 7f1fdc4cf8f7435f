package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/leagueops/internal/domain/registration"
)

// registrationRequestModel flattens the per-kind payloads into nullable
// columns; toDomain rebuilds the pointer payload that matches Kind.
type registrationRequestModel struct {
	ID     string `db:"id"`
	Kind   string `db:"kind"`
	Status string `db:"status"`

	SeasonID     string  `db:"season_id"`
	DivisionID   *string `db:"division_id"`
	TeamSeasonID *string `db:"team_season_id"`

	TeamName  *string `db:"team_name"`
	TeamLevel *string `db:"team_level"`
	TeamNotes *string `db:"team_notes"`

	WaiverFile *string `db:"waiver_file"`
	IDFile     *string `db:"id_file"`

	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`

	AdminNotes string `db:"admin_notes"`

	ApprovedAt *time.Time `db:"approved_at"`
	ApprovedBy string     `db:"approved_by"`
	RejectedAt *time.Time `db:"rejected_at"`
	RejectedBy string     `db:"rejected_by"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func newRegistrationRequestModel(req registration.Request) registrationRequestModel {
	model := registrationRequestModel{
		ID:           req.ID,
		Kind:         string(req.Kind),
		Status:       string(req.Status),
		SeasonID:     req.SeasonID,
		DivisionID:   nullStr(req.DivisionID),
		TeamSeasonID: nullStr(req.TeamSeasonID),
		FullName:     req.Person.FullName,
		Email:        req.Person.Email,
		Phone:        req.Person.Phone,
		AdminNotes:   req.AdminNotes,
		ApprovedAt:   req.ApprovedAt,
		ApprovedBy:   req.ApprovedBy,
		RejectedAt:   req.RejectedAt,
		RejectedBy:   req.RejectedBy,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
	if req.CreateTeam != nil {
		model.TeamName = &req.CreateTeam.TeamName
		model.TeamLevel = nullStr(string(req.CreateTeam.Level))
		model.TeamNotes = nullStr(req.CreateTeam.Notes)
	}
	if req.Join != nil {
		model.WaiverFile = nullStr(req.Join.Documents.WaiverFile)
		model.IDFile = nullStr(req.Join.Documents.IDFile)
	}

	return model
}

func (m registrationRequestModel) toDomain() registration.Request {
	req := registration.Request{
		ID:           m.ID,
		Kind:         registration.Kind(m.Kind),
		Status:       registration.Status(m.Status),
		SeasonID:     m.SeasonID,
		DivisionID:   strVal(m.DivisionID),
		TeamSeasonID: strVal(m.TeamSeasonID),
		Person: registration.Person{
			FullName: m.FullName,
			Email:    m.Email,
			Phone:    m.Phone,
		},
		AdminNotes: m.AdminNotes,
		ApprovedAt: m.ApprovedAt,
		ApprovedBy: m.ApprovedBy,
		RejectedAt: m.RejectedAt,
		RejectedBy: m.RejectedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	switch req.Kind {
	case registration.KindCreateTeam:
		req.CreateTeam = &registration.CreateTeamDetails{
			TeamName: strVal(m.TeamName),
			Level:    registration.Level(strVal(m.TeamLevel)),
			Notes:    strVal(m.TeamNotes),
		}
	case registration.KindJoinTeam:
		req.Join = &registration.JoinDetails{
			Documents: registration.Documents{
				WaiverFile: strVal(m.WaiverFile),
				IDFile:     strVal(m.IDFile),
			},
		}
	}

	return req
}

type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = `id, kind, status, season_id, division_id, team_season_id,
	team_name, team_level, team_notes, waiver_file, id_file,
	full_name, email, phone, admin_notes,
	approved_at, approved_by, rejected_at, rejected_by, created_at, updated_at`

func (r *RegistrationRepository) Create(ctx context.Context, req registration.Request) error {
	model := newRegistrationRequestModel(req)
	const query = `
		INSERT INTO registration_requests (` + registrationColumns + `)
		VALUES (:id, :kind, :status, :season_id, :division_id, :team_season_id,
			:team_name, :team_level, :team_notes, :waiver_file, :id_file,
			:full_name, :email, :phone, :admin_notes,
			:approved_at, :approved_by, :rejected_at, :rejected_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, q(ctx, r.db), query, model); err != nil {
		return fmt.Errorf("create registration request: %w", translate(err))
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (registration.Request, bool, error) {
	const query = `
		SELECT ` + registrationColumns + `
		FROM registration_requests WHERE id = $1`
	var model registrationRequestModel
	if err := q(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNotFound(err) {
			return registration.Request{}, false, nil
		}
		return registration.Request{}, false, fmt.Errorf("get registration request: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *RegistrationRepository) ListByStatus(ctx context.Context, status registration.Status) ([]registration.Request, error) {
	const query = `
		SELECT ` + registrationColumns + `
		FROM registration_requests WHERE status = $1 ORDER BY created_at, id`
	var models []registrationRequestModel
	if err := q(ctx, r.db).SelectContext(ctx, &models, query, string(status)); err != nil {
		return nil, fmt.Errorf("list registration requests: %w", err)
	}

	requests := make([]registration.Request, 0, len(models))
	for _, model := range models {
		requests = append(requests, model.toDomain())
	}

	return requests, nil
}

// Transition is the conditional write that serializes concurrent reviewers:
// the row only changes while its status still equals expect.
func (r *RegistrationRepository) Transition(ctx context.Context, req registration.Request, expect registration.Status) (bool, error) {
	model := newRegistrationRequestModel(req)
	const query = `
		UPDATE registration_requests SET
			status = :status,
			division_id = :division_id,
			team_season_id = :team_season_id,
			admin_notes = :admin_notes,
			approved_at = :approved_at,
			approved_by = :approved_by,
			rejected_at = :rejected_at,
			rejected_by = :rejected_by,
			updated_at = :updated_at
		WHERE id = :id AND status = :expect_status`
	arg := struct {
		registrationRequestModel
		ExpectStatus string `db:"expect_status"`
	}{model, string(expect)}

	result, err := sqlx.NamedExecContext(ctx, q(ctx, r.db), query, arg)
	if err != nil {
		return false, fmt.Errorf("transition registration request: %w", translate(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected transition registration request: %w", err)
	}

	return affected == 1, nil
}
