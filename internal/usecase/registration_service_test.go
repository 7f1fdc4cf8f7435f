package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pitchside/leagueops/internal/domain/registration"
	"github.com/pitchside/leagueops/internal/domain/roster"
)

func TestSubmitCreateTeamTrimsInput(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)

	req, err := f.registrations.SubmitCreateTeam(context.Background(), SubmitCreateTeamInput{
		SeasonID:   "  " + seasonID + "  ",
		DivisionID: divisionID,
		TeamName:   "  Falcons  ",
		Level:      registration.LevelHigh,
		Person:     registration.Person{FullName: "  Dana Reyes  ", Email: " dana@example.com "},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if req.Status != registration.StatusPending {
		t.Fatalf("status = %s, want PENDING", req.Status)
	}
	if req.CreateTeam.TeamName != "Falcons" {
		t.Errorf("team name = %q, want trimmed", req.CreateTeam.TeamName)
	}
	if req.Person.FullName != "Dana Reyes" {
		t.Errorf("full name = %q, want trimmed", req.Person.FullName)
	}
	if req.Person.Email != "dana@example.com" {
		t.Errorf("email = %q, want trimmed", req.Person.Email)
	}
}

func TestSubmitCreateTeamCollectsFieldErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.registrations.SubmitCreateTeam(context.Background(), SubmitCreateTeamInput{
		Level: registration.Level("EXTREME"),
	})

	fe := fieldErrorsFrom(t, err)
	for _, field := range []string{"season", "team_name", "full_name", "level"} {
		if _, ok := fe[field]; !ok {
			t.Errorf("missing field error for %q: %v", field, fe)
		}
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("field errors should unwrap to ErrInvalidInput")
	}
}

func TestSubmitCreateTeamDivisionMustBelongToSeason(t *testing.T) {
	f := newFixture(t)
	orgID, seasonID, _ := f.seedSeason(t)

	other, err := f.leagues.CreateSeason(context.Background(), CreateSeasonInput{OrganizationID: orgID, Name: "Fall 2026"})
	if err != nil {
		t.Fatalf("create second season: %v", err)
	}
	foreign, err := f.leagues.CreateDivision(context.Background(), CreateDivisionInput{SeasonID: other.ID, Name: "Division X"})
	if err != nil {
		t.Fatalf("create foreign division: %v", err)
	}

	_, err = f.registrations.SubmitCreateTeam(context.Background(), SubmitCreateTeamInput{
		SeasonID:   seasonID,
		DivisionID: foreign.ID,
		TeamName:   "Falcons",
		Person:     registration.Person{FullName: "Dana Reyes"},
	})

	fe := fieldErrorsFrom(t, err)
	if _, ok := fe["division"]; !ok {
		t.Fatalf("expected division field error, got %v", err)
	}
}

func TestApproveCreateTeamProvisionsEverything(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	result, err := f.registrations.Approve(context.Background(), req.ID, "admin@example.com")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if result.NotifyErr != nil {
		t.Fatalf("unexpected notify error: %v", result.NotifyErr)
	}

	ctx := context.Background()

	team, exists, err := f.teamRepo.GetByID(ctx, result.TeamID)
	if err != nil || !exists {
		t.Fatalf("provisioned team missing: exists=%v err=%v", exists, err)
	}
	if team.Name != "Falcons" || team.DivisionID != divisionID {
		t.Errorf("team = %+v", team)
	}
	if team.PrimaryContactName != "Dana Reyes" {
		t.Errorf("primary contact = %q", team.PrimaryContactName)
	}

	ts, exists, err := f.teamSeasonRepo.GetByID(ctx, result.TeamSeasonID)
	if err != nil || !exists {
		t.Fatalf("enrollment missing: exists=%v err=%v", exists, err)
	}
	if ts.SeasonID != seasonID || ts.TeamID != team.ID || ts.Status != roster.TeamSeasonActive {
		t.Errorf("enrollment = %+v", ts)
	}

	members, err := f.memberRepo.ListByTeamSeason(ctx, ts.ID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(members) != 1 || members[0].Role != roster.RoleCaptain || members[0].FullName != "Dana Reyes" {
		t.Errorf("roster = %+v", members)
	}

	token, exists, err := f.inviteRepo.GetByTeamSeason(ctx, ts.ID)
	if err != nil || !exists {
		t.Fatalf("invite token missing: exists=%v err=%v", exists, err)
	}
	if !token.IsActive || token.Value != result.InviteToken {
		t.Errorf("token = %+v, result token = %q", token, result.InviteToken)
	}

	if result.Request.Status != registration.StatusApproved {
		t.Errorf("request status = %s", result.Request.Status)
	}
	if result.Request.ApprovedBy != "admin@example.com" || result.Request.ApprovedAt == nil {
		t.Errorf("approval audit = %+v", result.Request)
	}
	if result.Request.TeamSeasonID != ts.ID {
		t.Errorf("request team season = %q, want %q", result.Request.TeamSeasonID, ts.ID)
	}
}

func TestApproveSendsCaptainJoinLink(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	result, err := f.registrations.Approve(context.Background(), req.ID, "admin")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	if len(f.notifier.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(f.notifier.sent))
	}
	mail := f.notifier.sent[0]
	if mail.To != "dana.reyes@example.com" {
		t.Errorf("mail to = %q", mail.To)
	}
	if mail.Subject != "Team approved: Falcons (Summer 2026)" {
		t.Errorf("subject = %q", mail.Subject)
	}
	link := "https://league.test/register/join/" + result.InviteToken
	if !strings.Contains(mail.Body, link) {
		t.Errorf("body is missing join link %q:\n%s", link, mail.Body)
	}
}

func TestApproveNotifierFailureDoesNotUndoApproval(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	f.notifier.fail = fmt.Errorf("smtp refused")

	result, err := f.registrations.Approve(context.Background(), req.ID, "admin")
	if err != nil {
		t.Fatalf("approve should succeed despite mail failure, got %v", err)
	}
	if !errors.Is(result.NotifyErr, ErrDelivery) {
		t.Fatalf("notify err = %v, want ErrDelivery", result.NotifyErr)
	}

	stored, exists, err := f.requestRepo.GetByID(context.Background(), req.ID)
	if err != nil || !exists {
		t.Fatalf("get request: exists=%v err=%v", exists, err)
	}
	if stored.Status != registration.StatusApproved {
		t.Errorf("request status = %s, approval must stay durable", stored.Status)
	}
	if _, exists, _ := f.teamRepo.GetByID(context.Background(), result.TeamID); !exists {
		t.Errorf("team must survive a failed notification")
	}
}

func TestApproveTwiceFailsInvalidState(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	if _, err := f.registrations.Approve(context.Background(), req.ID, "admin"); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	_, err := f.registrations.Approve(context.Background(), req.ID, "admin")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second approve err = %v, want ErrInvalidState", err)
	}
}

func TestApproveRollsBackOnProvisioningFailure(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	// Fail id generation mid-provisioning: team and enrollment ids succeed,
	// the captain's member id does not.
	f.ids.failAfter = f.ids.n + 2
	expectedTeamID := fmt.Sprintf("id-%03d", f.ids.n+1)

	_, err := f.registrations.Approve(context.Background(), req.ID, "admin")
	if err == nil {
		t.Fatal("approve should fail when provisioning fails")
	}

	ctx := context.Background()
	if _, exists, _ := f.teamRepo.GetByID(ctx, expectedTeamID); exists {
		t.Error("partially provisioned team must be rolled back")
	}
	stored, exists, err := f.requestRepo.GetByID(ctx, req.ID)
	if err != nil || !exists {
		t.Fatalf("get request: exists=%v err=%v", exists, err)
	}
	if stored.Status != registration.StatusPending {
		t.Errorf("request status = %s, want PENDING after rollback", stored.Status)
	}
}

func TestApproveCreateTeamWithoutDivisionContext(t *testing.T) {
	f := newFixture(t)
	_, seasonID, _ := f.seedSeason(t)

	req, err := f.registrations.SubmitCreateTeam(context.Background(), SubmitCreateTeamInput{
		SeasonID: seasonID,
		TeamName: "Falcons",
		Person:   registration.Person{FullName: "Dana Reyes"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, err = f.registrations.Approve(context.Background(), req.ID, "admin")
	if !errors.Is(err, ErrMissingContext) {
		t.Fatalf("err = %v, want ErrMissingContext", err)
	}

	stored, _, _ := f.requestRepo.GetByID(context.Background(), req.ID)
	if stored.Status != registration.StatusPending {
		t.Errorf("request status = %s, want PENDING", stored.Status)
	}
}

func TestSubmitJoinTeamBindsResolvedEnrollment(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	_, ts := f.seedTeam(t, seasonID, divisionID, "Falcons")

	token, err := f.invites.Issue(context.Background(), ts.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req, err := f.registrations.SubmitJoinTeam(context.Background(), SubmitJoinTeamInput{
		Token:  "  " + token.Value + "  ",
		Person: registration.Person{FullName: "Sam Okafor"},
		Documents: registration.Documents{
			WaiverFile: "waivers/sam.pdf",
		},
	})
	if err != nil {
		t.Fatalf("submit join: %v", err)
	}

	if req.Kind != registration.KindJoinTeam || req.Status != registration.StatusPending {
		t.Errorf("request = %+v", req)
	}
	if req.TeamSeasonID != ts.ID || req.SeasonID != seasonID || req.DivisionID != divisionID {
		t.Errorf("resolved context = season %q division %q team_season %q", req.SeasonID, req.DivisionID, req.TeamSeasonID)
	}
	if req.Join.Documents.WaiverFile != "waivers/sam.pdf" {
		t.Errorf("documents = %+v", req.Join.Documents)
	}
}

func TestSubmitJoinTeamInvalidTokenCreatesNoRequest(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	_, ts := f.seedTeam(t, seasonID, divisionID, "Falcons")

	token, err := f.invites.Issue(context.Background(), ts.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if err := f.invites.Deactivate(context.Background(), ts.ID); err != nil {
		t.Fatalf("deactivate token: %v", err)
	}

	for _, value := range []string{token.Value, "no-such-token", "   "} {
		_, err := f.registrations.SubmitJoinTeam(context.Background(), SubmitJoinTeamInput{
			Token:  value,
			Person: registration.Person{FullName: "Sam Okafor"},
		})
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: err = %v, want ErrInvalidToken", value, err)
		}
	}

	pending, err := f.registrations.Pending(context.Background())
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("%d pending requests created from invalid tokens", len(pending))
	}
}

func TestApproveJoinTeamAddsPlayer(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	_, ts := f.seedTeam(t, seasonID, divisionID, "Falcons")
	f.seedMember(t, ts.ID, "Dana Reyes", roster.RoleCaptain)

	token, err := f.invites.Issue(context.Background(), ts.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req, err := f.registrations.SubmitJoinTeam(context.Background(), SubmitJoinTeamInput{
		Token:  token.Value,
		Person: registration.Person{FullName: "Sam Okafor"},
	})
	if err != nil {
		t.Fatalf("submit join: %v", err)
	}

	result, err := f.registrations.Approve(context.Background(), req.ID, "admin")
	if err != nil {
		t.Fatalf("approve join: %v", err)
	}

	member, exists, err := f.memberRepo.GetByID(context.Background(), result.MemberID)
	if err != nil || !exists {
		t.Fatalf("player missing: exists=%v err=%v", exists, err)
	}
	if member.Role != roster.RolePlayer || member.FullName != "Sam Okafor" || member.TeamSeasonID != ts.ID {
		t.Errorf("member = %+v", member)
	}
	if len(f.notifier.sent) != 0 {
		t.Errorf("join approvals should not mail a captain link, sent %d", len(f.notifier.sent))
	}
}

func TestApproveJoinTeamDuplicateNameOnRoster(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	_, ts := f.seedTeam(t, seasonID, divisionID, "Falcons")
	f.seedMember(t, ts.ID, "Sam Okafor", roster.RolePlayer)

	token, err := f.invites.Issue(context.Background(), ts.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req, err := f.registrations.SubmitJoinTeam(context.Background(), SubmitJoinTeamInput{
		Token:  token.Value,
		Person: registration.Person{FullName: "Sam Okafor"},
	})
	if err != nil {
		t.Fatalf("submit join: %v", err)
	}

	_, err = f.registrations.Approve(context.Background(), req.ID, "admin")
	fe := fieldErrorsFrom(t, err)
	if _, ok := fe["full_name"]; !ok {
		t.Fatalf("expected full_name conflict, got %v", err)
	}

	stored, _, _ := f.requestRepo.GetByID(context.Background(), req.ID)
	if stored.Status != registration.StatusPending {
		t.Errorf("request status = %s, want PENDING after failed approval", stored.Status)
	}
}

func TestRejectAppendsReason(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	rejected, err := f.registrations.Reject(context.Background(), req.ID, "admin", "roster cap reached")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}

	if rejected.Status != registration.StatusRejected {
		t.Errorf("status = %s", rejected.Status)
	}
	if rejected.RejectedBy != "admin" || rejected.RejectedAt == nil {
		t.Errorf("rejection audit = %+v", rejected)
	}
	if !strings.Contains(rejected.AdminNotes, "roster cap reached") {
		t.Errorf("admin notes = %q", rejected.AdminNotes)
	}

	if _, err := f.registrations.Approve(context.Background(), req.ID, "admin"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("approve after reject err = %v, want ErrInvalidState", err)
	}
}

func TestNeedsInfoLoop(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	parked, err := f.registrations.RequireInfo(context.Background(), req.ID, "admin", "need a second contact")
	if err != nil {
		t.Fatalf("require info: %v", err)
	}
	if parked.Status != registration.StatusNeedsInfo {
		t.Fatalf("status = %s, want NEEDS_INFO", parked.Status)
	}
	if !strings.Contains(parked.AdminNotes, "admin: need a second contact") {
		t.Errorf("admin notes = %q", parked.AdminNotes)
	}

	// Parked requests cannot be approved.
	if _, err := f.registrations.Approve(context.Background(), req.ID, "admin"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("approve parked request err = %v, want ErrInvalidState", err)
	}

	back, err := f.registrations.Resubmit(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if back.Status != registration.StatusPending {
		t.Fatalf("status = %s, want PENDING", back.Status)
	}

	if _, err := f.registrations.Approve(context.Background(), req.ID, "admin"); err != nil {
		t.Fatalf("approve after resubmit: %v", err)
	}
}

func TestRejectFromNeedsInfo(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	req := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")

	if _, err := f.registrations.RequireInfo(context.Background(), req.ID, "admin", "need docs"); err != nil {
		t.Fatalf("require info: %v", err)
	}

	rejected, err := f.registrations.Reject(context.Background(), req.ID, "admin", "no follow-up")
	if err != nil {
		t.Fatalf("reject from NEEDS_INFO: %v", err)
	}
	if rejected.Status != registration.StatusRejected {
		t.Errorf("status = %s", rejected.Status)
	}
}

func TestApproveBatchKeepsGoingPastFailures(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)

	first := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")
	second := f.submitCreateTeam(t, seasonID, divisionID, "River Rovers", "Sam Okafor")
	third := f.submitCreateTeam(t, seasonID, divisionID, "Nomads", "Lee Tran")

	// Decide the middle one up front so the batch hits a wrong-state failure.
	if _, err := f.registrations.Reject(context.Background(), second.ID, "admin", ""); err != nil {
		t.Fatalf("pre-reject: %v", err)
	}

	ids := []string{first.ID, second.ID, "missing-request", third.ID}
	out, err := f.registrations.ApproveBatch(context.Background(), ids, "admin")
	if err != nil {
		t.Fatalf("approve batch: %v", err)
	}

	if out.Approved != 2 {
		t.Fatalf("approved = %d, want 2", out.Approved)
	}
	if len(out.Failures) != 2 {
		t.Fatalf("failures = %+v, want 2", out.Failures)
	}
	if out.Failures[0].RequestID != second.ID || out.Failures[1].RequestID != "missing-request" {
		t.Errorf("failures out of input order: %+v", out.Failures)
	}
	if !errors.Is(out.Failures[0].Err, ErrInvalidState) {
		t.Errorf("rejected request failure = %v, want ErrInvalidState", out.Failures[0].Err)
	}
	if !errors.Is(out.Failures[1].Err, ErrNotFound) {
		t.Errorf("missing request failure = %v, want ErrNotFound", out.Failures[1].Err)
	}

	for _, id := range []string{first.ID, third.ID} {
		stored, _, _ := f.requestRepo.GetByID(context.Background(), id)
		if stored.Status != registration.StatusApproved {
			t.Errorf("request %s status = %s, want APPROVED", id, stored.Status)
		}
	}
}

func TestPendingListsOldestFirst(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)

	first := f.submitCreateTeam(t, seasonID, divisionID, "Falcons", "Dana Reyes")
	second := f.submitCreateTeam(t, seasonID, divisionID, "River Rovers", "Sam Okafor")

	pending, err := f.registrations.Pending(context.Background())
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].ID != first.ID || pending[1].ID != second.ID {
		t.Errorf("pending order = %s, %s", pending[0].ID, pending[1].ID)
	}
}
