package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/roster"
)

func (f *fixture) scheduleMatch(t *testing.T, seasonID, divisionID, homeID, awayID string) match.Match {
	t.Helper()

	m, err := f.matches.CreateOrUpdateMatch(context.Background(), UpsertMatchInput{
		SeasonID:   seasonID,
		DivisionID: divisionID,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		StartsAt:   f.now.Add(72 * time.Hour),
	})
	if err != nil {
		t.Fatalf("schedule match: %v", err)
	}

	return m
}

func TestCreateMatchDefaultsToScheduled(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")

	m := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	if m.Status != match.StatusScheduled {
		t.Errorf("status = %s, want SCHEDULED", m.Status)
	}
	if m.ID == "" || m.CreatedAt.IsZero() {
		t.Errorf("match = %+v", m)
	}
}

func TestCreateMatchCollectsRelationalViolations(t *testing.T) {
	f := newFixture(t)
	orgID, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")

	other, err := f.leagues.CreateSeason(context.Background(), CreateSeasonInput{OrganizationID: orgID, Name: "Fall 2026"})
	if err != nil {
		t.Fatalf("create second season: %v", err)
	}
	foreign, err := f.leagues.CreateDivision(context.Background(), CreateDivisionInput{SeasonID: other.ID, Name: "Division X"})
	if err != nil {
		t.Fatalf("create foreign division: %v", err)
	}

	// Division from the wrong season; both teams outside that division.
	_, err = f.matches.CreateOrUpdateMatch(context.Background(), UpsertMatchInput{
		SeasonID:   seasonID,
		DivisionID: foreign.ID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		StartsAt:   f.now.Add(time.Hour),
	})

	fe := fieldErrorsFrom(t, err)
	for _, field := range []string{"division", "home_team", "away_team"} {
		if _, ok := fe[field]; !ok {
			t.Errorf("missing field error for %q: %v", field, fe)
		}
	}
}

func TestCreateMatchHomeAndAwayMustDiffer(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")

	_, err := f.matches.CreateOrUpdateMatch(context.Background(), UpsertMatchInput{
		SeasonID:   seasonID,
		DivisionID: divisionID,
		HomeTeamID: home.ID,
		AwayTeamID: home.ID,
		StartsAt:   f.now.Add(time.Hour),
	})

	fe := fieldErrorsFrom(t, err)
	if fe["away_team"] != "home and away team must differ" {
		t.Fatalf("field errors = %v", fe)
	}
}

func TestUpdateMatchKeepsIdentity(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")

	created := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	updated, err := f.matches.CreateOrUpdateMatch(context.Background(), UpsertMatchInput{
		MatchID:    created.ID,
		SeasonID:   seasonID,
		DivisionID: divisionID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		StartsAt:   created.StartsAt.Add(24 * time.Hour),
		Status:     match.StatusPostponed,
		RoundLabel: "Week 2",
	})
	if err != nil {
		t.Fatalf("update match: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("update changed match id: %q -> %q", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("update changed created_at")
	}
	if updated.Status != match.StatusPostponed || updated.RoundLabel != "Week 2" {
		t.Errorf("match = %+v", updated)
	}
}

func TestRecordResultUpdatesSingleRow(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")
	m := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	first, err := f.matches.RecordResult(context.Background(), RecordResultInput{
		MatchID:    m.ID,
		HomeScore:  2,
		AwayScore:  1,
		RecordedBy: "ref@example.com",
	})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}

	second, err := f.matches.RecordResult(context.Background(), RecordResultInput{
		MatchID:    m.ID,
		HomeScore:  3,
		AwayScore:  1,
		RecordedBy: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("re-record result: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("re-recording created a new row: %q -> %q", first.ID, second.ID)
	}
	if !second.RecordedAt.Equal(first.RecordedAt) {
		t.Errorf("re-recording changed recorded_at")
	}
	if second.HomeScore != 3 || second.RecordedBy != "admin@example.com" {
		t.Errorf("result = %+v", second)
	}
}

func TestRecordResultAcceptsForfeitScores(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")
	m := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	result, err := f.matches.RecordResult(context.Background(), RecordResultInput{
		MatchID:   m.ID,
		HomeScore: 0,
		AwayScore: -1,
		IsForfeit: true,
	})
	if err != nil {
		t.Fatalf("record forfeit: %v", err)
	}
	if !result.IsForfeit || result.AwayScore != -1 {
		t.Errorf("result = %+v", result)
	}
}

func TestRecordGoalDerivesTeamFromEnrollment(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, homeTS := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")
	scorer := f.seedMember(t, homeTS.ID, "Dana Reyes", roster.RolePlayer)
	m := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	minute := 27
	goal, err := f.matches.RecordGoal(context.Background(), RecordGoalInput{
		MatchID:  m.ID,
		PlayerID: scorer.ID,
		Minute:   &minute,
	})
	if err != nil {
		t.Fatalf("record goal: %v", err)
	}

	if goal.TeamID != home.ID {
		t.Errorf("goal team = %q, want derived home team %q", goal.TeamID, home.ID)
	}
	if goal.Minute == nil || *goal.Minute != 27 {
		t.Errorf("goal minute = %v", goal.Minute)
	}
}

func TestRecordEventRejectsUnfieldedPlayer(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")
	_, otherTS := f.seedTeam(t, seasonID, divisionID, "Nomads")
	outsider := f.seedMember(t, otherTS.ID, "Lee Tran", roster.RolePlayer)
	m := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	_, err := f.matches.RecordGoal(context.Background(), RecordGoalInput{MatchID: m.ID, PlayerID: outsider.ID})
	fe := fieldErrorsFrom(t, err)
	if fe["player"] != "player is not fielded by either match team" {
		t.Fatalf("field errors = %v", fe)
	}

	_, err = f.matches.RecordCard(context.Background(), RecordCardInput{MatchID: m.ID, PlayerID: outsider.ID, Card: match.CardYellow})
	if _, ok := fieldErrorsFrom(t, err)["player"]; !ok {
		t.Errorf("card for unfielded player should fail on player field: %v", err)
	}
}

func TestRecordCardValidatesColor(t *testing.T) {
	f := newFixture(t)

	_, err := f.matches.RecordCard(context.Background(), RecordCardInput{
		MatchID:  "m",
		PlayerID: "p",
		Card:     match.Card("BLUE"),
	})

	fe := fieldErrorsFrom(t, err)
	if _, ok := fe["card"]; !ok {
		t.Fatalf("field errors = %v", fe)
	}
}

func TestRecordAppearanceOncePerPlayer(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, homeTS := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")
	player := f.seedMember(t, homeTS.ID, "Dana Reyes", roster.RolePlayer)
	m := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	if _, err := f.matches.RecordAppearance(context.Background(), RecordAppearanceInput{MatchID: m.ID, PlayerID: player.ID}); err != nil {
		t.Fatalf("record appearance: %v", err)
	}

	_, err := f.matches.RecordAppearance(context.Background(), RecordAppearanceInput{MatchID: m.ID, PlayerID: player.ID})
	fe := fieldErrorsFrom(t, err)
	if _, ok := fe["player"]; !ok {
		t.Fatalf("duplicate appearance should fail on player field: %v", err)
	}
}

func TestRecordEventUnknownMatchOrPlayer(t *testing.T) {
	f := newFixture(t)
	_, seasonID, divisionID := f.seedSeason(t)
	home, homeTS := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")
	player := f.seedMember(t, homeTS.ID, "Dana Reyes", roster.RolePlayer)
	m := f.scheduleMatch(t, seasonID, divisionID, home.ID, away.ID)

	if _, err := f.matches.RecordGoal(context.Background(), RecordGoalInput{MatchID: "nope", PlayerID: player.ID}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown match err = %v, want ErrNotFound", err)
	}
	if _, err := f.matches.RecordGoal(context.Background(), RecordGoalInput{MatchID: m.ID, PlayerID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown player err = %v, want ErrNotFound", err)
	}
}

func TestSeasonScheduleResolvesNamesAndResults(t *testing.T) {
	f := newFixture(t)
	orgID, seasonID, divisionID := f.seedSeason(t)
	home, _ := f.seedTeam(t, seasonID, divisionID, "Falcons")
	away, _ := f.seedTeam(t, seasonID, divisionID, "River Rovers")

	venue, err := f.leagues.CreateVenue(context.Background(), CreateVenueInput{OrganizationID: orgID, Name: "Assiniboine Park Field 2"})
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}

	early, err := f.matches.CreateOrUpdateMatch(context.Background(), UpsertMatchInput{
		SeasonID:   seasonID,
		DivisionID: divisionID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		VenueID:    &venue.ID,
		StartsAt:   f.now.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("schedule early match: %v", err)
	}
	late := f.scheduleMatch(t, seasonID, divisionID, away.ID, home.ID)

	if _, err := f.matches.RecordResult(context.Background(), RecordResultInput{MatchID: early.ID, HomeScore: 2, AwayScore: 2}); err != nil {
		t.Fatalf("record result: %v", err)
	}

	entries, err := f.matches.SeasonSchedule(context.Background(), seasonID)
	if err != nil {
		t.Fatalf("season schedule: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Match.ID != early.ID || entries[1].Match.ID != late.ID {
		t.Errorf("schedule order: %s, %s", entries[0].Match.ID, entries[1].Match.ID)
	}

	first := entries[0]
	if first.HomeTeamName != "Falcons" || first.AwayTeamName != "River Rovers" {
		t.Errorf("names = %q vs %q", first.HomeTeamName, first.AwayTeamName)
	}
	if first.DivisionName != "Division A" || first.VenueName != "Assiniboine Park Field 2" {
		t.Errorf("entry = %+v", first)
	}
	if first.Result == nil || first.Result.HomeScore != 2 {
		t.Errorf("inline result = %+v", first.Result)
	}
	if entries[1].Result != nil {
		t.Errorf("unplayed match should carry no result")
	}
}
