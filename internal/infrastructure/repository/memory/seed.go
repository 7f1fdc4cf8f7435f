package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchside/leagueops/internal/domain/invite"
	"github.com/pitchside/leagueops/internal/domain/league"
	"github.com/pitchside/leagueops/internal/domain/match"
	"github.com/pitchside/leagueops/internal/domain/roster"
)

// Seed loads a small development dataset: one organization with an active
// season, two divisions, four enrolled teams with captains, and a scheduled
// fixture. IDs are fixed so curl sessions against a fresh process stay
// reproducible.
func Seed(ctx context.Context, store *Store) error {
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	seasonStart := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	seasonEnd := time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC)

	return store.RunInTx(ctx, func(ctx context.Context) error {
		org := league.Organization{
			ID:        "org-prairie",
			Name:      "Prairie Rec Soccer",
			Slug:      "prairie-rec",
			Timezone:  "America/Winnipeg",
			IsActive:  true,
			CreatedAt: now,
		}
		if err := store.CreateOrganization(ctx, org); err != nil {
			return fmt.Errorf("seed organization: %w", err)
		}

		season := league.Season{
			ID:             "season-summer-2026",
			OrganizationID: org.ID,
			Name:           "Summer 2026",
			StartDate:      &seasonStart,
			EndDate:        &seasonEnd,
			IsActive:       true,
			CreatedAt:      now,
		}
		if err := store.CreateSeason(ctx, season); err != nil {
			return fmt.Errorf("seed season: %w", err)
		}

		divisions := []league.Division{
			{ID: "div-a", SeasonID: season.ID, Name: "Division A", SortOrder: 1, CreatedAt: now},
			{ID: "div-b", SeasonID: season.ID, Name: "Division B", SortOrder: 2, CreatedAt: now},
		}
		for _, division := range divisions {
			if err := store.CreateDivision(ctx, division); err != nil {
				return fmt.Errorf("seed division %s: %w", division.Name, err)
			}
		}

		venue := league.Venue{
			ID:             "venue-assiniboine",
			OrganizationID: org.ID,
			Name:           "Assiniboine Park Field 2",
			Address:        "55 Pavilion Crescent, Winnipeg",
			IsActive:       true,
		}
		if err := store.CreateVenue(ctx, venue); err != nil {
			return fmt.Errorf("seed venue: %w", err)
		}

		teams := []struct {
			id       string
			division string
			name     string
			captain  string
		}{
			{"team-falcons", "div-a", "Falcons", "Dana Reyes"},
			{"team-rovers", "div-a", "River Rovers", "Sam Okafor"},
			{"team-nomads", "div-b", "Nomads", "Lee Tran"},
			{"team-union", "div-b", "Union FC", "Priya Shah"},
		}
		for i, t := range teams {
			team := roster.Team{
				ID:                 t.id,
				DivisionID:         t.division,
				Name:               t.name,
				PrimaryContactName: t.captain,
				IsActive:           true,
				CreatedAt:          now,
			}
			if err := store.CreateTeam(ctx, team); err != nil {
				return fmt.Errorf("seed team %s: %w", t.name, err)
			}

			ts := roster.TeamSeason{
				ID:       fmt.Sprintf("ts-%s", t.id),
				SeasonID: season.ID,
				TeamID:   t.id,
				Status:   roster.TeamSeasonActive,
			}
			if err := store.CreateTeamSeason(ctx, ts); err != nil {
				return fmt.Errorf("seed enrollment %s: %w", t.name, err)
			}

			captain := roster.TeamMember{
				ID:           fmt.Sprintf("member-captain-%d", i+1),
				TeamSeasonID: ts.ID,
				Role:         roster.RoleCaptain,
				FullName:     t.captain,
				IsActive:     true,
				JoinedAt:     now,
			}
			if err := store.CreateTeamMember(ctx, captain); err != nil {
				return fmt.Errorf("seed captain %s: %w", t.captain, err)
			}
		}

		token := invite.Token{
			ID:           "invite-falcons",
			TeamSeasonID: "ts-team-falcons",
			Value:        "seed-falcons-join-token-0000000000000000000",
			IsActive:     true,
			CreatedAt:    now,
		}
		if err := store.CreateInvite(ctx, token); err != nil {
			return fmt.Errorf("seed invite: %w", err)
		}

		fixture := match.Match{
			ID:         "match-opening",
			SeasonID:   season.ID,
			DivisionID: "div-a",
			VenueID:    &venue.ID,
			HomeTeamID: "team-falcons",
			AwayTeamID: "team-rovers",
			StartsAt:   seasonStart.Add(18 * time.Hour),
			Status:     match.StatusScheduled,
			RoundLabel: "Week 1",
			CreatedAt:  now,
		}
		if err := store.CreateMatch(ctx, fixture); err != nil {
			return fmt.Errorf("seed fixture: %w", err)
		}

		return nil
	})
}
