package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/organizations", handler.ListOrganizations)
	mux.HandleFunc("GET /v1/organizations/{organizationID}/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/divisions", handler.ListDivisions)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/schedule", handler.GetSeasonSchedule)

	mux.HandleFunc("GET /v1/invites/{token}", handler.GetInviteInfo)

	mux.HandleFunc("POST /v1/registrations/teams", handler.SubmitCreateTeamRequest)
	mux.HandleFunc("POST /v1/registrations/join", handler.SubmitJoinRequest)
	mux.HandleFunc("POST /v1/registrations/{requestID}/resubmit", handler.ResubmitRequest)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("POST /v1/admin/organizations", admin(handler.CreateOrganization))
	mux.Handle("POST /v1/admin/organizations/{organizationID}/seasons", admin(handler.CreateSeason))
	mux.Handle("POST /v1/admin/seasons/{seasonID}/divisions", admin(handler.CreateDivision))
	mux.Handle("POST /v1/admin/organizations/{organizationID}/venues", admin(handler.CreateVenue))
	mux.Handle("DELETE /v1/admin/venues/{venueID}", admin(handler.DeleteVenue))

	mux.Handle("POST /v1/admin/teams", admin(handler.CreateTeam))
	mux.Handle("PUT /v1/admin/teams/{teamID}", admin(handler.UpdateTeam))
	mux.Handle("DELETE /v1/admin/teams/{teamID}", admin(handler.DeleteTeam))
	mux.Handle("POST /v1/admin/seasons/{seasonID}/teams/{teamID}/enroll", admin(handler.EnrollTeam))
	mux.Handle("POST /v1/admin/team-seasons/{teamSeasonID}/withdraw", admin(handler.WithdrawTeam))
	mux.Handle("GET /v1/admin/team-seasons/{teamSeasonID}/members", admin(handler.ListRoster))
	mux.Handle("POST /v1/admin/team-seasons/{teamSeasonID}/members", admin(handler.AddMember))
	mux.Handle("POST /v1/admin/members/{memberID}/deactivate", admin(handler.DeactivateMember))

	mux.Handle("POST /v1/admin/team-seasons/{teamSeasonID}/invite", admin(handler.IssueInvite))
	mux.Handle("POST /v1/admin/team-seasons/{teamSeasonID}/invite/rotate", admin(handler.RotateInvite))
	mux.Handle("POST /v1/admin/team-seasons/{teamSeasonID}/invite/deactivate", admin(handler.DeactivateInvite))

	mux.Handle("GET /v1/admin/registrations/pending", admin(handler.ListPendingRequests))
	mux.Handle("POST /v1/admin/registrations/approve-batch", admin(handler.ApproveRequestBatch))
	mux.Handle("POST /v1/admin/registrations/{requestID}/approve", admin(handler.ApproveRequest))
	mux.Handle("POST /v1/admin/registrations/{requestID}/reject", admin(handler.RejectRequest))
	mux.Handle("POST /v1/admin/registrations/{requestID}/require-info", admin(handler.RequireRequestInfo))

	mux.Handle("POST /v1/admin/matches", admin(handler.UpsertMatch))
	mux.Handle("POST /v1/admin/matches/{matchID}/result", admin(handler.RecordMatchResult))
	mux.Handle("POST /v1/admin/matches/{matchID}/goals", admin(handler.RecordGoal))
	mux.Handle("POST /v1/admin/matches/{matchID}/cards", admin(handler.RecordCard))
	mux.Handle("POST /v1/admin/matches/{matchID}/appearances", admin(handler.RecordAppearance))
}
