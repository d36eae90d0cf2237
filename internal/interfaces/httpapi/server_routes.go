package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/schedule/{sport}/weeks/{week}", handler.GetWeekSchedule)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedSeriesRoutes(mux, handler, verifier)
	registerAuthorizedPickRoutes(mux, handler, verifier)
	registerAuthorizedPlayoffRoutes(mux, handler, verifier)
	registerAuthorizedInvitationRoutes(mux, handler, verifier)
}

func registerAuthorizedSeriesRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/series", RequireAuth(verifier, http.HandlerFunc(handler.CreateSeries)))
	mux.Handle("GET /v1/series", RequireAuth(verifier, http.HandlerFunc(handler.ListMySeries)))
	mux.Handle("GET /v1/series/{seriesID}", RequireAuth(verifier, http.HandlerFunc(handler.GetSeries)))
	mux.Handle("DELETE /v1/series/{seriesID}", RequireAuth(verifier, http.HandlerFunc(handler.DeactivateSeries)))
	mux.Handle("PUT /v1/series/{seriesID}/settings", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSeriesSettings)))
	mux.Handle("POST /v1/series/{seriesID}/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinSeries)))
	mux.Handle("DELETE /v1/series/{seriesID}/members/{memberID}", RequireAuth(verifier, http.HandlerFunc(handler.LeaveSeries)))
	mux.Handle("POST /v1/series/{seriesID}/advance-week", RequireAuth(verifier, http.HandlerFunc(handler.AdvanceSeriesWeek)))
	mux.Handle("POST /v1/series/{seriesID}/results", RequireAuth(verifier, http.HandlerFunc(handler.ReportWeekResults)))
}

func registerAuthorizedPickRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/series/{seriesID}/picks", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPick)))
	mux.Handle("GET /v1/series/{seriesID}/picks/status", RequireAuth(verifier, http.HandlerFunc(handler.GetPickStatus)))
}

func registerAuthorizedPlayoffRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/series/{seriesID}/playoff-pool", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayoffPool)))
	mux.Handle("GET /v1/series/{seriesID}/playoff-pool", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayoffPool)))
	mux.Handle("POST /v1/series/{seriesID}/playoff-pool/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinPlayoffPool)))
	mux.Handle("POST /v1/series/{seriesID}/playoff-pool/picks", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPlayoffPicks)))
	mux.Handle("POST /v1/series/{seriesID}/playoff-pool/games/{gameID}/result", RequireAuth(verifier, http.HandlerFunc(handler.ReportPlayoffGameResult)))
	mux.Handle("GET /v1/series/{seriesID}/playoff-pool/standings", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayoffStandings)))
}

func registerAuthorizedInvitationRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/series/{seriesID}/invitations", RequireAuth(verifier, http.HandlerFunc(handler.InviteMember)))
	mux.Handle("POST /v1/invitations/{invitationID}/respond", RequireAuth(verifier, http.HandlerFunc(handler.RespondInvitation)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/autopick-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAutoPickSweepJob)))
	mux.Handle("POST /v1/internal/jobs/grade-week", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunGradeWeekJob)))
}
