package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /openapi.json", handler.OpenAPIJSON)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/events", handler.ListEvents)
	mux.HandleFunc("GET /api/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /api/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /api/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /api/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /api/maps-key", handler.GetMapsKey)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /api/login", handler.Login)
	mux.HandleFunc("POST /api/register", handler.Register)
	mux.HandleFunc("POST /api/guest", handler.Guest)
	mux.Handle("GET /api/dashboard-data", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboardData)))
}

// registerAdminRoutes gates every write on leagues, teams and events.
func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireAdmin(h))
	}

	mux.Handle("GET /api/admin-data", admin(handler.GetAdminData))

	mux.Handle("POST /api/events", admin(handler.CreateEvent))
	mux.Handle("PUT /api/events/{eventID}", admin(handler.UpdateEvent))
	mux.Handle("DELETE /api/events/{eventID}", admin(handler.DeleteEvent))

	mux.Handle("POST /api/leagues", admin(handler.CreateLeague))
	mux.Handle("PUT /api/leagues/{leagueID}", admin(handler.UpdateLeague))
	mux.Handle("DELETE /api/leagues/{leagueID}", admin(handler.DeleteLeague))

	mux.Handle("POST /api/teams", admin(handler.CreateTeam))
	mux.Handle("PUT /api/teams/{teamID}", admin(handler.UpdateTeam))
	mux.Handle("DELETE /api/teams/{teamID}", admin(handler.DeleteTeam))
}
