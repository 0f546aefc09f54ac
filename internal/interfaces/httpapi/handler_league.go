package httpapi

import (
	"net/http"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list leagues failed", err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	item, err := h.leagueService.Get(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "get league failed", err, "league_id", leagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teams, err := h.teamService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "list teams by league failed", err, "league_id", leagueID)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req leagueRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID, err := h.leagueService.Create(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create league failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, createdDTO{Message: "League created", ID: leagueID})
}

func (h *Handler) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	var req leagueRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.Update(ctx, leagueID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update league failed", err, "league_id", leagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	result, err := h.leagueService.Delete(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "delete league failed", err, "league_id", leagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deleteResultToDTO("League and related teams and events deleted", result))
}
