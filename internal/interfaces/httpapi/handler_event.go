package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sports-schedule/internal/usecase"
)

// ListEvents accepts leagueIds, dateRange, opposingTeamId, startDate and
// endDate query parameters.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	query := r.URL.Query()
	criteria := usecase.EventCriteria{
		LeagueIDs:       query.Get("leagueIds"),
		DateRange:       query.Get("dateRange"),
		OpposingTeamIDs: query.Get("opposingTeamId"),
		StartDate:       query.Get("startDate"),
		EndDate:         query.Get("endDate"),
	}

	events, err := h.eventService.Query(ctx, criteria)
	if err != nil {
		h.fail(ctx, w, "query events failed", err, "query", r.URL.RawQuery)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	detail, err := h.eventService.Get(ctx, eventID)
	if err != nil {
		h.fail(ctx, w, "get event failed", err, "event_id", eventID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventDetailDTO{
		eventDTO: eventToDTO(detail.Event),
		League:   leagueToRefDTO(detail.League),
		Team:     teamToRefDTO(detail.Team),
	})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	var req eventRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID, err := h.eventService.Create(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create event failed", err, "league_id", req.LeagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, createdDTO{Message: "Event created", ID: eventID})
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	var req eventRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.Update(ctx, eventID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update event failed", err, "event_id", eventID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	if err := h.eventService.Delete(ctx, eventID); err != nil {
		h.fail(ctx, w, "delete event failed", err, "event_id", eventID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageDTO{Message: "Event deleted successfully"})
}
