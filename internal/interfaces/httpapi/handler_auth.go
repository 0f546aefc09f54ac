package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sports-schedule/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req credentialsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	token, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.fail(ctx, w, "login failed", err, "username", req.Username)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tokenDTO{Token: token})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Register(ctx, usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		h.fail(ctx, w, "register failed", err, "username", req.Username)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, registeredDTO{
		Message: "User registered",
		Token:   result.Token,
		IsAdmin: result.IsAdmin,
	})
}

func (h *Handler) Guest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Guest")
	defer span.End()

	token, err := h.authService.Guest(ctx)
	if err != nil {
		h.fail(ctx, w, "issue guest token failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tokenDTO{Token: token})
}

func (h *Handler) GetDashboardData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardData")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		Message:  "Secure content",
		UserID:   principal.UserID,
		UserName: principal.Name,
		IsAdmin:  principal.IsAdmin,
	})
}

func (h *Handler) GetAdminData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminData")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, messageDTO{Message: "Admin content"})
}

func (h *Handler) GetMapsKey(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMapsKey")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, mapsKeyDTO{Key: h.mapsKey})
}
