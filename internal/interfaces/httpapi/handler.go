package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/riskibarqy/sports-schedule/internal/usecase"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	leagueService *usecase.LeagueService
	teamService   *usecase.TeamService
	eventService  *usecase.EventService
	authService   *usecase.AuthService
	mapsKey       string
	// exposeErrors keeps internal error detail in 500 responses.
	exposeErrors bool
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	eventService *usecase.EventService,
	authService *usecase.AuthService,
	mapsKey string,
	exposeErrors bool,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService: leagueService,
		teamService:   teamService,
		eventService:  eventService,
		authService:   authService,
		mapsKey:       mapsKey,
		exposeErrors:  exposeErrors,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads one JSON document and rejects unknown fields.
func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail logs a failed request and writes the mapped error. Server errors are
// logged at error level, client errors at warn.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, keyvals ...any) {
	keyvals = append(keyvals, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, keyvals...)
	} else {
		h.logger.WarnContext(ctx, msg, keyvals...)
	}
	writeErrorDetail(ctx, w, err, h.exposeErrors)
}
