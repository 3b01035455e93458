package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abstract-333/name-origin-api/internal/mediator"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/providers"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/service"
	dErrors "github.com/abstract-333/name-origin-api/pkg/domain-errors"
	"github.com/abstract-333/name-origin-api/pkg/platform/httputil"
	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

// Handler exposes the name endpoints. It only translates HTTP to commands;
// every decision is made by the command handlers behind the dispatcher.
type Handler struct {
	dispatcher mediator.Dispatcher
	logger     *slog.Logger
}

// New constructs a name handler.
func New(dispatcher mediator.Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register mounts the name endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/v1/names", h.HandleGetNameOrigins)
	r.Get("/api/v1/names/popular", h.HandleGetPopularNames)
}

// HandleGetNameOrigins handles GET /api/v1/names?name=...
func (h *Handler) HandleGetNameOrigins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Name parameter is required"))
		return
	}

	origins, err := mediator.Send[[]*models.NameOrigin](ctx, h.dispatcher, service.GetNameOriginsCommand{Name: name})
	if err != nil {
		h.logFailure(r, "get name origins failed", err, "request_id", requestID, "name", name)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "name origins served",
		"request_id", requestID,
		"name", name,
		"origins", len(origins),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromNameOrigins(origins))
}

// HandleGetPopularNames handles GET /api/v1/names/popular?country=...
func (h *Handler) HandleGetPopularNames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Country parameter is required"))
		return
	}

	origins, err := mediator.Send[[]*models.NameOrigin](ctx, h.dispatcher, service.GetFrequentNamesCommand{CountryCode: country})
	if err != nil {
		h.logFailure(r, "get popular names failed", err, "request_id", requestID, "country_code", country)
		httputil.WriteError(w, err)
		return
	}
	if len(origins) == 0 {
		code, err := models.NormalizeCountryCode(country)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteError(w, &noPopularNamesError{code: code})
		return
	}

	h.logger.InfoContext(ctx, "popular names served",
		"request_id", requestID,
		"country_code", country,
		"origins", len(origins),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromNameOrigins(origins))
}

// logFailure logs client errors at warn and the rest at error.
func (h *Handler) logFailure(r *http.Request, msg string, err error, args ...any) {
	args = append(args, "error", err)
	var pe *providers.ProviderError
	if errors.As(err, &pe) {
		args = append(args,
			"provider", pe.ProviderID,
			"provider_category", providers.GetCategory(err),
			"retryable", providers.IsRetryable(err),
		)
	}
	code, _ := dErrors.GetCode(err)
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeNotFound:
		h.logger.WarnContext(r.Context(), msg, args...)
	default:
		h.logger.ErrorContext(r.Context(), msg, args...)
	}
}

type noPopularNamesError struct {
	code string
}

func (e *noPopularNamesError) Error() string {
	return fmt.Sprintf("No names found for country %s", e.code)
}

func (e *noPopularNamesError) ErrorCode() dErrors.Code { return dErrors.CodeNotFound }

func (e *noPopularNamesError) Detail() (string, string) { return "country_code", e.code }
