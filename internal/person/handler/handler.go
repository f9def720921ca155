package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"people-registry/internal/person/metrics"
	"people-registry/internal/person/models"
	"people-registry/internal/platform/middleware"
	id "people-registry/pkg/domain"
	dErrors "people-registry/pkg/domain-errors"
	"people-registry/pkg/platform/httputil"
)

const maxBodyBytes = 1 << 20

// Service defines the interface for person operations.
type Service interface {
	Create(ctx context.Context, p models.NewPerson) (*models.Person, error)
	Get(ctx context.Context, personID id.PersonID) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
	Count(ctx context.Context) (int, error)
}

// Handler handles the person registry endpoints.
type Handler struct {
	logger  *slog.Logger
	persons Service
	metrics *metrics.Metrics
}

// New creates a new person Handler.
func New(persons Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		persons: persons,
		metrics: metrics,
	}
}

// Register registers the person routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/pessoas", h.handleCreatePerson)
	r.Get("/pessoas/{id}", h.handleGetPerson)
	r.Get("/pessoas", h.handleListPersons)
	r.Get("/contagem-pessoas", h.handleCountPersons)
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req CreatePersonRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create person request",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.metrics.IncrementValidationFailed("malformed")
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	newPerson, err := req.Parse()
	if err != nil {
		h.logger.WarnContext(ctx, "create person request failed validation",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.metrics.IncrementValidationFailed("invalid")
		httputil.WriteError(w, err)
		return
	}

	person, err := h.persons.Create(ctx, newPerson)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create person",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/pessoas/"+person.ID.String())
	httputil.WriteJSON(w, http.StatusCreated, person)
}

func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// A malformed ID cannot name a stored record, so it is simply not found.
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "person not found"))
		return
	}

	person, err := h.persons.Get(ctx, personID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to get person",
				"request_id", middleware.GetRequestID(ctx),
				"person_id", personID.String(),
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, person)
}

func (h *Handler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	persons, err := h.persons.List(ctx)
	if err != nil {
		h.writeInternal(ctx, w, "failed to list persons", err)
		return
	}
	if persons == nil {
		persons = []*models.Person{}
	}

	httputil.WriteJSON(w, http.StatusOK, persons)
}

func (h *Handler) handleCountPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.persons.Count(ctx)
	if err != nil {
		h.writeInternal(ctx, w, "failed to count persons", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, count)
}

func (h *Handler) writeInternal(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
	var de *dErrors.Error
	if !errors.As(err, &de) {
		err = dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
	httputil.WriteError(w, err)
}
