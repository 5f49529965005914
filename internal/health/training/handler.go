package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type service interface {
	Create(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Summary, error)
	List(ctx context.Context, userID uuid.UUID) ([]Session, error)
	Update(ctx context.Context, session Session) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Load(ctx context.Context, userID uuid.UUID) (*LoadSummary, error)
	Charts(ctx context.Context, userID uuid.UUID, defaultInterval series.DefaultInterval) (*Charts, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{user}/training-sessions", h.HandleList).Methods("GET", "OPTIONS").Name("list-training-sessions")
	r.HandleFunc("/users/{user}/training-sessions", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-training-session")
	r.HandleFunc("/users/{user}/training-sessions/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-training-session")
	r.HandleFunc("/users/{user}/training-sessions/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-training-session")
	r.HandleFunc("/users/{user}/training-sessions/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-training-session")
	r.HandleFunc("/users/{user}/training/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("training-stats")
	r.HandleFunc("/users/{user}/training/charts", h.HandleCharts).Methods("GET", "OPTIONS").Name("training-charts")
}

func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrOutOfRange), errors.Is(err, ErrInvalidResolution), errors.Is(err, ErrParse):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUnknownRoutine):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any, status int, action string) {
	if err := pkg.WriteJSONResponse(w, v, status); err != nil {
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

func intervalParam(r *http.Request) (series.DefaultInterval, error) {
	v := r.URL.Query().Get("interval")
	if v == "" {
		return series.ThreeMonths, nil
	}
	return series.ParseDefaultInterval(v)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.session.list")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessions, err := h.service.List(ctx, userID)
	if err != nil {
		writeError(w, err, "list training sessions")
		return
	}
	writeJSON(w, sessions, http.StatusOK, "list training sessions")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.session.create")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("new training session, unmarshal json params: %s", err)
		http.Error(w, "invalid training session: "+err.Error(), http.StatusBadRequest)
		return
	}
	if session.Date.IsZero() {
		http.Error(w, "invalid training session: date missing", http.StatusBadRequest)
		return
	}
	session.UserID = userID

	created, err := h.service.Create(ctx, session)
	if err != nil {
		writeError(w, err, "add training session")
		return
	}
	writeJSON(w, created, http.StatusCreated, "add training session")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.session.get")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.Get(ctx, userID, id)
	if err != nil {
		writeError(w, err, "get training session")
		return
	}
	writeJSON(w, summary, http.StatusOK, "get training session")
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.session.update")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("update training session, unmarshal json params: %s", err)
		http.Error(w, "invalid training session: "+err.Error(), http.StatusBadRequest)
		return
	}
	if session.Date.IsZero() {
		http.Error(w, "invalid training session: date missing", http.StatusBadRequest)
		return
	}
	session.ID = id
	session.UserID = userID

	if err := h.service.Update(ctx, session); err != nil {
		writeError(w, err, "update training session")
		return
	}
	writeJSON(w, session, http.StatusOK, "update training session")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.session.delete")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		writeError(w, err, "delete training session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.stats")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	load, err := h.service.Load(ctx, userID)
	if err != nil {
		writeError(w, err, "training stats")
		return
	}
	writeJSON(w, load, http.StatusOK, "training stats")
}

func (h *Handler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.charts")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	interval, err := intervalParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	charts, err := h.service.Charts(ctx, userID, interval)
	if err != nil {
		writeError(w, err, "training charts")
		return
	}
	writeJSON(w, charts, http.StatusOK, "training charts")
}
