package routine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/healthtracker/internal/health/name"
	"github.com/2beens/healthtracker/internal/health/training"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routine_test

type service interface {
	Create(ctx context.Context, rt Routine) (*Routine, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Routine, error)
	List(ctx context.Context, userID uuid.UUID, sortByLastUse, includeArchived bool) ([]Routine, error)
	Update(ctx context.Context, rt Routine) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Summary(ctx context.Context, userID, id uuid.UUID) (*Summary, error)
	SessionTemplate(ctx context.Context, userID, id uuid.UUID) (*training.Session, error)
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
	r.HandleFunc("/users/{user}/routines", h.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	r.HandleFunc("/users/{user}/routines", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-routine")
	r.HandleFunc("/users/{user}/routines/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	r.HandleFunc("/users/{user}/routines/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-routine")
	r.HandleFunc("/users/{user}/routines/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-routine")
	r.HandleFunc("/users/{user}/routines/{id}/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("routine-summary")
	r.HandleFunc("/users/{user}/routines/{id}/session-template", h.HandleSessionTemplate).Methods("GET", "OPTIONS").Name("routine-session-template")
}

func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, ErrRoutineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrRoutineExists):
		http.Error(w, err.Error(), http.StatusConflict)
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

func userAndRoutine(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, id, nil
}

func decodeRoutine(w http.ResponseWriter, r *http.Request, action string) (*Routine, bool) {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return nil, false
	}

	var rt Routine
	if err := json.NewDecoder(r.Body).Decode(&rt); err != nil {
		log.Errorf("%s, unmarshal json params: %s", action, err)
		http.Error(w, "invalid routine: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if rt.Name == "" {
		http.Error(w, "invalid routine: "+name.ErrEmpty.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &rt, true
}

// HandleList supports ?sort=last-use and ?archived=true.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.list")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	var sortByLastUse bool
	switch query.Get("sort") {
	case "", "name":
	case "last-use":
		sortByLastUse = true
	default:
		http.Error(w, "invalid sort: "+query.Get("sort"), http.StatusBadRequest)
		return
	}
	includeArchived := query.Get("archived") == "true"

	routines, err := h.service.List(ctx, userID, sortByLastUse, includeArchived)
	if err != nil {
		writeError(w, err, "list routines")
		return
	}
	writeJSON(w, routines, http.StatusOK, "list routines")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.create")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rt, ok := decodeRoutine(w, r, "new routine")
	if !ok {
		return
	}
	rt.UserID = userID

	created, err := h.service.Create(ctx, *rt)
	if err != nil {
		writeError(w, err, "add routine")
		return
	}
	writeJSON(w, created, http.StatusCreated, "add routine")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.get")
	defer span.End()

	userID, id, err := userAndRoutine(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rt, err := h.service.Get(ctx, userID, id)
	if err != nil {
		writeError(w, err, "get routine")
		return
	}
	writeJSON(w, rt, http.StatusOK, "get routine")
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.update")
	defer span.End()

	userID, id, err := userAndRoutine(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rt, ok := decodeRoutine(w, r, "update routine")
	if !ok {
		return
	}
	rt.ID = id
	rt.UserID = userID

	if err := h.service.Update(ctx, *rt); err != nil {
		writeError(w, err, "update routine")
		return
	}
	writeJSON(w, rt, http.StatusOK, "update routine")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.delete")
	defer span.End()

	userID, id, err := userAndRoutine(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		writeError(w, err, "delete routine")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.summary")
	defer span.End()

	userID, id, err := userAndRoutine(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summary(ctx, userID, id)
	if err != nil {
		writeError(w, err, "routine summary")
		return
	}
	writeJSON(w, summary, http.StatusOK, "routine summary")
}

func (h *Handler) HandleSessionTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.session_template")
	defer span.End()

	userID, id, err := userAndRoutine(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.SessionTemplate(ctx, userID, id)
	if err != nil {
		writeError(w, err, "routine session template")
		return
	}
	writeJSON(w, session, http.StatusOK, "routine session template")
}
