package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/healthtracker/internal/health/name"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercise_test

type service interface {
	Create(ctx context.Context, userID uuid.UUID, n name.Name, muscles []Muscle) (*Exercise, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Exercise, error)
	List(ctx context.Context, userID uuid.UUID) ([]Exercise, error)
	Update(ctx context.Context, e Exercise) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type MuscleInfo struct {
	ID          MuscleID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
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
	r.HandleFunc("/muscles", h.HandleMuscles).Methods("GET", "OPTIONS").Name("list-muscles")
	r.HandleFunc("/users/{user}/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/users/{user}/exercises", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/users/{user}/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/users/{user}/exercises/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/users/{user}/exercises/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-exercise")
}

func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrInvalidMuscleID), errors.Is(err, ErrInvalidStimulus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrExerciseExists):
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

func (h *Handler) HandleMuscles(w http.ResponseWriter, r *http.Request) {
	muscles := make([]MuscleInfo, 0, len(Muscles))
	for _, m := range Muscles {
		muscles = append(muscles, MuscleInfo{
			ID:          m,
			Name:        m.Name(),
			Description: m.Description(),
		})
	}
	writeJSON(w, muscles, http.StatusOK, "list muscles")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.list")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercises, err := h.service.List(ctx, userID)
	if err != nil {
		writeError(w, err, "list exercises")
		return
	}
	writeJSON(w, exercises, http.StatusOK, "list exercises")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.create")
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

	var e Exercise
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise: "+err.Error(), http.StatusBadRequest)
		return
	}
	if e.Name == "" {
		http.Error(w, "invalid exercise: "+name.ErrEmpty.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(ctx, userID, e.Name, e.Muscles)
	if err != nil {
		writeError(w, err, "add exercise")
		return
	}
	writeJSON(w, created, http.StatusCreated, "add exercise")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.get")
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

	e, err := h.service.Get(ctx, userID, id)
	if err != nil {
		writeError(w, err, "get exercise")
		return
	}
	writeJSON(w, e, http.StatusOK, "get exercise")
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.update")
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

	var e Exercise
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise: "+err.Error(), http.StatusBadRequest)
		return
	}
	if e.Name == "" {
		http.Error(w, "invalid exercise: "+name.ErrEmpty.Error(), http.StatusBadRequest)
		return
	}
	e.ID = id
	e.UserID = userID

	if err := h.service.Update(ctx, e); err != nil {
		writeError(w, err, "update exercise")
		return
	}
	writeJSON(w, e, http.StatusOK, "update exercise")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.delete")
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
		writeError(w, err, "delete exercise")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
