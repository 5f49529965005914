package cycle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=cycle_test

type service interface {
	ListPeriods(ctx context.Context, userID uuid.UUID) ([]Period, error)
	AddPeriod(ctx context.Context, userID uuid.UUID, p Period) error
	UpdatePeriod(ctx context.Context, userID uuid.UUID, p Period) error
	DeletePeriod(ctx context.Context, userID uuid.UUID, date time.Time) error
	Cycles(ctx context.Context, userID uuid.UUID) ([]Cycle, error)
	Current(ctx context.Context, userID uuid.UUID) (*CurrentCycle, error)
	Stats(ctx context.Context, userID uuid.UUID, defaultInterval series.DefaultInterval) (*IntervalStats, error)
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
	r.HandleFunc("/users/{user}/period", h.HandleListPeriods).Methods("GET", "OPTIONS").Name("list-periods")
	r.HandleFunc("/users/{user}/period", h.HandleAddPeriod).Methods("POST", "OPTIONS").Name("new-period")
	r.HandleFunc("/users/{user}/period/{date}", h.HandleUpdatePeriod).Methods("PUT", "OPTIONS").Name("update-period")
	r.HandleFunc("/users/{user}/period/{date}", h.HandleDeletePeriod).Methods("DELETE", "OPTIONS").Name("remove-period")
	r.HandleFunc("/users/{user}/cycles", h.HandleCycles).Methods("GET", "OPTIONS").Name("list-cycles")
	r.HandleFunc("/users/{user}/cycles/current", h.HandleCurrent).Methods("GET", "OPTIONS").Name("current-cycle")
	r.HandleFunc("/users/{user}/cycles/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("cycle-stats")
}

func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrInvalidIntensity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, ErrPeriodNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrPeriodExists):
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

func (h *Handler) HandleListPeriods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cycle.period.list")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	periods, err := h.service.ListPeriods(ctx, userID)
	if err != nil {
		writeError(w, err, "list periods")
		return
	}
	writeJSON(w, periods, http.StatusOK, "list periods")
}

func (h *Handler) HandleAddPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cycle.period.add")
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

	var p Period
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("new period, unmarshal json params: %s", err)
		http.Error(w, "invalid period: "+err.Error(), http.StatusBadRequest)
		return
	}
	if p.Date.IsZero() {
		http.Error(w, "invalid period: date missing", http.StatusBadRequest)
		return
	}

	if err := h.service.AddPeriod(ctx, userID, p); err != nil {
		writeError(w, err, "add period")
		return
	}
	p.Date = series.Day(p.Date)
	writeJSON(w, p, http.StatusCreated, "add period")
}

func (h *Handler) HandleUpdatePeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cycle.period.update")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := series.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p Period
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("update period, unmarshal json params: %s", err)
		http.Error(w, "invalid period: "+err.Error(), http.StatusBadRequest)
		return
	}
	p.Date = date

	if err := h.service.UpdatePeriod(ctx, userID, p); err != nil {
		writeError(w, err, "update period")
		return
	}
	writeJSON(w, p, http.StatusOK, "update period")
}

func (h *Handler) HandleDeletePeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cycle.period.delete")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := series.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeletePeriod(ctx, userID, date); err != nil {
		writeError(w, err, "delete period")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleCycles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cycle.cycles")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cycles, err := h.service.Cycles(ctx, userID)
	if err != nil {
		writeError(w, err, "list cycles")
		return
	}
	writeJSON(w, cycles, http.StatusOK, "list cycles")
}

func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cycle.current")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	current, err := h.service.Current(ctx, userID)
	if err != nil {
		writeError(w, err, "current cycle")
		return
	}
	if current == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, current, http.StatusOK, "current cycle")
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.cycle.stats")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	interval := series.SixMonths
	if v := r.URL.Query().Get("interval"); v != "" {
		if interval, err = series.ParseDefaultInterval(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	stats, err := h.service.Stats(ctx, userID, interval)
	if err != nil {
		writeError(w, err, "cycle stats")
		return
	}
	writeJSON(w, stats, http.StatusOK, "cycle stats")
}
