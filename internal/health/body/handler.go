package body

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=body_test

type service interface {
	ListWeights(ctx context.Context, userID uuid.UUID) ([]Weight, error)
	AddWeight(ctx context.Context, userID uuid.UUID, w Weight) error
	UpdateWeight(ctx context.Context, userID uuid.UUID, w Weight) error
	DeleteWeight(ctx context.Context, userID uuid.UUID, date time.Time) error
	AvgWeights(ctx context.Context, userID uuid.UUID) ([]Weight, error)
	ListFat(ctx context.Context, userID uuid.UUID) ([]FatEntry, error)
	AddFat(ctx context.Context, userID uuid.UUID, f Fat) error
	UpdateFat(ctx context.Context, userID uuid.UUID, f Fat) error
	DeleteFat(ctx context.Context, userID uuid.UUID, date time.Time) error
	AvgFat(ctx context.Context, userID uuid.UUID, defaultInterval series.DefaultInterval) (*FatTrend, error)
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
	r.HandleFunc("/users/{user}/body-weight/avg", h.HandleAvgWeights).Methods("GET", "OPTIONS").Name("avg-body-weight")
	r.HandleFunc("/users/{user}/body-weight", h.HandleListWeights).Methods("GET", "OPTIONS").Name("list-body-weight")
	r.HandleFunc("/users/{user}/body-weight", h.HandleAddWeight).Methods("POST", "OPTIONS").Name("new-body-weight")
	r.HandleFunc("/users/{user}/body-weight/{date}", h.HandleUpdateWeight).Methods("PUT", "OPTIONS").Name("update-body-weight")
	r.HandleFunc("/users/{user}/body-weight/{date}", h.HandleDeleteWeight).Methods("DELETE", "OPTIONS").Name("remove-body-weight")

	r.HandleFunc("/users/{user}/body-fat/avg", h.HandleAvgFat).Methods("GET", "OPTIONS").Name("avg-body-fat")
	r.HandleFunc("/users/{user}/body-fat", h.HandleListFat).Methods("GET", "OPTIONS").Name("list-body-fat")
	r.HandleFunc("/users/{user}/body-fat", h.HandleAddFat).Methods("POST", "OPTIONS").Name("new-body-fat")
	r.HandleFunc("/users/{user}/body-fat/{date}", h.HandleUpdateFat).Methods("PUT", "OPTIONS").Name("update-body-fat")
	r.HandleFunc("/users/{user}/body-fat/{date}", h.HandleDeleteFat).Methods("DELETE", "OPTIONS").Name("remove-body-fat")
}

func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrInvalidWeight):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, ErrWeightNotFound),
		errors.Is(err, ErrFatNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrWeightExists), errors.Is(err, ErrFatExists):
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

func dateVar(r *http.Request) (time.Time, error) {
	return series.ParseDate(mux.Vars(r)["date"])
}

func decodeJSON(r *http.Request, dest any) error {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		return errors.New("invalid content type")
	}
	return json.NewDecoder(r.Body).Decode(dest)
}

func (h *Handler) HandleListWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.weight.list")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	weights, err := h.service.ListWeights(ctx, userID)
	if err != nil {
		writeError(w, err, "list body weights")
		return
	}
	writeJSON(w, weights, http.StatusOK, "list body weights")
}

func (h *Handler) HandleAddWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.weight.add")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var weight Weight
	if err := decodeJSON(r, &weight); err != nil {
		log.Errorf("new body weight, unmarshal json params: %s", err)
		http.Error(w, "invalid body weight: "+err.Error(), http.StatusBadRequest)
		return
	}
	if weight.Date.IsZero() {
		http.Error(w, "invalid body weight: date missing", http.StatusBadRequest)
		return
	}

	if err := h.service.AddWeight(ctx, userID, weight); err != nil {
		writeError(w, err, "add body weight")
		return
	}
	weight.Date = series.Day(weight.Date)
	writeJSON(w, weight, http.StatusCreated, "add body weight")
}

func (h *Handler) HandleUpdateWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.weight.update")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := dateVar(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var weight Weight
	if err := decodeJSON(r, &weight); err != nil {
		log.Errorf("update body weight, unmarshal json params: %s", err)
		http.Error(w, "invalid body weight: "+err.Error(), http.StatusBadRequest)
		return
	}
	weight.Date = date

	if err := h.service.UpdateWeight(ctx, userID, weight); err != nil {
		writeError(w, err, "update body weight")
		return
	}
	writeJSON(w, weight, http.StatusOK, "update body weight")
}

func (h *Handler) HandleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.weight.delete")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := dateVar(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteWeight(ctx, userID, date); err != nil {
		writeError(w, err, "delete body weight")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAvgWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.weight.avg")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	avg, err := h.service.AvgWeights(ctx, userID)
	if err != nil {
		writeError(w, err, "average body weight")
		return
	}
	writeJSON(w, avg, http.StatusOK, "average body weight")
}

func (h *Handler) HandleListFat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.fat.list")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.service.ListFat(ctx, userID)
	if err != nil {
		writeError(w, err, "list body fat")
		return
	}
	writeJSON(w, entries, http.StatusOK, "list body fat")
}

func (h *Handler) HandleAddFat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.fat.add")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var fat Fat
	if err := decodeJSON(r, &fat); err != nil {
		log.Errorf("new body fat, unmarshal json params: %s", err)
		http.Error(w, "invalid body fat: "+err.Error(), http.StatusBadRequest)
		return
	}
	if fat.Date.IsZero() {
		http.Error(w, "invalid body fat: date missing", http.StatusBadRequest)
		return
	}

	if err := h.service.AddFat(ctx, userID, fat); err != nil {
		writeError(w, err, "add body fat")
		return
	}
	fat.Date = series.Day(fat.Date)
	writeJSON(w, fat, http.StatusCreated, "add body fat")
}

func (h *Handler) HandleUpdateFat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.fat.update")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := dateVar(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var fat Fat
	if err := decodeJSON(r, &fat); err != nil {
		log.Errorf("update body fat, unmarshal json params: %s", err)
		http.Error(w, "invalid body fat: "+err.Error(), http.StatusBadRequest)
		return
	}
	fat.Date = date

	if err := h.service.UpdateFat(ctx, userID, fat); err != nil {
		writeError(w, err, "update body fat")
		return
	}
	writeJSON(w, fat, http.StatusOK, "update body fat")
}

func (h *Handler) HandleDeleteFat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.fat.delete")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := dateVar(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteFat(ctx, userID, date); err != nil {
		writeError(w, err, "delete body fat")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAvgFat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.fat.avg")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	interval := series.ThreeMonths
	if v := r.URL.Query().Get("interval"); v != "" {
		if interval, err = series.ParseDefaultInterval(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	trend, err := h.service.AvgFat(ctx, userID, interval)
	if err != nil {
		writeError(w, err, "average body fat")
		return
	}
	writeJSON(w, trend, http.StatusOK, "average body fat")
}
