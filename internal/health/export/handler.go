package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=export_test

type service interface {
	Export(ctx context.Context, userID uuid.UUID) (*Export, error)
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
	r.HandleFunc("/users/{user}/export", h.HandleExport).Methods("GET", "OPTIONS").Name("export-user")
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.service.Export(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("export user %s: %s", userID, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("download") == "true" {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="health-%s.json"`, e.User.Name))
	}
	if err := pkg.WriteJSONResponse(w, e, http.StatusOK); err != nil {
		log.Errorf("export user %s: %s", userID, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
	}
}
