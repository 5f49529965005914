package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/healthtracker/internal/health/name"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=user_test

type service interface {
	Create(ctx context.Context, n name.Name, sex Sex) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id uuid.UUID) error
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
	r.HandleFunc("/users", h.HandleList).Methods("GET", "OPTIONS").Name("list-users")
	r.HandleFunc("/users", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-user")
	r.HandleFunc("/users/{user}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-user")
	r.HandleFunc("/users/{user}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-user")
	r.HandleFunc("/users/{user}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-user")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.list")
	defer span.End()

	users, err := h.service.List(ctx)
	if err != nil {
		log.Errorf("list users: %s", err)
		http.Error(w, "list users failed", http.StatusInternalServerError)
		return
	}

	if err := pkg.WriteJSONResponse(w, users, http.StatusOK); err != nil {
		log.Errorf("list users: %s", err)
		http.Error(w, "list users failed", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.create")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var u User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		log.Errorf("new user, unmarshal json params: %s", err)
		http.Error(w, "invalid user: "+err.Error(), http.StatusBadRequest)
		return
	}
	if u.Name == "" {
		http.Error(w, "invalid user: "+name.ErrEmpty.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(ctx, u.Name, u.Sex)
	if err != nil {
		if errors.Is(err, ErrUserNameTaken) {
			http.Error(w, "user name already taken", http.StatusConflict)
			return
		}
		log.Errorf("new user: %s", err)
		http.Error(w, "add user failed", http.StatusInternalServerError)
		return
	}

	if err := pkg.WriteJSONResponse(w, created, http.StatusCreated); err != nil {
		log.Errorf("new user: %s", err)
		http.Error(w, "add user failed", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.get")
	defer span.End()

	id, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %s: %s", id, err)
		http.Error(w, "get user failed", http.StatusInternalServerError)
		return
	}

	if err := pkg.WriteJSONResponse(w, u, http.StatusOK); err != nil {
		log.Errorf("get user %s: %s", id, err)
		http.Error(w, "get user failed", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.update")
	defer span.End()

	id, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var u User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		log.Errorf("update user, unmarshal json params: %s", err)
		http.Error(w, "invalid user: "+err.Error(), http.StatusBadRequest)
		return
	}
	if u.Name == "" {
		http.Error(w, "invalid user: "+name.ErrEmpty.Error(), http.StatusBadRequest)
		return
	}
	u.ID = id

	if err := h.service.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, ErrUserNameTaken):
			http.Error(w, "user name already taken", http.StatusConflict)
		default:
			log.Errorf("update user %s: %s", id, err)
			http.Error(w, "update user failed", http.StatusInternalServerError)
		}
		return
	}

	if err := pkg.WriteJSONResponse(w, u, http.StatusOK); err != nil {
		log.Errorf("update user %s: %s", id, err)
		http.Error(w, "update user failed", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.delete")
	defer span.End()

	id, err := pkg.UUIDVar(r, "user")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete user %s: %s", id, err)
		http.Error(w, "delete user failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
