package pkg

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// UUIDVar parses the named route variable as a UUID.
func UUIDVar(r *http.Request, name string) (uuid.UUID, error) {
	value, ok := mux.Vars(r)[name]
	if !ok || value == "" {
		return uuid.Nil, fmt.Errorf("%s empty", name)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s invalid: %w", name, err)
	}
	return id, nil
}
