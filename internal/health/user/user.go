package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/healthtracker/internal/health/name"

	"github.com/google/uuid"
)

var ErrInvalidSex = errors.New("sex must be female or male")

type Sex int

const (
	Female Sex = 0
	Male   Sex = 1
)

func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female":
		return Female, nil
	case "male":
		return Male, nil
	default:
		return Female, fmt.Errorf("%w: [%s]", ErrInvalidSex, s)
	}
}

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

func (s Sex) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Sex) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := ParseSex(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type User struct {
	ID   uuid.UUID `json:"id"`
	Name name.Name `json:"name"`
	Sex  Sex       `json:"sex"`
}

// NameTaken reports whether another user than id already uses the name.
func NameTaken(users []User, n name.Name, id uuid.UUID) bool {
	for _, u := range users {
		if u.ID != id && u.Name == n {
			return true
		}
	}
	return false
}
