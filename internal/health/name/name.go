package name

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const maxLength = 64

var (
	ErrEmpty   = errors.New("name must not be empty")
	ErrTooLong = errors.New("name must be 64 characters or fewer")
)

// Name is a trimmed, non-empty display name.
type Name string

func New(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrEmpty
	}
	if len(trimmed) > maxLength {
		return "", fmt.Errorf("%w (%d > %d)", ErrTooLong, len(trimmed), maxLength)
	}
	return Name(trimmed), nil
}

func (n Name) String() string {
	return string(n)
}

func (n *Name) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := New(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
