package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// PatternID identifies a stored generation-outcome record
type PatternID ID

func (id PatternID) String() string { return ID(id).String() }

// NewPatternID creates a new pattern record identifier
func NewPatternID() PatternID {
	return PatternID(NewID())
}

// ParsePatternID parses a string into PatternID
func ParsePatternID(s string) (PatternID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("pattern ID cannot be empty")
	}
	return PatternID(s), nil
}
