package outputs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInput indicates validation or bad input.
var ErrInvalidInput = errors.New("invalid input")

// Type is the closed vocabulary for generated content.
type Type string

const (
	TypeCoverLetter   Type = "cover_letter"
	TypeInterviewPrep Type = "interview_prep"
	TypeGapAnalysis   Type = "gap_analysis"
	TypeTailoredQA    Type = "tailored_qa"
)

var types = []Type{
	TypeCoverLetter,
	TypeInterviewPrep,
	TypeGapAnalysis,
	TypeTailoredQA,
}

// Types returns the valid output type values.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Valid reports whether the type belongs to the fixed vocabulary.
func (t Type) Valid() bool {
	for _, known := range types {
		if t == known {
			return true
		}
	}
	return false
}

// ParseType validates a raw string against the vocabulary. The error
// names the allowed set.
func ParseType(raw string) (Type, error) {
	typ := Type(raw)
	if !typ.Valid() {
		return "", fmt.Errorf("%w: Invalid type. Must be one of: %s", ErrInvalidInput, typeList())
	}
	return typ, nil
}

func typeList() string {
	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = string(typ)
	}
	return strings.Join(names, ", ")
}

// Output is one piece of AI-generated content. ApplicationID is required;
// deleting the application cascades to its outputs. No output workflow is
// exposed over HTTP yet.
type Output struct {
	ID            string
	ApplicationID string
	Type          Type
	Content       string
	CreatedAt     time.Time
}
