package applications

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInput indicates validation or bad input.
var ErrInvalidInput = errors.New("invalid input")

// Status is the closed vocabulary for application tracking.
type Status string

const (
	StatusWishlist     Status = "wishlist"
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusOffered      Status = "offered"
	StatusRejected     Status = "rejected"
	StatusAccepted     Status = "accepted"
)

var statuses = []Status{
	StatusWishlist,
	StatusApplied,
	StatusInterviewing,
	StatusOffered,
	StatusRejected,
	StatusAccepted,
}

// Statuses returns the valid status values.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Valid reports whether the status belongs to the fixed vocabulary.
func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus validates a raw string against the vocabulary. The error
// names the allowed set.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if !status.Valid() {
		return "", fmt.Errorf("%w: Invalid status. Must be one of: %s", ErrInvalidInput, statusList())
	}
	return status, nil
}

func statusList() string {
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}

// Application tracks one job application. ResumeID optionally references
// a resume; deleting that resume nulls the reference rather than
// cascading. No application workflow is exposed over HTTP yet; the shape
// exists for the generation features built on top of it.
type Application struct {
	ID             string
	ResumeID       *string
	Company        string
	Position       string
	JobDescription *string
	JobURL         *string
	Status         Status
	Notes          *string
	AppliedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
