package qabank

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for the Q&A bank. All validation happens
// here, before anything reaches the repo; invalid input never causes a
// partial write.
type Service struct {
	Repo Repo
}

// CreateInput carries user-submitted fields for a new entry.
type CreateInput struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// UpdateInput carries a partial field update. Nil fields are left
// unchanged.
type UpdateInput struct {
	Question *string  `json:"question"`
	Answer   *string  `json:"answer"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
}

// Create validates and persists a new entry. Question and answer are
// trimmed and must be non-empty; the category must belong to the fixed
// vocabulary; tags default to an empty set.
func (s *Service) Create(ctx context.Context, input CreateInput) (Entry, error) {
	question := strings.TrimSpace(input.Question)
	answer := strings.TrimSpace(input.Answer)

	if question == "" {
		return Entry{}, fmt.Errorf("%w: Question is required", ErrInvalidInput)
	}
	if answer == "" {
		return Entry{}, fmt.Errorf("%w: Answer is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Category) == "" {
		return Entry{}, fmt.Errorf("%w: Category is required", ErrInvalidInput)
	}
	category, err := ParseCategory(input.Category)
	if err != nil {
		return Entry{}, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	entry := Entry{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    answer,
		Category:  category,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.Repo.Create(ctx, entry)
}

// List returns all entries, newest first.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.Repo.List(ctx)
}

// ListByCategory validates the category and returns its entries, newest
// first.
func (s *Service) ListByCategory(ctx context.Context, raw string) ([]Entry, error) {
	category, err := ParseCategory(raw)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByCategory(ctx, category)
}

// Get returns an entry by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies a partial field update. The category, when supplied, is
// validated against the vocabulary before the existence check so that
// invalid input never reaches the store. ErrNotFound is returned when the
// id does not resolve; updatedAt is refreshed on every successful update.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Entry, error) {
	var category Category
	if input.Category != nil {
		parsed, err := ParseCategory(*input.Category)
		if err != nil {
			return Entry{}, err
		}
		category = parsed
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Entry{}, err
	}

	if input.Question != nil {
		existing.Question = strings.TrimSpace(*input.Question)
	}
	if input.Answer != nil {
		existing.Answer = strings.TrimSpace(*input.Answer)
	}
	if input.Category != nil {
		existing.Category = category
	}
	if input.Tags != nil {
		existing.Tags = input.Tags
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.Repo.Update(ctx, existing)
}

// Delete removes an entry, reporting whether it existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
