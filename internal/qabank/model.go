package qabank

import (
	"fmt"
	"strings"
	"time"
)

// Category is the closed vocabulary for Q&A entries. Values outside the
// set are rejected at every construction and mutation boundary.
type Category string

const (
	CategoryBehavioral  Category = "behavioral"
	CategoryTechnical   Category = "technical"
	CategoryHR          Category = "hr"
	CategorySituational Category = "situational"
)

var categories = []Category{
	CategoryBehavioral,
	CategoryTechnical,
	CategoryHR,
	CategorySituational,
}

// Categories returns the valid category values.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether the category belongs to the fixed vocabulary.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory validates a raw string against the vocabulary. The error
// names the allowed set.
func ParseCategory(raw string) (Category, error) {
	cat := Category(raw)
	if !cat.Valid() {
		return "", fmt.Errorf("%w: Invalid category. Must be one of: %s", ErrInvalidInput, categoryList())
	}
	return cat, nil
}

func categoryList() string {
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = string(cat)
	}
	return strings.Join(names, ", ")
}

// Entry is one interview question/answer pair. The table also carries a
// reserved embedding column for semantic search; it is never populated or
// read by any operation here, so the model does not surface it.
type Entry struct {
	ID        string
	Question  string
	Answer    string
	Category  Category
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
