package resumes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"applyai-backend/internal/llm"
)

// Service contains business logic for resumes. Extraction is delegated to
// the LLM client; this service owns normalization and persistence.
type Service struct {
	LLM  llm.Client
	Repo Repo
}

// UpdateInput carries a partial field update. Nil fields are left
// unchanged; supplying an empty slice clears the corresponding list.
type UpdateInput struct {
	Name       *string           `json:"name"`
	Email      *string           `json:"email"`
	Phone      *string           `json:"phone"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
}

// CreateFromPDF extracts the resume via the LLM, normalizes the output,
// and persists the result. A parse failure aborts the whole operation; no
// row is created.
func (s *Service) CreateFromPDF(ctx context.Context, pdfBase64 string) (Resume, error) {
	parsed, err := s.extract(ctx, pdfBase64)
	if err != nil {
		return Resume{}, err
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:         uuid.NewString(),
		FullText:   parsed.FullText,
		Name:       parsed.Name,
		Email:      parsed.Email,
		Phone:      parsed.Phone,
		Skills:     parsed.Skills,
		Experience: parsed.Experience,
		Education:  parsed.Education,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.Repo.Create(ctx, resume)
}

// List returns all resumes, newest first.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// Get returns a resume by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies a partial field update. Existence is checked before the
// write; ErrNotFound is returned when the id does not resolve.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Resume, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}

	if input.Name != nil {
		existing.Name = input.Name
	}
	if input.Email != nil {
		existing.Email = input.Email
	}
	if input.Phone != nil {
		existing.Phone = input.Phone
	}
	if input.Skills != nil {
		existing.Skills = input.Skills
	}
	if input.Experience != nil {
		existing.Experience = input.Experience
	}
	if input.Education != nil {
		existing.Education = input.Education
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.Repo.Update(ctx, existing)
}

// Reparse runs a fresh extraction against an existing resume, replacing
// all derived fields while preserving the identifier.
func (s *Service) Reparse(ctx context.Context, id string, pdfBase64 string) (Resume, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}

	parsed, err := s.extract(ctx, pdfBase64)
	if err != nil {
		return Resume{}, err
	}

	existing.FullText = parsed.FullText
	existing.Name = parsed.Name
	existing.Email = parsed.Email
	existing.Phone = parsed.Phone
	existing.Skills = parsed.Skills
	existing.Experience = parsed.Experience
	existing.Education = parsed.Education
	existing.UpdatedAt = time.Now().UTC()

	return s.Repo.Update(ctx, existing)
}

// Delete removes a resume, reporting whether it existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.Delete(ctx, id)
}

func (s *Service) extract(ctx context.Context, pdfBase64 string) (ParsedResume, error) {
	raw, err := s.LLM.ExtractResume(ctx, pdfBase64)
	if err != nil {
		return ParsedResume{}, err
	}
	return Normalize(raw)
}
