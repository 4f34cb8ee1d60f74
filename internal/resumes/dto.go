package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID         string            `json:"id"`
	FullText   string            `json:"fullText"`
	Name       *string           `json:"name"`
	Email      *string           `json:"email"`
	Phone      *string           `json:"phone"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	if resume.Experience == nil {
		resume.Experience = []ExperienceEntry{}
	}
	if resume.Education == nil {
		resume.Education = []EducationEntry{}
	}
	return ResumeResponse{
		ID:         resume.ID,
		FullText:   resume.FullText,
		Name:       resume.Name,
		Email:      resume.Email,
		Phone:      resume.Phone,
		Skills:     resume.Skills,
		Experience: resume.Experience,
		Education:  resume.Education,
		CreatedAt:  resume.CreatedAt,
		UpdatedAt:  resume.UpdatedAt,
	}
}

func toResponseList(list []Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(list))
	for _, resume := range list {
		out = append(out, toResponse(resume))
	}
	return out
}
