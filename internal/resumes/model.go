package resumes

import "time"

// ExperienceEntry is one job in the parsed work history.
type ExperienceEntry struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	StartDate  string   `json:"startDate"`
	EndDate    *string  `json:"endDate"` // nil means current position
	Highlights []string `json:"highlights"`
}

// EducationEntry is one entry in the parsed education history.
type EducationEntry struct {
	Degree         string  `json:"degree"`
	School         string  `json:"school"`
	GraduationDate string  `json:"graduationDate"`
	GPA            *string `json:"gpa,omitempty"`
}

// Resume is the durable record for one uploaded document. FullText is always
// populated from the extraction output, even when the structured fields are
// empty.
type Resume struct {
	ID         string
	FullText   string
	Name       *string
	Email      *string
	Phone      *string
	Skills     []string
	Experience []ExperienceEntry
	Education  []EducationEntry
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
