package qabank

import "time"

// EntryResponse is the outward-facing representation of a Q&A entry.
type EntryResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  Category  `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(entry Entry) EntryResponse {
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	return EntryResponse{
		ID:        entry.ID,
		Question:  entry.Question,
		Answer:    entry.Answer,
		Category:  entry.Category,
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func toResponseList(list []Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(list))
	for _, entry := range list {
		out = append(out, toResponse(entry))
	}
	return out
}
