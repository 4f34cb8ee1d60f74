package resumes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParsedResume is the fully-defaulted structured shape reconciled from raw
// model output. Every field is type-correct regardless of what the model
// actually returned; downstream consumers never see a missing or
// wrong-typed field.
type ParsedResume struct {
	Name       *string
	Email      *string
	Phone      *string
	Skills     []string
	Experience []ExperienceEntry
	Education  []EducationEntry
	FullText   string
}

// ParseError means the model output could not be interpreted as JSON. Raw
// retains the original output for operator diagnosis; it is never sent to
// clients.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse resume: model returned invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Normalize turns raw model output into a ParsedResume. The model is asked
// for pure JSON but may wrap it in markdown fences or omit fields; both are
// tolerated. A response that is not JSON at all is fatal and yields a
// *ParseError carrying the raw text.
func Normalize(raw string) (ParsedResume, error) {
	cleaned := stripFences(strings.TrimSpace(raw))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return ParsedResume{}, &ParseError{Raw: raw, Err: err}
	}

	return ParsedResume{
		Name:       optionalString(fields["name"]),
		Email:      optionalString(fields["email"]),
		Phone:      optionalString(fields["phone"]),
		Skills:     stringList(fields["skills"]),
		Experience: entryList[ExperienceEntry](fields["experience"]),
		Education:  entryList[EducationEntry](fields["education"]),
		FullText:   stringOrEmpty(fields["fullText"]),
	}, nil
}

// stripFences removes a leading markdown code fence (with or without a
// language tag) and a trailing fence, if present. The payload may start on
// the fence line itself; only a genuine language tag is consumed with it.
func stripFences(s string) string {
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		if idx := strings.IndexByte(s, '\n'); idx >= 0 && isFenceTag(s[:idx]) {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "json")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// isFenceTag reports whether the text between the fence marker and the end
// of its line is nothing but a language tag.
func isFenceTag(line string) bool {
	for _, r := range strings.TrimSpace(line) {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

func optionalString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var val *string
	if err := json.Unmarshal(raw, &val); err != nil {
		return nil
	}
	return val
}

func stringOrEmpty(raw json.RawMessage) string {
	if val := optionalString(raw); val != nil {
		return *val
	}
	return ""
}

// stringList coerces a JSON value to a list of strings. A missing, null, or
// non-list value yields an empty list; non-string elements are dropped.
func stringList(raw json.RawMessage) []string {
	out := []string{}
	var elems []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elems) != nil {
		return out
	}
	for _, elem := range elems {
		// Unmarshal through a pointer: a literal null "succeeds" into a
		// plain string without touching it, which would keep the element.
		var s *string
		if err := json.Unmarshal(elem, &s); err == nil && s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// entryList coerces a JSON value to a list of typed entries. A missing,
// null, or non-list value yields an empty list; malformed elements inside a
// well-formed list are dropped rather than failing the whole parse.
func entryList[T any](raw json.RawMessage) []T {
	out := []T{}
	var elems []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elems) != nil {
		return out
	}
	for _, elem := range elems {
		// Pointer target for the same reason as stringList: null elements
		// must be dropped, not kept as zero values.
		var entry *T
		if err := json.Unmarshal(elem, &entry); err == nil && entry != nil {
			out = append(out, *entry)
		}
	}
	return out
}
