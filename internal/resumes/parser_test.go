package resumes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedJSON = `{
  "name": "Ada Lovelace",
  "email": "ada@example.com",
  "phone": "+1 555 0100",
  "skills": ["Go", "SQL", "Communication"],
  "experience": [
    {
      "title": "Backend Engineer",
      "company": "Analytical Engines Ltd",
      "startDate": "2021-03",
      "endDate": null,
      "highlights": ["Shipped the parser", "Cut latency 40%"]
    }
  ],
  "education": [
    {
      "degree": "BSc Mathematics",
      "school": "University of London",
      "graduationDate": "2019",
      "gpa": "3.9"
    }
  ],
  "fullText": "Ada Lovelace. Backend Engineer..."
}`

func TestNormalizeWellFormed(t *testing.T) {
	parsed, err := Normalize(wellFormedJSON)
	require.NoError(t, err)

	require.NotNil(t, parsed.Name)
	assert.Equal(t, "Ada Lovelace", *parsed.Name)
	require.NotNil(t, parsed.Email)
	assert.Equal(t, "ada@example.com", *parsed.Email)
	assert.Equal(t, []string{"Go", "SQL", "Communication"}, parsed.Skills)

	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, "Backend Engineer", parsed.Experience[0].Title)
	assert.Nil(t, parsed.Experience[0].EndDate, "null endDate means current job")
	assert.Equal(t, []string{"Shipped the parser", "Cut latency 40%"}, parsed.Experience[0].Highlights)

	require.Len(t, parsed.Education, 1)
	require.NotNil(t, parsed.Education[0].GPA)
	assert.Equal(t, "3.9", *parsed.Education[0].GPA)

	assert.Equal(t, "Ada Lovelace. Backend Engineer...", parsed.FullText)
}

func TestNormalizeStripsMarkdownFences(t *testing.T) {
	variants := map[string]string{
		"no fences":             wellFormedJSON,
		"bare fences":           "```\n" + wellFormedJSON + "\n```",
		"json language tag":     "```json\n" + wellFormedJSON + "\n```",
		"other language tag":    "```javascript\n" + wellFormedJSON + "\n```",
		"leading whitespace":    "\n\n  ```json\n" + wellFormedJSON + "\n```  \n",
		"fence without close":   "```json\n" + wellFormedJSON,
		"payload on fence line": "```json" + wellFormedJSON + "```",
		"bare fence on payload": "```" + wellFormedJSON + "```",
	}

	want, err := Normalize(wellFormedJSON)
	require.NoError(t, err)

	for name, input := range variants {
		t.Run(name, func(t *testing.T) {
			got, err := Normalize(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalizeDefaultsMissingFields(t *testing.T) {
	parsed, err := Normalize(`{"fullText": "just text"}`)
	require.NoError(t, err)

	assert.Nil(t, parsed.Name)
	assert.Nil(t, parsed.Email)
	assert.Nil(t, parsed.Phone)
	assert.Equal(t, []string{}, parsed.Skills)
	assert.Equal(t, []ExperienceEntry{}, parsed.Experience)
	assert.Equal(t, []EducationEntry{}, parsed.Education)
	assert.Equal(t, "just text", parsed.FullText)
}

func TestNormalizeCoercesMalformedFieldTypes(t *testing.T) {
	cases := map[string]string{
		"skills absent":     `{}`,
		"skills null":       `{"skills": null}`,
		"skills is string":  `{"skills": "Go, SQL"}`,
		"skills is object":  `{"skills": {"primary": "Go"}}`,
		"skills is number":  `{"skills": 7}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			parsed, err := Normalize(input)
			require.NoError(t, err)
			assert.Equal(t, []string{}, parsed.Skills)
		})
	}

	parsed, err := Normalize(`{"experience": "ten years", "education": 3, "fullText": 42}`)
	require.NoError(t, err)
	assert.Equal(t, []ExperienceEntry{}, parsed.Experience)
	assert.Equal(t, []EducationEntry{}, parsed.Education)
	assert.Equal(t, "", parsed.FullText)
}

func TestNormalizeDropsMalformedListElements(t *testing.T) {
	parsed, err := Normalize(`{
		"skills": ["Go", 1, null, "SQL"],
		"experience": [
			null,
			{"title": "Engineer", "company": "Acme", "startDate": "2020", "endDate": null, "highlights": []},
			"not an object"
		],
		"education": [null]
	}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "SQL"}, parsed.Skills)
	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, "Engineer", parsed.Experience[0].Title)
	assert.Equal(t, []EducationEntry{}, parsed.Education, "null elements must not become zero-valued entries")
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	raw := "I could not find a resume in this document, sorry!"

	_, err := Normalize(raw)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, raw, parseErr.Raw, "original output retained for diagnostics")
}
