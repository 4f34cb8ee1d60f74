package llm

import _ "embed"

var (
	//go:embed prompts/resume_system.txt
	resumeSystemPrompt string
	//go:embed prompts/resume_parse.txt
	resumeParsePrompt string
)

// ResumeSystemPrompt returns the system instruction for resume extraction.
func ResumeSystemPrompt() string {
	return resumeSystemPrompt
}

// ResumeParsePrompt returns the task prompt describing the expected JSON shape.
func ResumeParsePrompt() string {
	return resumeParsePrompt
}
