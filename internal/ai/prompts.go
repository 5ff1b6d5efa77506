package ai

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/extract_job.md
var extractJobPromptRaw string

//go:embed prompts/cover_letter.md
var coverLetterPromptRaw string

//go:embed prompts/tailor_resume.md
var tailorResumePromptRaw string

// Prompt templates are parsed once at package init and reused on every call.
var (
	extractJobTemplate   = template.Must(template.New("extract_job").Parse(extractJobPromptRaw))
	coverLetterTemplate  = template.Must(template.New("cover_letter").Parse(coverLetterPromptRaw))
	tailorResumeTemplate = template.Must(template.New("tailor_resume").Parse(tailorResumePromptRaw))
)
