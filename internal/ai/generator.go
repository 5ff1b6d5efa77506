package ai

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/tmc/langchaingo/llms"

	"github.com/ryannerby/jobnest/internal/apperror"
)

// GenerateRequest is the payload for cover-letter and resume-tailoring
// generation.
type GenerateRequest struct {
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	JobDescription string `json:"jobDescription"`
	Resume         string `json:"resume"`
}

// Validate trims and applies every rule independently, reporting all
// violations together.
func (r *GenerateRequest) Validate() *apperror.AppError {
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.Company = strings.TrimSpace(r.Company)
	r.JobDescription = strings.TrimSpace(r.JobDescription)
	r.Resume = strings.TrimSpace(r.Resume)

	var messages []string
	if r.JobTitle == "" {
		messages = append(messages, "Job title is required")
	} else if len(r.JobTitle) > 200 {
		messages = append(messages, "Job title cannot exceed 200 characters")
	}
	if r.Company == "" {
		messages = append(messages, "Company name is required")
	} else if len(r.Company) > 100 {
		messages = append(messages, "Company name cannot exceed 100 characters")
	}
	if len(r.JobDescription) > 5000 {
		messages = append(messages, "Job description cannot exceed 5000 characters")
	}
	if r.Resume == "" {
		messages = append(messages, "Resume is required")
	} else if len(r.Resume) < 10 {
		messages = append(messages, "Resume must be at least 10 characters long")
	} else if len(r.Resume) > 10000 {
		messages = append(messages, "Resume cannot exceed 10000 characters")
	}

	if len(messages) > 0 {
		return apperror.NewValidation(messages)
	}
	return nil
}

// Generator produces application material through an external language
// model. A nil model is allowed; generation then reports the service as
// unavailable instead of panicking at startup.
type Generator struct {
	model llms.Model
}

func NewGenerator(model llms.Model) *Generator {
	return &Generator{model: model}
}

func (g *Generator) CoverLetter(ctx context.Context, req GenerateRequest) (string, error) {
	return g.generate(ctx, coverLetterTemplate, req)
}

func (g *Generator) TailorResume(ctx context.Context, req GenerateRequest) (string, error) {
	return g.generate(ctx, tailorResumeTemplate, req)
}

func (g *Generator) generate(ctx context.Context, tmpl *template.Template, req GenerateRequest) (string, error) {
	if g.model == nil {
		return "", apperror.New(apperror.Internal, "text generation service is not configured")
	}

	var prompt strings.Builder
	if err := tmpl.Execute(&prompt, req); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	reply, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt.String())
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
