package ai

import (
	"context"
	"strings"
	"testing"
)

func TestHeuristicExtract_Labels(t *testing.T) {
	description := `Company: Acme Corp
Position: Backend Engineer
Location: Berlin, Germany
Salary: $120,000 - $140,000 per year
Job Type: Full-time
Application Deadline: 2025-07-31
Hiring Manager: Dana Reyes

We build infrastructure for payments.`

	got, err := NewHeuristicExtractor().Extract(context.Background(), description)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if got.Company != "Acme Corp" {
		t.Errorf("company: %q", got.Company)
	}
	if got.Title != "Backend Engineer" {
		t.Errorf("title: %q", got.Title)
	}
	if got.Location != "Berlin, Germany" {
		t.Errorf("location: %q", got.Location)
	}
	if got.Salary != "$120,000 - $140,000 per year" {
		t.Errorf("salary: %q", got.Salary)
	}
	if got.JobType != "Full-time" {
		t.Errorf("job type: %q", got.JobType)
	}
	if got.Deadline != "2025-07-31" {
		t.Errorf("deadline: %q", got.Deadline)
	}
	if got.HiringManager != "Dana Reyes" {
		t.Errorf("hiring manager: %q", got.HiringManager)
	}
}

func TestHeuristicExtract_StripsHTML(t *testing.T) {
	description := `<div><b>Company:</b> Acme &amp; Sons</div>
<p>Location: Remote</p>
<script>alert("x")</script>`

	got, err := NewHeuristicExtractor().Extract(context.Background(), description)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if got.Company != "Acme & Sons" {
		t.Errorf("expected entity-decoded company, got %q", got.Company)
	}
	if got.Location != "Remote" {
		t.Errorf("location: %q", got.Location)
	}
}

func TestHeuristicExtract_RegexFallbacks(t *testing.T) {
	description := `Join our team as a contract engineer.
We pay $95,000 per year and you can reach us at jobs@acme.example.com.`

	got, err := NewHeuristicExtractor().Extract(context.Background(), description)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if !strings.HasPrefix(got.Salary, "$95,000") {
		t.Errorf("salary: %q", got.Salary)
	}
	if got.HiringManager != "jobs@acme.example.com" {
		t.Errorf("contact email: %q", got.HiringManager)
	}
	if !strings.EqualFold(got.JobType, "contract") {
		t.Errorf("job type: %q", got.JobType)
	}
}

func TestHeuristicExtract_Sections(t *testing.T) {
	description := `About the role.

Requirements:
- 5 years of Go
- Production SQL experience

Benefits:
- Remote-first
- Learning budget

How to apply:
Send us an email.`

	got, err := NewHeuristicExtractor().Extract(context.Background(), description)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if !strings.Contains(got.Requirements, "5 years of Go") ||
		!strings.Contains(got.Requirements, "Production SQL experience") {
		t.Errorf("requirements: %q", got.Requirements)
	}
	if strings.Contains(got.Requirements, "Remote-first") {
		t.Errorf("requirements leaked past next heading: %q", got.Requirements)
	}
	if !strings.Contains(got.Benefits, "Learning budget") {
		t.Errorf("benefits: %q", got.Benefits)
	}
	if strings.Contains(got.Benefits, "Send us an email") {
		t.Errorf("benefits leaked past next heading: %q", got.Benefits)
	}
}

func TestHeuristicExtract_EmptyInput(t *testing.T) {
	got, err := NewHeuristicExtractor().Extract(context.Background(), "")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if *got != (Extraction{}) {
		t.Errorf("expected empty extraction, got %+v", got)
	}
}
