package ai

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Label prefixes scanned line by line. First match wins per field.
var fieldLabels = map[string][]string{
	"company":        {"company:", "organization:"},
	"title":          {"position:", "title:", "role:"},
	"location":       {"location:", "based in:"},
	"salary":         {"salary:", "compensation:"},
	"job_type":       {"job type:", "employment type:"},
	"deadline":       {"deadline:", "apply by:", "application deadline:"},
	"hiring_manager": {"hiring manager:", "contact:", "recruiter:"},
}

var (
	salaryPattern  = regexp.MustCompile(`\$\d[\d,]*(?:k|K)?(?:\s*[-–]\s*\$?\d[\d,]*(?:k|K)?)?(?:\s*(?:per|/)\s*(?:year|yr|hour|hr|annum))?`)
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	jobTypeKeyword = regexp.MustCompile(`(?i)\b(full[- ]time|part[- ]time|contract|internship|temporary|freelance)\b`)
)

// Section headings that open a requirements or benefits block.
var (
	requirementHeadings = []string{"requirements", "qualifications", "what you'll need", "what we're looking for"}
	benefitHeadings     = []string{"benefits", "perks", "what we offer"}
)

// HeuristicExtractor is the best-effort fallback strategy: label scanning
// and small regexes over the plain text of a posting. Postings pasted from
// web pages often carry markup, so input is stripped of HTML first.
type HeuristicExtractor struct {
	sanitizer *bluemonday.Policy
}

func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{sanitizer: bluemonday.StrictPolicy()}
}

func (e *HeuristicExtractor) Extract(_ context.Context, description string) (*Extraction, error) {
	text := html.UnescapeString(e.sanitizer.Sanitize(description))
	lines := splitLines(text)

	out := &Extraction{}
	for _, line := range lines {
		lower := strings.ToLower(line)
		setLabeled(out, line, lower)
	}

	if out.Salary == "" {
		out.Salary = salaryPattern.FindString(text)
	}
	if out.JobType == "" {
		out.JobType = jobTypeKeyword.FindString(text)
	}
	if out.HiringManager == "" {
		out.HiringManager = emailPattern.FindString(text)
	}
	out.Requirements = section(lines, requirementHeadings)
	out.Benefits = section(lines, benefitHeadings)

	return out, nil
}

func setLabeled(out *Extraction, line, lower string) {
	for field, prefixes := range fieldLabels {
		for _, prefix := range prefixes {
			idx := strings.Index(lower, prefix)
			if idx < 0 {
				continue
			}
			value := strings.TrimSpace(line[idx+len(prefix):])
			if value == "" {
				continue
			}
			switch field {
			case "company":
				if out.Company == "" {
					out.Company = value
				}
			case "title":
				if out.Title == "" {
					out.Title = value
				}
			case "location":
				if out.Location == "" {
					out.Location = value
				}
			case "salary":
				if out.Salary == "" {
					out.Salary = value
				}
			case "job_type":
				if out.JobType == "" {
					out.JobType = value
				}
			case "deadline":
				if out.Deadline == "" {
					out.Deadline = value
				}
			case "hiring_manager":
				if out.HiringManager == "" {
					out.HiringManager = value
				}
			}
		}
	}
}

// section collects the lines following a matching heading, up to the next
// heading-looking line, joined with newlines. Capped to keep extractions
// inside the record's field limits.
func section(lines []string, headings []string) string {
	const maxLines = 15

	start := -1
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimRight(line, ":"))
		for _, h := range headings {
			if lower == h || strings.HasPrefix(lower, h+" ") {
				start = i + 1
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return ""
	}

	var body []string
	for _, line := range lines[start:] {
		if looksLikeHeading(line) || len(body) >= maxLines {
			break
		}
		body = append(body, line)
	}
	return strings.Join(body, "\n")
}

func looksLikeHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasSuffix(trimmed, ":") && !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "•") {
		return len(strings.Fields(trimmed)) <= 5
	}
	return false
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
