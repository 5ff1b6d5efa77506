// Package ai extracts structured job data from free-text postings and
// generates tailored application material. Extraction has two
// interchangeable strategies behind one interface: a best-effort heuristic
// and a delegated call to an external language model.
package ai

import "context"

// Extraction is the structured data pulled out of a job posting. Missing
// information stays empty; extractors never guess.
type Extraction struct {
	Company          string `json:"company,omitempty"`
	Title            string `json:"title,omitempty"`
	Location         string `json:"location,omitempty"`
	Salary           string `json:"salary,omitempty"`
	JobType          string `json:"job_type,omitempty"`
	Deadline         string `json:"deadline,omitempty"`
	HiringManager    string `json:"hiring_manager,omitempty"`
	Requirements     string `json:"requirements,omitempty"`
	Benefits         string `json:"benefits,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

type Extractor interface {
	Extract(ctx context.Context, description string) (*Extraction, error)
}
