package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ryannerby/jobnest/internal/job"
)

func TestCSV_RoundTrip(t *testing.T) {
	original := []job.Job{
		{
			ID: 2, Company: "Acme, Inc", Title: `Senior "Go" Engineer`, Status: job.StatusApplied,
			ApplicationDate: "2025-03-14", Deadline: "ASAP", Location: "Berlin",
			Link: "https://example.com/jobs/2", Notes: "spoke with Dana, waiting",
			CoverLetter: "Dear team,\nI am excited to apply.",
			CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{ID: 1, Company: "Globex", Title: "Analyst", Status: job.StatusWishlist},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, original, nil); err != nil {
		t.Fatalf("export: %v", err)
	}

	imported, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("expected 2 records, got %d", len(imported))
	}

	got := imported[0]
	want := original[0]
	if got.Company != want.Company || got.Title != want.Title || got.Status != want.Status {
		t.Errorf("required fields lost: %+v", got)
	}
	if got.ApplicationDate != want.ApplicationDate || got.Deadline != want.Deadline ||
		got.Location != want.Location || got.Link != want.Link || got.Notes != want.Notes {
		t.Errorf("optional fields lost: %+v", got)
	}
	if got.CoverLetter != want.CoverLetter {
		t.Errorf("cover letter with newline lost: %q", got.CoverLetter)
	}
}

func TestExportCSV_SelectedSubset(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Company: "Acme", Title: "Engineer", Status: job.StatusApplied},
		{ID: 2, Company: "Globex", Title: "Analyst", Status: job.StatusWishlist},
		{ID: 3, Company: "Initech", Title: "SRE", Status: job.StatusOffer},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, jobs, []int64{1, 3}); err != nil {
		t.Fatalf("export: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Globex") {
		t.Error("unselected record exported")
	}
	if !strings.Contains(out, "Acme") || !strings.Contains(out, "Initech") {
		t.Error("selected records missing")
	}
}

func TestExportCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil, nil); err != ErrNoJobs {
		t.Errorf("expected ErrNoJobs, got %v", err)
	}
	if err := ExportCSV(&buf, []job.Job{{ID: 1}}, []int64{99}); err != ErrNoJobs {
		t.Errorf("expected ErrNoJobs for empty selection, got %v", err)
	}
}

func TestImportCSV_HeaderMapping(t *testing.T) {
	// Case-insensitive headers, underscore variant, unknown column ignored.
	input := "company,TITLE,application_date,Favorite Color,status\n" +
		"Acme,Engineer,2025-01-02,blue,applied\n"

	jobs, err := ImportCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(jobs))
	}
	j := jobs[0]
	if j.Company != "Acme" || j.Title != "Engineer" || j.ApplicationDate != "2025-01-02" || j.Status != job.StatusApplied {
		t.Errorf("unexpected record: %+v", j)
	}
}

func TestImportCSV_QuotedCommas(t *testing.T) {
	input := "Company,Title,Notes\n" +
		`"Acme, Inc","Engineer, Backend","called, no answer"` + "\n"

	jobs, err := ImportCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	j := jobs[0]
	if j.Company != "Acme, Inc" || j.Title != "Engineer, Backend" || j.Notes != "called, no answer" {
		t.Errorf("quoted commas mishandled: %+v", j)
	}
}

func TestImportCSV_DoesNotValidate(t *testing.T) {
	// Import produces candidate records; validation is the caller's job.
	input := "Company,Title,Status\n,,bogus\n"

	jobs, err := ImportCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected the invalid row to come through, got %d records", len(jobs))
	}
	if appErr := job.Validate(&jobs[0]); appErr == nil {
		t.Error("expected downstream validation to reject the row")
	}
}
