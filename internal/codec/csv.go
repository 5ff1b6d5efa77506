// Package codec serializes the job collection for export and parses imports
// back into job-shaped records. It operates purely on in-memory collections,
// orthogonal to the CRUD path. Imported records are not validated here; the
// caller runs them through the validation layer before persistence.
package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ryannerby/jobnest/internal/job"
)

var ErrNoJobs = errors.New("no jobs to export")

var csvHeader = []string{
	"ID", "Company", "Title", "Status", "Application Date", "Deadline",
	"Location", "Link", "Notes", "Cover Letter", "Created At",
}

// ExportCSV writes a header row plus one row per record. When selected is
// non-nil only records with those ids are written. Quoting follows standard
// CSV conventions (embedded quotes doubled).
func ExportCSV(w io.Writer, jobs []job.Job, selected []int64) error {
	toExport := jobs
	if selected != nil {
		keep := make(map[int64]bool, len(selected))
		for _, id := range selected {
			keep[id] = true
		}
		toExport = nil
		for _, j := range jobs {
			if keep[j.ID] {
				toExport = append(toExport, j)
			}
		}
	}
	if len(toExport) == 0 {
		return ErrNoJobs
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, j := range toExport {
		created := ""
		if !j.CreatedAt.IsZero() {
			created = j.CreatedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			strconv.FormatInt(j.ID, 10),
			j.Company, j.Title, string(j.Status),
			j.ApplicationDate, j.Deadline, j.Location, j.Link,
			j.Notes, j.CoverLetter, created,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses a CSV honoring quoted commas. Header names map
// case-insensitively to known field names (spaces and underscores are
// interchangeable); unrecognized headers are ignored. One candidate record
// per data row.
func ImportCSV(r io.Reader) ([]job.Job, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = normalizeHeader(h)
	}

	var jobs []job.Job
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		var j job.Job
		for i, value := range row {
			if i >= len(fields) {
				break
			}
			setField(&j, fields[i], strings.TrimSpace(value))
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

func setField(j *job.Job, field, value string) {
	switch field {
	case "id":
		j.ID, _ = strconv.ParseInt(value, 10, 64)
	case "company":
		j.Company = value
	case "title":
		j.Title = value
	case "status":
		j.Status = job.Status(value)
	case "application_date":
		j.ApplicationDate = value
	case "deadline":
		j.Deadline = value
	case "location":
		j.Location = value
	case "link":
		j.Link = value
	case "notes":
		j.Notes = value
	case "cover_letter":
		j.CoverLetter = value
	case "created_at":
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			j.CreatedAt = t
		}
	}
}
