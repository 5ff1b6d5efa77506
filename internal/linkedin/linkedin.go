// Package linkedin is a synthetic job-search provider. It is not a real
// integration: every search returns generated postings in a fixed shape,
// suitable for import into the tracker.
package linkedin

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ryannerby/jobnest/internal/apperror"
)

const resultCount = 25

type Posting struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PostedDate  time.Time `json:"postedDate"`
}

type SearchResult struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Jobs       []Posting `json:"jobs"`
	SearchTerm string    `json:"searchTerm"`
	Location   string    `json:"location,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

var companies = []string{
	"Tech Corp", "Innovation Labs", "Digital Solutions Inc", "StartupXYZ", "Enterprise Solutions",
	"Global Tech", "Future Systems", "Cloud Dynamics", "DataFlow Inc", "Smart Solutions",
	"NextGen Tech", "Digital Ventures", "Tech Pioneers", "Innovation Hub", "Future Forward",
	"Tech Masters", "Digital Experts", "Innovation Partners", "Tech Leaders", "Digital Innovators",
	"Future Tech", "Smart Systems", "Cloud Solutions", "Data Tech", "Innovation Systems",
}

var titleFormats = []string{
	"%s Developer", "Senior %s Engineer", "%s Specialist", "Full Stack %s Developer",
	"%s Team Lead", "Lead %s Engineer", "%s Architect", "Principal %s Developer",
	"%s Consultant", "Senior %s Specialist", "%s Manager", "Staff %s Engineer",
	"%s Tech Lead", "Senior %s Architect", "%s Platform Engineer", "Lead %s Specialist",
	"%s Solutions Engineer", "Senior %s Consultant", "%s Engineering Manager",
	"Principal %s Engineer", "%s Infrastructure Engineer", "Senior %s Platform Engineer",
	"%s DevOps Engineer", "Lead %s Architect", "%s Systems Engineer",
}

var defaultLocations = []string{
	"San Francisco, CA", "New York, NY", "Remote", "Austin, TX", "Seattle, WA",
	"Boston, MA", "Chicago, IL", "Denver, CO", "Los Angeles, CA", "Miami, FL",
	"Portland, OR", "Nashville, TN", "Atlanta, GA", "Dallas, TX", "Phoenix, AZ",
	"Las Vegas, NV", "Salt Lake City, UT", "Minneapolis, MN", "Detroit, MI",
	"Philadelphia, PA", "Washington, DC", "Baltimore, MD", "Pittsburgh, PA",
	"Cleveland, OH", "Cincinnati, OH",
}

var descriptionFormats = []string{
	"We are looking for a talented %s developer to join our team. You will be responsible for developing and maintaining web applications using modern technologies.",
	"Join our engineering team as a Senior %s Engineer. You'll work on cutting-edge projects and mentor junior developers.",
	"Remote opportunity for a %s specialist. Flexible hours, competitive salary, and great benefits.",
	"Fast-growing startup seeking a Full Stack %s developer. Equity options available.",
	"Lead a team of %s developers in building scalable applications. Management experience required.",
	"Exciting opportunity for a %s professional to work on innovative projects in a collaborative environment.",
	"Join our dynamic team as a %s expert and help shape the future of technology.",
	"We're seeking a passionate %s developer to build amazing user experiences.",
	"Help us revolutionize the industry as a %s specialist in our growing team.",
	"Join our mission to build the next generation of %s solutions.",
	"We're looking for a %s professional who loves solving complex problems.",
	"Be part of our journey to create innovative %s applications that make a difference.",
	"Join our collaborative team of %s experts working on cutting-edge technology.",
	"We're seeking a %s developer who is passionate about clean code and best practices.",
	"Help us build scalable %s solutions that serve millions of users worldwide.",
	"Join our fast-paced team as a %s specialist and grow your career with us.",
	"We're looking for a %s professional to help us build amazing products.",
	"Be part of our innovative team working on next-generation %s technologies.",
	"Join our mission to create exceptional %s experiences for our users.",
	"We're seeking a %s developer who thrives in a collaborative environment.",
	"Help us build the future of %s development with cutting-edge tools and technologies.",
	"Join our team of %s experts and work on projects that matter.",
	"We're looking for a %s specialist to help us scale our platform.",
	"Be part of our journey to revolutionize %s development practices.",
	"Join our innovative team working on exciting %s projects.",
}

// Provider generates synthetic search results. The clock and random source
// are injectable for deterministic tests.
type Provider struct {
	now  func() time.Time
	rand *rand.Rand
}

func NewProvider() *Provider {
	return &Provider{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Search returns 25 synthetic postings for the term. The search term is
// required; location, when given, overrides every posting's location.
func (p *Provider) Search(searchTerm, location string) (*SearchResult, error) {
	searchTerm = strings.TrimSpace(searchTerm)
	if searchTerm == "" {
		return nil, apperror.New(apperror.BadRequest, "Search term is required and must be a non-empty string")
	}
	location = strings.TrimSpace(location)

	now := p.now()
	jobs := make([]Posting, 0, resultCount)
	for i := 1; i <= resultCount; i++ {
		idx := (i - 1) % resultCount
		loc := defaultLocations[idx%len(defaultLocations)]
		if location != "" {
			loc = location
		}
		jobs = append(jobs, Posting{
			ID:          "linkedin_" + uuid.NewString(),
			Title:       fmt.Sprintf(titleFormats[idx%len(titleFormats)], searchTerm),
			Company:     companies[idx%len(companies)],
			Location:    loc,
			Link:        fmt.Sprintf("https://linkedin.com/jobs/view/%d", 123456+i),
			Description: fmt.Sprintf(descriptionFormats[idx%len(descriptionFormats)], searchTerm),
			// Posted some time within the last 7 days.
			PostedDate: now.Add(-time.Duration(p.rand.Int63n(int64(7 * 24 * time.Hour)))),
		})
	}

	return &SearchResult{
		Success:    true,
		Message:    fmt.Sprintf("Found %d jobs for %q", len(jobs), searchTerm),
		Jobs:       jobs,
		SearchTerm: searchTerm,
		Location:   location,
		Timestamp:  now,
	}, nil
}
