package job

import "time"

type Status string

const (
	StatusWishlist  Status = "wishlist"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// Statuses lists every valid lifecycle label, in pipeline order.
var Statuses = []Status{StatusWishlist, StatusApplied, StatusInterview, StatusOffer, StatusRejected}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Job is one tracked job application. The store is the sole authority for
// ID, CreatedAt and UpdatedAt. ApplicationDate is an ISO calendar date;
// Deadline is free text and may hold values like "ASAP".
type Job struct {
	ID              int64     `json:"id"`
	Company         string    `json:"company" validate:"required,max=100"`
	Title           string    `json:"title" validate:"required,max=200"`
	Status          Status    `json:"status" validate:"required,oneof=wishlist applied interview offer rejected"`
	ApplicationDate string    `json:"application_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Deadline        string    `json:"deadline,omitempty" validate:"max=100"`
	Location        string    `json:"location,omitempty" validate:"max=100"`
	Link            string    `json:"link,omitempty" validate:"omitempty,url"`
	Notes           string    `json:"notes,omitempty" validate:"max=1000"`
	CoverLetter     string    `json:"cover_letter,omitempty" validate:"max=5000"`
	JobDescription  string    `json:"job_description,omitempty" validate:"max=10000"`
	HiringManager   string    `json:"hiring_manager,omitempty" validate:"max=100"`
	Salary          string    `json:"salary,omitempty" validate:"max=100"`
	JobType         string    `json:"job_type,omitempty" validate:"max=50"`
	Requirements    string    `json:"requirements,omitempty" validate:"max=5000"`
	Benefits        string    `json:"benefits,omitempty" validate:"max=5000"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
