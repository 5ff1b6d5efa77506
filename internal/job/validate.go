package job

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ryannerby/jobnest/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate trims all string fields in place, then applies every rule
// independently and returns the full list of violations. A nil return means
// the record is ready for persistence.
func Validate(j *Job) *apperror.AppError {
	normalize(j)

	err := validate.Struct(j)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.New(apperror.Internal, err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, message(fe))
	}
	return apperror.NewValidation(messages)
}

func normalize(j *Job) {
	j.Company = strings.TrimSpace(j.Company)
	j.Title = strings.TrimSpace(j.Title)
	j.ApplicationDate = strings.TrimSpace(j.ApplicationDate)
	j.Deadline = strings.TrimSpace(j.Deadline)
	j.Location = strings.TrimSpace(j.Location)
	j.Link = strings.TrimSpace(j.Link)
	j.Notes = strings.TrimSpace(j.Notes)
	j.CoverLetter = strings.TrimSpace(j.CoverLetter)
	j.JobDescription = strings.TrimSpace(j.JobDescription)
	j.HiringManager = strings.TrimSpace(j.HiringManager)
	j.Salary = strings.TrimSpace(j.Salary)
	j.JobType = strings.TrimSpace(j.JobType)
	j.Requirements = strings.TrimSpace(j.Requirements)
	j.Benefits = strings.TrimSpace(j.Benefits)
}

// labels maps wire field names to the wording used in caller-facing messages.
var labels = map[string]string{
	"company":          "Company name",
	"title":            "Job title",
	"status":           "Status",
	"application_date": "Application date",
	"deadline":         "Deadline",
	"location":         "Location",
	"link":             "Link",
	"notes":            "Notes",
	"cover_letter":     "Cover letter",
	"job_description":  "Job description",
	"hiring_manager":   "Hiring manager",
	"salary":           "Salary",
	"job_type":         "Job type",
	"requirements":     "Requirements",
	"benefits":         "Benefits",
}

func message(fe validator.FieldError) string {
	label, ok := labels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
