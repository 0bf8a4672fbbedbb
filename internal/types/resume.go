// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// EducationType enumerates the supported levels of schooling.
type EducationType string

// Supported education levels
const (
	EducationHighSchool    EducationType = "High School"
	EducationUndergraduate EducationType = "Undergraduate"
	EducationGraduate      EducationType = "Graduate"
	EducationDoctoral      EducationType = "Doctoral Studies"
)

// PersonalInfo holds the contact block rendered at the top of every resume
type PersonalInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// Education represents a single schooling entry. Entries with an empty School
// are dropped at assembly time rather than rejected here.
type Education struct {
	School  string        `json:"school"`
	Type    EducationType `json:"type"`
	GPA     *float64      `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	GPAMax  float64       `json:"gpa_max"`
	Address string        `json:"address,omitempty"`
	City    string        `json:"city,omitempty"`
	State   string        `json:"state,omitempty"`
	Zip     string        `json:"zip,omitempty"`
}

// Experience represents a single job entry. EndDate is meaningful only when
// Current is false.
type Experience struct {
	JobTitle    string   `json:"job_title"`
	Employer    string   `json:"employer"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	Current     bool     `json:"current"`
	EndDate     string   `json:"end_date,omitempty"`
	Description []string `json:"description"`
}

// Activity represents an extracurricular or leadership entry
type Activity struct {
	Position     string   `json:"position"`
	ActivityName string   `json:"activity_name"`
	StartDate    string   `json:"start_date"`
	Current      bool     `json:"current"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  []string `json:"description"`
}

// ResumeDocument is the root aggregate built once per generation run.
// It is passed by value between pipeline stages; stages that transform it
// return a new copy rather than mutating shared state.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo `json:"personal_info"`
	Bio            string       `json:"bio,omitempty"`
	Education      []Education  `json:"education,omitempty" validate:"dive"`
	Experience     []Experience `json:"experience,omitempty"`
	Activities     []Activity   `json:"activities,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
	Coursework     []string     `json:"coursework,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	Interests      []string     `json:"interests,omitempty"`
	Accolades      []string     `json:"accolades,omitempty"`
}

// validate is the shared validator instance for struct-tag validation
var validate = validator.New(validator.WithRequiredStructEnabled())

// FormatPhoneNumber normalizes a raw phone string to +<countrycode><digits>.
// A raw value with exactly 10 digits is assumed to be a US number and gets
// country code 1 prefixed.
func FormatPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) == 10 {
		d = "1" + d
	}
	return "+" + d
}

// Normalized returns a copy of the document with the phone number in
// +<countrycode><digits> form.
func (d ResumeDocument) Normalized() ResumeDocument {
	d.PersonalInfo.Phone = FormatPhoneNumber(d.PersonalInfo.Phone)
	return d
}

// Validate checks the fatal preconditions of a generation run: contact info
// present and well-formed, plus at least one complete experience entry.
// It is called before any external service is invoked.
func (d ResumeDocument) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if ok := errors.As(err, &verrs); ok && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return &PreconditionError{Message: "invalid resume data: " + strings.Join(fields, ", ")}
		}
		return &PreconditionError{Message: "invalid resume data", Cause: err}
	}

	if !hasCompleteExperience(d.Experience) {
		return &PreconditionError{
			Message: "at least one experience entry with title, employer, location and description is required",
		}
	}
	return nil
}

func hasCompleteExperience(entries []Experience) bool {
	for _, e := range entries {
		if e.JobTitle == "" || e.Employer == "" || e.Location == "" {
			continue
		}
		for _, line := range e.Description {
			if strings.TrimSpace(line) != "" {
				return true
			}
		}
	}
	return false
}

// AlphanumericName reduces a person's name to the alphanumeric-only token used
// in generated filenames.
func AlphanumericName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
