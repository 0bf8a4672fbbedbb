// Package ingestion converts the intake payload produced by the form layer
// into the normalized resume document the pipeline operates on.
package ingestion

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Payload is the wire format the form layer submits
type Payload struct {
	User      User      `json:"user"`
	Applicant Applicant `json:"applicant"`
	Resume    Resume    `json:"resume"`
}

// User carries the account-level identity fields
type User struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	SuiteEmail  string `json:"suiteEmail"`
	PhoneNumber string `json:"phoneNumber"`
}

// Applicant carries profile-level lists
type Applicant struct {
	Skillset  []string `json:"skillset"`
	Interests []string `json:"interests"`
}

// Resume carries the resume-specific content
type Resume struct {
	Biography      string            `json:"biography"`
	Education      []EducationItem   `json:"education"`
	Experience     []ExperienceItem  `json:"experience"`
	Activities     []ActivityItem    `json:"activities"`
	CourseWork     []string          `json:"courseWork"`
	Accolades      []string          `json:"accolades"`
	Certifications []CertificateItem `json:"certifications"`
}

// EducationItem is a schooling entry as submitted by the form
type EducationItem struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	GPA      string `json:"gpa,omitempty"`
	OfGPAMax string `json:"ofGPAMax,omitempty"`
}

// ExperienceItem is a job entry as submitted by the form
type ExperienceItem struct {
	Title       string   `json:"title"`
	Employer    string   `json:"employer"`
	Location    string   `json:"location"`
	Start       string   `json:"start"`
	End         string   `json:"end,omitempty"`
	Current     bool     `json:"current"`
	Description []string `json:"description,omitempty"`
}

// ActivityItem is an extracurricular entry as submitted by the form
type ActivityItem struct {
	Position    string   `json:"position"`
	Title       string   `json:"title"`
	Start       string   `json:"start"`
	End         string   `json:"end,omitempty"`
	Current     bool     `json:"current"`
	Description []string `json:"description,omitempty"`
}

// CertificateItem is a certification as submitted by the form
type CertificateItem struct {
	Title          string `json:"title"`
	CompletionYear string `json:"completionYear"`
}

// ParsePayload decodes an intake payload from JSON
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("failed to parse intake payload: %w", err)
	}
	return p, nil
}

// MapPayload converts an intake payload into a normalized ResumeDocument:
// name join, phone normalization, ISO-timestamp truncation, location split,
// and "Title (Year)" certification strings.
func MapPayload(p Payload) types.ResumeDocument {
	doc := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			Name:  strings.TrimSpace(p.User.FirstName + " " + p.User.LastName),
			Email: p.User.SuiteEmail,
			Phone: types.FormatPhoneNumber(p.User.PhoneNumber),
		},
		Bio:        p.Resume.Biography,
		Skills:     p.Applicant.Skillset,
		Interests:  p.Applicant.Interests,
		Coursework: p.Resume.CourseWork,
		Accolades:  p.Resume.Accolades,
	}

	for _, edu := range p.Resume.Education {
		city, state := splitLocation(edu.Location)
		entry := types.Education{
			School: edu.Name,
			Type:   types.EducationType(edu.Type),
			City:   city,
			State:  state,
			GPAMax: 4.0,
		}
		if gpa, err := strconv.ParseFloat(edu.GPA, 64); err == nil {
			entry.GPA = &gpa
		}
		if maxv, err := strconv.ParseFloat(edu.OfGPAMax, 64); err == nil {
			entry.GPAMax = maxv
		}
		doc.Education = append(doc.Education, entry)
	}

	for _, exp := range p.Resume.Experience {
		entry := types.Experience{
			JobTitle:    exp.Title,
			Employer:    exp.Employer,
			Location:    exp.Location,
			StartDate:   dateOnly(exp.Start),
			Current:     exp.Current,
			Description: exp.Description,
		}
		if !exp.Current {
			entry.EndDate = dateOnly(exp.End)
		}
		doc.Experience = append(doc.Experience, entry)
	}

	for _, act := range p.Resume.Activities {
		entry := types.Activity{
			Position:     act.Position,
			ActivityName: act.Title,
			StartDate:    dateOnly(act.Start),
			Current:      act.Current,
			Description:  act.Description,
		}
		if !act.Current {
			entry.EndDate = dateOnly(act.End)
		}
		doc.Activities = append(doc.Activities, entry)
	}

	for _, cert := range p.Resume.Certifications {
		doc.Certifications = append(doc.Certifications, fmt.Sprintf("%s (%s)", cert.Title, cert.CompletionYear))
	}

	return doc
}

// dateOnly truncates an ISO timestamp like 2020-01-01T00:00:00Z to its date part
func dateOnly(ts string) string {
	if idx := strings.Index(ts, "T"); idx >= 0 {
		return ts[:idx]
	}
	return ts
}

// splitLocation splits "City, ST" into its parts; a value without a comma is
// treated as city only.
func splitLocation(location string) (city, state string) {
	parts := strings.SplitN(location, ",", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		state = strings.TrimSpace(parts[1])
	}
	return city, state
}
