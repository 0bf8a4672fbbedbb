// Package assembly maps a normalized resume document into the declarative
// document description consumed by the external renderer, applying per-theme
// formatting rules.
package assembly

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Themes is the fixed set of visual presets rendered for every run
var Themes = []string{"classic", "moderncv", "sb2nov", "engineeringresumes"}

// DocumentDescription is the root of the renderer input format
type DocumentDescription struct {
	CV     CV     `yaml:"cv"`
	Design Design `yaml:"design"`
}

// CV carries the contact block and the ordered section map
type CV struct {
	Name     string   `yaml:"name"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	Sections Sections `yaml:"sections"`
}

// Design selects the visual theme. DisableLastUpdatedDate is set for every
// theme except moderncv, whose renderer mishandles the flag.
type Design struct {
	Theme                  string `yaml:"theme"`
	DisableLastUpdatedDate bool   `yaml:"disable_last_updated_date,omitempty"`
}

// Sections holds the renderable sections in their fixed output order.
// Empty sections are omitted from the serialized description.
type Sections struct {
	Summary        []string          `yaml:"summary,omitempty"`
	Education      []EducationEntry  `yaml:"education,omitempty"`
	Experience     []ExperienceEntry `yaml:"experience,omitempty"`
	Activities     []ActivityEntry   `yaml:"activities,omitempty"`
	Skills         []string          `yaml:"skills,omitempty"`
	Coursework     []string          `yaml:"coursework,omitempty"`
	Certifications []string          `yaml:"certifications,omitempty"`
	Interests      []string          `yaml:"interests,omitempty"`
	Accolades      []string          `yaml:"accolades,omitempty"`
}

// EducationEntry is a structured education section item
type EducationEntry struct {
	Institution string   `yaml:"institution"`
	Area        string   `yaml:"area"`
	Location    string   `yaml:"location,omitempty"`
	Highlights  []string `yaml:"highlights,omitempty"`
}

// ExperienceEntry is a structured experience section item
type ExperienceEntry struct {
	Position   string   `yaml:"position"`
	Company    string   `yaml:"company"`
	Location   string   `yaml:"location"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
	Highlights []string `yaml:"highlights"`
}

// ActivityEntry is a structured activities section item
type ActivityEntry struct {
	Company    string   `yaml:"company"`
	Position   string   `yaml:"position"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
	Highlights []string `yaml:"highlights"`
}

// Assemble maps a resume document onto the description for one theme.
// The document is expected to be enhanced and dollar-escaped already; no
// escaping happens here.
func Assemble(doc types.ResumeDocument, theme string) DocumentDescription {
	desc := DocumentDescription{
		CV: CV{
			Name:  doc.PersonalInfo.Name,
			Email: doc.PersonalInfo.Email,
			Phone: doc.PersonalInfo.Phone,
		},
		Design: Design{
			Theme: theme,
			// moderncv's renderer chokes on this flag
			DisableLastUpdatedDate: theme != "moderncv",
		},
	}

	if doc.Bio != "" {
		desc.CV.Sections.Summary = []string{doc.Bio}
	}

	desc.CV.Sections.Education = buildEducationEntries(doc.Education)
	desc.CV.Sections.Experience = buildExperienceEntries(doc.Experience)
	desc.CV.Sections.Activities = buildActivityEntries(doc.Activities)

	desc.CV.Sections.Skills = bulletList(doc.Skills)
	desc.CV.Sections.Coursework = bulletList(doc.Coursework)
	desc.CV.Sections.Certifications = bulletList(doc.Certifications)
	desc.CV.Sections.Interests = bulletList(doc.Interests)
	desc.CV.Sections.Accolades = bulletList(doc.Accolades)

	return desc
}

// buildEducationEntries drops entries without a school name. The GPA highlight
// is emitted only for gpa > 0; a literal 0.0 is treated as "not provided"
// (preserved source behavior).
func buildEducationEntries(entries []types.Education) []EducationEntry {
	if len(entries) == 0 {
		return nil
	}

	out := make([]EducationEntry, 0, len(entries))
	for _, edu := range entries {
		if edu.School == "" {
			continue
		}

		entry := EducationEntry{
			Institution: edu.School,
			Area:        string(edu.Type),
		}

		if edu.City != "" && edu.State != "" {
			parts := make([]string, 0, 4)
			if edu.Address != "" {
				parts = append(parts, edu.Address)
			}
			parts = append(parts, edu.City, edu.State)
			if edu.Zip != "" {
				parts = append(parts, edu.Zip)
			}
			entry.Location = strings.Join(parts, ", ")
		}

		if edu.GPA != nil && *edu.GPA > 0 {
			entry.Highlights = []string{fmt.Sprintf("GPA: %s/%s", formatGPA(*edu.GPA), formatGPA(edu.GPAMax))}
		}

		out = append(out, entry)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func buildExperienceEntries(entries []types.Experience) []ExperienceEntry {
	if len(entries) == 0 {
		return nil
	}

	out := make([]ExperienceEntry, 0, len(entries))
	for _, exp := range entries {
		out = append(out, ExperienceEntry{
			Position:   exp.JobTitle,
			Company:    exp.Employer,
			Location:   exp.Location,
			StartDate:  exp.StartDate,
			EndDate:    endDate(exp.Current, exp.EndDate),
			Highlights: exp.Description,
		})
	}
	return out
}

func buildActivityEntries(entries []types.Activity) []ActivityEntry {
	if len(entries) == 0 {
		return nil
	}

	out := make([]ActivityEntry, 0, len(entries))
	for _, act := range entries {
		out = append(out, ActivityEntry{
			Company:    act.ActivityName,
			Position:   act.Position,
			StartDate:  act.StartDate,
			EndDate:    endDate(act.Current, act.EndDate),
			Highlights: act.Description,
		})
	}
	return out
}

// formatGPA renders a GPA value with at least one decimal place, so a whole
// number like 4 reads "4.0" in the highlight string.
func formatGPA(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// endDate renders the literal "present" for ongoing entries
func endDate(current bool, end string) string {
	if current {
		return "present"
	}
	return end
}

// bulletList renders a plain string section as "• "-prefixed items
func bulletList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "• " + item
	}
	return out
}
