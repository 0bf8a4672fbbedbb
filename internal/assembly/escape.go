package assembly

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// EscapeDollar escapes the one character the renderer treats specially.
// A dollar sign already preceded by a backslash is left alone, so the function
// is idempotent and never double-escapes.
func EscapeDollar(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + strings.Count(s, "$"))
	escaped := false
	for _, r := range s {
		if r == '$' && !escaped {
			b.WriteString(`\$`)
		} else {
			b.WriteRune(r)
		}
		escaped = r == '\\'
	}
	return b.String()
}

// EscapeDocument applies EscapeDollar to every string reachable from the
// document. The pipeline runs this exactly once, after enhancement and before
// serialization, so escaped text is never fed back into a prompt.
func EscapeDocument(doc types.ResumeDocument) types.ResumeDocument {
	doc.PersonalInfo.Name = EscapeDollar(doc.PersonalInfo.Name)
	doc.PersonalInfo.Email = EscapeDollar(doc.PersonalInfo.Email)
	doc.PersonalInfo.Phone = EscapeDollar(doc.PersonalInfo.Phone)
	doc.Bio = EscapeDollar(doc.Bio)

	edu := make([]types.Education, len(doc.Education))
	for i, e := range doc.Education {
		e.School = EscapeDollar(e.School)
		e.Type = types.EducationType(EscapeDollar(string(e.Type)))
		e.Address = EscapeDollar(e.Address)
		e.City = EscapeDollar(e.City)
		e.State = EscapeDollar(e.State)
		e.Zip = EscapeDollar(e.Zip)
		edu[i] = e
	}
	doc.Education = edu

	exp := make([]types.Experience, len(doc.Experience))
	for i, e := range doc.Experience {
		e.JobTitle = EscapeDollar(e.JobTitle)
		e.Employer = EscapeDollar(e.Employer)
		e.Location = EscapeDollar(e.Location)
		e.StartDate = EscapeDollar(e.StartDate)
		e.EndDate = EscapeDollar(e.EndDate)
		e.Description = escapeList(e.Description)
		exp[i] = e
	}
	doc.Experience = exp

	acts := make([]types.Activity, len(doc.Activities))
	for i, a := range doc.Activities {
		a.Position = EscapeDollar(a.Position)
		a.ActivityName = EscapeDollar(a.ActivityName)
		a.StartDate = EscapeDollar(a.StartDate)
		a.EndDate = EscapeDollar(a.EndDate)
		a.Description = escapeList(a.Description)
		acts[i] = a
	}
	doc.Activities = acts

	doc.Skills = escapeList(doc.Skills)
	doc.Coursework = escapeList(doc.Coursework)
	doc.Certifications = escapeList(doc.Certifications)
	doc.Interests = escapeList(doc.Interests)
	doc.Accolades = escapeList(doc.Accolades)

	return doc
}

func escapeList(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = EscapeDollar(item)
	}
	return out
}
