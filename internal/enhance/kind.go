// Package enhance drives the LLM rewriting of free-text resume fields under a
// content-preservation contract: prompt assembly per content kind, response
// envelope parsing, and sanitization of the returned text.
package enhance

// Kind identifies which content kind is being enhanced. Each kind has its own
// instruction template and response envelope marker.
type Kind string

// Supported content kinds
const (
	KindExperience Kind = "experience"
	KindBio        Kind = "bio"
	KindActivity   Kind = "activity"
)

// Marker returns the envelope marker line that demarcates the start of the
// usable content block in the model's response.
func (k Kind) Marker() string {
	switch k {
	case KindBio:
		return "### Professional Summary ###"
	case KindActivity:
		return "### Activities ###"
	default:
		return "### Experience ###"
	}
}

// promptKey returns the template key in enhance.json for this kind
func (k Kind) promptKey() string {
	switch k {
	case KindBio:
		return "enhance-bio"
	case KindActivity:
		return "enhance-activity"
	default:
		return "enhance-experience"
	}
}
