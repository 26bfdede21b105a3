// Package reflection turns a journal entry into a short conversational
// reflection: a mirrored reading of the entry, usually a follow-up
// question, and sometimes one or two gentle nudges. Classification and
// dispatch are deterministic; phrasing draws from fixed pools through an
// injected random source.
package reflection

// Reflection modes.
const (
	ModeLocal    = "local"
	ModeEnhanced = "enhanced"
)

// Output is one generated reflection.
type Output struct {
	Mirror   string   `json:"mirror"`
	Question string   `json:"question,omitempty"`
	Nudges   []string `json:"nudges,omitempty"`
	Mode     string   `json:"mode"`
}
