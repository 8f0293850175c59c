// Package paper defines the research paper record shared by the catalog and
// the saved-paper store, together with its validation rules and error kinds.
package paper

// Paper is a single research paper. The JSON field names are part of the API
// contract and must not change.
type Paper struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Title     string `json:"title" yaml:"title" validate:"required"`
	Authors   string `json:"authors" yaml:"authors" validate:"required"`
	Year      int    `json:"year" yaml:"year"`
	Citations int    `json:"citations" yaml:"citations" validate:"gte=0"`
}

// IndexOf returns the position of the paper with the given id, or -1.
func IndexOf(papers []Paper, id string) int {
	for i, p := range papers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy of papers that never aliases the input. A nil input
// yields an empty, non-nil slice so it encodes as [] rather than null.
func Clone(papers []Paper) []Paper {
	out := make([]Paper, len(papers))
	copy(out, papers)
	return out
}
