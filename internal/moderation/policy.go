package moderation

import "strings"

// Violation describes a detected breach of the content policy
type Violation struct {
	Term string
}

// Reason returns the human-readable reason string used for warnings
func (v Violation) Reason() string {
	return "Prohibited language: " + v.Term
}

// Policy inspects message text against a configurable denylist of terms.
// Matching is case-insensitive substring; Inspect is pure and safe for
// concurrent use.
type Policy struct {
	terms []string
}

// NewPolicy creates a Policy from a denylist. Terms are normalized to
// lower case; empty entries are dropped.
func NewPolicy(terms []string) *Policy {
	p := &Policy{}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			p.terms = append(p.terms, term)
		}
	}
	return p
}

// Inspect returns the first policy violation found in text, if any
func (p *Policy) Inspect(text string) (Violation, bool) {
	lowered := strings.ToLower(text)
	for _, term := range p.terms {
		if strings.Contains(lowered, term) {
			return Violation{Term: term}, true
		}
	}
	return Violation{}, false
}
