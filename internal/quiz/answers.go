package quiz

import "strings"

// Answers records a learner's selections for one attempt: question number to
// the list of selected option numbers (set semantics, order irrelevant). A
// question with no selections is absent from the map; every consumer treats
// absence as the empty set.
type Answers map[string][]string

// Clone returns a deep copy. The snapshot persisted with a test result must
// not alias the live attempt state.
func (a Answers) Clone() Answers {
	if a == nil {
		return Answers{}
	}
	out := make(Answers, len(a))
	for q, opts := range a {
		cp := make([]string, len(opts))
		copy(cp, opts)
		out[q] = cp
	}
	return out
}

// Selected returns the normalized selection set for a question. Missing
// entries yield an empty set.
func (a Answers) Selected(questionNumber string) map[string]bool {
	set := make(map[string]bool)
	for _, opt := range a[questionNumber] {
		opt = strings.TrimSpace(opt)
		if opt != "" {
			set[opt] = true
		}
	}
	return set
}

// Toggle returns a new collection equal to a except for the given question:
// the option is added if absent, removed if present. Other questions are
// untouched and a itself is never mutated. A question whose selection set
// becomes empty is dropped from the map entirely. Toggling the same option
// twice is the identity.
func Toggle(a Answers, questionNumber, optionNumber string) Answers {
	out := a.Clone()

	prev := out[questionNumber]
	next := make([]string, 0, len(prev)+1)
	removed := false
	for _, opt := range prev {
		if opt == optionNumber {
			removed = true
			continue
		}
		next = append(next, opt)
	}
	if !removed {
		next = append(next, optionNumber)
	}

	if len(next) == 0 {
		delete(out, questionNumber)
	} else {
		out[questionNumber] = next
	}
	return out
}
