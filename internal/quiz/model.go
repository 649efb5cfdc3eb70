// Package quiz holds the grading core: the week-grouped question bank built
// from upstream assignment payloads, the per-attempt answer collection, and
// the scoring and review algorithms that grade it.
package quiz

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// ID is a question or option identifier. Upstream payloads are inconsistent
// about whether these arrive as JSON numbers or strings; both decode to the
// same normalized value so the grading code never branches on representation.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

type Option struct {
	OptionNumber ID     `json:"option_number"`
	OptionText   string `json:"option_text"`
}

// KeySpec is the normalized correct_option value. Upstream sends a single
// option number, a comma-delimited list, a JSON array, or an empty value
// (the select-all sentinel). All forms collapse to a list of identifiers at
// ingestion; values that do not parse at all are flagged invalid so the
// canonical-key derivation can fall back.
type KeySpec struct {
	values  []string
	invalid bool
}

// NewKeySpec builds a KeySpec from already-normalized identifiers. Used by
// tests and by callers that construct questions in code.
func NewKeySpec(values ...string) KeySpec {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return KeySpec{values: out}
}

func (k KeySpec) Values() []string { return k.values }
func (k KeySpec) Invalid() bool    { return k.invalid }

// IsEmpty reports the select-all sentinel: no parsed values and no parse error.
func (k KeySpec) IsEmpty() bool { return !k.invalid && len(k.values) == 0 }

func (k *KeySpec) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*k = KeySpec{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = parseDelimitedKey(s)
		return nil
	case '[':
		var ids []ID
		if err := json.Unmarshal(b, &ids); err != nil {
			*k = KeySpec{invalid: true}
			return nil
		}
		vals := make([]string, 0, len(ids))
		for _, id := range ids {
			if id != "" {
				vals = append(vals, string(id))
			}
		}
		*k = KeySpec{values: vals}
		return nil
	case '{', 't', 'f':
		// Objects and booleans carry no usable key; recovered downstream.
		*k = KeySpec{invalid: true}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			*k = KeySpec{invalid: true}
			return nil
		}
		*k = KeySpec{values: []string{n.String()}}
		return nil
	}
}

func (k KeySpec) MarshalJSON() ([]byte, error) {
	if k.invalid {
		return json.Marshal(nil)
	}
	return json.Marshal(strings.Join(k.values, ","))
}

func parseDelimitedKey(s string) KeySpec {
	if strings.TrimSpace(s) == "" {
		return KeySpec{}
	}
	parts := strings.Split(s, ",")
	vals := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			vals = append(vals, p)
		}
	}
	return KeySpec{values: vals}
}

type Question struct {
	QuestionNumber ID       `json:"question_number"`
	QuestionText   string   `json:"question_text"`
	Options        []Option `json:"options"`
	CorrectOption  KeySpec  `json:"correct_option"`
}

// FilteredOptions returns the presentable options: entries whose text is
// empty or whitespace-only are excluded from display and from all
// correctness computation.
func (q Question) FilteredOptions() []Option {
	out := make([]Option, 0, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt.OptionText) != "" {
			out = append(out, opt)
		}
	}
	return out
}

// CanonicalKey resolves the set of option numbers that count as correct,
// sorted for stable comparison. The derivation is pure: the same question
// always yields the same key.
//
//   - empty correct_option (select-all sentinel): every non-empty option;
//   - otherwise the parsed identifiers, deduplicated;
//   - a key that is unparseable or references an option absent from the
//     filtered list falls back to every non-empty option. Deliberate
//     leniency over bad upstream data, never an error.
func CanonicalKey(q Question) []string {
	all := make([]string, 0, len(q.Options))
	present := make(map[string]bool)
	for _, opt := range q.FilteredOptions() {
		all = append(all, string(opt.OptionNumber))
		present[string(opt.OptionNumber)] = true
	}

	if q.CorrectOption.Invalid() || q.CorrectOption.IsEmpty() {
		return sortedCopy(all)
	}

	seen := make(map[string]bool)
	key := make([]string, 0, len(q.CorrectOption.Values()))
	for _, v := range q.CorrectOption.Values() {
		if !present[v] {
			return sortedCopy(all)
		}
		if !seen[v] {
			seen[v] = true
			key = append(key, v)
		}
	}
	sort.Strings(key)
	return key
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

// Assignment is one upstream assignment object. A week may be split across
// several of them.
type Assignment struct {
	WeekNumber int        `json:"week_number"`
	Questions  []Question `json:"questions"`
}

// Week is the merged question set for one week number.
type Week struct {
	WeekNumber int        `json:"week_number"`
	Questions  []Question `json:"questions"`
}

// BuildWeekBank groups assignments by week number, concatenating question
// lists in input order. A missing week number counts as week 0. Weeks that
// end up with zero questions are retained. The result is sorted ascending by
// week number.
func BuildWeekBank(assignments []Assignment) []Week {
	byWeek := make(map[int]*Week)
	order := make([]int, 0)

	for _, a := range assignments {
		w, ok := byWeek[a.WeekNumber]
		if !ok {
			w = &Week{WeekNumber: a.WeekNumber, Questions: []Question{}}
			byWeek[a.WeekNumber] = w
			order = append(order, a.WeekNumber)
		}
		w.Questions = append(w.Questions, a.Questions...)
	}

	sort.Ints(order)
	out := make([]Week, 0, len(order))
	for _, n := range order {
		out = append(out, *byWeek[n])
	}
	return out
}
