package quiz

// ScoreResult is the outcome of grading one week's attempt. Score counts the
// fully-correct questions; Total is the number of questions supplied.
type ScoreResult struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Score grades an attempt against the supplied questions (the selected
// week's, not the whole bank). A question is correct iff the selection set
// equals its canonical key exactly: no subset or superset credit.
//
// A question with zero non-empty options has an empty canonical key, so an
// empty selection counts as correct for it. That vacuous match mirrors the
// upstream data contract and is intentional, not an input error.
func Score(questions []Question, answers Answers) ScoreResult {
	result := ScoreResult{Total: len(questions)}
	for _, q := range questions {
		if questionCorrect(q, answers) {
			result.Score++
		}
	}
	return result
}

// questionCorrect is the single correctness rule shared by Score and Review;
// the two must agree on every (question, answers) pair.
func questionCorrect(q Question, answers Answers) bool {
	key := CanonicalKey(q)
	selected := answers.Selected(string(q.QuestionNumber))

	if len(selected) != len(key) {
		return false
	}
	for _, k := range key {
		if !selected[k] {
			return false
		}
	}
	return true
}
