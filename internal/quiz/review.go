package quiz

// OptionState is the highlight state for one option row on the review screen.
type OptionState string

const (
	// StateCorrect: the learner selected an option that belongs to the key.
	StateCorrect OptionState = "correct"
	// StateWrong: the learner selected an option outside the key.
	StateWrong OptionState = "wrong"
	// StateMissed: an unselected key option on an incorrectly answered question.
	StateMissed OptionState = "missed"
	// StateNeutral: everything else.
	StateNeutral OptionState = "neutral"
)

// OptionVerdict is the per-option review row. Label is the positional display
// letter (first non-empty option = A) over the filtered option list.
type OptionVerdict struct {
	OptionNumber string      `json:"optionNumber"`
	Label        string      `json:"label"`
	Text         string      `json:"text"`
	Selected     bool        `json:"selected"`
	InKey        bool        `json:"inKey"`
	State        OptionState `json:"state"`
}

// QuestionVerdict explains, per question, why the attempt was right or wrong.
type QuestionVerdict struct {
	QuestionNumber string          `json:"questionNumber"`
	QuestionText   string          `json:"questionText"`
	IsCorrect      bool            `json:"isCorrect"`
	IsUnattempted  bool            `json:"isUnattempted"`
	MissedOptions  []string        `json:"missedOptions"`
	ExtraOptions   []string        `json:"extraOptions"`
	Options        []OptionVerdict `json:"options"`
}

// StateFor maps the three review booleans to an option's highlight state.
// On a fully-correct question only the learner's selections light up; on an
// incorrect one, selections split into correct/wrong and unselected key
// options show as missed.
func StateFor(answerCorrect, selected, inKey bool) OptionState {
	if answerCorrect {
		if selected {
			return StateCorrect
		}
		return StateNeutral
	}
	switch {
	case selected && inKey:
		return StateCorrect
	case selected && !inKey:
		return StateWrong
	case !selected && inKey:
		return StateMissed
	default:
		return StateNeutral
	}
}

// Review derives the per-question verdicts for a scored attempt. Correctness
// is recomputed with the same rule Score uses, so the count of correct
// verdicts always equals the attempt's score.
func Review(questions []Question, answers Answers) []QuestionVerdict {
	verdicts := make([]QuestionVerdict, 0, len(questions))

	for _, q := range questions {
		filtered := q.FilteredOptions()
		key := CanonicalKey(q)
		inKey := make(map[string]bool, len(key))
		for _, k := range key {
			inKey[k] = true
		}
		selected := answers.Selected(string(q.QuestionNumber))
		correct := questionCorrect(q, answers)

		v := QuestionVerdict{
			QuestionNumber: string(q.QuestionNumber),
			QuestionText:   q.QuestionText,
			IsCorrect:      correct,
			IsUnattempted:  len(selected) == 0,
			MissedOptions:  []string{},
			ExtraOptions:   []string{},
			Options:        make([]OptionVerdict, 0, len(filtered)),
		}

		for i, opt := range filtered {
			num := string(opt.OptionNumber)
			ov := OptionVerdict{
				OptionNumber: num,
				Label:        optionLabel(i),
				Text:         opt.OptionText,
				Selected:     selected[num],
				InKey:        inKey[num],
				State:        StateFor(correct, selected[num], inKey[num]),
			}
			v.Options = append(v.Options, ov)

			if !correct && ov.InKey && !ov.Selected {
				v.MissedOptions = append(v.MissedOptions, ov.Label)
			}
			if ov.Selected && !ov.InKey {
				v.ExtraOptions = append(v.ExtraOptions, num)
			}
		}

		verdicts = append(verdicts, v)
	}

	return verdicts
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
