package quiz

import (
	"reflect"
	"testing"
)

func TestStateFor(t *testing.T) {
	tests := []struct {
		name     string
		correct  bool
		selected bool
		inKey    bool
		want     OptionState
	}{
		{"correct answer, selected", true, true, true, StateCorrect},
		{"correct answer, unselected", true, false, false, StateNeutral},
		{"wrong answer, selected key option", false, true, true, StateCorrect},
		{"wrong answer, selected non-key option", false, true, false, StateWrong},
		{"wrong answer, missed key option", false, false, true, StateMissed},
		{"wrong answer, untouched non-key option", false, false, false, StateNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateFor(tt.correct, tt.selected, tt.inKey); got != tt.want {
				t.Errorf("StateFor(%v,%v,%v) = %q, want %q", tt.correct, tt.selected, tt.inKey, got, tt.want)
			}
		})
	}
}

func TestReviewCorrectQuestion(t *testing.T) {
	questions := []Question{singleKeyQuestion("1", "2")}
	answers := Answers{"1": {"2"}}

	verdicts := Review(questions, answers)
	if len(verdicts) != 1 {
		t.Fatalf("got %d verdicts, want 1", len(verdicts))
	}

	v := verdicts[0]
	if !v.IsCorrect || v.IsUnattempted {
		t.Errorf("verdict flags = correct %v unattempted %v", v.IsCorrect, v.IsUnattempted)
	}
	if len(v.MissedOptions) != 0 || len(v.ExtraOptions) != 0 {
		t.Errorf("correct question should list nothing: missed %v extra %v", v.MissedOptions, v.ExtraOptions)
	}
	if v.Options[1].State != StateCorrect {
		t.Errorf("selected key option state = %q, want correct", v.Options[1].State)
	}
	if v.Options[0].State != StateNeutral {
		t.Errorf("unselected option state = %q, want neutral", v.Options[0].State)
	}
}

func TestReviewMissedAndExtra(t *testing.T) {
	// Key is option 3, displayed as label C; the learner picked option 1.
	questions := []Question{singleKeyQuestion("7", "3")}
	answers := Answers{"7": {"1"}}

	v := Review(questions, answers)[0]

	if v.IsCorrect {
		t.Fatal("verdict should be incorrect")
	}
	if !reflect.DeepEqual(v.MissedOptions, []string{"C"}) {
		t.Errorf("MissedOptions = %v, want [C]", v.MissedOptions)
	}
	if !reflect.DeepEqual(v.ExtraOptions, []string{"1"}) {
		t.Errorf("ExtraOptions = %v, want [1]", v.ExtraOptions)
	}
	if v.Options[0].State != StateWrong {
		t.Errorf("selected non-key option state = %q, want wrong", v.Options[0].State)
	}
	if v.Options[2].State != StateMissed {
		t.Errorf("unselected key option state = %q, want missed", v.Options[2].State)
	}
}

func TestReviewLabelsSkipBlankOptions(t *testing.T) {
	// Option 2 has blank text, so labels run over the filtered list: option 1
	// is A and option 3 is B.
	q := Question{
		QuestionNumber: "1",
		Options: []Option{
			{OptionNumber: "1", OptionText: "Alpha"},
			{OptionNumber: "2", OptionText: " "},
			{OptionNumber: "3", OptionText: "Gamma"},
		},
		CorrectOption: NewKeySpec("3"),
	}

	v := Review([]Question{q}, Answers{})[0]

	if len(v.Options) != 2 {
		t.Fatalf("got %d option rows, want 2", len(v.Options))
	}
	if v.Options[0].Label != "A" || v.Options[1].Label != "B" {
		t.Errorf("labels = %q %q, want A B", v.Options[0].Label, v.Options[1].Label)
	}
	if !reflect.DeepEqual(v.MissedOptions, []string{"B"}) {
		t.Errorf("MissedOptions = %v, want [B]", v.MissedOptions)
	}
}

func TestReviewUnattempted(t *testing.T) {
	questions := []Question{singleKeyQuestion("1", "2")}

	v := Review(questions, Answers{})[0]

	if !v.IsUnattempted {
		t.Error("question without selections should be unattempted")
	}
	if v.IsCorrect {
		t.Error("unattempted single-key question should be incorrect")
	}
	if !reflect.DeepEqual(v.MissedOptions, []string{"B"}) {
		t.Errorf("MissedOptions = %v, want [B]", v.MissedOptions)
	}
}

func TestReviewAgreesWithScore(t *testing.T) {
	questions := []Question{
		singleKeyQuestion("1", "2"),
		singleKeyQuestion("2", "4"),
		{
			QuestionNumber: "3",
			Options: []Option{
				{OptionNumber: "1", OptionText: "A"},
				{OptionNumber: "2", OptionText: "B"},
			},
			CorrectOption: NewKeySpec("1", "2"),
		},
	}
	cases := []Answers{
		{},
		{"1": {"2"}},
		{"1": {"2"}, "2": {"4"}, "3": {"1", "2"}},
		{"1": {"1"}, "2": {"4", "1"}, "3": {"2"}},
		nil,
	}

	for _, answers := range cases {
		score := Score(questions, answers)
		correct := 0
		for _, v := range Review(questions, answers) {
			if v.IsCorrect {
				correct++
			}
		}
		if correct != score.Score {
			t.Errorf("answers %v: review counts %d correct, score says %d", answers, correct, score.Score)
		}
	}
}

func TestReviewEndToEnd(t *testing.T) {
	// Two-question attempt graded and reviewed through the same pipeline a
	// submitted attempt goes through.
	questions := []Question{
		singleKeyQuestion("1", "2"),
		{
			QuestionNumber: "2",
			Options: []Option{
				{OptionNumber: "1", OptionText: "A"},
				{OptionNumber: "2", OptionText: "B"},
				{OptionNumber: "3", OptionText: "C"},
			},
			CorrectOption: NewKeySpec("1", "3"),
		},
	}

	var answers Answers
	answers = Toggle(answers, "1", "2")
	answers = Toggle(answers, "2", "1")
	answers = Toggle(answers, "2", "2")
	answers = Toggle(answers, "2", "2") // undo the mistake
	answers = Toggle(answers, "2", "3")

	score := Score(questions, answers)
	if score.Score != 2 || score.Total != 2 {
		t.Fatalf("score = %+v, want 2/2", score)
	}

	for _, v := range Review(questions, answers) {
		if !v.IsCorrect {
			t.Errorf("question %s should be correct", v.QuestionNumber)
		}
	}
}
