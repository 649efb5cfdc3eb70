package service

import (
	"testing"
	"time"

	"nptel_prep_backend/internal/quiz"
)

func TestStudentQuestionsStripKeys(t *testing.T) {
	questions := []quiz.Question{
		{
			QuestionNumber: "1",
			QuestionText:   "Pick one",
			Options: []quiz.Option{
				{OptionNumber: "1", OptionText: "Alpha"},
				{OptionNumber: "2", OptionText: "  "},
				{OptionNumber: "3", OptionText: "Gamma"},
			},
			CorrectOption: quiz.NewKeySpec("3"),
		},
	}

	got := StudentQuestions(questions)
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}

	q := got[0]
	if len(q.Options) != 2 {
		t.Fatalf("got %d options, want 2 (blank dropped)", len(q.Options))
	}
	if q.Options[0].Label != "A" || q.Options[1].Label != "B" {
		t.Errorf("labels = %q %q, want A B", q.Options[0].Label, q.Options[1].Label)
	}
	if q.Options[1].OptionNumber != "3" {
		t.Errorf("second option = %q, want 3", q.Options[1].OptionNumber)
	}
}

func TestWeekViews(t *testing.T) {
	bank := []quiz.Week{
		{WeekNumber: 1, Questions: []quiz.Question{{QuestionNumber: "1"}, {QuestionNumber: "2"}}},
		{WeekNumber: 4, Questions: nil},
	}

	views := WeekViews(bank)
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].QuestionCount != 2 || views[1].QuestionCount != 0 {
		t.Errorf("counts = %d %d, want 2 0", views[0].QuestionCount, views[1].QuestionCount)
	}
	if views[1].WeekNumber != 4 {
		t.Errorf("week = %d, want 4", views[1].WeekNumber)
	}
}

func TestNewAttemptViewClampsRemaining(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	a := &Attempt{
		ID:        "abc",
		StartedAt: past.Add(-30 * time.Minute),
		Deadline:  past,
		Answers:   quiz.Answers{"1": {"2"}},
	}

	view := NewAttemptView(a)
	if view.RemainingSeconds != 0 {
		t.Errorf("RemainingSeconds = %d, want 0 for a lapsed deadline", view.RemainingSeconds)
	}

	// The view must carry a snapshot, not the live map.
	view.Answers["1"][0] = "9"
	if a.Answers["1"][0] != "2" {
		t.Error("view aliases the attempt's answers")
	}
}

func TestNewResultView(t *testing.T) {
	a := &Attempt{
		ID:           "abc",
		CourseCode:   "noc25-cs01",
		WeekNumber:   2,
		SubmitReason: "manual",
		Score:        quiz.ScoreResult{Score: 3, Total: 5},
		Answers:      quiz.Answers{"1": {"2"}},
		Verdicts:     []quiz.QuestionVerdict{{QuestionNumber: "1"}},
	}

	view := NewResultView(a)
	if view.Score != 3 || view.Total != 5 {
		t.Errorf("score = %d/%d, want 3/5", view.Score, view.Total)
	}
	if view.Reason != "manual" || view.WeekNumber != 2 {
		t.Errorf("reason %q week %d", view.Reason, view.WeekNumber)
	}
	if len(view.Verdicts) != 1 {
		t.Errorf("got %d verdicts, want 1", len(view.Verdicts))
	}
}
