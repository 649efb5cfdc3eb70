package model

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"nptel_prep_backend/internal/quiz"
)

func TestNewTestResult(t *testing.T) {
	answers := quiz.Answers{"1": {"2"}, "3": {"1", "4"}}
	result := quiz.ScoreResult{Score: 7, Total: 10}

	before := time.Now()
	tr, err := NewTestResult(42, "noc25-cs01", 3, result, answers)
	if err != nil {
		t.Fatalf("NewTestResult: %v", err)
	}

	if tr.UserID != 42 || tr.CourseCode != "noc25-cs01" || tr.WeekNumber != 3 {
		t.Errorf("identity fields = %d %q %d", tr.UserID, tr.CourseCode, tr.WeekNumber)
	}
	if tr.Score != 7 || tr.Total != 10 {
		t.Errorf("score = %d/%d, want 7/10", tr.Score, tr.Total)
	}
	if tr.Timestamp.Before(before) {
		t.Error("timestamp should be set at build time")
	}
	if !reflect.DeepEqual(tr.UserAnswers, answers) {
		t.Errorf("answers = %v, want %v", tr.UserAnswers, answers)
	}

	// The snapshot must not alias the live attempt.
	answers["1"][0] = "9"
	if tr.UserAnswers["1"][0] != "2" {
		t.Error("persisted answers alias the input map")
	}
}

func TestNewTestResultRequiresUser(t *testing.T) {
	_, err := NewTestResult(0, "noc25-cs01", 1, quiz.ScoreResult{}, nil)
	if !errors.Is(err, ErrMissingUserID) {
		t.Errorf("err = %v, want ErrMissingUserID", err)
	}
}

func TestNewTestResultNilAnswers(t *testing.T) {
	tr, err := NewTestResult(1, "noc25-cs01", 1, quiz.ScoreResult{Total: 5}, nil)
	if err != nil {
		t.Fatalf("NewTestResult: %v", err)
	}
	if tr.UserAnswers == nil || len(tr.UserAnswers) != 0 {
		t.Errorf("nil answers should persist as an empty map, got %v", tr.UserAnswers)
	}
}
