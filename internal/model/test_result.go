package model

import (
	"errors"
	"time"

	"nptel_prep_backend/internal/quiz"
)

var ErrMissingUserID = errors.New("test result requires an authenticated user")

// TestResult is one completed, immutable quiz attempt. The grading engine
// builds it; the repository owns it from there.
type TestResult struct {
	BaseModel
	UserID      uint         `gorm:"index;not null" json:"userId"`
	CourseCode  string       `gorm:"size:50;index;not null" json:"courseCode"`
	WeekNumber  int          `gorm:"not null" json:"weekNumber"`
	Score       int          `gorm:"not null" json:"score"`
	Total       int          `gorm:"not null" json:"total"`
	UserAnswers quiz.Answers `gorm:"serializer:json;type:json" json:"userAnswers"`
	Timestamp   time.Time    `gorm:"index" json:"timestamp"`
}

func (TestResult) TableName() string {
	return "test_results"
}

// NewTestResult assembles the persisted record from an already-scored attempt.
// It never rescores; the score/total pair is taken as-is.
func NewTestResult(userID uint, courseCode string, weekNumber int, result quiz.ScoreResult, answers quiz.Answers) (*TestResult, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}

	return &TestResult{
		UserID:      userID,
		CourseCode:  courseCode,
		WeekNumber:  weekNumber,
		Score:       result.Score,
		Total:       result.Total,
		UserAnswers: answers.Clone(),
		Timestamp:   time.Now(),
	}, nil
}
