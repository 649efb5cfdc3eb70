package service

import (
	"time"

	"nptel_prep_backend/internal/quiz"
)

// StudentOption is an option as shown to a learner: position label and text,
// never the answer key.
type StudentOption struct {
	OptionNumber string `json:"optionNumber"`
	Label        string `json:"label"`
	Text         string `json:"text"`
}

type StudentQuestion struct {
	QuestionNumber string          `json:"questionNumber"`
	Text           string          `json:"text"`
	Options        []StudentOption `json:"options"`
}

type WeekView struct {
	WeekNumber    int               `json:"weekNumber"`
	QuestionCount int               `json:"questionCount"`
	Questions     []StudentQuestion `json:"questions,omitempty"`
}

type AttemptView struct {
	AttemptID        string            `json:"attemptId"`
	CourseCode       string            `json:"courseCode"`
	WeekNumber       int               `json:"weekNumber"`
	StartedAt        time.Time         `json:"startedAt"`
	Deadline         time.Time         `json:"deadline"`
	RemainingSeconds int               `json:"remainingSeconds"`
	Questions        []StudentQuestion `json:"questions"`
	Answers          quiz.Answers      `json:"answers"`
}

type ResultView struct {
	AttemptID  string                 `json:"attemptId"`
	CourseCode string                 `json:"courseCode"`
	WeekNumber int                    `json:"weekNumber"`
	Reason     string                 `json:"submitReason"`
	Score      int                    `json:"score"`
	Total      int                    `json:"total"`
	Answers    quiz.Answers           `json:"userAnswers"`
	Verdicts   []quiz.QuestionVerdict `json:"verdicts"`
}

// StudentQuestions strips answer keys and blank options for presentation.
func StudentQuestions(questions []quiz.Question) []StudentQuestion {
	out := make([]StudentQuestion, 0, len(questions))
	for _, q := range questions {
		sq := StudentQuestion{
			QuestionNumber: string(q.QuestionNumber),
			Text:           q.QuestionText,
		}
		for i, opt := range q.FilteredOptions() {
			sq.Options = append(sq.Options, StudentOption{
				OptionNumber: string(opt.OptionNumber),
				Label:        string(rune('A' + i)),
				Text:         opt.OptionText,
			})
		}
		out = append(out, sq)
	}
	return out
}

// WeekViews summarizes a bank for week selection; question bodies are
// included so the client can render without a second round trip.
func WeekViews(bank []quiz.Week) []WeekView {
	out := make([]WeekView, 0, len(bank))
	for _, w := range bank {
		out = append(out, WeekView{
			WeekNumber:    w.WeekNumber,
			QuestionCount: len(w.Questions),
			Questions:     StudentQuestions(w.Questions),
		})
	}
	return out
}

func NewAttemptView(a *Attempt) AttemptView {
	remaining := int(time.Until(a.Deadline).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return AttemptView{
		AttemptID:        a.ID,
		CourseCode:       a.CourseCode,
		WeekNumber:       a.WeekNumber,
		StartedAt:        a.StartedAt,
		Deadline:         a.Deadline,
		RemainingSeconds: remaining,
		Questions:        StudentQuestions(a.Questions),
		Answers:          a.Answers.Clone(),
	}
}

func NewResultView(a *Attempt) ResultView {
	return ResultView{
		AttemptID:  a.ID,
		CourseCode: a.CourseCode,
		WeekNumber: a.WeekNumber,
		Reason:     a.SubmitReason,
		Score:      a.Score.Score,
		Total:      a.Score.Total,
		Answers:    a.Answers.Clone(),
		Verdicts:   a.Verdicts,
	}
}
