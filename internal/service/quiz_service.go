package service

import (
	"context"
	"sync"
	"time"

	"nptel_prep_backend/internal/model"
	"nptel_prep_backend/internal/quiz"
	"nptel_prep_backend/internal/util"
	"nptel_prep_backend/pkg/logger"
	"nptel_prep_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultDurationMinutes = 30
	maxDurationMinutes     = 180

	// Submitted attempts stay reviewable in memory this long; the durable
	// record is the TestResult row.
	attemptRetention = time.Hour
	sweepInterval    = time.Minute
)

// Attempt is one learner's timed pass through a week's question set. Owned
// exclusively by its session: all mutation goes through QuizService under
// its lock.
type Attempt struct {
	ID         string
	UserID     uint
	CourseCode string
	WeekNumber int
	Questions  []quiz.Question
	Answers    quiz.Answers
	StartedAt  time.Time
	Deadline   time.Time

	timer *time.Timer

	SubmittedAt  *time.Time
	SubmitReason string
	Score        quiz.ScoreResult
	Verdicts     []quiz.QuestionVerdict
}

// CourseProvider yields the course detail an attempt is built from.
// Satisfied by CatalogService.
type CourseProvider interface {
	GetCourse(ctx context.Context, courseCode string) (*CourseDetail, error)
}

// ResultStore persists finished attempts. Satisfied by
// repository.TestResultRepository.
type ResultStore interface {
	Create(result *model.TestResult) error
}

// QuizService owns the in-memory attempt sessions and runs the grading
// engine on submit. The countdown's auto-submit and the learner's explicit
// submit converge on the same finish path, so both are scored identically.
type QuizService struct {
	Catalog CourseProvider
	Results ResultStore

	mu       sync.Mutex
	attempts map[string]*Attempt
	byUser   map[uint]string
}

func NewQuizService(catalog CourseProvider, results ResultStore) *QuizService {
	s := &QuizService{
		Catalog:  catalog,
		Results:  results,
		attempts: make(map[string]*Attempt),
		byUser:   make(map[uint]string),
	}
	go s.sweep()
	return s
}

// WeekBank builds the merged, week-sorted question bank for a course.
func (s *QuizService) WeekBank(ctx context.Context, courseCode string) ([]quiz.Week, error) {
	detail, err := s.Catalog.GetCourse(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	return quiz.BuildWeekBank(detail.Assignments), nil
}

// Start opens a new attempt, discarding the learner's previous live attempt
// (and its countdown) if any. Re-selecting a week always begins from an
// empty answer collection.
func (s *QuizService) Start(ctx context.Context, userID uint, courseCode string, weekNumber, durationMinutes int) (*Attempt, error) {
	if userID == 0 {
		return nil, util.ErrMissingUser
	}

	bank, err := s.WeekBank(ctx, courseCode)
	if err != nil {
		return nil, err
	}

	var questions []quiz.Question
	found := false
	for _, w := range bank {
		if w.WeekNumber == weekNumber {
			questions = w.Questions
			found = true
			break
		}
	}
	if !found {
		return nil, util.ErrWeekNotFound
	}

	if durationMinutes <= 0 {
		durationMinutes = defaultDurationMinutes
	}
	if durationMinutes > maxDurationMinutes {
		durationMinutes = maxDurationMinutes
	}
	duration := time.Duration(durationMinutes) * time.Minute

	s.mu.Lock()
	defer s.mu.Unlock()

	s.discardLocked(userID)

	now := time.Now()
	a := &Attempt{
		ID:         uuid.New().String(),
		UserID:     userID,
		CourseCode: courseCode,
		WeekNumber: weekNumber,
		Questions:  questions,
		Answers:    quiz.Answers{},
		StartedAt:  now,
		Deadline:   now.Add(duration),
	}
	attemptID := a.ID
	a.timer = time.AfterFunc(duration, func() { s.autoSubmit(attemptID) })

	s.attempts[a.ID] = a
	s.byUser[userID] = a.ID
	return a, nil
}

// Toggle flips one option on the attempt's answer collection.
func (s *QuizService) Toggle(attemptID string, userID uint, questionNumber, optionNumber string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ownedLocked(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if a.SubmittedAt != nil {
		return nil, util.ErrAttemptSubmitted
	}

	a.Answers = quiz.Toggle(a.Answers, questionNumber, optionNumber)
	return a, nil
}

// Submit grades the attempt. reason is util.SubmitManual or
// util.SubmitTimeExpired; both run the identical scoring sequence.
func (s *QuizService) Submit(attemptID string, userID uint, reason string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ownedLocked(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if a.SubmittedAt != nil {
		return nil, util.ErrAttemptSubmitted
	}

	s.finishLocked(a, reason)
	return a, nil
}

// Review returns the verdicts for a submitted attempt.
func (s *QuizService) Review(attemptID string, userID uint) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ownedLocked(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if a.SubmittedAt == nil {
		return nil, util.ErrAttemptNotSubmitted
	}
	return a, nil
}

// Cancel abandons a live attempt and stops its countdown, so a stale timer
// never fires against a superseded attempt.
func (s *QuizService) Cancel(attemptID string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ownedLocked(attemptID, userID)
	if err != nil {
		return err
	}
	if a.SubmittedAt != nil {
		return util.ErrAttemptSubmitted
	}

	a.timer.Stop()
	delete(s.attempts, a.ID)
	if s.byUser[a.UserID] == a.ID {
		delete(s.byUser, a.UserID)
	}
	return nil
}

func (s *QuizService) ownedLocked(attemptID string, userID uint) (*Attempt, error) {
	a, ok := s.attempts[attemptID]
	if !ok {
		return nil, util.ErrAttemptNotFound
	}
	if a.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return a, nil
}

func (s *QuizService) discardLocked(userID uint) {
	id, ok := s.byUser[userID]
	if !ok {
		return
	}
	if a, ok := s.attempts[id]; ok && a.SubmittedAt == nil {
		a.timer.Stop()
		delete(s.attempts, id)
	}
	delete(s.byUser, userID)
}

// finishLocked is the single submission path: timer expiry and manual submit
// both land here, so the two can never diverge in how they score.
func (s *QuizService) finishLocked(a *Attempt, reason string) {
	a.timer.Stop()

	now := time.Now()
	a.SubmittedAt = &now
	a.SubmitReason = reason
	a.Score = quiz.Score(a.Questions, a.Answers)
	a.Verdicts = quiz.Review(a.Questions, a.Answers)

	monitoring.QuizSubmissionCounter.WithLabelValues(reason).Inc()

	record, err := model.NewTestResult(a.UserID, a.CourseCode, a.WeekNumber, a.Score, a.Answers)
	if err != nil {
		// Grading stands; only the history entry is lost.
		logger.Log.Warn("refusing to persist test result",
			zap.String("attemptId", a.ID), zap.Error(err))
		return
	}

	// Fire-and-forget: the learner sees the score and review regardless of
	// whether the save lands.
	go s.persistResult(record)
}

func (s *QuizService) persistResult(record *model.TestResult) {
	if err := s.Results.Create(record); err != nil {
		monitoring.ResultPersistCounter.WithLabelValues("failure").Inc()
		logger.Log.Error("failed to save test result",
			zap.Uint("userId", record.UserID),
			zap.String("courseCode", record.CourseCode),
			zap.Int("weekNumber", record.WeekNumber),
			zap.Error(err))
		return
	}
	monitoring.ResultPersistCounter.WithLabelValues("success").Inc()
}

func (s *QuizService) autoSubmit(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptID]
	if !ok || a.SubmittedAt != nil {
		// Abandoned or already submitted; the expiry is stale.
		return
	}

	logger.Log.Info("attempt auto-submitted on expiry",
		zap.String("attemptId", a.ID), zap.Uint("userId", a.UserID))
	s.finishLocked(a, util.SubmitTimeExpired)
}

func (s *QuizService) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		for id, a := range s.attempts {
			if a.SubmittedAt != nil && time.Since(*a.SubmittedAt) > attemptRetention {
				delete(s.attempts, id)
				if s.byUser[a.UserID] == id {
					delete(s.byUser, a.UserID)
				}
			}
		}
		s.mu.Unlock()
	}
}
