package service

import (
	"nptel_prep_backend/internal/model"
	"nptel_prep_backend/internal/repository"
)

type TestResultService struct {
	Repo *repository.TestResultRepository
}

func NewTestResultService(repo *repository.TestResultRepository) *TestResultService {
	return &TestResultService{Repo: repo}
}

// History returns a user's past results, most recent first.
func (s *TestResultService) History(userID uint) ([]model.TestResult, error) {
	return s.Repo.FindByUser(userID)
}

func (s *TestResultService) HistoryByCourse(userID uint, courseCode string) ([]model.TestResult, error) {
	return s.Repo.FindByUserAndCourse(userID, courseCode)
}
