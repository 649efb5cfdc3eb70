package repository

import (
	"nptel_prep_backend/internal/model"

	"gorm.io/gorm"
)

type TestResultRepository struct {
	DB *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) *TestResultRepository {
	return &TestResultRepository{DB: db}
}

func (r *TestResultRepository) Create(result *model.TestResult) error {
	return r.DB.Create(result).Error
}

// FindByUser returns a user's history, most recent first.
func (r *TestResultRepository) FindByUser(userID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&results).Error
	return results, err
}

func (r *TestResultRepository) FindByUserAndCourse(userID uint, courseCode string) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("user_id = ? AND course_code = ?", userID, courseCode).
		Order("timestamp DESC").
		Find(&results).Error
	return results, err
}

func (r *TestResultRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestResult{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
