package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrMissingUser          = errors.New("missing authenticated user")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrCourseNotFound       = errors.New("course not found")
	ErrAssignmentsNotFound  = errors.New("assignments not found for this course")
	ErrWeekNotFound         = errors.New("week not found for this course")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrAttemptSubmitted     = errors.New("attempt already submitted")
	ErrAttemptNotSubmitted  = errors.New("attempt not yet submitted")
	ErrCatalogUnavailable   = errors.New("upstream catalog unavailable")
)
