package controller

import (
	"errors"

	"nptel_prep_backend/internal/service"
	"nptel_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetWeekBank godoc
// @Summary Week-grouped question bank for a course
// @Description Questions are stripped of answer keys and blank options
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseCode path string true "course code"
// @Success 200 {object} util.Response{data=[]service.WeekView} "success"
// @Failure 404 {object} util.Response "course not found"
// @Failure 502 {object} util.Response "catalog unavailable"
// @Router /api/courses/{courseCode}/quiz [get]
func (c *QuizController) GetWeekBank(ctx *gin.Context) {
	bank, err := c.QuizService.WeekBank(ctx.Request.Context(), ctx.Param("courseCode"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, service.WeekViews(bank))
}

type StartAttemptRequest struct {
	CourseCode      string `json:"courseCode" binding:"required"`
	WeekNumber      int    `json:"weekNumber"`
	DurationMinutes int    `json:"durationMinutes"`
}

// StartAttempt godoc
// @Summary Start a timed attempt
// @Description Opens a fresh attempt for one week; any previous live attempt is discarded
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body StartAttemptRequest true "attempt parameters"
// @Success 201 {object} util.Response{data=service.AttemptView} "created"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 404 {object} util.Response "week not found"
// @Router /api/quiz/start [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	var req StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.QuizService.Start(ctx.Request.Context(), claims.UserID, req.CourseCode, req.WeekNumber, req.DurationMinutes)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Created(ctx, service.NewAttemptView(attempt))
}

type ToggleRequest struct {
	QuestionNumber string `json:"questionNumber" binding:"required"`
	OptionNumber   string `json:"optionNumber" binding:"required"`
}

// ToggleOption godoc
// @Summary Toggle an option on the live attempt
// @Description Adds the option if absent, removes it if present
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   attemptId path string true "attempt id"
// @Param   body body ToggleRequest true "toggle target"
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 404 {object} util.Response "attempt not found"
// @Failure 409 {object} util.Response "attempt already submitted"
// @Router /api/quiz/{attemptId}/toggle [post]
func (c *QuizController) ToggleOption(ctx *gin.Context) {
	var req ToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.QuizService.Toggle(ctx.Param("attemptId"), claims.UserID, req.QuestionNumber, req.OptionNumber)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"answers": attempt.Answers})
}

type SubmitRequest struct {
	Reason string `json:"reason" binding:"omitempty,oneof=manual time_expired"`
}

// SubmitAttempt godoc
// @Summary Submit the attempt for grading
// @Description Scores the attempt, derives verdicts, and saves the result record asynchronously
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   attemptId path string true "attempt id"
// @Param   body body SubmitRequest false "submit reason, defaults to manual"
// @Success 200 {object} util.Response{data=service.ResultView} "success"
// @Failure 404 {object} util.Response "attempt not found"
// @Failure 409 {object} util.Response "attempt already submitted"
// @Router /api/quiz/{attemptId}/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Reason == "" {
		req.Reason = util.SubmitManual
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.QuizService.Submit(ctx.Param("attemptId"), claims.UserID, req.Reason)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, service.NewResultView(attempt))
}

// GetReview godoc
// @Summary Per-question verdicts for a submitted attempt
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   attemptId path string true "attempt id"
// @Success 200 {object} util.Response{data=service.ResultView} "success"
// @Failure 404 {object} util.Response "attempt not found"
// @Failure 409 {object} util.Response "attempt not yet submitted"
// @Router /api/quiz/{attemptId}/review [get]
func (c *QuizController) GetReview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.QuizService.Review(ctx.Param("attemptId"), claims.UserID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, service.NewResultView(attempt))
}

// CancelAttempt godoc
// @Summary Abandon a live attempt
// @Description Stops the countdown and discards the attempt without grading
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   attemptId path string true "attempt id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "attempt not found"
// @Router /api/quiz/{attemptId} [delete]
func (c *QuizController) CancelAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.Cancel(ctx.Param("attemptId"), claims.UserID); err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"cancelled": true})
}

func (c *QuizController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx, "Attempt not found")
	case errors.Is(err, util.ErrWeekNotFound):
		util.NotFound(ctx, "Week not found for this course")
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "Course not found")
	case errors.Is(err, util.ErrAttemptSubmitted):
		util.Error(ctx, 409, "Attempt already submitted")
	case errors.Is(err, util.ErrAttemptNotSubmitted):
		util.Error(ctx, 409, "Attempt not yet submitted")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrMissingUser):
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrCatalogUnavailable):
		util.BadGateway(ctx, "Failed to fetch course data")
	default:
		util.LogInternalError(ctx, err)
	}
}
