package controller

import (
	"nptel_prep_backend/internal/model"
	"nptel_prep_backend/internal/service"
	"nptel_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestResultController struct {
	ResultService *service.TestResultService
}

func NewTestResultController(resultService *service.TestResultService) *TestResultController {
	return &TestResultController{ResultService: resultService}
}

// GetMyTests godoc
// @Summary Caller's test history
// @Description Past results, most recent first; optionally filtered by course
// @Tags tests
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseCode query string false "filter by course code"
// @Success 200 {object} util.Response{data=[]model.TestResult} "success"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/tests [get]
func (c *TestResultController) GetMyTests(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var (
		results []model.TestResult
		err     error
	)
	if courseCode := ctx.Query("courseCode"); courseCode != "" {
		results, err = c.ResultService.HistoryByCourse(claims.UserID, courseCode)
	} else {
		results, err = c.ResultService.History(claims.UserID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// GetUserTests godoc
// @Summary Test history for a given user
// @Description Only the user themselves or an admin may read it
// @Tags tests
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "user id"
// @Success 200 {object} util.Response{data=[]model.TestResult} "success"
// @Failure 403 {object} util.Response "forbidden"
// @Router /api/tests/user/{userId} [get]
func (c *TestResultController) GetUserTests(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userID := util.MustParseUint(ctx.Param("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if claims.UserID != userID && claims.Role != model.Admin {
		util.Forbidden(ctx)
		return
	}

	results, err := c.ResultService.History(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
