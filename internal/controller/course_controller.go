package controller

import (
	"encoding/json"
	"errors"

	"nptel_prep_backend/internal/service"
	"nptel_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
}

func NewCourseController(catalogService *service.CatalogService) *CourseController {
	return &CourseController{CatalogService: catalogService}
}

// GetCourses godoc
// @Summary List courses
// @Description Proxies the upstream catalog's course list
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "success"
// @Failure 502 {object} util.Response "catalog unavailable"
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	body, err := c.CatalogService.GetCourses(ctx.Request.Context())
	if err != nil {
		c.renderCatalogError(ctx, err)
		return
	}

	util.Success(ctx, json.RawMessage(body))
}

// GetCourseDetail godoc
// @Summary Course materials and assignments
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseCode path string true "course code"
// @Success 200 {object} util.Response{data=service.CourseDetail} "success"
// @Failure 404 {object} util.Response "course not found"
// @Failure 502 {object} util.Response "catalog unavailable"
// @Router /api/courses/{courseCode} [get]
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	courseCode := ctx.Param("courseCode")

	detail, err := c.CatalogService.GetCourse(ctx.Request.Context(), courseCode)
	if err != nil {
		c.renderCatalogError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// GetCourseAssignments godoc
// @Summary Assignments only for a course
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseCode path string true "course code"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "no assignments for this course"
// @Failure 502 {object} util.Response "catalog unavailable"
// @Router /api/courses/{courseCode}/assignments [get]
func (c *CourseController) GetCourseAssignments(ctx *gin.Context) {
	courseCode := ctx.Param("courseCode")

	detail, err := c.CatalogService.GetCourse(ctx.Request.Context(), courseCode)
	if err != nil {
		c.renderCatalogError(ctx, err)
		return
	}

	if len(detail.Assignments) == 0 {
		c.renderCatalogError(ctx, util.ErrAssignmentsNotFound)
		return
	}

	util.Success(ctx, gin.H{"assignments": detail.Assignments})
}

func (c *CourseController) renderCatalogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "Course not found")
	case errors.Is(err, util.ErrAssignmentsNotFound):
		util.NotFound(ctx, "Assignments not found for this course")
	case errors.Is(err, util.ErrCatalogUnavailable):
		util.BadGateway(ctx, "Failed to fetch course data")
	default:
		util.LogInternalError(ctx, err)
	}
}
