package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/app/models/dto"
	"github.com/selin/acadcore/internal/app/services"
	"github.com/selin/acadcore/internal/middleware"
)

// GradeController handles grade assignment operations
type GradeController struct {
	gradeService *services.GradeService
	logger       zerolog.Logger
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService, logger zerolog.Logger) *GradeController {
	return &GradeController{
		gradeService: gradeService,
		logger:       logger,
	}
}

// AssignGrade handles grade assignment
// @Summary Assign a grade
// @Description Assigns a grade to an enrolled student. Teachers grade their own offerings; admins pass teacherId.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignGradeRequest true "Grade information"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Grade assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or grade out of range"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Teacher does not offer this course"
// @Failure 404 {object} dto.ErrorResponse "Student, semester, course or enrollment not found"
// @Router /grades [post]
func (c *GradeController) AssignGrade(ctx *gin.Context) {
	var req dto.AssignGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	teacherID, err := resolveActorIDFromBody(ctx, models.RoleTeacher, "teacherId", req.TeacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	enrollment, err := c.gradeService.GradeStudentInCourse(ctx.Request.Context(), teacherID, req.StudentID, req.SemesterID, req.CourseID, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("enrollmentId", enrollment.ID).
		Int64("teacherId", teacherID).
		Float64("grade", req.Grade).
		Msg("Grade assigned")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEnrollmentResponse(enrollment), "Grade assigned successfully"))
}
