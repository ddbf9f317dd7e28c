package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/app/models/dto"
	"github.com/selin/acadcore/internal/app/services"
	"github.com/selin/acadcore/internal/middleware"
)

// OfferingController handles course offering operations
type OfferingController struct {
	offeringService *services.OfferingService
	logger          zerolog.Logger
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService *services.OfferingService, logger zerolog.Logger) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
		logger:          logger,
	}
}

// CreateOffering handles course offering creation
// @Summary Offer a course
// @Description Assigns a course to a teacher for a semester, enforcing the teacher's credit limit. Admin only.
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOfferingRequest true "Offering information"
// @Success 201 {object} dto.APIResponse{data=dto.OfferingResponse} "Offering created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Teacher, semester or course not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate offering, missing load or credit limit exceeded"
// @Router /offerings [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.CreateOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	offering, err := c.offeringService.CreateCourseOffering(ctx.Request.Context(), req.TeacherID, req.SemesterID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("offeringId", offering.ID).
		Int64("teacherId", offering.TeacherID).
		Int64("semesterId", offering.SemesterID).
		Int64("courseId", offering.CourseID).
		Msg("Course offering created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewOfferingResponse(offering), "Course offering created successfully"))
}

// GetTeacherCourses handles listing the courses a teacher offers in a semester
// @Summary List a teacher's courses
// @Description Returns the courses a teacher offers in a semester. Teachers see their own; admins pass teacherId.
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param semesterId query int true "Semester ID"
// @Param teacherId query int false "Teacher ID (admin only)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester or teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Teacher or admin role required"
// @Failure 404 {object} dto.ErrorResponse "Teacher or semester not found"
// @Router /offerings/teacher-courses [get]
func (c *OfferingController) GetTeacherCourses(ctx *gin.Context) {
	semesterID, err := strconv.ParseInt(ctx.Query("semesterId"), 10, 64)
	if err != nil || semesterID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID").WithField("semesterId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacherID, err := resolveActorID(ctx, models.RoleTeacher, "teacherId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.offeringService.GetTeacherCoursesBySemester(ctx.Request.Context(), teacherID, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseListResponse(courses), ""))
}
