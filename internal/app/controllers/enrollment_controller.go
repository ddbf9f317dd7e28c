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

// EnrollmentController handles student enrollment operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Enroll handles course enrollment
// @Summary Enroll in a course
// @Description Enrolls a student in a course for a semester, enforcing the student's credit limit. Students enroll themselves; admins pass studentId.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Student or admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student, semester or course not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate enrollment, missing load or credit limit exceeded"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	studentID, err := resolveActorIDFromBody(ctx, models.RoleStudent, "studentId", req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.EnrollStudentInCourse(ctx.Request.Context(), studentID, req.SemesterID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("enrollmentId", enrollment.ID).
		Int64("studentId", enrollment.StudentID).
		Int64("semesterId", enrollment.SemesterID).
		Int64("courseId", enrollment.CourseID).
		Msg("Student enrolled")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewEnrollmentResponse(enrollment), "Enrolled successfully"))
}

// ListEnrollments handles listing a student's enrollments in a semester
// @Summary List a student's enrollments
// @Description Returns a student's enrollments for a semester. Students see their own; admins pass studentId.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param semesterId query int true "Semester ID"
// @Param studentId query int false "Student ID (admin only)"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester or student ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Student or admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student or semester not found"
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	semesterID, err := strconv.ParseInt(ctx.Query("semesterId"), 10, 64)
	if err != nil || semesterID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID").WithField("semesterId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID, err := resolveActorID(ctx, models.RoleStudent, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	enrollments, err := c.enrollmentService.GetStudentEnrollmentsBySemester(ctx.Request.Context(), studentID, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEnrollmentListResponse(enrollments), ""))
}
