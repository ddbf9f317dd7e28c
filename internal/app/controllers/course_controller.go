package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/selin/acadcore/internal/app/models/dto"
	"github.com/selin/acadcore/internal/app/services"
	"github.com/selin/acadcore/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a new course with optional prerequisites. Admin only.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or prerequisite"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req.Code, req.Name, req.Credits, req.PrerequisiteIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("courseId", course.ID).
		Str("code", course.Code).
		Msg("Course created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewCourseResponse(course), "Course created successfully"))
}

// ListCourses handles course listing
// @Summary List all courses
// @Description Returns all courses, optionally filtered by the semester they are offered in
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param semesterId query int false "Only courses offered in this semester"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	if raw := ctx.Query("semesterId"); raw != "" {
		semesterID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || semesterID <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID").WithField("semesterId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		courses, err := c.courseService.GetCoursesBySemester(ctx.Request.Context(), semesterID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseListResponse(courses), ""))
		return
	}

	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseListResponse(courses), ""))
}

// GetCourse handles course retrieval by ID
// @Summary Get a course
// @Description Returns a single course with its prerequisites
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseResponse(course), ""))
}
