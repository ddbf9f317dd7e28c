package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/selin/acadcore/internal/app/models/dto"
	"github.com/selin/acadcore/internal/app/services"
	"github.com/selin/acadcore/internal/middleware"
)

// LoadController handles per-semester credit limit assignments
type LoadController struct {
	loadService *services.LoadService
	logger      zerolog.Logger
}

// NewLoadController creates a new LoadController
func NewLoadController(loadService *services.LoadService, logger zerolog.Logger) *LoadController {
	return &LoadController{
		loadService: loadService,
		logger:      logger,
	}
}

// AssignTeacherLoad handles teacher load assignment
// @Summary Assign a teacher's credit limit
// @Description Sets the maximum credits a teacher may offer in a semester. Admin only.
// @Tags loads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignTeacherLoadRequest true "Teacher load information"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherLoadResponse} "Load assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required or user is not a teacher"
// @Failure 404 {object} dto.ErrorResponse "Teacher or semester not found"
// @Failure 409 {object} dto.ErrorResponse "Load already assigned for this semester"
// @Router /loads/teachers [post]
func (c *LoadController) AssignTeacherLoad(ctx *gin.Context) {
	var req dto.AssignTeacherLoadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	load, err := c.loadService.AssignTeacherLoad(ctx.Request.Context(), req.TeacherID, req.SemesterID, req.MaxCredits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("teacherId", load.TeacherID).
		Int64("semesterId", load.SemesterID).
		Int("maxCredits", load.MaxCredits).
		Msg("Teacher load assigned")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewTeacherLoadResponse(load), "Teacher load assigned successfully"))
}

// AssignStudentLoad handles student load assignment
// @Summary Assign a student's credit limit
// @Description Sets the maximum credits a student may enroll in for a semester. Admin only.
// @Tags loads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignStudentLoadRequest true "Student load information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentLoadResponse} "Load assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required or user is not a student"
// @Failure 404 {object} dto.ErrorResponse "Student or semester not found"
// @Failure 409 {object} dto.ErrorResponse "Load already assigned for this semester"
// @Router /loads/students [post]
func (c *LoadController) AssignStudentLoad(ctx *gin.Context) {
	var req dto.AssignStudentLoadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	load, err := c.loadService.AssignStudentLoad(ctx.Request.Context(), req.StudentID, req.SemesterID, req.MaxCredits)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentId", load.StudentID).
		Int64("semesterId", load.SemesterID).
		Int("maxCredits", load.MaxCredits).
		Msg("Student load assigned")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewStudentLoadResponse(load), "Student load assigned successfully"))
}
