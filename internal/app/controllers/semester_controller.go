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

// SemesterController handles semester related operations
type SemesterController struct {
	semesterService *services.SemesterService
	logger          zerolog.Logger
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService *services.SemesterService, logger zerolog.Logger) *SemesterController {
	return &SemesterController{
		semesterService: semesterService,
		logger:          logger,
	}
}

// CreateSemester handles semester creation
// @Summary Create a semester
// @Description Creates a new semester for a year and term. Admin only.
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSemesterRequest true "Semester information"
// @Success 201 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Semester already exists for this year and term"
// @Router /semesters [post]
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	semester, err := c.semesterService.CreateSemester(ctx.Request.Context(), req.Year, models.Term(req.Term))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("semesterId", semester.ID).
		Int("year", semester.Year).
		Str("term", string(semester.Term)).
		Msg("Semester created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewSemesterResponse(semester), "Semester created successfully"))
}

// ListSemesters handles semester listing
// @Summary List all semesters
// @Description Returns all semesters ordered by year and term
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterResponse} "Semesters"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /semesters [get]
func (c *SemesterController) ListSemesters(ctx *gin.Context) {
	semesters, err := c.semesterService.ListSemesters(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSemesterListResponse(semesters), ""))
}

// GetSemester handles semester retrieval by ID
// @Summary Get a semester
// @Description Returns a single semester by ID
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id} [get]
func (c *SemesterController) GetSemester(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	semester, err := c.semesterService.GetSemesterByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSemesterResponse(semester), ""))
}
