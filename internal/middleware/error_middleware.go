package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selin/acadcore/internal/app/models/dto"
	"github.com/selin/acadcore/internal/pkg/apperrors"
	"github.com/selin/acadcore/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. The error's own
// message is passed through so callers see the rule that was violated.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 400 - validation and malformed input
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidEmail,
		apperrors.ErrInvalidPassword,
		apperrors.ErrBadRequest,
		apperrors.ErrCourseSelfPrerequisite):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)

	case apperrors.Is(err, apperrors.ErrInvalidGrade):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidGrade, err)

	// 401 - authentication
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, err)

	case apperrors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, err)

	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, err)

	case apperrors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, err)

	// 403 - authorization
	case apperrors.Is(err, apperrors.ErrPermissionDenied,
		apperrors.ErrRoleViolation,
		apperrors.ErrNotOfferingTeacher):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, err)

	// 404 - missing resources
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrSemesterNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrLoadNotFound,
		apperrors.ErrEnrollmentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)

	// 409 - duplicates and domain rule conflicts
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrSemesterAlreadyExists,
		apperrors.ErrCourseCodeExists,
		apperrors.ErrLoadAlreadyAssigned,
		apperrors.ErrOfferingAlreadyExists,
		apperrors.ErrAlreadyEnrolled):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err)

	case apperrors.Is(err, apperrors.ErrCreditLimitExceeded):
		respond(c, http.StatusConflict, dto.ErrorCodeCreditLimitExceeded, err)

	case apperrors.Is(err, apperrors.ErrLoadNotConfigured):
		respond(c, http.StatusConflict, dto.ErrorCodeLoadNotConfigured, err)

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, err error) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, err.Error())))
}
