package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/middleware"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// resolveActorID decides which user an operation acts for. Callers with
// selfRole always act as themselves; admins must name the target user in
// the given query parameter.
func resolveActorID(ctx *gin.Context, selfRole models.RoleType, param string) (int64, error) {
	role, err := middleware.CurrentRole(ctx)
	if err != nil {
		return 0, err
	}

	switch role {
	case selfRole:
		return middleware.CurrentUserID(ctx)
	case models.RoleAdmin:
		id, err := strconv.ParseInt(ctx.Query(param), 10, 64)
		if err != nil || id <= 0 {
			return 0, apperrors.NewBadRequestError(param + " is required for admin callers")
		}
		return id, nil
	default:
		return 0, apperrors.NewForbiddenError("you are not allowed to perform this operation")
	}
}

// resolveActorIDFromBody is resolveActorID for a request-body field.
func resolveActorIDFromBody(ctx *gin.Context, selfRole models.RoleType, field string, bodyID int64) (int64, error) {
	role, err := middleware.CurrentRole(ctx)
	if err != nil {
		return 0, err
	}

	switch role {
	case selfRole:
		return middleware.CurrentUserID(ctx)
	case models.RoleAdmin:
		if bodyID <= 0 {
			return 0, apperrors.NewBadRequestError(field + " is required for admin callers")
		}
		return bodyID, nil
	default:
		return 0, apperrors.NewForbiddenError("you are not allowed to perform this operation")
	}
}
