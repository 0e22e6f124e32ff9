package controllers

import (
	"github.com/gin-gonic/gin"

	apperrors "labourlink/errors"
	"labourlink/response"
)

// currentUser reads the identity the auth middleware stored on the context
func currentUser(c *gin.Context) (uint, int, bool) {
	id, ok := c.Get("userID")
	if !ok {
		response.Unauthorized(c)
		return 0, 0, false
	}
	role, ok := c.Get("userRole")
	if !ok {
		response.Unauthorized(c)
		return 0, 0, false
	}
	return id.(uint), role.(int), true
}

// handleServiceError translates an AppError into the right HTTP reply
func handleServiceError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeDBNotFound, apperrors.ErrCodeUserNotFound:
		response.NotFound(c)
	case apperrors.ErrCodeDBDuplicate, apperrors.ErrCodeAlreadyAssigned,
		apperrors.ErrCodeDuplicateAttendance, apperrors.ErrCodeIDAssignmentConflict:
		response.Conflict(c, appErr.Message)
	case apperrors.ErrCodeInvalidTransition, apperrors.ErrCodeInvalidStatus,
		apperrors.ErrCodeProjectFull, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeArithmeticBound, apperrors.ErrCodeValidation:
		response.BadRequest(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}
