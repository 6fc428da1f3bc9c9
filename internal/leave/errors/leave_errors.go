package leaveerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found",
		http.StatusNotFound,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidState,
		"Invalid action",
		http.StatusBadRequest,
	)
	ErrLeaveConcurrentUpdate = apperror.New(
		apperror.CodeConflict,
		"Leave was modified by another request",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal to end_date",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Leave already exists in an overlapping period",
		http.StatusConflict,
	)
)
