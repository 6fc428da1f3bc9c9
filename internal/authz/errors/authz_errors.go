package authzerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)
	ErrNoDepartmentAssigned = apperror.New(
		apperror.CodeInvalidState,
		"Manager has no department assigned",
		http.StatusBadRequest,
	)
)
