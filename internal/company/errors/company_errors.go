package companyerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

const msgCompanyNotFound = "Company not found"

// ErrTenantNotFound and ErrTenantInactive share a message so a login form
// does not reveal which companies exist but are disabled.
var (
	ErrTenantNotFound = apperror.New(
		apperror.CodeNotFound,
		msgCompanyNotFound,
		http.StatusNotFound,
	)
	ErrTenantInactive = apperror.New(
		apperror.CodeNotFound,
		msgCompanyNotFound,
		http.StatusNotFound,
	)

	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		msgCompanyNotFound,
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of ACTIVE, INACTIVE, SUSPENDED",
		http.StatusBadRequest,
	)
)
