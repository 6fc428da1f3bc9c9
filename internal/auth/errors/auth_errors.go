package autherrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

const msgAuthRequired = "Authentication required"

// The three credential failures share one code and message so a client cannot
// tell a missing credential from a forged or expired one.
var (
	ErrUnauthenticated = apperror.New(
		apperror.CodeUnauthorized,
		msgAuthRequired,
		http.StatusUnauthorized,
	)
	ErrInvalidCredential = apperror.New(
		apperror.CodeUnauthorized,
		msgAuthRequired,
		http.StatusUnauthorized,
	)
	ErrExpiredCredential = apperror.New(
		apperror.CodeUnauthorized,
		msgAuthRequired,
		http.StatusUnauthorized,
	)

	ErrInvalidLogin = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered in this company",
		http.StatusConflict,
	)
	ErrSlugTaken = apperror.New(
		apperror.CodeConflict,
		"Company slug is already taken",
		http.StatusConflict,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department not found in this company",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
)
