package response

import (
	"go-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// ceil(total / limit)
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

type ApiEnvelope struct {
	Ok         bool            `json:"ok"`
	Data       any             `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Stats      any             `json:"stats,omitempty"`
	Error      any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:         true,
		Data:       data,
		Pagination: meta,
	})
}

// SuccessWithMessage is used by state-changing endpoints that report what happened.
func SuccessWithMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, ApiEnvelope{
		Ok:      true,
		Data:    data,
		Message: message,
	})
}

// List writes a page of rows together with its pagination and optional aggregate stats.
func List(c *gin.Context, data any, meta PaginationMeta, stats any) {
	c.JSON(200, ApiEnvelope{
		Ok:         true,
		Data:       data,
		Pagination: &meta,
		Stats:      stats,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// AppError writes any error through apperror.ToHTTP.
func AppError(c *gin.Context, err error) apperror.HTTPError {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	return httpErr
}
