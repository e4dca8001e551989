package utils

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is attached to list responses only.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

func NewPagination(total int64, page, limit int) *Pagination {
	return &Pagination{
		Total: total,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
		Limit: limit,
	}
}

// Send writes the standard envelope; success mirrors the status class.
func Send(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Success: status < 400,
		Message: message,
		Data:    data,
	})
}

// SendPaginated writes a list page together with its pagination block.
func SendPaginated(c *gin.Context, status int, message string, data any, p *Pagination) {
	c.JSON(status, Response{
		Success:    status < 400,
		Message:    message,
		Data:       data,
		Pagination: p,
	})
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError writes the 400 body for schema mismatches, with per-field
// messages when the binding error carries them.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	fields := []fieldError{}
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, fieldError{
				Field:   fe.Field(),
				Message: "failed validation on '" + fe.Tag() + "'",
			})
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Validation error",
		"errors":  fields,
	})
}

// Error is the single error responder: AppErrors keep their status and
// message, anything else is logged and answered as a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Send(c, appErr.Code, appErr.Message, nil)
		return
	}
	logrus.WithFields(logrus.Fields{
		"path":  c.FullPath(),
		"error": err.Error(),
	}).Error("unhandled error")
	Send(c, http.StatusInternalServerError, "Something went wrong", nil)
}
