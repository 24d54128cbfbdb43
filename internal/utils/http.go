package utils

import (
	"net/http"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    int         `json:"code,omitempty"`
	Reason  string      `json:"reason,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// AppErrorResponse sends the response for a classified application error.
// Unclassified errors are reported as 500 without leaking their text.
func AppErrorResponse(c echo.Context, err error) error {
	return AppErrorResponseWithData(c, err, nil)
}

// AppErrorResponseWithData is AppErrorResponse carrying data, used when the
// client needs state alongside the failure
func AppErrorResponseWithData(c echo.Context, err error, data interface{}) error {
	status := apperror.HTTPStatus(err)
	return c.JSON(status, ErrorResponse{
		Success: false,
		Error:   apperror.PublicMessage(err),
		Code:    status,
		Reason:  string(apperror.ReasonOf(err)),
		Data:    data,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}
