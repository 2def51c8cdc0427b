package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InternalServerErrorMessage is the only error text clients ever see
const InternalServerErrorMessage = "Internal Server Error"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse sends data as the bare JSON body with status 200
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// MessageSuccessResponse sends {"message": message} with status 200
func MessageSuccessResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{Error: errorMessage})
}

// InternalServerErrorResponse sends the generic 500 response
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, InternalServerErrorMessage)
}
