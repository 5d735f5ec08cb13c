package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the standardized API response envelope: a human-readable
// message, optional payload, and optional field-level validation errors.
type Response struct {
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Code    ErrCode           `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success sends a successful JSON response with the given status and message.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Message: message,
		Data:    data,
	})
}

// Fail sends an error response for the given error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Response{
		Message: GetMessage(code),
		Code:    code,
	})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Response{
		Message: GetMessage(code),
		Code:    code,
		Errors:  fields,
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Response{
		Message: GetMessage(code),
		Code:    code,
	})
}
