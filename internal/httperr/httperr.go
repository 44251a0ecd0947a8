package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteBusiness maps a business error to its HTTP status. Anything that is
// not a BusinessError is an unexpected store failure and stays generic.
func WriteBusiness(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, "Invalid request.")
	case KindConflict:
		Conflict(c, be.Code, "Conflicting request.")
	case KindPermission:
		Forbidden(c, be.Code, "Not allowed.")
	case KindNotFound:
		NotFound(c, be.Code, "Not found.")
	case KindState:
		Write(c, http.StatusUnprocessableEntity, be.Code, "Invalid state transition.")
	default:
		Internal(c, be.Code, "Unexpected error.")
	}
}
