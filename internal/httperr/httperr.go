package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorPageTemplate is the template rendered for every non-form failure.
const ErrorPageTemplate = "error"

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func Write(c *gin.Context, status int, code, message string) {
	c.HTML(status, ErrorPageTemplate, gin.H{
		"Title": http.StatusText(status),
		"Error": HTTPError{
			Status:  status,
			Code:    code,
			Message: message,
		},
	})
	c.Abort()
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
