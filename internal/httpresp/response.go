package httpresp

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Attachment streams a generated file as a download named filename.
func Attachment(c *gin.Context, filename, contentType string, write func(w io.Writer) error) error {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	return write(c.Writer)
}
