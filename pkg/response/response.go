package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "voice-worklog/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends the status carried by err (400 for plain errors) with its message.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	he := pkgErrors.AsHTTPError(err)
	if he.StatusCode >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}

	c.JSON(he.StatusCode, Resp{
		ErrorCode: he.Code,
		Message:   he.Message,
		Data:      data,
	})
}

// InternalError sends 500 without leaking err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
