package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ugc-srv/pkg/errors"
	"ugc-srv/pkg/discord"
)

// OK renders a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error renders an error response. HTTPError values keep their status code;
// anything else becomes a 400 with the raw error message. Server-side (5xx)
// failures are reported to the ops webhook when one is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= http.StatusInternalServerError && d != nil {
			go reportToOps(c, d, err)
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// ErrorWithMap renders an error response after translating err through mapping.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range mapping {
		if errors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// Unauthorized renders a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound renders a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// PanicError renders a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		go reportToOps(c, d, fmt.Errorf("panic: %v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func reportToOps(c *gin.Context, d discord.IDiscord, err error) {
	_ = d.SendError(context.Background(),
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
		"Request failed", err)
}
