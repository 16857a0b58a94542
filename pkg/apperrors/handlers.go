package apperrors

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler converts errors to HTTP responses at the handler boundary.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		switch {
		case Is(err, context.DeadlineExceeded):
			appErr = TimeoutError(err)
		default:
			appErr = InternalError(err)
		}
		if !h.Debug {
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("server error: %v", appErr)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the shorthand used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: true}
	handler.HandleGinError(c, err)
}

// AsAppError unwraps err into an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
