package apperrors

import (
	"github.com/gin-gonic/gin"

	"careconnect_backend/internal/logger"
)

// ErrorResponse is the envelope every failed request is serialized into.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		cause := appErr.Unwrap()
		if cause == nil {
			cause = appErr
		}
		logger.CtxWithError(c.Request.Context(), "server error", cause,
			"code", string(appErr.Code))
		if !h.Debug {
			// Production never leaks internals.
			appErr = New(CodeInternalError, "Internal server error", appErr.HTTPCode)
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the helper handlers call directly.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
