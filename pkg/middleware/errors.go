package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/snowflake-service/pkg/apperror"
	"github.com/weiawesome/snowflake-service/pkg/log"
	"github.com/weiawesome/snowflake-service/pkg/response"
)

const genericErrorMessage = "an error occurred while processing your request"

// ErrorOptions tunes how much of an unexpected error reaches the client.
type ErrorOptions struct {
	// ExposeDetails sends raw error text for non-application errors and the
	// wrapped cause of application errors.
	ExposeDetails bool
}

// ErrorHandler renders the last error a handler attached with c.Error.
// *apperror.Error values keep their status and code; anything else is a 500.
// Handlers that already wrote a body are left alone.
func ErrorHandler(opts ErrorOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		l := log.Ctx(c.Request.Context())

		appErr, ok := apperror.As(err)
		if !ok {
			appErr = apperror.Internal(genericErrorMessage, err)
			if opts.ExposeDetails {
				appErr = apperror.Internal(err.Error(), err)
			} else if reqID := log.RequestID(c.Request.Context()); reqID != "" {
				appErr.Detail = gin.H{"request_id": reqID}
			}
		}

		detail := appErr.Detail
		if opts.ExposeDetails && detail == nil && appErr.Err != nil {
			detail = appErr.Err.Error()
		}

		evt := l.Warn()
		if appErr.Status >= http.StatusInternalServerError {
			evt = l.Error()
		}
		evt.Err(err).
			Str("code", appErr.Code).
			Int(log.FieldStatus, appErr.Status).
			Msg("request failed")

		if c.Writer.Written() {
			return
		}
		response.Error(c, appErr.Status, appErr.Code, appErr.Message, detail)
	}
}
