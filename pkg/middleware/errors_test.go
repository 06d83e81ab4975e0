package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/snowflake-service/pkg/apperror"
	"github.com/weiawesome/snowflake-service/pkg/log"
	"github.com/weiawesome/snowflake-service/pkg/response"
)

func serve(t *testing.T, opts ErrorOptions, h gin.HandlerFunc) (int, response.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(opts))
	r.GET("/x", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body response.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestErrorHandler_AppError(t *testing.T) {
	code, body := serve(t, ErrorOptions{}, func(c *gin.Context) {
		_ = c.Error(apperror.BadRequest("count must be between 1 and 1000", nil))
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	assert.Equal(t, "count must be between 1 and 1000", body.Error.Message)
}

func TestErrorHandler_WrappedAppError(t *testing.T) {
	code, body := serve(t, ErrorOptions{}, func(c *gin.Context) {
		inner := apperror.Unavailable("clock moved backwards", errors.New("drift 5ms"))
		_ = c.Error(errors.Join(errors.New("generate"), inner))
	})

	assert.Equal(t, http.StatusServiceUnavailable, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAVAILABLE", body.Error.Code)
	assert.Nil(t, body.Error.Detail)
}

func TestErrorHandler_GenericErrorHidden(t *testing.T) {
	code, body := serve(t, ErrorOptions{}, func(c *gin.Context) {
		_ = c.Error(errors.New("secret internals"))
	})

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, genericErrorMessage, body.Error.Message)
}

func TestErrorHandler_GenericErrorExposed(t *testing.T) {
	_, body := serve(t, ErrorOptions{ExposeDetails: true}, func(c *gin.Context) {
		_ = c.Error(errors.New("secret internals"))
	})

	require.NotNil(t, body.Error)
	assert.Equal(t, "secret internals", body.Error.Message)
	assert.Equal(t, "secret internals", body.Error.Detail)
}

func TestErrorHandler_NoError(t *testing.T) {
	code, body := serve(t, ErrorOptions{}, func(c *gin.Context) {
		response.Success(c, gin.H{"id": "1"})
	})

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)
}

func TestErrorHandler_GenericErrorCarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(log.GinMiddleware(zerolog.Nop()))
	r.Use(ErrorHandler(ErrorOptions{}))
	r.GET("/x", func(c *gin.Context) {
		_ = c.Error(errors.New("secret internals"))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, map[string]interface{}{"request_id": "abc-123"}, body.Error.Detail)
}
