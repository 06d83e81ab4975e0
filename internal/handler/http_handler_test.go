package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/snowflake-service/internal/generator"
	"github.com/weiawesome/snowflake-service/internal/service"
	"github.com/weiawesome/snowflake-service/pkg/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newRouter(t *testing.T, now *atomic.Int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sf, err := generator.NewSnowflake(generator.DefaultSnowflakeConfig(0), generator.WithClock(now.Load))
	require.NoError(t, err)
	svc := service.NewIDService(map[string]generator.Generator{
		service.SchemeSnowflake: sf,
		service.SchemeUUID:      generator.NewUUIDGenerator(),
	})

	r := gin.New()
	r.Use(middleware.ErrorHandler(middleware.ErrorOptions{}))
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestGenerateID(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1000)
	r := newRouter(t, &now)

	code, env := do(t, r, http.MethodPost, "/api/v1/ids/snowflake")
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)

	var body idResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, strconv.FormatUint(1000<<22, 10), body.ID)
}

func TestGenerateBatch(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1)
	r := newRouter(t, &now)

	code, env := do(t, r, http.MethodPost, "/api/v1/ids/uuid/batch?count=5")
	require.Equal(t, http.StatusCreated, code)
	var body batchResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Len(t, body.IDs, 5)

	code, env = do(t, r, http.MethodPost, "/api/v1/ids/snowflake/batch?count=5000")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	code, _ = do(t, r, http.MethodPost, "/api/v1/ids/snowflake/batch?count=many")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUnknownScheme(t *testing.T) {
	var now atomic.Int64
	r := newRouter(t, &now)

	code, env := do(t, r, http.MethodPost, "/api/v1/ids/guid")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestClockMovedBackwards(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1000)
	r := newRouter(t, &now)

	code, _ := do(t, r, http.MethodPost, "/api/v1/ids/snowflake")
	require.Equal(t, http.StatusCreated, code)

	now.Store(generator.DefaultEpoch + 999)
	code, env := do(t, r, http.MethodPost, "/api/v1/ids/snowflake")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "UNAVAILABLE", env.Error.Code)
}

func TestParseAndValidate(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1000)
	r := newRouter(t, &now)

	id := strconv.FormatUint(1000<<22, 10)

	code, env := do(t, r, http.MethodGet, "/api/v1/ids/snowflake/"+id)
	require.Equal(t, http.StatusOK, code)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &parsed))
	assert.Equal(t, float64(generator.DefaultEpoch+1000), parsed["timestamp_ms"])
	assert.Equal(t, float64(0), parsed["node_id"])
	assert.Equal(t, float64(0), parsed["sequence"])

	code, env = do(t, r, http.MethodGet, "/api/v1/ids/snowflake/"+id+"/validate")
	require.Equal(t, http.StatusOK, code)
	var v validateResponse
	require.NoError(t, json.Unmarshal(env.Data, &v))
	assert.True(t, v.Valid)

	code, _ = do(t, r, http.MethodGet, "/api/v1/ids/snowflake/not-a-number")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListSchemes(t *testing.T) {
	var now atomic.Int64
	r := newRouter(t, &now)

	code, env := do(t, r, http.MethodGet, "/api/v1/ids")
	require.Equal(t, http.StatusOK, code)
	var body struct {
		Schemes []string `json:"schemes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, []string{service.SchemeSnowflake, service.SchemeUUID}, body.Schemes)
}
