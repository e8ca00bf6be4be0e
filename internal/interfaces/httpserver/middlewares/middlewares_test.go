package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"smart-search-agent/internal/interfaces/httpserver/responses"
	"smart-search-agent/utils/platformerrors"
)

func TestRequestIDPropagatesToErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), RequestLogger(zerolog.New(&logs)))
	router.POST("/mcp", func(c *gin.Context) {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "empty MCP request body", "mcp-empty-body")
	})

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"abc-123"`)
	assert.Contains(t, logs.String(), `"error_uuid":"mcp-empty-body"`)
	assert.Contains(t, logs.String(), `"request_id":"abc-123"`)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.POST("/mcp", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
