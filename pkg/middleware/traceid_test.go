package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r := traceRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	_, err := uuid.Parse(w.Header().Get("X-Trace-ID"))
	require.NoError(t, err)
}

func TestTraceIDInboundPassthrough(t *testing.T) {
	r := traceRouter()
	inbound := uuid.NewString()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Trace-ID", inbound)
	r.ServeHTTP(w, req)
	assert.Equal(t, inbound, w.Header().Get("X-Trace-ID"))

	// A malformed inbound id is replaced, not echoed.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Trace-ID", "not-a-trace")
	r.ServeHTTP(w, req)

	echoed := w.Header().Get("X-Trace-ID")
	assert.NotEqual(t, "not-a-trace", echoed)
	_, err := uuid.Parse(echoed)
	require.NoError(t, err)
}
