package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddleware_CountsRequests(t *testing.T) {
	// Подготовка
	gin.SetMode(gin.TestMode)
	m := New()
	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Действие
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	// Проверки: счетчик помечен шаблоном маршрута и кодом ответа
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/ping", "200")))
}

func TestHandler_ServesRegistry(t *testing.T) {
	// Подготовка
	gin.SetMode(gin.TestMode)
	m := New()
	m.ReportsCreatedTotal.WithLabelValues("issue").Inc()
	router := gin.New()
	router.GET("/metrics", m.Handler())

	// Действие
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `reports_created_total{type="issue"} 1`)
}
