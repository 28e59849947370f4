package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/civicmap/civic-reports/internal/config"
	"github.com/civicmap/civic-reports/internal/geo"
	"github.com/civicmap/civic-reports/internal/handler/http/v1/mocks"
	"github.com/civicmap/civic-reports/internal/llm"
	"github.com/civicmap/civic-reports/internal/metrics"
	"github.com/civicmap/civic-reports/internal/models"
	"github.com/civicmap/civic-reports/internal/service"
	"github.com/civicmap/civic-reports/internal/votehistory"
)

type testMocks struct {
	reports       *mocks.MockReportService
	analytics     *mocks.MockAnalyticsService
	announcements *mocks.MockAnnouncementService
	mapService    *mocks.MockMapService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		reports:       mocks.NewMockReportService(ctrl),
		analytics:     mocks.NewMockAnalyticsService(ctrl),
		announcements: mocks.NewMockAnnouncementService(ctrl),
		mapService:    mocks.NewMockMapService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.reports, m.analytics, m.announcements, m.mapService, logger, cfg, metrics.New())

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Type:        "issue",
		Description: "Broken streetlight on Main St",
		Location:    LocationDTO{Lat: 32.7801, Lng: -96.8005, City: "Dallas", State: "TX"},
	}
	created := &models.Report{
		ID:          "issue-001",
		Description: reqBody.Description,
		Location:    models.Location{Lat: 32.7801, Lng: -96.8005, City: "Dallas", State: "TX"},
		Timestamp:   "2026-09-01T10:00:00Z",
		Status:      "open",
	}

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.CreateReportInput) (*models.Report, error) {
			assert.Equal(t, models.CategoryIssue, input.Category)
			assert.Equal(t, reqBody.Description, input.Description)
			return created, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CreateReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "issue-001", resp.Report.ID)
	assert.Equal(t, "issue", resp.Report.Type)
}

func TestCreateReport_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"type": "issue"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateReport_UnknownType(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Type:        "complaint",
		Description: "Something",
		Location:    LocationDTO{Lat: 10, Lng: 20},
	}

	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'oneof' tag")
}

func TestCreateReport_MissingContent(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Type:     "issue",
		Location: LocationDTO{Lat: 10, Lng: 20},
	}

	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil, service.ErrMissingContent).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "description or at least one image is required")
}

func TestCreateReport_Duplicate(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Type:        "issue",
		Description: "Pothole again",
		Location:    LocationDTO{Lat: 32.78, Lng: -96.8004},
	}
	dup := &service.DuplicateError{
		Existing: models.Report{ID: "issue-001", Description: "Pothole on Main St", Votes: 7},
		Distance: 14.2,
	}

	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil, dup).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp DuplicateResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "issue-001", resp.ExistingReport.ID)
	assert.Equal(t, 7, resp.ExistingReport.Votes)
	assert.InDelta(t, 14.2, resp.DistanceMeters, 0.001)
}

func TestListReports_All(t *testing.T) {
	m, router := newTestHandler(t)
	reports := []models.TypedReport{
		{Report: models.Report{ID: "issue-001"}, Type: models.CategoryIssue},
		{Report: models.Report{ID: "idea-001"}, Type: models.CategoryIdea},
	}

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Nil()).Return(reports, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportsListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Reports, 2)
	assert.Equal(t, "issue", resp.Reports[0].Type)
}

func TestListReports_FilteredByType(t *testing.T) {
	m, router := newTestHandler(t)
	category := models.CategoryIdea

	m.reports.EXPECT().ListReports(gomock.Any(), &category).
		Return([]models.TypedReport{{Report: models.Report{ID: "idea-001"}, Type: category}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?type=idea", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "idea-001")
}

func TestListReports_UnknownType(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports?type=unknown", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown report category")
}

func TestVoteReport_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().Vote(gomock.Any(), "issue-001", "client-42").Return(8, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/reports/issue-001/vote", nil, map[string]string{"X-Client-ID": "client-42"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VoteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 8, resp.Votes)
}

func TestVoteReport_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().Vote(gomock.Any(), "issue-999", "").Return(0, service.ErrNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/reports/issue-999/vote", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestDownvoteReport_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().Downvote(gomock.Any(), "idea-002", "client-7").Return(3, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/reports/idea-002/downvote", nil, map[string]string{"X-Client-ID": "client-7"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DownvoteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Downvotes)
}

func TestVoteHistory_Success(t *testing.T) {
	m, router := newTestHandler(t)
	history := map[string]votehistory.Direction{
		"issue-001": votehistory.DirectionUp,
		"idea-003":  votehistory.DirectionDown,
	}

	m.reports.EXPECT().VoteHistory(gomock.Any(), "client-42").Return(history, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/votes/history?clientId=client-42", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VoteHistoryResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "client-42", resp.ClientID)
	assert.Equal(t, "up", resp.Votes["issue-001"])
	assert.Equal(t, "down", resp.Votes["idea-003"])
}

func TestVoteHistory_MissingClientID(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().VoteHistory(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/votes/history", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "client identifier required")
}

func TestGetAnalytics_Success(t *testing.T) {
	m, router := newTestHandler(t)
	result := &service.AnalyticsResult{
		Sentiment: &llm.SentimentAnalysis{Overall: "Healthy"},
		HeatmapData: []geo.HeatmapCluster{
			{Lat: 32.78, Lng: -96.80, Intensity: 6},
		},
		Summary: service.AnalyticsSummary{TotalReports: 5, TotalIssues: 3},
	}

	m.analytics.EXPECT().Analytics(gomock.Any()).Return(result, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalReports":5`)
	assert.Contains(t, w.Body.String(), `"heatmapData"`)
}

func TestGetAnalytics_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)

	m.analytics.EXPECT().Analytics(gomock.Any()).Return(nil, errors.New("disk failure")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetMapClusters_Success(t *testing.T) {
	m, router := newTestHandler(t)
	report := models.TypedReport{Report: models.Report{ID: "issue-001"}, Type: models.CategoryIssue}
	features := []geo.Feature{
		{
			Cluster:        true,
			Lat:            32.78,
			Lng:            -96.80,
			PointCount:     12,
			CategoryCounts: geo.CategoryCounts{models.CategoryIssue: 8, models.CategoryIdea: 4},
		},
		{Lat: 33.0, Lng: -97.0, PointCount: 1, Report: &report},
	}

	m.mapService.EXPECT().
		Clusters(gomock.Any(), geo.Bounds{West: -98, South: 32, East: -96, North: 34}, 10, gomock.Nil()).
		Return(features, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/clusters?west=-98&south=32&east=-96&north=34&zoom=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"FeatureCollection"`)
	assert.Contains(t, w.Body.String(), `"point_count":12`)
	assert.Contains(t, w.Body.String(), `"point_count_abbreviated":"12"`)
	assert.Contains(t, w.Body.String(), `"size":40`)
	assert.Contains(t, w.Body.String(), `"issue-001"`)
}

func TestGetMapClusters_TypeFilter(t *testing.T) {
	m, router := newTestHandler(t)

	m.mapService.EXPECT().
		Clusters(gomock.Any(), gomock.Any(), 5, []models.Category{models.CategoryIssue, models.CategoryIdea}).
		Return([]geo.Feature{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/clusters?west=-98&south=32&east=-96&north=34&zoom=5&types=issue,idea", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetMapClusters_InvalidBounds(t *testing.T) {
	m, router := newTestHandler(t)

	m.mapService.EXPECT().Clusters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/map/clusters?west=abc&south=32&east=-96&north=34&zoom=5", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid bounds: west")
}

func TestListAnnouncements_Success(t *testing.T) {
	m, router := newTestHandler(t)
	list := []models.Announcement{
		{ID: "announcement-2", Title: "New"},
		{ID: "announcement-1", Title: "Old"},
	}

	m.announcements.EXPECT().List(gomock.Any()).Return(list, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/announcements", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AnnouncementsListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Announcements, 2)
	assert.Equal(t, "announcement-2", resp.Announcements[0].ID)
}

// buildAnnouncementForm собирает multipart-тело формы создания анонса
func buildAnnouncementForm(t *testing.T, fields map[string]string, pdfName string, pdf []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if pdfName != "" {
		part, err := writer.CreateFormFile("pdf", pdfName)
		require.NoError(t, err)
		_, err = part.Write(pdf)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateAnnouncement_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.announcements.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.CreateAnnouncementInput) (*models.Announcement, error) {
			assert.Equal(t, "Road Repair Plan", input.Title)
			assert.Equal(t, "issue", input.ReportType)
			assert.Equal(t, "plan.pdf", input.PDFName)
			assert.Equal(t, []byte("%PDF-1.4"), input.PDF)
			return &models.Announcement{ID: "announcement-1", Title: input.Title, Status: "active"}, nil
		}).Times(1)

	body, contentType := buildAnnouncementForm(t, map[string]string{
		"title":      "Road Repair Plan",
		"reportType": "issue",
	}, "plan.pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest("POST", "/api/v1/announcements", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CreateAnnouncementResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "announcement-1", resp.Announcement.ID)
}

func TestCreateAnnouncement_MissingPDF(t *testing.T) {
	m, router := newTestHandler(t)

	m.announcements.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	body, contentType := buildAnnouncementForm(t, map[string]string{
		"title":      "No Document",
		"reportType": "issue",
	}, "", nil)

	req := httptest.NewRequest("POST", "/api/v1/announcements", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PDF file is required")
}

func TestCreateAnnouncement_Unauthorized(t *testing.T) {
	m, router := newTestHandler(t)

	m.announcements.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	body, contentType := buildAnnouncementForm(t, map[string]string{
		"title":      "Road Repair Plan",
		"reportType": "issue",
	}, "plan.pdf", []byte("%PDF"))

	req := httptest.NewRequest("POST", "/api/v1/announcements", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestDeleteAnnouncement_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.announcements.EXPECT().Delete(gomock.Any(), "announcement-1").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/announcements?id=announcement-1", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DeleteAnnouncementResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Announcement deleted successfully", resp.Message)
}

func TestDeleteAnnouncement_MissingID(t *testing.T) {
	m, router := newTestHandler(t)

	m.announcements.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/announcements", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "announcement id is required")
}

func TestDeleteAnnouncement_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.announcements.EXPECT().Delete(gomock.Any(), "announcement-404").Return(service.ErrNotFound).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/announcements?id=announcement-404", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_NoKeysConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	// Без настроенных ключей защита отключена
	cfg := &config.Config{}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_RespectsClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-Request-ID": "req-abc"})

	assert.Equal(t, "req-abc", w.Header().Get("X-Request-ID"))
}
