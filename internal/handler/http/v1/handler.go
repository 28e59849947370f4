package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/civicmap/civic-reports/internal/config"
	"github.com/civicmap/civic-reports/internal/geo"
	"github.com/civicmap/civic-reports/internal/metrics"
	"github.com/civicmap/civic-reports/internal/models"
	"github.com/civicmap/civic-reports/internal/service"
)

// Верхняя граница размера загружаемого PDF
const maxPDFSize = 10 << 20

type Handler struct {
	reportService       service.ReportService
	analyticsService    service.AnalyticsService
	announcementService service.AnnouncementService
	mapService          service.MapService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
	metrics             *metrics.Metrics
}

func NewHandler(
	reportService service.ReportService,
	analyticsService service.AnalyticsService,
	announcementService service.AnnouncementService,
	mapService service.MapService,
	logger *logrus.Logger,
	cfg *config.Config,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		reportService:       reportService,
		analyticsService:    analyticsService,
		announcementService: announcementService,
		mapService:          mapService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
		metrics:             m,
	}
}

// respondServiceError отображает ошибку сервисного слоя в HTTP-код.
// Внутренние ошибки наружу не утекают: клиент видит обезличенное тело.
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var dup *service.DuplicateError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, DuplicateResponse{
			Error: "A similar report already exists nearby",
			ExistingReport: DuplicateReportInfo{
				ID:          dup.Existing.ID,
				Description: dup.Existing.Description,
				Votes:       dup.Existing.Votes,
			},
			DistanceMeters: dup.Distance,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrMissingContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrMissingContent.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new civic report
// @Description Submit a new geo-tagged report. Rejects near-duplicates of the same type within the configured radius.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Report creation request"
// @Success 200 {object} CreateReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} DuplicateResponse "A similar report already exists nearby"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := models.ParseCategory(input.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), service.CreateReportInput{
		Category:    category,
		Description: input.Description,
		Location:    DTOToCreateInputLocation(input.Location),
		Images:      DTOToReportImages(input.Images),
	})
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	h.metrics.ReportsCreatedTotal.WithLabelValues(category.String()).Inc()
	c.JSON(http.StatusOK, CreateReportResponse{
		Success: true,
		Report:  ModelToReportResponse(category, report),
	})
}

// @Summary Get a list of reports
// @Description Get all reports, optionally filtered by a single report type.
// @Tags Reports
// @Accept json
// @Produce json
// @Param type query string false "Report type filter" Enums(issue, idea, community-event, government-event)
// @Success 200 {object} ReportsListResponse
// @Failure 400 {object} map[string]string "Unknown report type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	var category *models.Category
	if raw := c.Query("type"); raw != "" {
		parsed, err := models.ParseCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category = &parsed
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), category)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ReportsListResponse{Reports: ModelsToReportResponses(reports)})
}

// @Summary Upvote a report
// @Description Increment the vote counter of a report. Optional X-Client-ID header records the vote in client history.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param X-Client-ID header string false "Client identifier for vote history"
// @Success 200 {object} VoteResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/vote [post]
func (h *Handler) voteReport(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "voteReport").WithField("id", id)

	votes, err := h.reportService.Vote(c.Request.Context(), id, c.GetHeader("X-Client-ID"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	h.metrics.VotesTotal.WithLabelValues("up").Inc()
	c.JSON(http.StatusOK, VoteResponse{Success: true, Votes: votes})
}

// @Summary Downvote a report
// @Description Increment the downvote counter of a report. Optional X-Client-ID header records the vote in client history.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param X-Client-ID header string false "Client identifier for vote history"
// @Success 200 {object} DownvoteResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/downvote [post]
func (h *Handler) downvoteReport(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "downvoteReport").WithField("id", id)

	downvotes, err := h.reportService.Downvote(c.Request.Context(), id, c.GetHeader("X-Client-ID"))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	h.metrics.VotesTotal.WithLabelValues("down").Inc()
	c.JSON(http.StatusOK, DownvoteResponse{Success: true, Downvotes: downvotes})
}

// @Summary Get vote history for a client
// @Description Get the map of report IDs to vote directions recorded for a client.
// @Tags Reports
// @Accept json
// @Produce json
// @Param clientId query string true "Client identifier"
// @Success 200 {object} VoteHistoryResponse
// @Failure 400 {object} map[string]string "Missing client identifier"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /votes/history [get]
func (h *Handler) voteHistory(c *gin.Context) {
	log := h.logger.WithField("method", "voteHistory")

	clientID := c.Query("clientId")
	if clientID == "" {
		clientID = c.GetHeader("X-Client-ID")
	}
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client identifier required"})
		return
	}

	history, err := h.reportService.VoteHistory(c.Request.Context(), clientID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	votes := make(map[string]string, len(history))
	for reportID, dir := range history {
		votes[reportID] = string(dir)
	}
	c.JSON(http.StatusOK, VoteHistoryResponse{ClientID: clientID, Votes: votes})
}

// @Summary Get city analytics
// @Description Recompute sentiment analysis, heatmap clusters and summary counters over all reports.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} service.AnalyticsResult
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	log := h.logger.WithField("method", "getAnalytics")

	result, err := h.analyticsService.Analytics(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get clustered map markers
// @Description Cluster reports of the visible map area into zoom-dependent GeoJSON features.
// @Tags Map
// @Accept json
// @Produce json
// @Param west query number true "Western bound, degrees"
// @Param south query number true "Southern bound, degrees"
// @Param east query number true "Eastern bound, degrees"
// @Param north query number true "Northern bound, degrees"
// @Param zoom query int true "Map zoom level"
// @Param types query string false "Comma-separated report type filter"
// @Success 200 {object} map[string]any "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Invalid bounds or zoom"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/clusters [get]
func (h *Handler) getMapClusters(c *gin.Context) {
	log := h.logger.WithField("method", "getMapClusters")

	bounds, err := parseBounds(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zoom, err := strconv.Atoi(c.Query("zoom"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zoom"})
		return
	}

	var categories []models.Category
	if raw := c.Query("types"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			parsed, err := models.ParseCategory(strings.TrimSpace(part))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			categories = append(categories, parsed)
		}
	}

	features, err := h.mapService.Clusters(c.Request.Context(), bounds, zoom, categories)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, FeaturesToGeoJSON(features))
}

// parseBounds читает границы видимой области из query-параметров
func parseBounds(c *gin.Context) (geo.Bounds, error) {
	var b geo.Bounds
	for _, q := range []struct {
		name string
		dst  *float64
	}{
		{"west", &b.West},
		{"south", &b.South},
		{"east", &b.East},
		{"north", &b.North},
	} {
		v, err := strconv.ParseFloat(c.Query(q.name), 64)
		if err != nil {
			return geo.Bounds{}, errors.New("invalid bounds: " + q.name)
		}
		*q.dst = v
	}
	return b, nil
}

// @Summary Get a list of announcements
// @Description Get all published government announcements, newest first.
// @Tags Announcements
// @Accept json
// @Produce json
// @Success 200 {object} AnnouncementsListResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /announcements [get]
func (h *Handler) listAnnouncements(c *gin.Context) {
	log := h.logger.WithField("method", "listAnnouncements")

	announcements, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AnnouncementsListResponse{Announcements: ModelsToAnnouncementResponses(announcements)})
}

// @Summary Publish a government announcement
// @Description Upload a PDF document, summarize it and publish as an announcement. Requires API key.
// @Tags Announcements
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Announcement title"
// @Param reportType formData string true "Related report type" Enums(issue, idea, community-event, government-event)
// @Param relatedReportId formData string false "Related report ID"
// @Param pdf formData file true "PDF document"
// @Success 200 {object} CreateAnnouncementResponse
// @Failure 400 {object} map[string]string "Invalid form data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /announcements [post]
func (h *Handler) createAnnouncement(c *gin.Context) {
	log := h.logger.WithField("method", "createAnnouncement")

	var form CreateAnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PDF file is required"})
		return
	}
	if fileHeader.Size > maxPDFSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PDF file is too large"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only PDF files are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(io.LimitReader(file, maxPDFSize))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), service.CreateAnnouncementInput{
		Title:           form.Title,
		ReportType:      form.ReportType,
		RelatedReportID: form.RelatedReportID,
		PDFName:         fileHeader.Filename,
		PDF:             pdf,
	})
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, CreateAnnouncementResponse{
		Success:      true,
		Announcement: ModelToAnnouncementResponse(announcement),
	})
}

// @Summary Delete an announcement
// @Description Delete an announcement and its stored PDF. Requires API key.
// @Tags Announcements
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id query string true "Announcement ID"
// @Success 200 {object} DeleteAnnouncementResponse
// @Failure 400 {object} map[string]string "Missing announcement ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Announcement not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /announcements [delete]
func (h *Handler) deleteAnnouncement(c *gin.Context) {
	id := c.Query("id")
	log := h.logger.WithField("method", "deleteAnnouncement").WithField("id", id)

	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "announcement id is required"})
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DeleteAnnouncementResponse{
		Success: true,
		Message: "Announcement deleted successfully",
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
