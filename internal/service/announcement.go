package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/civicmap/civic-reports/internal/config"
	"github.com/civicmap/civic-reports/internal/llm"
	"github.com/civicmap/civic-reports/internal/models"
)

// AnnouncementRepository определяет контракт хранилища анонсов
type AnnouncementRepository interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id string) error
	SavePDF(ctx context.Context, originalName string, data []byte) (fileName string, url string, err error)
}

// CreateAnnouncementInput - данные формы создания анонса
type CreateAnnouncementInput struct {
	Title           string
	ReportType      string
	RelatedReportID string
	PDFName         string
	PDF             []byte
}

// AnnouncementService определяет контракт бизнес-логики анонсов
type AnnouncementService interface {
	Create(ctx context.Context, input CreateAnnouncementInput) (*models.Announcement, error)
	List(ctx context.Context) ([]models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo    AnnouncementRepository
	reports ReportRepository
	llm     SentimentClient
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewAnnouncementService(repo AnnouncementRepository, reports ReportRepository, llmClient SentimentClient, logger *logrus.Logger, cfg *config.Config) AnnouncementService {
	return &announcementService{
		repo:    repo,
		reports: reports,
		llm:     llmClient,
		logger:  logger,
		cfg:     cfg,
	}
}

// Create суммаризирует PDF через внешнее API, сохраняет файл и
// добавляет анонс в коллекцию. Сбой суммаризации не валит запрос:
// подставляется шаблонная сводка.
func (s *announcementService) Create(ctx context.Context, input CreateAnnouncementInput) (*models.Announcement, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "announcement",
		"method":  "Create",
		"title":   input.Title,
	})
	log.Info("Attempting to create announcement")

	relatedContext := s.relatedReportContext(ctx, input.RelatedReportID, input.ReportType, log)

	summary, err := s.llm.SummarizePDF(ctx, input.Title, input.ReportType, relatedContext, input.PDF)
	if err != nil {
		log.WithError(err).Warn("PDF summarization failed, using fallback summary")
		summary = llm.FallbackSummary(input.Title, input.ReportType)
	}

	fileName, url, err := s.repo.SavePDF(ctx, input.PDFName, input.PDF)
	if err != nil {
		log.WithError(err).Error("Failed to save announcement PDF")
		return nil, fmt.Errorf("service: could not save announcement PDF: %w", err)
	}

	now := time.Now().UTC()
	announcement := &models.Announcement{
		ID:              fmt.Sprintf("announcement-%d", now.UnixMilli()),
		Title:           input.Title,
		Summary:         summary,
		ReportType:      input.ReportType,
		RelatedReportID: input.RelatedReportID,
		PDFFileName:     fileName,
		PDFURL:          url,
		CreatedAt:       now.Format(time.RFC3339),
		Status:          "active",
	}

	if err := s.repo.Create(ctx, announcement); err != nil {
		log.WithError(err).Error("Failed to store announcement")
		return nil, fmt.Errorf("service: could not create announcement: %w", err)
	}

	log.WithField("announcement_id", announcement.ID).Info("Announcement created successfully")
	return announcement, nil
}

// relatedReportContext собирает контекст связанного отчета для промпта.
// Висячая ссылка допустима: если отчет не найден, контекст пустой.
func (s *announcementService) relatedReportContext(ctx context.Context, id, reportType string, log *logrus.Entry) string {
	if id == "" {
		return ""
	}

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Warn("Failed to look up related report")
		}
		return ""
	}

	location := report.Location.Address
	if location == "" {
		if report.Location.City != "" || report.Location.State != "" {
			location = fmt.Sprintf("%s, %s", report.Location.City, report.Location.State)
		} else {
			location = fmt.Sprintf("Coordinates: %f, %f", report.Location.Lat, report.Location.Lng)
		}
	}

	return fmt.Sprintf(`

RELATED REPORT CONTEXT:
- Report ID: %s
- Report Type: %s
- Description: %s
- Location: %s
- Status: %s
- Votes: %d upvotes, %d downvotes
- Reported: %s
`, report.ID, reportType, report.Description, location, report.Status, report.Votes, report.Downvotes, report.Timestamp)
}

// List возвращает все анонсы, новые первыми
func (s *announcementService) List(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list announcements")
		return nil, fmt.Errorf("service: could not list announcements: %w", err)
	}
	return announcements, nil
}

// Delete удаляет анонс и связанный PDF-файл
func (s *announcementService) Delete(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "announcement",
		"method":          "Delete",
		"announcement_id": id,
	})
	log.Info("Attempting to delete announcement")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete announcement")
		return fmt.Errorf("service: could not delete announcement: %w", err)
	}

	log.Info("Announcement deleted successfully")
	return nil
}
