package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/civicmap/civic-reports/internal/config"
	"github.com/civicmap/civic-reports/internal/geo"
	"github.com/civicmap/civic-reports/internal/llm"
	"github.com/civicmap/civic-reports/internal/models"
	"github.com/civicmap/civic-reports/internal/votehistory"
)

// ReportRepository определяет контракт хранилища отчетов
type ReportRepository interface {
	ListByCategory(ctx context.Context, c models.Category) ([]models.Report, error)
	ListAll(ctx context.Context) ([]models.TypedReport, error)
	Create(ctx context.Context, c models.Category, report *models.Report) error
	IncrementVotes(ctx context.Context, id string) (int, error)
	IncrementDownvotes(ctx context.Context, id string) (int, error)
	FindByID(ctx context.Context, id string) (*models.TypedReport, error)
}

// SentimentClient определяет контракт внешнего генеративного API
type SentimentClient interface {
	GenerateSentiment(ctx context.Context, d llm.Digest) (*llm.SentimentAnalysis, error)
	SummarizePDF(ctx context.Context, title, reportType, relatedContext string, pdf []byte) (string, error)
}

// CreateReportInput - проверенные данные новой отправки
type CreateReportInput struct {
	Category    models.Category
	Description string
	Location    models.Location
	Images      []models.ReportImage
}

// ReportService определяет контракт бизнес-логики отчетов
type ReportService interface {
	CreateReport(ctx context.Context, input CreateReportInput) (*models.Report, error)
	ListReports(ctx context.Context, category *models.Category) ([]models.TypedReport, error)
	Vote(ctx context.Context, id, clientID string) (int, error)
	Downvote(ctx context.Context, id, clientID string) (int, error)
	VoteHistory(ctx context.Context, clientID string) (map[string]votehistory.Direction, error)
}

type reportService struct {
	repo    ReportRepository
	history votehistory.Store
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewReportService(repo ReportRepository, history votehistory.Store, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		repo:    repo,
		history: history,
		logger:  logger,
		cfg:     cfg,
	}
}

// CreateReport проверяет отправку на дубликат в радиусе и создает отчет.
// Проверка дубликатов идет только по целевой категории: первый отчет
// в порядке массива, оказавшийся ближе порога, блокирует создание.
func (s *reportService) CreateReport(ctx context.Context, input CreateReportInput) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "CreateReport",
		"category": input.Category,
	})
	log.Info("Attempting to create a new report")

	if input.Description == "" && len(input.Images) == 0 {
		log.Warn("Submission has neither description nor images")
		return nil, ErrMissingContent
	}

	existing, err := s.repo.ListByCategory(ctx, input.Category)
	if err != nil {
		log.WithError(err).Error("Failed to load existing reports for duplicate check")
		return nil, fmt.Errorf("service: could not check for duplicates: %w", err)
	}

	if match, dist, ok := geo.FirstWithin(input.Location.Lat, input.Location.Lng, existing, s.cfg.DuplicateRadiusMeters); ok {
		log.WithField("existing_id", match.ID).Info("Duplicate report detected nearby")
		return nil, &DuplicateError{Existing: *match, Distance: dist}
	}

	report := &models.Report{
		Description: input.Description,
		Location:    input.Location,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Status:      "open",
		Images:      input.Images,
	}

	if err := s.repo.Create(ctx, input.Category, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return report, nil
}

// ListReports возвращает отчеты: все категории или одну выбранную
func (s *reportService) ListReports(ctx context.Context, category *models.Category) ([]models.TypedReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListReports",
	})

	if category == nil {
		reports, err := s.repo.ListAll(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to list reports from repository")
			return nil, fmt.Errorf("service: could not list reports: %w", err)
		}
		return reports, nil
	}

	reports, err := s.repo.ListByCategory(ctx, *category)
	if err != nil {
		log.WithError(err).Error("Failed to list category reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	typed := make([]models.TypedReport, len(reports))
	for i, r := range reports {
		typed[i] = models.TypedReport{Report: r, Type: *category}
	}
	return typed, nil
}

// Vote увеличивает счетчик голосов "за". Счетчики только растут,
// отмены голоса на сервере нет.
func (s *reportService) Vote(ctx context.Context, id, clientID string) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Vote",
		"report_id": id,
	})

	votes, err := s.repo.IncrementVotes(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to register vote")
		return 0, fmt.Errorf("service: could not vote for report: %w", err)
	}

	s.recordHistory(ctx, clientID, id, votehistory.DirectionUp, log)
	log.WithField("votes", votes).Info("Vote registered")
	return votes, nil
}

// Downvote увеличивает счетчик голосов "против"
func (s *reportService) Downvote(ctx context.Context, id, clientID string) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Downvote",
		"report_id": id,
	})

	downvotes, err := s.repo.IncrementDownvotes(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to register downvote")
		return 0, fmt.Errorf("service: could not downvote report: %w", err)
	}

	s.recordHistory(ctx, clientID, id, votehistory.DirectionDown, log)
	log.WithField("downvotes", downvotes).Info("Downvote registered")
	return downvotes, nil
}

// recordHistory сохраняет направление голоса клиента. История ведется
// по желанию клиента и только в его интересах: сбой записи логируется,
// но голос не откатывает.
func (s *reportService) recordHistory(ctx context.Context, clientID, reportID string, dir votehistory.Direction, log *logrus.Entry) {
	if clientID == "" {
		return
	}
	if err := s.history.Set(ctx, clientID, reportID, dir); err != nil {
		log.WithError(err).Warn("Failed to record vote history")
	}
}

// VoteHistory возвращает историю голосов клиента
func (s *reportService) VoteHistory(ctx context.Context, clientID string) (map[string]votehistory.Direction, error) {
	history, err := s.history.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service: could not read vote history: %w", err)
	}
	return history, nil
}
