package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/civicmap/civic-reports/internal/config"
	"github.com/civicmap/civic-reports/internal/geo"
	"github.com/civicmap/civic-reports/internal/llm"
)

// AnalyticsSummary - сводные счетчики по всем категориям
type AnalyticsSummary struct {
	TotalReports          int `json:"totalReports"`
	TotalIssues           int `json:"totalIssues"`
	TotalIdeas            int `json:"totalIdeas"`
	TotalCommunityEvents  int `json:"totalCommunityEvents"`
	TotalGovernmentEvents int `json:"totalGovernmentEvents"`
}

// AnalyticsResult - полный ответ аналитики для админ-панели
type AnalyticsResult struct {
	Sentiment   *llm.SentimentAnalysis `json:"sentiment"`
	HeatmapData []geo.HeatmapCluster   `json:"heatmapData"`
	Summary     AnalyticsSummary       `json:"summary"`
}

// AnalyticsService определяет контракт аналитики
type AnalyticsService interface {
	Analytics(ctx context.Context) (*AnalyticsResult, error)
}

type analyticsService struct {
	repo   ReportRepository
	llm    SentimentClient
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAnalyticsService(repo ReportRepository, llmClient SentimentClient, logger *logrus.Logger, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		repo:   repo,
		llm:    llmClient,
		logger: logger,
		cfg:    cfg,
	}
}

// Analytics пересчитывает тепловую карту и анализ настроений с нуля по
// текущему набору отчетов. Кластеры нигде не кешируются. Отказ внешнего
// API не приводит к ошибке: ответ деградирует до шаблонного анализа.
func (s *analyticsService) Analytics(ctx context.Context) (*AnalyticsResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "Analytics",
	})
	log.Info("Building analytics")

	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load reports for analytics")
		return nil, fmt.Errorf("service: could not load reports: %w", err)
	}

	if len(reports) == 0 {
		log.Info("No reports available, returning empty analytics")
		return &AnalyticsResult{
			Sentiment:   llm.EmptySentiment(),
			HeatmapData: []geo.HeatmapCluster{},
			Summary:     AnalyticsSummary{},
		}, nil
	}

	heatmap := geo.BuildHeatmap(reports, s.cfg.HeatmapRadiusMeters)
	log.WithField("clusters", len(heatmap)).Info("Heatmap clusters built")

	digest := llm.BuildDigest(reports)
	sentiment, err := s.llm.GenerateSentiment(ctx, digest)
	if err != nil {
		log.WithError(err).Warn("Sentiment generation failed, using deterministic fallback")
		sentiment = llm.FallbackSentiment(digest)
	}

	summary := AnalyticsSummary{
		TotalReports:          digest.TotalReports,
		TotalIssues:           digest.IssueCount,
		TotalIdeas:            digest.IdeaCount,
		TotalCommunityEvents:  digest.CommunityEventCount,
		TotalGovernmentEvents: digest.GovernmentEventCount,
	}

	log.Info("Analytics built successfully")
	return &AnalyticsResult{
		Sentiment:   sentiment,
		HeatmapData: heatmap,
		Summary:     summary,
	}, nil
}
