package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/civicmap/civic-reports/internal/llm"
	"github.com/civicmap/civic-reports/internal/models"
	"github.com/civicmap/civic-reports/internal/service/mocks"
)

func TestAnalytics_EmptyDataset(t *testing.T) {
	// Подготовка: отчетов нет вовсе
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	llmClient := mocks.NewMockSentimentClient(ctrl)
	svc := NewAnalyticsService(repo, llmClient, testLogger(), testConfig())
	ctx := context.Background()

	repo.EXPECT().ListAll(ctx).Return([]models.TypedReport{}, nil)

	// Действие
	result, err := svc.Analytics(ctx)

	// Проверки: внешнее API не вызывается, форма ответа полная
	require.NoError(t, err)
	assert.Equal(t, "No data available for analysis.", result.Sentiment.Overall)
	assert.NotNil(t, result.HeatmapData)
	assert.Empty(t, result.HeatmapData)
	assert.Equal(t, 0, result.Summary.TotalReports)
}

func TestAnalytics_SummaryCounts(t *testing.T) {
	// Подготовка: по одному отчету в трех категориях
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	llmClient := mocks.NewMockSentimentClient(ctrl)
	svc := NewAnalyticsService(repo, llmClient, testLogger(), testConfig())
	ctx := context.Background()

	reports := []models.TypedReport{
		{Report: models.Report{ID: "issue-001", Location: models.Location{Lat: 32.78, Lng: -96.80}}, Type: models.CategoryIssue},
		{Report: models.Report{ID: "idea-001", Location: models.Location{Lat: 40.71, Lng: -74.00}}, Type: models.CategoryIdea},
		{Report: models.Report{ID: "comm-event-001", Location: models.Location{Lat: 51.50, Lng: -0.12}}, Type: models.CategoryCommunityEvent},
	}
	repo.EXPECT().ListAll(ctx).Return(reports, nil)
	llmClient.EXPECT().GenerateSentiment(ctx, gomock.Any()).Return(&llm.SentimentAnalysis{Overall: "Healthy"}, nil)

	// Действие
	result, err := svc.Analytics(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.TotalReports)
	assert.Equal(t, 1, result.Summary.TotalIssues)
	assert.Equal(t, 1, result.Summary.TotalIdeas)
	assert.Equal(t, 1, result.Summary.TotalCommunityEvents)
	assert.Equal(t, 0, result.Summary.TotalGovernmentEvents)
	assert.Equal(t, "Healthy", result.Sentiment.Overall)
	assert.Len(t, result.HeatmapData, 3)
}

func TestAnalytics_LLMFailureFallsBack(t *testing.T) {
	// Подготовка: внешнее API недоступно
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	llmClient := mocks.NewMockSentimentClient(ctrl)
	svc := NewAnalyticsService(repo, llmClient, testLogger(), testConfig())
	ctx := context.Background()

	reports := []models.TypedReport{
		{Report: models.Report{ID: "issue-001", Location: models.Location{Lat: 1, Lng: 2}}, Type: models.CategoryIssue},
	}
	repo.EXPECT().ListAll(ctx).Return(reports, nil)
	llmClient.EXPECT().GenerateSentiment(ctx, gomock.Any()).Return(nil, errors.New("api timeout"))

	// Действие
	result, err := svc.Analytics(ctx)

	// Проверки: запрос успешен, ответ деградировал до шаблонного
	require.NoError(t, err)
	assert.Contains(t, result.Sentiment.Overall, "1 total civic reports")
	assert.NotEmpty(t, result.Sentiment.KeyInsights)
	assert.Len(t, result.HeatmapData, 1)
}

func TestAnalytics_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	llmClient := mocks.NewMockSentimentClient(ctrl)
	svc := NewAnalyticsService(repo, llmClient, testLogger(), testConfig())
	ctx := context.Background()

	repo.EXPECT().ListAll(ctx).Return(nil, errors.New("disk failure"))

	_, err := svc.Analytics(ctx)

	assert.Error(t, err)
}
