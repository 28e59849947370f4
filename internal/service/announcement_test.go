package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/civicmap/civic-reports/internal/models"
	"github.com/civicmap/civic-reports/internal/service/mocks"
)

func newAnnouncementService(t *testing.T) (*mocks.MockAnnouncementRepository, *mocks.MockReportRepository, *mocks.MockSentimentClient, AnnouncementService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnouncementRepository(ctrl)
	reports := mocks.NewMockReportRepository(ctrl)
	llmClient := mocks.NewMockSentimentClient(ctrl)
	svc := NewAnnouncementService(repo, reports, llmClient, testLogger(), testConfig())
	return repo, reports, llmClient, svc
}

func TestAnnouncementCreate_Success(t *testing.T) {
	// Подготовка
	repo, _, llmClient, svc := newAnnouncementService(t)
	ctx := context.Background()

	input := CreateAnnouncementInput{
		Title:      "Road Repair Plan",
		ReportType: "issue",
		PDFName:    "plan.pdf",
		PDF:        []byte("%PDF-1.4"),
	}

	// Ожидания
	llmClient.EXPECT().SummarizePDF(ctx, "Road Repair Plan", "issue", "", input.PDF).
		Return("The city will repave Main Street in Q3.", nil)
	repo.EXPECT().SavePDF(ctx, "plan.pdf", input.PDF).
		Return("announcement-1700000000000-plan.pdf", "/announcements/announcement-1700000000000-plan.pdf", nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	// Действие
	a, err := svc.Create(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(a.ID, "announcement-"))
	assert.Equal(t, "The city will repave Main Street in Q3.", a.Summary)
	assert.Equal(t, "active", a.Status)
	assert.Equal(t, "/announcements/announcement-1700000000000-plan.pdf", a.PDFURL)
}

func TestAnnouncementCreate_SummarizationFailureFallsBack(t *testing.T) {
	// Подготовка: внешнее API отвечает ошибкой
	repo, _, llmClient, svc := newAnnouncementService(t)
	ctx := context.Background()

	llmClient.EXPECT().SummarizePDF(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model overloaded"))
	repo.EXPECT().SavePDF(ctx, gomock.Any(), gomock.Any()).Return("f.pdf", "/announcements/f.pdf", nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	// Действие
	a, err := svc.Create(ctx, CreateAnnouncementInput{
		Title:      "Budget 2026",
		ReportType: "idea",
		PDFName:    "budget.pdf",
		PDF:        []byte("%PDF"),
	})

	// Проверки: анонс создан с шаблонной сводкой
	require.NoError(t, err)
	assert.Contains(t, a.Summary, `"Budget 2026"`)
	assert.Contains(t, a.Summary, "idea report")
}

func TestAnnouncementCreate_RelatedReportContext(t *testing.T) {
	// Подготовка: ссылка на существующий отчет попадает в промпт
	repo, reports, llmClient, svc := newAnnouncementService(t)
	ctx := context.Background()

	reports.EXPECT().FindByID(ctx, "issue-005").Return(&models.TypedReport{
		Report: models.Report{
			ID:          "issue-005",
			Description: "Collapsed storm drain",
			Location:    models.Location{Address: "12 Elm St"},
			Status:      "open",
			Votes:       12,
		},
		Type: models.CategoryIssue,
	}, nil)
	llmClient.EXPECT().SummarizePDF(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, relatedContext string, _ []byte) (string, error) {
			assert.Contains(t, relatedContext, "issue-005")
			assert.Contains(t, relatedContext, "Collapsed storm drain")
			assert.Contains(t, relatedContext, "12 Elm St")
			return "Summary", nil
		})
	repo.EXPECT().SavePDF(ctx, gomock.Any(), gomock.Any()).Return("f.pdf", "/announcements/f.pdf", nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	// Действие
	a, err := svc.Create(ctx, CreateAnnouncementInput{
		Title:           "Drain Repair Update",
		ReportType:      "issue",
		RelatedReportID: "issue-005",
		PDFName:         "update.pdf",
		PDF:             []byte("%PDF"),
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "issue-005", a.RelatedReportID)
}

func TestAnnouncementCreate_DanglingRelatedReportTolerated(t *testing.T) {
	// Подготовка: связанный отчет не существует
	repo, reports, llmClient, svc := newAnnouncementService(t)
	ctx := context.Background()

	reports.EXPECT().FindByID(ctx, "issue-404").Return(nil, ErrNotFound)
	llmClient.EXPECT().SummarizePDF(ctx, gomock.Any(), gomock.Any(), "", gomock.Any()).Return("Summary", nil)
	repo.EXPECT().SavePDF(ctx, gomock.Any(), gomock.Any()).Return("f.pdf", "/announcements/f.pdf", nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	// Действие и проверки: висячая ссылка сохраняется как есть
	a, err := svc.Create(ctx, CreateAnnouncementInput{
		Title:           "Orphan Update",
		ReportType:      "issue",
		RelatedReportID: "issue-404",
		PDFName:         "u.pdf",
		PDF:             []byte("%PDF"),
	})
	require.NoError(t, err)
	assert.Equal(t, "issue-404", a.RelatedReportID)
}

func TestAnnouncementDelete_NotFoundPassthrough(t *testing.T) {
	repo, _, _, svc := newAnnouncementService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "announcement-404").Return(ErrNotFound)

	err := svc.Delete(ctx, "announcement-404")

	assert.ErrorIs(t, err, ErrNotFound)
}
