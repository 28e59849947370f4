package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/civicmap/civic-reports/internal/models"
	"github.com/civicmap/civic-reports/internal/service"
	"github.com/civicmap/civic-reports/pkg/jsonfile"
)

// errSkipWrite сигнализирует Update, что запись файла не требуется
var errSkipWrite = errors.New("no changes")

// ReportRepository хранит отчеты в плоских JSON-файлах: по файлу на
// категорию, форма {"reports": [...]}, новые записи сверху.
type ReportRepository struct {
	store   *jsonfile.Store
	dataDir string
}

func NewReportRepository(store *jsonfile.Store, dataDir string) service.ReportRepository {
	return &ReportRepository{
		store:   store,
		dataDir: dataDir,
	}
}

func (r *ReportRepository) pathFor(c models.Category) string {
	return filepath.Join(r.dataDir, c.FileName())
}

// ListByCategory возвращает отчеты одной категории в порядке файла
func (r *ReportRepository) ListByCategory(ctx context.Context, c models.Category) ([]models.Report, error) {
	var file models.ReportFile
	if err := r.store.Read(r.pathFor(c), &file); err != nil {
		return nil, fmt.Errorf("failed to read %s reports: %w", c, err)
	}
	return file.Reports, nil
}

// ListAll читает все четыре коллекции в каноническом порядке категорий
// и помечает каждый отчет его категорией.
func (r *ReportRepository) ListAll(ctx context.Context) ([]models.TypedReport, error) {
	var all []models.TypedReport
	for _, c := range models.Categories() {
		reports, err := r.ListByCategory(ctx, c)
		if err != nil {
			return nil, err
		}
		for _, report := range reports {
			all = append(all, models.TypedReport{Report: report, Type: c})
		}
	}
	return all, nil
}

// Create присваивает отчету следующий идентификатор категории и
// добавляет его в начало файла. Генерация ID и вставка происходят в
// одном цикле чтения-записи под файловой блокировкой, поэтому
// параллельные отправки не могут получить одинаковый номер.
func (r *ReportRepository) Create(ctx context.Context, c models.Category, report *models.Report) error {
	var file models.ReportFile
	err := r.store.Update(r.pathFor(c), &file, func() error {
		report.ID = nextID(c, file.Reports)
		file.Reports = append([]models.Report{*report}, file.Reports...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create %s report: %w", c, err)
	}
	return nil
}

// nextID сканирует идентификаторы вида <префикс>-<число>, берет
// максимальный суффикс (0, если таких нет) и прибавляет единицу.
// Номера не переиспользуются: удаление отчетов не реализовано.
func nextID(c models.Category, reports []models.Report) string {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(c.Prefix()) + `-(\d+)$`)
	maxSuffix := 0
	for _, r := range reports {
		m := re.FindStringSubmatch(r.ID)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxSuffix {
			maxSuffix = n
		}
	}
	return fmt.Sprintf("%s-%03d", c.Prefix(), maxSuffix+1)
}

// IncrementVotes увеличивает счетчик голосов "за"
func (r *ReportRepository) IncrementVotes(ctx context.Context, id string) (int, error) {
	return r.increment(ctx, id, func(report *models.Report) int {
		report.Votes++
		return report.Votes
	})
}

// IncrementDownvotes увеличивает счетчик голосов "против"
func (r *ReportRepository) IncrementDownvotes(ctx context.Context, id string) (int, error) {
	return r.increment(ctx, id, func(report *models.Report) int {
		report.Downvotes++
		return report.Downvotes
	})
}

// increment ищет отчет по всем категориям в каноническом порядке и
// применяет apply к найденному. Файлы без изменений не перезаписываются.
func (r *ReportRepository) increment(ctx context.Context, id string, apply func(*models.Report) int) (int, error) {
	for _, c := range models.Categories() {
		var file models.ReportFile
		count := -1
		err := r.store.Update(r.pathFor(c), &file, func() error {
			for i := range file.Reports {
				if file.Reports[i].ID == id {
					count = apply(&file.Reports[i])
					return nil
				}
			}
			return errSkipWrite
		})
		if err != nil && !errors.Is(err, errSkipWrite) {
			return 0, fmt.Errorf("failed to update votes in %s: %w", c, err)
		}
		if count >= 0 {
			return count, nil
		}
	}
	return 0, fmt.Errorf("report %s: %w", id, service.ErrNotFound)
}

// FindByID ищет отчет по всем категориям
func (r *ReportRepository) FindByID(ctx context.Context, id string) (*models.TypedReport, error) {
	for _, c := range models.Categories() {
		reports, err := r.ListByCategory(ctx, c)
		if err != nil {
			return nil, err
		}
		for i := range reports {
			if reports[i].ID == id {
				return &models.TypedReport{Report: reports[i], Type: c}, nil
			}
		}
	}
	return nil, fmt.Errorf("report %s: %w", id, service.ErrNotFound)
}
