package service

import (
	"errors"
	"fmt"

	"github.com/civicmap/civic-reports/internal/models"
)

// Таксономия ошибок сервисного слоя. Хэндлеры отображают их в коды:
// ErrNotFound -> 404, DuplicateError -> 409, ErrMissingContent -> 400,
// все остальное -> 500 с обезличенным телом.
var (
	// ErrNotFound - сущность с указанным идентификатором не найдена
	ErrNotFound = errors.New("not found")
	// ErrMissingContent - отправка без описания и без единого фото
	ErrMissingContent = errors.New("description or at least one image is required")
)

// DuplicateError - рядом уже существует отчет той же категории.
// Несет данные найденного отчета, чтобы клиент мог предложить
// проголосовать за него вместо создания дубликата.
type DuplicateError struct {
	Existing models.Report
	Distance float64
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a similar report already exists within %.0f meters: %s", e.Distance, e.Existing.ID)
}
