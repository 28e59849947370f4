package geo

import (
	"strconv"

	"github.com/civicmap/civic-reports/internal/models"
)

// ClusterSize возвращает размер маркера кластера в пикселях.
// Четыре ступени по числу точек.
func ClusterSize(pointCount int) int {
	switch {
	case pointCount < 10:
		return 30
	case pointCount < 25:
		return 40
	case pointCount < 50:
		return 50
	default:
		return 60
	}
}

// FormatPointCount сокращает счетчик для подписи маркера
func FormatPointCount(count int) string {
	switch {
	case count >= 1000:
		return "999+"
	case count >= 100:
		return "100+"
	case count >= 50:
		return "50+"
	default:
		return strconv.Itoa(count)
	}
}

// PieSegment - сектор круговой диаграммы кластера
type PieSegment struct {
	Category   models.Category `json:"category"`
	Color      string          `json:"color"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
	StartAngle float64         `json:"startAngle"`
	EndAngle   float64         `json:"endAngle"`
}

// PieSegments раскладывает счетчики категорий в секторы диаграммы.
// Категории всегда обходятся в каноническом порядке независимо от
// счетчиков, секторы укладываются встык начиная с 0°, угловой размер
// пропорционален доле категории.
func PieSegments(counts CategoryCounts) []PieSegment {
	total := 0
	for _, v := range counts {
		total += v
	}
	if total == 0 {
		return nil
	}

	segments := make([]PieSegment, 0, len(counts))
	angle := 0.0
	for _, c := range models.Categories() {
		n := counts[c]
		if n == 0 {
			continue
		}
		share := float64(n) / float64(total)
		span := share * 360
		segments = append(segments, PieSegment{
			Category:   c,
			Color:      c.Color(),
			Count:      n,
			Percentage: share,
			StartAngle: angle,
			EndAngle:   angle + span,
		})
		angle += span
	}
	return segments
}
