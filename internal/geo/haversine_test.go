package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicmap/civic-reports/internal/models"
)

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{32.780, -96.800, 32.781, -96.799},
		{55.75, 37.61, 59.93, 30.33},
		{-33.86, 151.20, 35.68, 139.69},
	}
	for _, p := range pairs {
		assert.InDelta(t, Distance(p[0], p[1], p[2], p[3]), Distance(p[2], p[3], p[0], p[1]), 1e-9)
	}
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, Distance(32.780, -96.800, 32.780, -96.800))
}

func TestDistance_KnownValue(t *testing.T) {
	// Точки из контракта дедупликации: около 130 метров между ними
	d := Distance(32.780, -96.800, 32.781, -96.799)
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 160.0)
}

func TestFirstWithin_ReturnsFirstMatchInArrayOrder(t *testing.T) {
	// Подготовка: два отчета, оба в радиусе кандидата
	reports := []models.Report{
		{ID: "issue-001", Location: models.Location{Lat: 32.7800, Lng: -96.8000}},
		{ID: "issue-002", Location: models.Location{Lat: 32.7802, Lng: -96.7998}},
	}

	// Действие
	match, dist, ok := FirstWithin(32.7801, -96.7999, reports, 100)

	// Проверки: возвращается первый по порядку массива, не ближайший
	require.True(t, ok)
	assert.Equal(t, "issue-001", match.ID)
	assert.Less(t, dist, 100.0)
}

func TestFirstWithin_NoMatchBeyondRadius(t *testing.T) {
	// Подготовка: единственный отчет дальше 100 метров
	reports := []models.Report{
		{ID: "issue-001", Location: models.Location{Lat: 32.781, Lng: -96.799}},
	}

	// Действие
	_, _, ok := FirstWithin(32.7801, -96.7999, reports, 100)

	// Проверки: ~130 метров - дубликатом не считается
	assert.False(t, ok)
}

func TestFirstWithin_EmptyList(t *testing.T) {
	_, _, ok := FirstWithin(32.78, -96.80, nil, 100)
	assert.False(t, ok)
}
