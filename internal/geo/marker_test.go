package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicmap/civic-reports/internal/models"
)

func TestClusterSize_Tiers(t *testing.T) {
	cases := map[int]int{
		1:   30,
		9:   30,
		10:  40,
		24:  40,
		25:  50,
		49:  50,
		50:  60,
		500: 60,
	}
	for count, want := range cases {
		assert.Equal(t, want, ClusterSize(count), "point count %d", count)
	}
}

func TestFormatPointCount_Abbreviation(t *testing.T) {
	cases := map[int]string{
		7:    "7",
		49:   "49",
		50:   "50+",
		99:   "50+",
		100:  "100+",
		999:  "100+",
		1000: "999+",
		5000: "999+",
	}
	for count, want := range cases {
		assert.Equal(t, want, FormatPointCount(count), "point count %d", count)
	}
}

func TestPieSegments_CanonicalOrderAndContiguity(t *testing.T) {
	// Подготовка: счетчики заданы не в каноническом порядке
	counts := CategoryCounts{
		models.CategoryGovernmentEvent: 1,
		models.CategoryIssue:           2,
		models.CategoryIdea:            1,
	}

	// Действие
	segments := PieSegments(counts)

	// Проверки: порядок issue, idea, gov-event; сектора встык с 0°
	require.Len(t, segments, 3)
	assert.Equal(t, models.CategoryIssue, segments[0].Category)
	assert.Equal(t, models.CategoryIdea, segments[1].Category)
	assert.Equal(t, models.CategoryGovernmentEvent, segments[2].Category)

	assert.InDelta(t, 0.0, segments[0].StartAngle, 1e-9)
	assert.InDelta(t, 180.0, segments[0].EndAngle, 1e-9)
	assert.InDelta(t, 180.0, segments[1].StartAngle, 1e-9)
	assert.InDelta(t, 270.0, segments[1].EndAngle, 1e-9)
	assert.InDelta(t, 270.0, segments[2].StartAngle, 1e-9)
	assert.InDelta(t, 360.0, segments[2].EndAngle, 1e-9)
}

func TestPieSegments_SingleCategoryFullCircle(t *testing.T) {
	segments := PieSegments(CategoryCounts{models.CategoryIssue: 5})

	require.Len(t, segments, 1)
	assert.InDelta(t, 1.0, segments[0].Percentage, 1e-9)
	assert.InDelta(t, 360.0, segments[0].EndAngle, 1e-9)
	assert.Equal(t, models.CategoryIssue.Color(), segments[0].Color)
}

func TestPieSegments_ZeroCountsSkipped(t *testing.T) {
	segments := PieSegments(CategoryCounts{models.CategoryIssue: 3, models.CategoryIdea: 0})

	require.Len(t, segments, 1)
	assert.Equal(t, models.CategoryIssue, segments[0].Category)
}

func TestPieSegments_Empty(t *testing.T) {
	assert.Nil(t, PieSegments(CategoryCounts{}))
}
