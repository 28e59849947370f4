package geo

import "github.com/civicmap/civic-reports/internal/models"

// HeatmapBreakdown - количество отчетов каждой категории в кластере
type HeatmapBreakdown struct {
	Issues           int `json:"issues"`
	Ideas            int `json:"ideas"`
	CommunityEvents  int `json:"communityEvents"`
	GovernmentEvents int `json:"governmentEvents"`
}

// HeatmapCluster - географический кластер для тепловой карты.
// Кластеры не персистятся и пересчитываются на каждый запрос аналитики.
type HeatmapCluster struct {
	Lat       float64          `json:"lat"`
	Lng       float64          `json:"lng"`
	Intensity float64          `json:"intensity"`
	Breakdown HeatmapBreakdown `json:"breakdown"`
}

// BuildHeatmap группирует отчеты в пространственные кластеры жадным
// однопроходным алгоритмом: обходим отчеты в исходном порядке, каждый
// еще не назначенный отчет открывает кластер и поглощает все свободные
// отчеты в радиусе radiusMeters. Алгоритм O(n²), что приемлемо для
// сотен отчетов. Результат детерминирован при одинаковом порядке входа.
func BuildHeatmap(reports []models.TypedReport, radiusMeters float64) []HeatmapCluster {
	clusters := make([]HeatmapCluster, 0)
	assigned := make([]bool, len(reports))

	for i := range reports {
		if assigned[i] {
			continue
		}

		seed := reports[i]
		cluster := HeatmapCluster{
			Lat: seed.Location.Lat,
			Lng: seed.Location.Lng,
		}

		var members []int
		for j := range reports {
			if assigned[j] {
				continue
			}
			d := Distance(seed.Location.Lat, seed.Location.Lng, reports[j].Location.Lat, reports[j].Location.Lng)
			if d <= radiusMeters {
				assigned[j] = true
				members = append(members, j)
				addToBreakdown(&cluster.Breakdown, reports[j].Type)
				cluster.Intensity += reports[j].Type.Weight()
			}
		}

		// Центр кластера - среднее арифметическое координат участников,
		// а не точка-затравка.
		var sumLat, sumLng float64
		for _, j := range members {
			sumLat += reports[j].Location.Lat
			sumLng += reports[j].Location.Lng
		}
		cluster.Lat = sumLat / float64(len(members))
		cluster.Lng = sumLng / float64(len(members))

		clusters = append(clusters, cluster)
	}

	return clusters
}

func addToBreakdown(b *HeatmapBreakdown, c models.Category) {
	switch c {
	case models.CategoryIssue:
		b.Issues++
	case models.CategoryIdea:
		b.Ideas++
	case models.CategoryCommunityEvent:
		b.CommunityEvents++
	case models.CategoryGovernmentEvent:
		b.GovernmentEvents++
	}
}

// Total возвращает суммарное число отчетов в разбивке
func (b HeatmapBreakdown) Total() int {
	return b.Issues + b.Ideas + b.CommunityEvents + b.GovernmentEvents
}
