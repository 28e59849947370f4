package geo

import (
	"math"

	"github.com/civicmap/civic-reports/internal/models"
)

// earthRadiusMeters - сферический радиус Земли для формулы гаверсинуса
const earthRadiusMeters = 6371000.0

// Distance возвращает расстояние по дуге большого круга между двумя
// точками в метрах (формула гаверсинуса).
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// FirstWithin ищет первый отчет в порядке массива, находящийся не дальше
// radiusMeters от кандидата. Возвращается именно первый найденный, а не
// ближайший: клиенты полагаются на этот порядок при ответе 409.
func FirstWithin(lat, lng float64, reports []models.Report, radiusMeters float64) (*models.Report, float64, bool) {
	for i := range reports {
		d := Distance(lat, lng, reports[i].Location.Lat, reports[i].Location.Lng)
		if d <= radiusMeters {
			return &reports[i], d, true
		}
	}
	return nil, 0, false
}
