package geo

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/civicmap/civic-reports/internal/models"
)

// ViewportOptions - настройки кластеризации маркеров карты
type ViewportOptions struct {
	// RadiusPx - радиус объединения в экранных пикселях
	RadiusPx float64
	// MaxZoom - максимальный зум, на котором еще образуются кластеры
	MaxZoom int
	// MinZoom - минимальный зум
	MinZoom int
	// MinPoints - минимальное число точек для образования кластера.
	// Ниже порога точки отображаются по отдельности, чтобы не рисовать
	// вводящие в заблуждение "кластеры" из одной-двух точек.
	MinPoints int
}

// DefaultViewportOptions возвращает настройки, совместимые с клиентом карты
func DefaultViewportOptions() ViewportOptions {
	return ViewportOptions{
		RadiusPx:  40,
		MaxZoom:   13,
		MinZoom:   0,
		MinPoints: 3,
	}
}

// Bounds - границы видимой области карты в градусах
type Bounds struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Contains проверяет попадание точки в границы
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.South && lat <= b.North && lng >= b.West && lng <= b.East
}

// CategoryCounts - накопитель числа точек по категориям внутри кластера
type CategoryCounts map[models.Category]int

// Merge добавляет счетчики other к c. Это шаг "reduce" кластеризации:
// он должен корректно сливать уже агрегированные суммы подкластеров,
// а не только листовые точки.
func (c CategoryCounts) Merge(other CategoryCounts) {
	for k, v := range other {
		c[k] += v
	}
}

// Feature - результат кластеризации: либо кластер, либо одиночная точка
type Feature struct {
	Cluster        bool
	Lat            float64
	Lng            float64
	PointCount     int
	CategoryCounts CategoryCounts
	// Report заполнен только для одиночных точек
	Report *models.TypedReport
}

// IsClusterMarker сообщает, нужно ли рисовать агрегированный маркер.
// Группа из одной точки формально помечена как кластер быть не может,
// но проверка point_count > 1 выполняется явно.
func (f Feature) IsClusterMarker() bool {
	return f.Cluster && f.PointCount > 1
}

// ClusterViewport группирует отчеты видимой области в зум-зависимые
// кластеры. Индекс строится с нуля на каждый вызов: любое изменение
// границ, зума или набора фильтров означает полный пересчет.
//
// Кластеризация иерархическая: листовые точки сворачиваются уровнями от
// opts.MaxZoom вверх до запрошенного зума, поэтому на мелких зумах в
// кластеры попадают уже агрегированные подытоги, а не только точки.
func ClusterViewport(reports []models.TypedReport, b Bounds, zoom int, opts ViewportOptions) []Feature {
	if zoom < opts.MinZoom {
		zoom = opts.MinZoom
	}

	features := make([]Feature, 0, len(reports))
	for i := range reports {
		r := reports[i]
		features = append(features, Feature{
			Lat:            r.Location.Lat,
			Lng:            r.Location.Lng,
			PointCount:     1,
			CategoryCounts: CategoryCounts{r.Type: 1},
			Report:         &reports[i],
		})
	}

	// Выше MaxZoom кластеры не образуются вовсе
	if zoom <= opts.MaxZoom {
		for z := opts.MaxZoom; z >= zoom; z-- {
			features = clusterLevel(features, z, opts)
		}
	}

	visible := make([]Feature, 0, len(features))
	for _, f := range features {
		if b.Contains(f.Lat, f.Lng) {
			visible = append(visible, f)
		}
	}
	return visible
}

// clusterLevel выполняет один жадный проход объединения на зуме z
func clusterLevel(features []Feature, z int, opts ViewportOptions) []Feature {
	var tr rtree.RTree
	px := make([][2]float64, len(features))
	for i, f := range features {
		px[i] = project(f.Lat, f.Lng, z)
		tr.Insert(px[i], px[i], i)
	}

	assigned := make([]bool, len(features))
	out := make([]Feature, 0, len(features))

	for i := range features {
		if assigned[i] {
			continue
		}

		min := [2]float64{px[i][0] - opts.RadiusPx, px[i][1] - opts.RadiusPx}
		max := [2]float64{px[i][0] + opts.RadiusPx, px[i][1] + opts.RadiusPx}

		var members []int
		tr.Search(min, max, func(_, _ [2]float64, data interface{}) bool {
			j := data.(int)
			if assigned[j] {
				return true
			}
			dx := px[i][0] - px[j][0]
			dy := px[i][1] - px[j][1]
			if math.Hypot(dx, dy) <= opts.RadiusPx {
				members = append(members, j)
			}
			return true
		})

		total := 0
		for _, j := range members {
			total += features[j].PointCount
		}

		// Слишком маленькая группа: затравка проходит дальше как есть,
		// соседи остаются доступными для других кластеров.
		if len(members) < 2 || total < opts.MinPoints {
			assigned[i] = true
			out = append(out, features[i])
			continue
		}

		counts := CategoryCounts{}
		var sumLat, sumLng float64
		for _, j := range members {
			assigned[j] = true
			counts.Merge(features[j].CategoryCounts)
			w := float64(features[j].PointCount)
			sumLat += features[j].Lat * w
			sumLng += features[j].Lng * w
		}

		out = append(out, Feature{
			Cluster:        true,
			Lat:            sumLat / float64(total),
			Lng:            sumLng / float64(total),
			PointCount:     total,
			CategoryCounts: counts,
		})
	}

	return out
}

const maxMercatorLat = 85.05112878

// project переводит координаты в мировые пиксели Web Mercator на зуме z
func project(lat, lng float64, z int) [2]float64 {
	scale := 256 * math.Exp2(float64(z))
	if lat > maxMercatorLat {
		lat = maxMercatorLat
	}
	if lat < -maxMercatorLat {
		lat = -maxMercatorLat
	}
	sin := math.Sin(lat * math.Pi / 180)
	x := (lng + 180) / 360 * scale
	y := (0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)) * scale
	return [2]float64{x, y}
}
