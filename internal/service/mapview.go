package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/civicmap/civic-reports/internal/config"
	"github.com/civicmap/civic-reports/internal/geo"
	"github.com/civicmap/civic-reports/internal/models"
)

// MapService определяет контракт кластеризации маркеров карты
type MapService interface {
	Clusters(ctx context.Context, bounds geo.Bounds, zoom int, categories []models.Category) ([]geo.Feature, error)
}

type mapService struct {
	repo   ReportRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewMapService(repo ReportRepository, logger *logrus.Logger, cfg *config.Config) MapService {
	return &mapService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Clusters кластеризует отфильтрованные отчеты под текущую область и зум.
// Индекс пересобирается с нуля на каждый вызов: смена границ, зума или
// набора категорий означает полный пересчет, инкрементальных обновлений нет.
func (s *mapService) Clusters(ctx context.Context, bounds geo.Bounds, zoom int, categories []models.Category) ([]geo.Feature, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "Clusters",
		"zoom":    zoom,
	})

	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load reports for map clustering")
		return nil, fmt.Errorf("service: could not load reports: %w", err)
	}

	if len(categories) > 0 {
		active := make(map[models.Category]bool, len(categories))
		for _, c := range categories {
			active[c] = true
		}
		filtered := reports[:0:0]
		for _, r := range reports {
			if active[r.Type] {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}

	opts := geo.ViewportOptions{
		RadiusPx:  s.cfg.ClusterRadiusPx,
		MaxZoom:   s.cfg.ClusterMaxZoom,
		MinZoom:   s.cfg.ClusterMinZoom,
		MinPoints: s.cfg.ClusterMinPoints,
	}

	features := geo.ClusterViewport(reports, bounds, zoom, opts)
	log.WithField("features", len(features)).Info("Map clusters computed")
	return features, nil
}
