package v1

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/civicmap/civic-reports/internal/geo"
	"github.com/civicmap/civic-reports/internal/models"
)

// DTOToCreateInputLocation преобразует DTO координат в доменную модель
func DTOToCreateInputLocation(dto LocationDTO) models.Location {
	return models.Location{
		Lat:     dto.Lat,
		Lng:     dto.Lng,
		Address: dto.Address,
		City:    dto.City,
		State:   dto.State,
	}
}

// DTOToReportImages преобразует DTO изображений в доменные модели
func DTOToReportImages(dtos []ImageDTO) []models.ReportImage {
	if len(dtos) == 0 {
		return nil
	}
	images := make([]models.ReportImage, len(dtos))
	for i, d := range dtos {
		images[i] = models.ReportImage{MimeType: d.MimeType, Base64: d.Base64}
	}
	return images
}

// ModelToReportResponse преобразует доменную модель отчета в DTO ответа
func ModelToReportResponse(c models.Category, model *models.Report) ReportResponse {
	images := make([]ImageDTO, len(model.Images))
	for i, img := range model.Images {
		images[i] = ImageDTO{MimeType: img.MimeType, Base64: img.Base64}
	}
	if len(images) == 0 {
		images = nil
	}
	return ReportResponse{
		ID:          model.ID,
		Type:        c.String(),
		Description: model.Description,
		Location: LocationDTO{
			Lat:     model.Location.Lat,
			Lng:     model.Location.Lng,
			Address: model.Location.Address,
			City:    model.Location.City,
			State:   model.Location.State,
		},
		Timestamp: model.Timestamp,
		Status:    model.Status,
		Votes:     model.Votes,
		Downvotes: model.Downvotes,
		Tag:       model.Tag,
		Images:    images,
	}
}

// ModelsToReportResponses преобразует слайс типизированных отчетов в DTO
func ModelsToReportResponses(reports []models.TypedReport) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i := range reports {
		responses[i] = ModelToReportResponse(reports[i].Type, &reports[i].Report)
	}
	return responses
}

// ModelToAnnouncementResponse преобразует доменную модель анонса в DTO
func ModelToAnnouncementResponse(model *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:              model.ID,
		Title:           model.Title,
		Summary:         model.Summary,
		ReportType:      model.ReportType,
		RelatedReportID: model.RelatedReportID,
		PDFFileName:     model.PDFFileName,
		PDFURL:          model.PDFURL,
		CreatedAt:       model.CreatedAt,
		Status:          model.Status,
	}
}

// ModelsToAnnouncementResponses преобразует слайс моделей анонсов в DTO
func ModelsToAnnouncementResponses(list []models.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, len(list))
	for i := range list {
		responses[i] = ModelToAnnouncementResponse(&list[i])
	}
	return responses
}

// FeaturesToGeoJSON раскладывает результат кластеризации в GeoJSON
// FeatureCollection. Агрегированные маркеры несут счетчики и готовые
// параметры отрисовки, одиночные точки - сам отчет.
func FeaturesToGeoJSON(features []geo.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i := range features {
		f := features[i]
		gf := geojson.NewFeature(orb.Point{f.Lng, f.Lat})

		if f.IsClusterMarker() {
			counts := make(map[string]int, len(f.CategoryCounts))
			for c, n := range f.CategoryCounts {
				counts[c.String()] = n
			}
			gf.Properties["cluster"] = true
			gf.Properties["point_count"] = f.PointCount
			gf.Properties["point_count_abbreviated"] = geo.FormatPointCount(f.PointCount)
			gf.Properties["size"] = geo.ClusterSize(f.PointCount)
			gf.Properties["categoryCounts"] = counts
			gf.Properties["pieSegments"] = geo.PieSegments(f.CategoryCounts)
		} else if f.Report != nil {
			gf.Properties["cluster"] = false
			gf.Properties["report"] = ModelToReportResponse(f.Report.Type, &f.Report.Report)
		}

		fc.Append(gf)
	}

	return fc
}
