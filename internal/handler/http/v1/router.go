package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Административные маршруты анонсов защищены API-ключом,
// публичные маршруты открыты.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты гражданских отчетов
	reports := api.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.POST("/:id/vote", h.voteReport)
		reports.POST("/:id/downvote", h.downvoteReport)
	}

	// История голосов клиента
	api.GET("/votes/history", h.voteHistory)

	// Аналитика и карта
	api.GET("/analytics", h.getAnalytics)
	api.GET("/map/clusters", h.getMapClusters)

	// Анонсы: чтение публичное, публикация и удаление по API-ключу
	announcements := api.Group("/announcements")
	{
		announcements.GET("", h.listAnnouncements)

		protected := announcements.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		{
			protected.POST("", h.createAnnouncement)
			protected.DELETE("", h.deleteAnnouncement)
		}
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
