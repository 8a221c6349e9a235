package routes

import (
	"costwatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAnalytics = "/analytics"
	PathReports   = "/reports"
)

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler, reportHandler *handlers.ReportHandler) {
	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/variance/by-category", analyticsHandler.VarianceByCategory)
		analytics.GET("/variance/by-site", analyticsHandler.VarianceBySite)
		analytics.GET("/variance/items", analyticsHandler.ItemVariances)
		analytics.GET("/trends", analyticsHandler.Trends)
		analytics.GET("/top-variances", analyticsHandler.TopVariances)
		analytics.GET("/alerts", analyticsHandler.Alerts)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/estimates/:estimate_id", reportHandler.EstimateReport)
		reports.GET("/variance/:site_id", reportHandler.VarianceReport)
		reports.GET("/sites/:site_id", reportHandler.SiteReport)
	}
}
