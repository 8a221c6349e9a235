package routes

import (
	"costwatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSites      = "/sites"
	PathEstimates  = "/estimates"
	PathItems      = "/items"
	PathActuals    = "/actuals"
	PathCategories = "/categories"
)

func addCostRoutes(
	rg *gin.RouterGroup,
	siteHandler *handlers.SiteHandler,
	estimateHandler *handlers.EstimateHandler,
	actualCostHandler *handlers.ActualCostHandler,
	categoryHandler *handlers.CategoryHandler,
) {
	sites := rg.Group(PathSites)
	{
		sites.POST("", siteHandler.CreateSite)
		sites.GET("", siteHandler.ListSites)
		sites.GET("/:site_id", siteHandler.GetSite)
		sites.PATCH("/:site_id/status", siteHandler.UpdateSiteStatus)
		sites.PATCH("/:site_id/budget", siteHandler.SetSiteBudget)
		sites.GET("/:site_id/estimates", estimateHandler.ListEstimatesBySite)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.PATCH("/:estimate_id/status", estimateHandler.UpdateEstimateStatus)
		estimates.POST("/:estimate_id/duplicate", estimateHandler.DuplicateEstimate)
		estimates.POST("/:estimate_id/items", estimateHandler.AddEstimateItem)
	}

	items := rg.Group(PathItems)
	{
		items.GET("/:item_id", estimateHandler.GetEstimateItem)
		items.PATCH("/:item_id", estimateHandler.UpdateEstimateItem)
		items.POST("/:item_id/actuals", actualCostHandler.RecordActualCost)
		items.GET("/:item_id/actuals", actualCostHandler.ListActualCostsByItem)
	}

	actuals := rg.Group(PathActuals)
	{
		actuals.GET("/:actual_cost_id", actualCostHandler.GetActualCost)
		actuals.PATCH("/:actual_cost_id", actualCostHandler.CorrectActualCost)
	}

	categories := rg.Group(PathCategories)
	{
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("", categoryHandler.ListCategories)
	}
}
