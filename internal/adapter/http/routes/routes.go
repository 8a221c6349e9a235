package routes

import (
	"log"
	"os"
	"strconv"

	_ "costwatch/docs" // This will be auto-generated
	"costwatch/internal/adapter/http/handlers"
	repository2 "costwatch/internal/adapter/persistence/repository"
	"costwatch/internal/infrastructure/database"
	"costwatch/internal/infrastructure/render"
	"costwatch/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	siteRepo := repository2.NewSiteDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	itemRepo := repository2.NewEstimateItemDynamoRepository(ddb)
	actualCostRepo := repository2.NewActualCostDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)

	siteUseCase := usecase.NewSiteUseCase(siteRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, itemRepo, siteRepo, actualCostRepo, categoryRepo)
	actualCostUseCase := usecase.NewActualCostUseCase(actualCostRepo, itemRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	aggregationUseCase := usecase.NewAggregationUseCase(siteRepo, estimateRepo, itemRepo, actualCostRepo, categoryRepo)
	alertUseCase := usecase.NewAlertUseCase(aggregationUseCase, siteRepo, alertOptionsFromEnv())
	reportUseCase := usecase.NewReportUseCase(
		estimateRepo, itemRepo, siteRepo, categoryRepo,
		aggregationUseCase, alertUseCase, render.NewCSVRenderer(),
	)

	siteHandler := handlers.NewSiteHandler(siteUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	actualCostHandler := handlers.NewActualCostHandler(actualCostUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(aggregationUseCase, alertUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCostRoutes(v1, siteHandler, estimateHandler, actualCostHandler, categoryHandler)
	addAnalyticsRoutes(v1, analyticsHandler, reportHandler)
}

func alertOptionsFromEnv() usecase.AlertOptions {
	opts := usecase.AlertOptions{}
	if raw := os.Getenv("ALERT_DEFAULT_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			opts.DefaultLimit = n
		}
	}
	if raw := os.Getenv("ALERT_INCLUDE_UNDER_BUDGET"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			opts.IncludeUnderBudget = b
		}
	}
	return opts
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
