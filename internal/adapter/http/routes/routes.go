package routes

import (
	"log"
	"os"

	_ "gcpanel_ledger/docs" // This will be auto-generated
	"gcpanel_ledger/internal/adapter/http/handlers"
	repository2 "gcpanel_ledger/internal/adapter/persistence/repository"
	"gcpanel_ledger/internal/infrastructure/database"
	"gcpanel_ledger/internal/infrastructure/logger"
	"gcpanel_ledger/internal/infrastructure/notify"
	"gcpanel_ledger/internal/usecase"
	"gcpanel_ledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// defaultRetainagePct follows the standard 5% retainage used on AIA
// applications; override with BILLING_RETAINAGE_PCT.
const defaultRetainagePct = "5"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	appLog, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	ddb := database.ConnectDynamoDB()

	lineRepo := repository2.NewSOVLineDynamoRepository(ddb)
	coRepo := repository2.NewChangeOrderDynamoRepository(ddb)
	entryRepo := repository2.NewCostEntryDynamoRepository(ddb)
	snapRepo := repository2.NewBillingSnapshotDynamoRepository(ddb)

	var notifier interfaces.IBillingNotifier
	sgNotifier, err := notify.NewSendgridNotifier()
	if err != nil {
		log.Printf("Billing notice email not configured: %v", err)
	} else {
		notifier = sgNotifier
	}

	retainagePct, err := decimal.NewFromString(getenvDefault("BILLING_RETAINAGE_PCT", defaultRetainagePct))
	if err != nil {
		log.Fatalf("Invalid BILLING_RETAINAGE_PCT: %v", err)
	}

	sovUseCase := usecase.NewSOVUseCase(lineRepo, coRepo, appLog)
	coUseCase := usecase.NewChangeOrderUseCase(coRepo, lineRepo, appLog)
	actualsUseCase := usecase.NewCostActualsUseCase(entryRepo, lineRepo, appLog)
	snapshotUseCase := usecase.NewBillingSnapshotUseCase(snapRepo, lineRepo, coRepo, entryRepo, notifier, retainagePct, appLog)
	varianceUseCase := usecase.NewVarianceUseCase(lineRepo, coRepo, entryRepo)

	sovHandler := handlers.NewSOVLineHandler(sovUseCase)
	coHandler := handlers.NewChangeOrderHandler(coUseCase)
	costHandler := handlers.NewCostEntryHandler(actualsUseCase)
	snapshotHandler := handlers.NewBillingSnapshotHandler(snapshotUseCase)
	varianceHandler := handlers.NewVarianceHandler(varianceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, sovHandler, coHandler, costHandler, snapshotHandler, varianceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
