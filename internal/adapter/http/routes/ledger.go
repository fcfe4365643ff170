package routes

import (
	"net/http"

	"gcpanel_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects     = "/projects"
	PathChangeOrders = "/change-orders"
	PathCostEntries  = "/cost-entries"
)

func addLedgerRoutes(
	rg *gin.RouterGroup,
	sovHandler *handlers.SOVLineHandler,
	coHandler *handlers.ChangeOrderHandler,
	costHandler *handlers.CostEntryHandler,
	snapshotHandler *handlers.BillingSnapshotHandler,
	varianceHandler *handlers.VarianceHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("/:project_id/sov-lines", sovHandler.CreateLine)
		projects.GET("/:project_id/sov-lines", sovHandler.ListLines)
		projects.GET("/:project_id/sov-lines/:line_id", sovHandler.GetLine)
		projects.PATCH("/:project_id/sov-lines/:line_id/deactivate", sovHandler.DeactivateLine)

		projects.GET("/:project_id/sov-lines/:line_id/change-orders", coHandler.ListByLine)

		projects.POST("/:project_id/cost-entries", costHandler.Record)
		projects.GET("/:project_id/sov-lines/:line_id/actuals", costHandler.ListLineActuals)

		projects.POST("/:project_id/snapshots", snapshotHandler.Create)
		projects.GET("/:project_id/snapshots", snapshotHandler.List)
		projects.GET("/:project_id/snapshots/:period_id", snapshotHandler.Get)

		projects.GET("/:project_id/variance", varianceHandler.ProjectRollup)
		projects.GET("/:project_id/sov-lines/:line_id/variance", varianceHandler.LineVariance)
	}

	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.POST("", coHandler.Create)
		changeOrders.GET("/:id", coHandler.Get)
		changeOrders.PATCH("/:id/submit", coHandler.Submit)
		changeOrders.PATCH("/:id/approve", coHandler.Approve)
		changeOrders.PATCH("/:id/reject", coHandler.Reject)
	}

	costEntries := rg.Group(PathCostEntries)
	{
		costEntries.POST("/:id/offset", costHandler.Offset)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
