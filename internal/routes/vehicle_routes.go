package routes

import (
	"garasjelogg/internal/controllers"
	"garasjelogg/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireLogin())
	{
		vehicles.GET("", controllers.ListVehicles)
		// gin's tree cannot hold the static /vehicles/new beside
		// /vehicles/:id, so the reserved id "new" is dispatched in-handler
		vehicles.GET("/:id", controllers.ShowVehicle)
		vehicles.POST("/:id", controllers.PostVehicle)
		vehicles.POST("/:id/add_entry", controllers.AddEntry)
		vehicles.POST("/:id/sell", controllers.SellVehicle)
	}
}
