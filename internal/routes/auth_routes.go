package routes

import (
	"garasjelogg/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.GET("/", controllers.ShowLogin)
	r.POST("/", controllers.LoginUser)
	r.GET("/logout", controllers.LogoutUser)
}
