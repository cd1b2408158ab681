package main

import (
	"log"
	"net/http"

	"garasjelogg/internal/auth"
	"garasjelogg/internal/config"
	"garasjelogg/internal/controllers"
	"garasjelogg/internal/logger"
	"garasjelogg/internal/middleware"
	"garasjelogg/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Resolve settings (.env + env vars) and connect to the database
	settings := config.Load()
	config.InitDB()

	// Static single-credential login, behind the verifier interface
	controllers.SetVerifier(auth.FromSettings(settings))

	// Setup Gin router and server-rendered views
	r := routes.SetupRouter()
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/public", "./web/public")

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at " + settings.Addr)
	log.Fatal(http.ListenAndServe(settings.Addr, handler))
}
