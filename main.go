package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/sportsmate/sportsmate-api/cmd/app"
)

// @title           SportsMate API
// @version         1.0
// @description     Sports event, venue and group platform API.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	app.Start()
}
