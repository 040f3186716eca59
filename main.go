package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/gatherly/events-api/cmd/app"
)

// @contact.name   API Support
// @contact.email  support@gatherly.dev
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
