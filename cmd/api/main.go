package main

import (
	_ "gst_invoice/docs"
	"gst_invoice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           GST Invoice Service API
// @version         1.0
// @description     Generates GST tax invoices as PDF for Shopify orders.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:3000

// @BasePath  /

func main() {
	routes.Run()
}
