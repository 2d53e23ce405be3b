package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fc-record/api"
	"github.com/gcbaptista/go-fc-record/config"
	"github.com/gcbaptista/go-fc-record/services"
)

func main() {
	defaults := config.DefaultServerSettings()

	// Define command-line flags
	var (
		help            = flag.Bool("help", false, "Show help message")
		version         = flag.Bool("version", false, "Show version information")
		port            = flag.String("port", defaults.Port, "Port to run the server on")
		maxRequestBytes = flag.Int64("max-request-bytes", defaults.MaxRequestBytes, "Maximum request body size in bytes")
	)

	flag.Parse()

	if *help {
		fmt.Printf("FC Record - parse and compare four-index weighted records over HTTP\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                 # Start server on default port %s\n", os.Args[0], defaults.Port)
		fmt.Printf("  %s --port 9000     # Start server on port 9000\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("FC Record v1.0.0\n")
		return
	}

	settings := config.ServerSettings{Port: *port, MaxRequestBytes: *maxRequestBytes}
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		log.Fatalf("Invalid configuration: %s", strings.Join(problems, "; "))
	}

	router := gin.Default()
	router.Use(api.RequestIDMiddleware(), api.CORSMiddleware(), api.RequestSizeLimitMiddleware(settings.MaxRequestBytes))

	api.SetupRoutes(router, services.NewRecordService())

	log.Printf("Starting server on port %s...", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
