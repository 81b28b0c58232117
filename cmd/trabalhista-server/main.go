package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"github.com/trabalhista/calculadora/internal/config"
	"github.com/trabalhista/calculadora/internal/domain"
	"github.com/trabalhista/calculadora/internal/server"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var params *domain.LegalParameters
	if file := os.Getenv("PARAMS_FILE"); file != "" {
		loaded, err := config.LoadParameters(file)
		if err != nil {
			log.Fatalf("Failed to load parameters from %s: %v", file, err)
		}
		params = loaded
		log.Printf("Loaded fiscal table %d from %s", params.Metadata.FiscalYear, file)
	} else {
		params = config.Default2025()
		log.Printf("Using built-in fiscal table %d", params.Metadata.FiscalYear)
	}

	srv := server.New(params)
	log.Printf("Calculation service starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, srv.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
