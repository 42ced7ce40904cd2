// cmd/server/main.go
package main

import (
	"net/http"
	"os"

	"github.com/civicdata/statement-go/internal/monitoring"
	"github.com/civicdata/statement-go/internal/scraper"
	"github.com/civicdata/statement-go/internal/utils"
)

func main() {
	logger := utils.NewLogger()

	addr := os.Getenv("STATEMENT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	metrics := monitoring.New("statement")
	engine := scraper.New(scraper.DefaultRegistry(), scraper.WithMetrics(metrics))
	server := NewServer(engine, metrics, logger)

	logger.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, server); err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
