package main

import (
	"log"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/ai"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/confs"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/server"
)

func main() {
	// load config
	cfg, err := confs.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// pick the storage backend once for the process lifetime
	store, err := repositories.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	advisor := ai.NewAdvisor(cfg)

	// run server
	srv := server.NewServer(store, advisor, cfg.Port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
