package main

import (
	"context"
	"fmt"
	"os"

	"plate-auction/internal/auth"
	bids "plate-auction/internal/bidService"
	"plate-auction/internal/config"
	"plate-auction/internal/hub"
	plates "plate-auction/internal/plateService"
	"plate-auction/internal/repository"
	"plate-auction/internal/server"
	"plate-auction/utils"
)

func main() {
	cfg := config.LoadConfig()

	repo, cleanup, err := buildStore(cfg)
	if err != nil {
		utils.Fatal("failed to initialize storage", map[string]any{"error": err.Error()})
	}
	defer cleanup()

	liveHub := hub.NewHub()
	events := hub.NewEvents(liveHub)

	authService := auth.NewAuthService(repo, []byte(cfg.SecretKey), cfg.TokenValidityDuration)
	plateService := plates.NewPlateService(repo, events)
	bidService := bids.NewBidService(repo, events)

	router := server.SetupRouter(authService, plateService, bidService, liveHub)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore selects the ledger store: Postgres when a DSN is configured,
// the in-memory store otherwise (development mode, nothing survives restart).
func buildStore(cfg *config.Config) (repository.AuctionDB, func(), error) {
	if cfg.DatabaseDSN == "" {
		utils.Warn("no DATABASE_DSN configured, using in-memory store", nil)
		return repository.NewMemoryRepo(), func() {}, nil
	}

	db, err := repository.OpenPostgres(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPostgresRepo(db), func() { db.Close() }, nil
}
