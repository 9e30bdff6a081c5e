// cmd/tools/seed-loader/main.go

// seed-loader loads campaign and creator fixtures into PostgreSQL. Rows are
// upserted by id, so the loader is safe to run repeatedly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"creator-match-workers/internal/common/config"
	"creator-match-workers/internal/common/database"
	"creator-match-workers/internal/models"
	"creator-match-workers/internal/store"
)

func main() {
	campaignsPath := flag.String("campaigns", "data/campaigns.json", "Path to campaigns JSON file")
	creatorsPath := flag.String("creators", "data/creators.json", "Path to creators JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		fmt.Printf("Error connecting to postgres: %v\n", err)
		os.Exit(1)
	}
	defer pg.Close()

	ctx := context.Background()
	db := store.New(pg.DB)

	campaigns, err := loadCampaigns(*campaignsPath)
	if err != nil {
		fmt.Printf("Error reading campaigns: %v\n", err)
		os.Exit(1)
	}
	for i := range campaigns {
		if campaigns[i].ID == "" {
			campaigns[i].ID = uuid.New().String()
		}
		if err := db.UpsertCampaign(ctx, &campaigns[i]); err != nil {
			fmt.Printf("Error upserting campaign %s: %v\n", campaigns[i].ID, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Loaded %d campaigns\n", len(campaigns))

	creators, err := loadCreators(*creatorsPath)
	if err != nil {
		fmt.Printf("Error reading creators: %v\n", err)
		os.Exit(1)
	}
	for i := range creators {
		if creators[i].ID == "" {
			creators[i].ID = uuid.New().String()
		}
		if err := db.UpsertCreator(ctx, &creators[i]); err != nil {
			fmt.Printf("Error upserting creator %s: %v\n", creators[i].ID, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Loaded %d creators\n", len(creators))
}

func loadCampaigns(path string) ([]models.Campaign, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var campaigns []models.Campaign
	if err := json.Unmarshal(raw, &campaigns); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return campaigns, nil
}

func loadCreators(path string) ([]models.Creator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var creators []models.Creator
	if err := json.Unmarshal(raw, &creators); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return creators, nil
}
