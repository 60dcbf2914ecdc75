package main

import (
	"context"
	"log"
	"time"

	"github.com/saintecare/sainte/ai"
	"github.com/saintecare/sainte/config"
	"github.com/saintecare/sainte/models"
	"github.com/saintecare/sainte/routes"
	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	store := buildStorage(cfg)

	client := ai.NewClient(ai.ClientConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: time.Duration(cfg.OpenAITimeoutSec) * time.Second,
	})
	companion := ai.NewCompanion(client)

	r := routes.SetupRouter(store, companion)

	addr := ":" + cfg.AppPort
	utils.Sugar.Infof("server listening on %s (storage=%s)", addr, cfg.StorageDriver)
	var err error
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		err = utils.GraceServerTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r)
	} else {
		err = utils.GraceServer(addr, r)
	}
	if err != nil {
		utils.Sugar.Fatalf("server exited: %v", err)
	}
}

// buildStorage selects the storage backend and seeds the demo dataset when
// the backing store is empty.
func buildStorage(cfg config.AppConfig) storage.Storage {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.StorageDriver == "mysql" {
		db := config.InitDatabase(
			&models.User{},
			&models.DailyStep{},
			&models.Mood{},
			&models.SccsScore{},
			&models.Event{},
			&models.CareTeamMember{},
			&models.Resource{},
			&models.UserResource{},
			&models.ChatMessage{},
			&models.AiInsight{},
		)
		store := storage.NewGormStorage(db)
		empty, err := config.IsDatabaseEmpty(db)
		if err != nil {
			utils.Sugar.Fatalf("check database state: %v", err)
		}
		if empty {
			if err := storage.Seed(ctx, store); err != nil {
				utils.Sugar.Fatalf("seed database: %v", err)
			}
			utils.Sugar.Info("seeded demo dataset into mysql")
		}
		return store
	}

	store := storage.NewMemoryStorage()
	if err := storage.Seed(ctx, store); err != nil {
		utils.Sugar.Fatalf("seed memory storage: %v", err)
	}
	return store
}
