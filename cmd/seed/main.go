// cmd/seed/main.go — seeds the initial sectors and demo users.
// Safe to re-run: records are upserted by id.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cantina/internal/config"
	"cantina/internal/model"
	"cantina/internal/repository"
	"cantina/internal/store"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var st store.Store
	switch cfg.StoreDriver {
	case "sqlite":
		st, err = store.NewGormStore(cfg.SQLitePath)
	case "redis":
		client, cerr := store.NewRedis(cfg.RedisURL)
		if cerr != nil {
			log.Fatalf("redis error: %v", cerr)
		}
		defer client.Close()
		st = store.NewRedisStore(client)
	default:
		st, err = store.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	ctx := context.Background()
	now := time.Now()

	sectors := []model.Sector{
		{
			ID:           "setor_001",
			Name:         "Cozinha",
			Description:  strPtr("Preparação de pratos principais"),
			Color:        "FF6B6B",
			Icon:         model.IconRestaurant,
			DisplayOrder: 1,
			CreatedAt:    now,
		},
		{
			ID:           "setor_002",
			Name:         "Pizzaria",
			Description:  strPtr("Preparação de pizzas"),
			Color:        "FFA94D",
			Icon:         model.IconPizza,
			DisplayOrder: 2,
			CreatedAt:    now,
		},
		{
			ID:           "setor_003",
			Name:         "Salão",
			Description:  strPtr("Atendimento aos clientes"),
			Color:        "4ECDC4",
			Icon:         model.IconTable,
			DisplayOrder: 3,
			CreatedAt:    now,
		},
	}

	users := []model.User{
		{
			ID:        "admin_001",
			Name:      "Admin Cantina",
			Email:     "admin@cantina.com",
			Role:      model.RoleManager,
			CreatedAt: now,
		},
		{
			ID:        "user_001",
			Name:      "João Silva",
			Email:     "joao@cantina.com",
			Role:      model.RoleOperator,
			SectorID:  strPtr("setor_001"),
			CreatedAt: now,
		},
	}

	sectorRepo := repository.NewSectorRepository(st)
	for _, s := range sectors {
		if err := sectorRepo.Save(ctx, s); err != nil {
			log.Fatalf("seed sector %s: %v", s.ID, err)
		}
	}

	userRepo := repository.NewUserRepository(st)
	for _, u := range users {
		if err := userRepo.Save(ctx, u); err != nil {
			log.Fatalf("seed user %s: %v", u.ID, err)
		}
	}

	fmt.Printf("✅ Seeded %d sectors and %d users\n", len(sectors), len(users))
}
