package main

import (
	"context"
	"flag"
	"log"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"office-inventory/internal/repositories"
	"office-inventory/internal/services"
	"office-inventory/migrations"
	"office-inventory/pkg/config"
	"office-inventory/pkg/database/postgresql"
	"office-inventory/seeders"
)

func main() {
	runMigrate := flag.Bool("migrate", false, "apply database migrations")
	runSections := flag.Bool("sections", false, "store the default section list in Redis")
	runDemo := flag.Bool("demo", false, "register demo equipment")
	runAll := flag.Bool("all", false, "equivalent to -migrate -sections -demo")
	flag.Parse()

	if !*runMigrate && !*runSections && !*runDemo && !*runAll {
		log.Println("No seeder selected. Available flags:")
		flag.PrintDefaults()
		log.Println("Example: go run ./seeders/cmd/seed -all")
		return
	}

	ctx := context.Background()
	cfg := config.New()
	logger := zap.NewNop()

	if *runAll || *runMigrate {
		log.Println("Applying migrations to", cfg.Postgres.DSN)
		if err := migrations.Up(cfg.Postgres.DSN); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if *runAll || *runSections || *runDemo {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		cache := repositories.NewRedisCacheRepository(redisClient)

		if *runAll || *runSections {
			if err := seeders.SeedSections(ctx, services.NewSectionService(cache, logger)); err != nil {
				log.Fatalf("sections seeder failed: %v", err)
			}
		}

		if *runAll || *runDemo {
			pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
			if err != nil {
				log.Fatalf("database connection failed: %v", err)
			}
			defer pool.Close()

			equipmentRepo := repositories.NewEquipmentRepository(pool, logger)
			issueRepo := repositories.NewIssueRepository(pool, logger)
			sequencer := services.NewSequencer(cfg.Inventory.IDStrategy, cache, logger)
			equipment := services.NewEquipmentService(equipmentRepo, issueRepo, sequencer, cfg.Inventory.OrgPrefix, logger)
			if err := seeders.SeedDemoEquipment(ctx, equipment); err != nil {
				log.Fatalf("demo seeder failed: %v", err)
			}
		}
	}

	log.Println("Seeding finished")
}
