package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
	"github.com/noah-isme/attendance-tracker-api/internal/repository"
	"github.com/noah-isme/attendance-tracker-api/internal/service"
	"github.com/noah-isme/attendance-tracker-api/pkg/cache"
	"github.com/noah-isme/attendance-tracker-api/pkg/config"
	"github.com/noah-isme/attendance-tracker-api/pkg/database"
	"github.com/noah-isme/attendance-tracker-api/pkg/logger"
)

const seedClass = "TY"

func seedData() repository.SeedData {
	names := []string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Wilson", "Charlie Brown"}
	data := repository.SeedData{}
	for i, name := range names {
		data.Students = append(data.Students, models.Student{Name: name, RollNo: i + 1, Class: seedClass})
	}
	for _, name := range []string{"Database", "TOC", "SE"} {
		data.Subjects = append(data.Subjects, models.Subject{Name: name, Class: seedClass})
	}
	return data
}

func main() {
	skipReset := flag.Bool("skip-reset", false, "keep existing attendance, students and subjects")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := repository.NewSeedRepository(db).Seed(ctx, seedData(), !*skipReset)
	if err != nil {
		logr.Fatal("seed failed", zap.Error(err))
	}

	for _, st := range result.Students {
		logr.Info("seeded student", zap.Int64("id", st.ID), zap.String("name", st.Name), zap.Int("rollNo", st.RollNo), zap.String("class", st.Class))
	}
	for _, sub := range result.Subjects {
		logr.Info("seeded subject", zap.Int64("id", sub.ID), zap.String("name", sub.Name), zap.String("class", sub.Class))
	}

	logr.Info("seed completed", zap.Int("students", len(result.Students)), zap.Int("subjects", len(result.Subjects)), zap.Bool("reset", !*skipReset))

	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Info("redis unavailable, skipping roster cache invalidation", zap.Error(err))
		return
	}
	defer client.Close()

	if err := repository.NewCacheRepository(client, logr).DeleteByPattern(ctx, service.RosterCachePattern); err != nil {
		logr.Warn("roster cache invalidation failed", zap.Error(err))
	}
}
