//cmd/seeder/main.go
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/config"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/db"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

// Seeds the schema, default admin user, and default message templates.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	schema, err := os.ReadFile("seed/schema.sql")
	if err != nil {
		log.Fatalf("failed to read schema: %v", err)
	}
	if _, err := conn.Exec(string(schema)); err != nil {
		log.Fatalf("failed to execute schema: %v", err)
	}
	logger.Info().Msg("schema applied")

	ctx := context.Background()

	authService := &service.AuthService{
		UserRepo: &repository.UserRepository{DB: conn},
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	}
	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	logger.Info().Msg("default admin ensured (admin / admin123)")

	templateRepo := &repository.TemplateRepository{DB: conn}
	for _, serviceType := range model.ServiceTypes() {
		existing, err := templateRepo.GetByServiceType(ctx, serviceType)
		if err != nil {
			log.Fatalf("failed to look up template: %v", err)
		}
		if existing != nil {
			continue
		}
		if _, err := templateRepo.Upsert(ctx, serviceType, service.DefaultTemplateText(serviceType)); err != nil {
			log.Fatalf("failed to seed template for %s: %v", serviceType, err)
		}
		logger.Info().Str("service_type", string(serviceType)).Msg("seeded default template")
	}

	logger.Info().Msg("database seeding completed successfully")
}
