// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/config"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/controller"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/db"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/delivery"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/middleware"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

func main() {
	// Missing .env is fine, the OS environment takes over.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()
	logger.Info().Msg("connected to database")

	customerRepo := &repository.CustomerRepository{DB: conn}
	templateRepo := &repository.TemplateRepository{DB: conn}
	sendLogRepo := &repository.SendLogRepository{DB: conn}
	userRepo := &repository.UserRepository{DB: conn}

	authService := &service.AuthService{
		UserRepo: userRepo,
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	}
	customerService := &service.CustomerService{
		CustomerRepo:  customerRepo,
		MaxImportRows: cfg.ImportMaxRows,
		Logger:        logger,
	}
	templateService := &service.TemplateService{TemplateRepo: templateRepo}
	dispatchService := &service.DispatchService{
		CustomerRepo: customerRepo,
		TemplateRepo: templateRepo,
		SendLogRepo:  sendLogRepo,
		Channel:      delivery.StubChannel{},
		Logger:       logger,
	}
	reportService := &service.ReportService{SendLogRepo: sendLogRepo, Logger: logger}
	sendLogService := &service.SendLogService{SendLogRepo: sendLogRepo, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		logger.Warn().Err(err).Msg("could not ensure default admin user")
	}
	cancel()

	authController := &controller.AuthController{AuthService: authService}
	customerController := &controller.CustomerController{CustomerService: customerService}
	templateController := &controller.TemplateController{TemplateService: templateService}
	messageController := &controller.MessageController{DispatchService: dispatchService}
	sendLogController := &controller.SendLogController{SendLogService: sendLogService}
	reportController := &controller.ReportController{ReportService: reportService}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Post("/auth/register", authController.Register)
		r.Post("/auth/login", authController.Login)
		r.Get("/auth/me", authController.Me)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(authService))

			r.Get("/customers", customerController.List)
			r.Post("/customers", customerController.Create)
			r.Post("/customers/import", customerController.Import)
			r.Delete("/customers/{id}", customerController.Delete)
			r.Delete("/customers", customerController.DeleteMany)

			r.Get("/templates", templateController.List)
			r.Get("/templates/{serviceType}", templateController.Get)
			r.Put("/templates/{serviceType}", templateController.Upsert)

			r.Post("/messages/send", messageController.Send)
			r.Post("/messages/generate-link", messageController.GenerateLink)

			r.Get("/sendlogs", sendLogController.List)
			r.Get("/sendlogs/aggregated", sendLogController.Aggregated)

			r.Get("/reports/daily", reportController.Daily)
			r.Get("/reports/summary", reportController.Summary)
		})
	})

	logger.Info().Str("addr", cfg.Addr).Msg("server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
