package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/domain/valueobjects"
	httphandlers "github.com/rafabene/yamdb-backend/internal/handlers/http"
	"github.com/rafabene/yamdb-backend/internal/handlers/middleware"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/auth"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/cache"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/mailer"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/yamdb-backend/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP",
	RunE:  runServe,
}

var autoMigrate bool

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "aplica o schema antes de subir")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg
	logger := a.logger
	logger.Info("starting yamdb backend",
		"env", cfg.Env,
		"version", "dev",
	)

	if autoMigrate {
		if err := gormdb.Migrate(a.db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			return err
		}
	}

	// Inicializar i18n
	i18nService, err := loadTranslations(cfg)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		return err
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	redisClient, err := cache.NewRedisClient(cmd.Context(), cfg.Redis.URL)
	if err != nil {
		logger.Warn("rate limiting disabled", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	delivery, err := mailer.New(cfg, i18nService, logger)
	if err != nil {
		return err
	}

	accessTTL, _ := cfg.JWT.AccessTTL()
	window, _ := cfg.RateLimit.WindowDuration()
	clock := ports.SystemClock{}
	secret := cfg.JWT.Secret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("JWT_SECRET not set, tokens will not survive a restart")
	}
	tokens := auth.NewJWTManager(secret, accessTTL, clock)
	codes := auth.NewConfirmationCodes(cfg.Auth.ConfirmationSecret, cfg.Auth.BcryptCost)

	// Inicializar repositories
	userRepo := gormdb.NewUserRepository(a.db)
	categoryRepo := gormdb.NewCategoryRepository(a.db)
	genreRepo := gormdb.NewGenreRepository(a.db)
	titleRepo := gormdb.NewTitleRepository(a.db)
	reviewRepo := gormdb.NewReviewRepository(a.db)
	commentRepo := gormdb.NewCommentRepository(a.db)
	uow := gormdb.NewUnitOfWork(a.db)

	// Inicializar services
	scores := valueobjects.ScoreRange{Min: cfg.Review.MinScore, Max: cfg.Review.MaxScore}
	authService := services.NewAuthService(userRepo, uow, delivery, tokens, codes, logger)
	userService := services.NewUserService(userRepo, logger)
	catalogService := services.NewCatalogService(categoryRepo, genreRepo, logger)
	titleService := services.NewTitleService(titleRepo, categoryRepo, genreRepo, clock, logger)
	reviewService := services.NewReviewService(reviewRepo, titleRepo, scores, clock, logger)
	commentService := services.NewCommentService(commentRepo, reviewService, clock, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     window,
		Swagger:        !cfg.IsProduction(),
	}, httphandlers.Handlers{
		Auth:          httphandlers.NewAuthHandler(authService, logger),
		Users:         httphandlers.NewUserHandler(userService, logger),
		Catalog:       httphandlers.NewCatalogHandler(catalogService, logger),
		Titles:        httphandlers.NewTitleHandler(titleService, logger),
		Reviews:       httphandlers.NewReviewHandler(reviewService, logger),
		Comments:      httphandlers.NewCommentHandler(commentService, logger),
		Authenticator: middleware.NewAuthenticator(tokens, userService, logger),
		I18n:          i18nService,
		RateCounter:   middleware.NewRedisCounter(redisClient),
		Logger:        logger,
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		return err
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
	return nil
}
