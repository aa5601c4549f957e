package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	complaintUC "redress/internal/application/complaint/usecases"
	userUC "redress/internal/application/user/usecases"
	"redress/internal/infrastructure/auth"
	"redress/internal/infrastructure/cache"
	"redress/internal/infrastructure/config"
	"redress/internal/infrastructure/database"
	"redress/internal/infrastructure/persistence/migrations"
	"redress/internal/infrastructure/ratelimit"
	"redress/internal/infrastructure/repository"
	httpiface "redress/internal/interfaces/http"
	authhandlers "redress/internal/interfaces/http/handlers/auth"
	complainthandlers "redress/internal/interfaces/http/handlers/complaint"
	userhandlers "redress/internal/interfaces/http/handlers/user"
	"redress/internal/interfaces/http/middleware"
	"redress/internal/interfaces/http/routes"
	"redress/internal/shared/authorization"
	"redress/internal/shared/db"
	"redress/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Redress complaint tracking HTTP server.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	gormDB, err := database.Connect(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(gormDB); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if autoMigrate {
		if err := migrations.Migrate(gormDB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	if err := httpiface.RegisterCustomValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	log := logger.NewLogger()

	// Infrastructure
	redisClient := cache.NewRedisClient(&cfg.Redis)
	statsCache := cache.NewStatsCache(redisClient, cfg.Stats.CacheTTLSeconds)
	txMgr := db.NewTransactionManager(gormDB)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtIssuer := &jwtAdapter{svc: jwtService}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	complaintRepo := repository.NewComplaintRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// User use cases
	registerUC := userUC.NewRegisterUserUseCase(userRepo, hasher, log)
	createUserUC := userUC.NewCreateUserUseCase(userRepo, hasher, log)
	loginUC := userUC.NewLoginUseCase(userRepo, hasher, jwtIssuer, log)
	refreshUC := userUC.NewRefreshTokenUseCase(jwtIssuer, log)
	changePasswordUC := userUC.NewChangePasswordUseCase(userRepo, hasher, log)
	getUserUC := userUC.NewGetUserUseCase(userRepo, log)
	getUserByUUIDUC := userUC.NewGetUserByUUIDUseCase(userRepo, log)
	listByRoleUC := userUC.NewListUsersByRoleUseCase(userRepo, log)

	// Complaint use cases
	createComplaintUC := complaintUC.NewCreateComplaintUseCase(complaintRepo, statsCache, log)
	getComplaintUC := complaintUC.NewGetComplaintUseCase(complaintRepo, log)
	listComplaintsUC := complaintUC.NewListComplaintsUseCase(complaintRepo, log)
	updateStatusUC := complaintUC.NewUpdateStatusUseCase(complaintRepo, statsCache, log)
	assignUC := complaintUC.NewAssignComplaintUseCase(complaintRepo, userRepo, log)
	deleteComplaintUC := complaintUC.NewDeleteComplaintUseCase(complaintRepo, statsCache, log)
	statsUC := complaintUC.NewGetStatisticsUseCase(complaintRepo, statsCache, log)
	exportUC := complaintUC.NewExportComplaintsUseCase(complaintRepo, log)
	addCommentUC := complaintUC.NewAddCommentUseCase(complaintRepo, commentRepo, txMgr, log)
	listCommentsUC := complaintUC.NewListCommentsUseCase(complaintRepo, commentRepo, log)
	myCommentsUC := complaintUC.NewListAuthorCommentsUseCase(commentRepo, log)
	deleteCommentUC := complaintUC.NewDeleteCommentUseCase(commentRepo, log)

	// HTTP wiring
	authMiddleware := middleware.NewAuthMiddleware(jwtService, getUserByUUIDUC, log)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	loginLimiter := ratelimit.NewLoginLimiter(redisClient, ratelimit.Limits{
		PerMinute: cfg.Auth.RateLimit.PerMinute,
		PerHour:   cfg.Auth.RateLimit.PerHour,
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authhandlers.NewAuthHandler(registerUC, loginUC, refreshUC),
		ThrottleLogins: middleware.ThrottleLogins(loginLimiter, log),
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userhandlers.NewUserHandler(createUserUC, getUserUC, changePasswordUC, listByRoleUC),
		AuthMiddleware: authMiddleware,
	})
	routes.SetupComplaintRoutes(engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: complainthandlers.NewComplaintHandler(
			createComplaintUC, getComplaintUC, listComplaintsUC,
			updateStatusUC, assignUC, deleteComplaintUC,
			statsUC, exportUC,
			addCommentUC, listCommentsUC, myCommentsUC, deleteCommentUC,
		),
		AuthMiddleware: authMiddleware,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("failed to close redis client", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// jwtAdapter narrows the infrastructure JWT service to the application
// layer's token issuer interface.
type jwtAdapter struct {
	svc *auth.JWTService
}

func (a *jwtAdapter) Generate(userUUID string, role authorization.UserRole) (*userUC.TokenPair, error) {
	pair, err := a.svc.Generate(userUUID, role)
	if err != nil {
		return nil, err
	}
	return convertTokenPair(pair), nil
}

func (a *jwtAdapter) Refresh(refreshToken string) (*userUC.TokenPair, error) {
	pair, err := a.svc.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return convertTokenPair(pair), nil
}

func convertTokenPair(pair *auth.TokenPair) *userUC.TokenPair {
	return &userUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}
