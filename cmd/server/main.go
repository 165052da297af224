package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"identity-service/internal/application/services"
	"identity-service/internal/config"
	"identity-service/internal/delivery/handler"
	"identity-service/internal/delivery/router"
	"identity-service/internal/infrastructure"
	"identity-service/internal/infrastructure/db/postgres"
)

func main() {
	// .env is optional; real deployments configure the environment
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	tokenRepo := postgres.NewRefreshTokenRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecretKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenTTL)
	redisService := infrastructure.NewRedisService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	authService := services.NewAuthService(userRepo, roleRepo, tokenRepo, jwtService, cfg.BcryptCost, cfg.RefreshTokenTTL)
	userService := services.NewUserService(userRepo, redisService)

	e := echo.New()
	router.RegisterRoutes(e, handler.NewAuthHandler(authService), handler.NewUserHandler(userService), jwtService)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
