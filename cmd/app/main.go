package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pharmacy/cmd"
	_ "pharmacy/docs"
	"pharmacy/internal/adapters/out/postgres/agentrepo"
	"pharmacy/internal/adapters/out/postgres/assignmentrepo"
	"pharmacy/internal/adapters/out/postgres/orderrepo"
	"pharmacy/internal/adapters/out/postgres/productrepo"
	"pharmacy/internal/adapters/out/redisnotifier"
	"pharmacy/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Pharmacy Operations API
// @version 1.0
// @description Inventory ledger, order lifecycle, and delivery dispatch for the pharmacy service.
// @BasePath /api/v1
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	notifier, err := redisnotifier.NewPublisher(redisClient, configs.RedisChannel)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisChannel:  goDotEnvVariable("REDIS_CHANNEL"),
		GeoServiceURL: goDotEnvVariable("GEO_SERVICE_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
}

// migrate keeps the schema in sync with the persistence DTOs. The agents
// table is owned by the identity service; migrating it here only matters for
// local development.
func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&assignmentrepo.AssignmentDTO{},
		&agentrepo.AgentDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, app.CreateHTTPServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
