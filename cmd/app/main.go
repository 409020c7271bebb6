package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"shop/cmd"
	_ "shop/docs"
	httpadapter "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres/customerrepo"
	"shop/internal/adapters/out/postgres/notificationrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/sequencerepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/services"
	"shop/internal/generated/servers"
	"shop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoswagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db := mustConnectDB(configs)
	mustMigrateDB(db)

	app, err := cmd.NewCompositionRoot(ctx, configs, db, logger)
	if err != nil {
		logger.Error("Failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(app.CreateRelayNotificationsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		FCMProjectID:           goDotEnvVariable("FCM_PROJECT_ID"),
		FCMCredentialsFile:     goDotEnvVariable("FCM_CREDENTIALS_FILE"),
		FreeShippingThreshold:  int64EnvVariable("FREE_SHIPPING_THRESHOLD", services.DefaultFreeShippingThreshold),
		FlatDeliveryFee:        int64EnvVariable("FLAT_DELIVERY_FEE", services.DefaultFlatDeliveryFee),
		BanThreshold:           intEnvVariable("BAN_THRESHOLD", services.DefaultBanThreshold),
		OperationTimeout:       secondsEnvVariable("OPERATION_TIMEOUT_SECONDS", commands.DefaultOperationTimeout),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func int64EnvVariable(key string, fallback int64) int64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %s", key, raw)
	}
	return value
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %s", key, raw)
	}
	return value
}

func secondsEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Fatalf("Invalid value for %s: %s", key, raw)
	}
	return time.Duration(value) * time.Second
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&notificationrepo.NotificationDTO{},
		&sequencerepo.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoswagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
