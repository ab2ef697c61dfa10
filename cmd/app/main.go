package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"aquaflow/cmd"
	httpadapter "aquaflow/internal/adapters/in/http"
	"aquaflow/internal/adapters/out/postgres/deliveryrepo"
	"aquaflow/internal/adapters/out/postgres/inventoryrepo"
	"aquaflow/internal/adapters/out/postgres/orderrepo"
	"aquaflow/internal/adapters/out/postgres/productrepo"
	"aquaflow/internal/adapters/out/postgres/staffrepo"
	"aquaflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateSchema(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetLowStockLotsQueryHandler(),
		app.CreateMarkDelayedDeliveriesCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		ConfirmToken:       goDotEnvVariable("CONFIRM_TOKEN"),
		ConfirmMaxAttempts: envIntOrDefault("CONFIRM_MAX_ATTEMPTS", 3),

		WarehouseAddress: goDotEnvVariable("WAREHOUSE_ADDRESS"),

		RoutingBaseURL: goDotEnvVariable("ROUTING_BASE_URL"),
		RoutingAPIKey:  os.Getenv("ROUTING_API_KEY"),
		RoutingTimeout: envDurationOrDefault("ROUTING_TIMEOUT", 5*time.Second),

		LargeBatchThreshold: envIntOrDefault("LARGE_BATCH_THRESHOLD", 20),
		LargeBatchLead:      envDurationOrDefault("LARGE_BATCH_LEAD", 15*time.Minute),
		StandardLead:        envDurationOrDefault("STANDARD_LEAD", 30*time.Minute),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func envDurationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&productrepo.ProductDTO{},
		&inventoryrepo.LotDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&staffrepo.DepartmentDTO{},
		&staffrepo.RoleDTO{},
		&staffrepo.EmployeeDTO{},
		&staffrepo.RoleAssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	confirmOrderHandler, err := app.CreateConfirmOrderCommandHandler()
	if err != nil {
		log.Fatalf("Error building confirmation handler: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		confirmOrderHandler,
		app.CreateCancelOrderCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateRegisterEmployeeCommandHandler(),
		app.CreateSetPrincipalRoleCommandHandler(),
		app.CreateRestockLotCommandHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
		app.CreateGetLowStockLotsQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
