package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ecommerce/cmd"
	httpadapter "ecommerce/internal/adapters/in/http"
	"ecommerce/internal/adapters/out/postgres/orderrepo"
	"ecommerce/internal/adapters/out/postgres/productrepo"
	"ecommerce/internal/adapters/out/postgres/sessionrepo"
	"ecommerce/internal/adapters/out/postgres/userrepo"
	"ecommerce/internal/generated/servers"
	"ecommerce/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustConnectToDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreatePurgeExpiredSessionsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it does not exist yet.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec("CREATE DATABASE " + configs.DBName); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
}

func mustConnectToDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
		&sessionrepo.SessionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAppendOrderItemsCommandHandler(),
		app.CreateUpdateOrderItemCommandHandler(),
		app.CreateRemoveOrderItemCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateRegisterUserCommandHandler(),
		app.CreateSignInUserCommandHandler(),
		app.CreateUpdateUserProfileCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetProductQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetUserQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, "Failed to load OpenAPI document")
		}
		return c.JSON(http.StatusOK, swagger)
	})

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
