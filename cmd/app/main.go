package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"cargopool/cmd"
	"cargopool/internal/adapters/in/http"
	"cargopool/internal/adapters/out/postgres/consolidationrepo"
	"cargopool/internal/adapters/out/postgres/noterepo"
	"cargopool/internal/adapters/out/postgres/orderrepo"
	"cargopool/internal/adapters/out/postgres/paymentrepo"
	"cargopool/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreateArchiveConsolidationsCommandHandler(),
		configs.ArchivalSchedule,
		retentionFromConfig(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		ArchivalSchedule: goDotEnvVariable("ARCHIVAL_SCHEDULE"),
		RetentionDays:    goDotEnvVariable("RETENTION_DAYS"),
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

func retentionFromConfig(configs cmd.Config) time.Duration {
	days, err := strconv.Atoi(configs.RetentionDays)
	if err != nil || days <= 0 {
		log.Fatalf("RETENTION_DAYS must be a positive integer, got %q", configs.RetentionDays)
	}
	return time.Duration(days) * 24 * time.Hour
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&consolidationrepo.ConsolidationDTO{},
		&paymentrepo.PaymentDTO{},
		&noterepo.NoteDTO{},
		&noterepo.ReplyDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := http.NewServer(http.Handlers{
		CreateOrder:     root.CreateCreateOrderCommandHandler(),
		TransitionOrder: root.CreateTransitionOrderCommandHandler(),

		CreateConsolidation:        root.CreateCreateConsolidationCommandHandler(),
		AddOrders:                  root.CreateAddOrdersToConsolidationCommandHandler(),
		RemoveOrders:               root.CreateRemoveOrdersFromConsolidationCommandHandler(),
		AdvanceConsolidationStatus: root.CreateAdvanceConsolidationStatusCommandHandler(),

		CreatePayment:   root.CreateCreatePaymentCommandHandler(),
		MarkPaymentPaid: root.CreateMarkPaymentPaidCommandHandler(),
		CancelPayment:   root.CreateCancelPaymentCommandHandler(),

		CreateNote:  root.CreateCreateNoteCommandHandler(),
		DeleteNote:  root.CreateDeleteNoteCommandHandler(),
		AddReply:    root.CreateAddReplyCommandHandler(),
		DeleteReply: root.CreateDeleteReplyCommandHandler(),

		ListOrders:         root.CreateListOrdersQueryHandler(),
		SuggestEligible:    root.CreateSuggestEligibleOrdersQueryHandler(),
		ListConsolidations: root.CreateListConsolidationsQueryHandler(),
		GetConsolidation:   root.CreateGetConsolidationQueryHandler(),
		ListPayments:       root.CreateListPaymentsQueryHandler(),
		GetPayment:         root.CreateGetPaymentQueryHandler(),
		ListNotes:          root.CreateListNotesQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
