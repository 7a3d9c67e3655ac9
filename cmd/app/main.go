package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/escrow-payments/pkg/escrow"
	"github.com/chris/escrow-payments/pkg/handlers"
	appmiddleware "github.com/chris/escrow-payments/pkg/middleware"
	"github.com/chris/escrow-payments/pkg/scheduler"
	dynamostore "github.com/chris/escrow-payments/pkg/storage/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	jobsTable := os.Getenv("DYNAMODB_JOBS_TABLE_NAME")
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")

	if jobsTable == "" || walletsTable == "" || transactionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Create our storage implementation
	store := dynamostore.New(dbClient, jobsTable, walletsTable, transactionsTable)

	// Create the escrow core and its handler
	service := escrow.NewService(store, sqsScheduler, escrow.DefaultConfig())
	handler := handlers.NewApiHandler(service)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(appmiddleware.NewStructuredLogger(logger))
	router.Mount("/", handler.Routes())

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
