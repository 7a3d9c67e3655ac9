package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/escrow-payments/pkg/escrow"
	"github.com/chris/escrow-payments/pkg/scheduler"
	"github.com/chris/escrow-payments/pkg/storage"
	dynamostore "github.com/chris/escrow-payments/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var service escrow.API
var sqsScheduler scheduler.Scheduler

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
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

	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsClient := sqs.NewFromConfig(cfg)
	sqsScheduler = scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	store := dynamostore.New(dbClient, jobsTable, walletsTable, transactionsTable)
	service = escrow.NewService(store, sqsScheduler, escrow.DefaultConfig())
}

// HandleRequest processes SQS messages carrying scheduled condition checks.
// Checks that are not yet due are re-enqueued; SQS caps a single message
// delay at 15 minutes, so far-future checks hop through the queue until due.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var check scheduler.ConditionCheck
		if err := json.Unmarshal([]byte(message.Body), &check); err != nil {
			log.Printf("ERROR: failed to unmarshal condition check from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if remaining := time.Until(check.DueAt); remaining > 0 {
			log.Printf("Condition %s not due for %s, re-enqueuing", check.ConditionId, remaining)
			if err := sqsScheduler.ScheduleConditionCheck(ctx, &check, remaining); err != nil {
				log.Printf("ERROR: failed to re-enqueue condition check %s: %v", check.ConditionId, err)
				return err
			}
			continue
		}

		err := service.SatisfyCondition(ctx, check.JobId, check.MilestoneId, check.ConditionId)
		switch {
		case err == nil:
			log.Printf("Successfully satisfied condition %s on milestone %s", check.ConditionId, check.MilestoneId)
		case errors.Is(err, storage.ErrJobNotFound),
			errors.Is(err, storage.ErrMilestoneNotFound):
			// The job or milestone was removed after scheduling; nothing to do.
			log.Printf("Condition check %s no longer applies: %v", check.ConditionId, err)
		default:
			log.Printf("ERROR: failed to satisfy condition %s: %v", check.ConditionId, err)
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
