package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/money"
	"github.com/chris/escrow-payments/pkg/storage"
	dynamostore "github.com/chris/escrow-payments/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	jobsTable := os.Getenv("DYNAMODB_JOBS_TABLE_NAME")
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")

	store = dynamostore.New(dbClient, jobsTable, walletsTable, transactionsTable)
}

// HandleRequest is triggered by an EventBridge Schedule. It replays every
// wallet's ledger and flags balances that drifted from their transaction log.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting ledger reconciliation...")

	wallets, err := store.ListWallets(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list wallets: %v", err)
		return err
	}

	var drifted int
	for i := range wallets {
		wallet := &wallets[i]

		expected, err := replayLedger(ctx, wallet)
		if err != nil {
			log.Printf("ERROR: failed to replay ledger for wallet %s: %v", wallet.Id, err)
			// Continue to the next wallet, don't let one failure stop the whole audit.
			continue
		}

		if !wallet.Balance.Equal(expected) {
			drifted++
			log.Printf("DRIFT: wallet %s balance is %s but ledger replays to %s",
				wallet.Id, wallet.Balance.StringFixed(), expected.StringFixed())
		}
	}

	if drifted > 0 {
		log.Printf("Reconciliation finished: %d of %d wallets drifted", drifted, len(wallets))
		return fmt.Errorf("%d wallets out of balance", drifted)
	}

	log.Printf("Reconciliation finished: all %d wallets balanced", len(wallets))
	return nil
}

// replayLedger folds a wallet's transaction log into the balance it implies.
// Credits and debits are summed separately so intermediate totals never need
// to go negative.
func replayLedger(ctx context.Context, wallet *models.Wallet) (money.Money, error) {
	transactions, err := store.ListTransactionsByWallet(ctx, wallet.Id)
	if err != nil {
		return money.Money{}, err
	}

	credits, err := money.Zero(wallet.Currency)
	if err != nil {
		return money.Money{}, err
	}
	debits := credits
	for i := range transactions {
		tx := &transactions[i]
		if tx.Status != models.TxCompleted {
			continue
		}
		if tx.IsCredit() {
			credits, err = credits.Add(tx.Amount)
		} else {
			debits, err = debits.Add(tx.Amount)
		}
		if err != nil {
			return money.Money{}, err
		}
	}

	return credits.Subtract(debits)
}

func main() {
	lambda.Start(HandleRequest)
}
