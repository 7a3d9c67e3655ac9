package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/escrow-payments/pkg/storage"
)

// DynamoDBAPI captures the subset of the DynamoDB client the store uses.
// Defined here so tests can mock the client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Index names on the wallets and transactions tables.
const (
	walletIdGSI      = "id-index"
	walletAddressGSI = "address-index"
	txWalletGSI      = "wallet_id-index"
)

// Store implements the storage interfaces using AWS DynamoDB. Atomic
// multi-entity commits are DynamoDB transactions; optimistic concurrency is a
// version attribute checked in every condition expression.
type Store struct {
	Client                DynamoDBAPI
	JobsTableName         string
	WalletsTableName      string
	TransactionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, jobsTable, walletsTable, transactionsTable string) *Store {
	return &Store{
		Client:                client,
		JobsTableName:         jobsTable,
		WalletsTableName:      walletsTable,
		TransactionsTableName: transactionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// isConditionalCheckFailed reports whether err is a single-item conditional
// check failure.
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// transactionConditionFailed reports whether a TransactWriteItems call was
// cancelled because one of its condition expressions did not hold, i.e. a
// version check or balance guard lost a race.
func transactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
