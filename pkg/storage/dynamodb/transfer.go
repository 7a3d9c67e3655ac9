package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/storage"
)

// TransferFunds moves money between two wallets in one DynamoDB transaction:
// debit source, credit dest, append both ledger records. Either all four
// writes become visible or none do.
func (s *Store) TransferFunds(ctx context.Context, source, dest *models.Wallet, debitTx, creditTx *models.Transaction) error {
	debitAV, err := attributevalue.MarshalMap(debitTx)
	if err != nil {
		return fmt.Errorf("failed to marshal debit transaction: %w", err)
	}
	creditAV, err := attributevalue.MarshalMap(creditTx)
	if err != nil {
		return fmt.Errorf("failed to marshal credit transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: s.debitWalletUpdate(source, debitTx)},
			{Update: s.creditWalletUpdate(dest, creditTx)},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                debitAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                creditAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactionConditionFailed(err) {
			return s.classifyDebitFailure(source, debitTx)
		}
		return fmt.Errorf("failed to execute transfer transaction: %w", err)
	}

	return nil
}

var _ storage.WalletStore = (*Store)(nil)
