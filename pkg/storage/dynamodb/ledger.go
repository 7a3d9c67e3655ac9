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

// CreditWallet atomically increases the wallet balance and appends the
// transaction record. Both writes land in one DynamoDB transaction or not at
// all, so the balance always stays explained by the ledger.
func (s *Store) CreditWallet(ctx context.Context, wallet *models.Wallet, tx *models.Transaction) error {
	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: s.creditWalletUpdate(wallet, tx)},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactionConditionFailed(err) {
			return storage.ErrConcurrencyConflict
		}
		return fmt.Errorf("failed to execute credit transaction: %w", err)
	}

	return nil
}

// DebitWallet atomically decreases the wallet balance and appends the
// transaction record. The balance guard in the condition expression makes it
// impossible for a debit to drive the balance negative, even under races the
// version check alone would miss.
func (s *Store) DebitWallet(ctx context.Context, wallet *models.Wallet, tx *models.Transaction) error {
	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: s.debitWalletUpdate(wallet, tx)},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactionConditionFailed(err) {
			return s.classifyDebitFailure(wallet, tx)
		}
		return fmt.Errorf("failed to execute debit transaction: %w", err)
	}

	return nil
}

// classifyDebitFailure distinguishes an uncovered debit from a plain version
// race using the wallet state the caller read.
func (s *Store) classifyDebitFailure(wallet *models.Wallet, tx *models.Transaction) error {
	short, err := wallet.Balance.LessThan(tx.Amount)
	if err == nil && short {
		return storage.ErrInsufficientBalance
	}
	return storage.ErrConcurrencyConflict
}

// creditWalletUpdate builds the version-conditioned balance increase for a wallet.
func (s *Store) creditWalletUpdate(wallet *models.Wallet, tx *models.Transaction) *types.Update {
	return &types.Update{
		TableName: aws.String(s.WalletsTableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: wallet.OwnerId},
			"currency": &types.AttributeValueMemberS{Value: wallet.Currency},
		},
		UpdateExpression:    aws.String("SET balance.amount = balance.amount + :amount, version = version + :inc"),
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":  &types.AttributeValueMemberN{Value: tx.Amount.StringFixed()},
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
			":inc":     &types.AttributeValueMemberN{Value: "1"},
		},
	}
}

// debitWalletUpdate builds the balance decrease, guarded so the stored
// balance always covers the amount.
func (s *Store) debitWalletUpdate(wallet *models.Wallet, tx *models.Transaction) *types.Update {
	return &types.Update{
		TableName: aws.String(s.WalletsTableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: wallet.OwnerId},
			"currency": &types.AttributeValueMemberS{Value: wallet.Currency},
		},
		UpdateExpression:    aws.String("SET balance.amount = balance.amount - :amount, version = version + :inc"),
		ConditionExpression: aws.String("balance.amount >= :amount AND version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":  &types.AttributeValueMemberN{Value: tx.Amount.StringFixed()},
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
			":inc":     &types.AttributeValueMemberN{Value: "1"},
		},
	}
}
