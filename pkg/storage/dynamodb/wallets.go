package dynamodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/money"
	"github.com/chris/escrow-payments/pkg/storage"
	"github.com/google/uuid"
)

// GetOrCreateWallet returns the wallet for (owner, currency), creating it on
// first use. The wallets table is keyed on owner_id + currency, so the
// conditional put guarantees at most one wallet per pair even when concurrent
// callers race; the loser of the race re-reads the winner's wallet.
func (s *Store) GetOrCreateWallet(ctx context.Context, ownerID, currency string) (*models.Wallet, error) {
	wallet, err := s.getWalletByOwner(ctx, ownerID, currency)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	zero, err := money.Zero(currency)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize wallet balance: %w", err)
	}

	wallet = &models.Wallet{
		Id:        uuid.New().String(),
		OwnerId:   ownerID,
		Balance:   zero,
		Currency:  zero.Currency(),
		Address:   newWalletAddress(models.WalletFiat),
		Type:      models.WalletFiat,
		IsActive:  true,
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}

	walletAV, err := attributevalue.MarshalMap(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.WalletsTableName),
		Item:                walletAV,
		ConditionExpression: aws.String("attribute_not_exists(owner_id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			// Another caller created the wallet first; return theirs.
			existing, getErr := s.getWalletByOwner(ctx, ownerID, currency)
			if getErr != nil {
				return nil, getErr
			}
			if existing == nil {
				return nil, storage.ErrWalletNotFound
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return wallet, nil
}

// getWalletByOwner reads the wallet item at its primary key, or nil if absent.
func (s *Store) getWalletByOwner(ctx context.Context, ownerID, currency string) (*models.Wallet, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"owner_id": ownerID,
		"currency": strings.ToUpper(currency),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Item, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}
	return &wallet, nil
}

// GetWallet retrieves a wallet by its id via the id GSI.
func (s *Store) GetWallet(ctx context.Context, walletID string) (*models.Wallet, error) {
	return s.queryOneWallet(ctx, walletIdGSI, "id", walletID)
}

// GetWalletByAddress retrieves a wallet by its opaque address via the address GSI.
func (s *Store) GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error) {
	return s.queryOneWallet(ctx, walletAddressGSI, "address", address)
}

func (s *Store) queryOneWallet(ctx context.Context, index, attr, value string) (*models.Wallet, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WalletsTableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :value", attr)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet by %s: %w", attr, err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrWalletNotFound
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Items[0], &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}
	return &wallet, nil
}

// ListWalletsByOwner retrieves all of an owner's wallets.
func (s *Store) ListWalletsByOwner(ctx context.Context, ownerID string) ([]models.Wallet, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WalletsTableName),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets for owner: %w", err)
	}

	var wallets []models.Wallet
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}
	return wallets, nil
}

// ListWallets retrieves all wallets.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.WalletsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallets table: %w", err)
	}

	var wallets []models.Wallet
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}
	return wallets, nil
}

// newWalletAddress generates an opaque unique wallet address.
func newWalletAddress(walletType models.WalletType) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	if walletType == models.WalletCrypto {
		return "0x" + raw
	}
	return "fiat-" + raw
}
