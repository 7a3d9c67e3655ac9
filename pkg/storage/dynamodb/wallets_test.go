package dynamodb

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/storage"
	"github.com/chris/escrow-payments/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleWallet(t *testing.T) *models.Wallet {
	return &models.Wallet{
		Id:       "wallet-1",
		OwnerId:  "owner-1",
		Balance:  usd(t, "500.00"),
		Currency: "USD",
		Address:  "fiat-abc",
		Type:     models.WalletFiat,
		IsActive: true,
		Version:  2,
	}
}

func TestGetOrCreateWallet(t *testing.T) {
	t.Run("Existing Wallet", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		walletAV, err := attributevalue.MarshalMap(sampleWallet(t))
		require.NoError(t, err)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&awsdynamodb.GetItemOutput{Item: walletAV}, nil)

		wallet, err := store.GetOrCreateWallet(context.Background(), "owner-1", "USD")
		require.NoError(t, err)
		assert.Equal(t, "wallet-1", wallet.Id)

		mockClient.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Creates With Zero Balance", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&awsdynamodb.GetItemOutput{}, nil)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&awsdynamodb.PutItemOutput{}, nil)

		wallet, err := store.GetOrCreateWallet(context.Background(), "owner-1", "usd")
		require.NoError(t, err)

		assert.NotEmpty(t, wallet.Id)
		assert.Equal(t, "owner-1", wallet.OwnerId)
		assert.Equal(t, "USD", wallet.Currency)
		assert.True(t, wallet.Balance.IsZero())
		assert.True(t, strings.HasPrefix(wallet.Address, "fiat-"))
		assert.Equal(t, int64(1), wallet.Version)
		assert.True(t, wallet.IsActive)

		input := mockClient.Calls[1].Arguments.Get(1).(*awsdynamodb.PutItemInput)
		assert.Equal(t, "attribute_not_exists(owner_id)", *input.ConditionExpression)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Creation Race Returns Winner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		winnerAV, err := attributevalue.MarshalMap(sampleWallet(t))
		require.NoError(t, err)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&awsdynamodb.GetItemOutput{}, nil)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&awsdynamodb.GetItemOutput{Item: winnerAV}, nil)

		wallet, err := store.GetOrCreateWallet(context.Background(), "owner-1", "USD")
		require.NoError(t, err)
		assert.Equal(t, "wallet-1", wallet.Id)
		mockClient.AssertExpectations(t)
	})
}

func TestGetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		walletAV, err := attributevalue.MarshalMap(sampleWallet(t))
		require.NoError(t, err)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&awsdynamodb.QueryOutput{Items: []map[string]types.AttributeValue{walletAV}}, nil)

		wallet, err := store.GetWallet(context.Background(), "wallet-1")
		require.NoError(t, err)
		assert.Equal(t, "wallet-1", wallet.Id)
		assert.True(t, wallet.Balance.Equal(usd(t, "500.00")))

		input := mockClient.Calls[0].Arguments.Get(1).(*awsdynamodb.QueryInput)
		assert.Equal(t, walletIdGSI, *input.IndexName)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&awsdynamodb.QueryOutput{}, nil)

		_, err := store.GetWallet(context.Background(), "nope")
		assert.ErrorIs(t, err, storage.ErrWalletNotFound)
	})
}

func TestGetWalletByAddress(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := testStore(mockClient)

	walletAV, err := attributevalue.MarshalMap(sampleWallet(t))
	require.NoError(t, err)
	mockClient.On("Query", mock.Anything, mock.Anything).Return(&awsdynamodb.QueryOutput{Items: []map[string]types.AttributeValue{walletAV}}, nil)

	wallet, err := store.GetWalletByAddress(context.Background(), "fiat-abc")
	require.NoError(t, err)
	assert.Equal(t, "wallet-1", wallet.Id)

	input := mockClient.Calls[0].Arguments.Get(1).(*awsdynamodb.QueryInput)
	assert.Equal(t, walletAddressGSI, *input.IndexName)
}

func TestNewWalletAddress(t *testing.T) {
	fiat := newWalletAddress(models.WalletFiat)
	assert.True(t, strings.HasPrefix(fiat, "fiat-"))
	assert.Len(t, fiat, 37)

	crypto := newWalletAddress(models.WalletCrypto)
	assert.True(t, strings.HasPrefix(crypto, "0x"))
	assert.Len(t, crypto, 34)

	assert.NotEqual(t, newWalletAddress(models.WalletFiat), newWalletAddress(models.WalletFiat))
}
