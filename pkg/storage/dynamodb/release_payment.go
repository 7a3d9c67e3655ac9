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

// ReleaseMilestonePayment commits the orchestrated release as one DynamoDB
// transaction: the mutated job aggregate (milestone released, job status
// recomputed), the wallet credit, and the ledger record. The job write is
// conditioned on the version the orchestrator read and the wallet write on
// wallet.Version, so two concurrent releases of the same milestone cannot
// both commit, and a crash mid-flight leaves no partial state.
func (s *Store) ReleaseMilestonePayment(ctx context.Context, job *models.Job, jobVersion int64, wallet *models.Wallet, tx *models.Transaction) error {
	job.Version = jobVersion + 1

	jobAV, err := attributevalue.MarshalMap(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: write the job aggregate at its expected version.
				Put: &types.Put{
					TableName:           aws.String(s.JobsTableName),
					Item:                jobAV,
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", jobVersion)},
					},
				},
			},
			{
				// Operation 2: credit the payee wallet.
				Update: s.creditWalletUpdate(wallet, tx),
			},
			{
				// Operation 3: append the release record to the ledger.
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
		return fmt.Errorf("failed to execute release transaction: %w", err)
	}

	return nil
}
