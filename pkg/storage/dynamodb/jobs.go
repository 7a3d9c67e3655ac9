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

// CreateJob persists a new job aggregate, milestones included, as one item.
// A job can therefore never be partially persisted.
func (s *Store) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	jobAV, err := attributevalue.MarshalMap(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.JobsTableName),
		Item:                jobAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, fmt.Errorf("job with ID %s already exists", job.Id)
		}
		return nil, fmt.Errorf("failed to create job in DynamoDB: %w", err)
	}

	return job, nil
}

// GetJob retrieves a job with all of its milestones.
func (s *Store) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": jobID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.JobsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get job from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrJobNotFound
	}

	var job models.Job
	if err := attributevalue.UnmarshalMap(result.Item, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}

// ListJobs retrieves all jobs.
func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.JobsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs table: %w", err)
	}

	var jobs []models.Job
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJob writes the mutated aggregate back, conditioned on the version the
// caller read. The stored version is bumped so any concurrent writer loses.
func (s *Store) UpdateJob(ctx context.Context, job *models.Job, expectedVersion int64) error {
	job.Version = expectedVersion + 1

	jobAV, err := attributevalue.MarshalMap(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.JobsTableName),
		Item:                jobAV,
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
		},
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return storage.ErrConcurrencyConflict
		}
		return fmt.Errorf("failed to update job in DynamoDB: %w", err)
	}

	return nil
}
