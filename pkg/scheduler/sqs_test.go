package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSQS struct {
	input *sqs.SendMessageInput
	err   error
}

func (c *capturingSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	c.input = params
	if c.err != nil {
		return nil, c.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestScheduleConditionCheck(t *testing.T) {
	check := &ConditionCheck{
		JobId:       "job-1",
		MilestoneId: "ms-1",
		ConditionId: "c1",
		DueAt:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Sends Payload With Delay", func(t *testing.T) {
		client := &capturingSQS{}
		s := NewSQSScheduler(client, "https://queue.example/q")

		require.NoError(t, s.ScheduleConditionCheck(context.Background(), check, 90*time.Second))

		assert.Equal(t, "https://queue.example/q", *client.input.QueueUrl)
		assert.Equal(t, int32(90), client.input.DelaySeconds)

		var decoded ConditionCheck
		require.NoError(t, json.Unmarshal([]byte(*client.input.MessageBody), &decoded))
		assert.Equal(t, "c1", decoded.ConditionId)
		assert.True(t, decoded.DueAt.Equal(check.DueAt))
	})

	t.Run("Clamps Delay To SQS Cap", func(t *testing.T) {
		client := &capturingSQS{}
		s := NewSQSScheduler(client, "q")

		require.NoError(t, s.ScheduleConditionCheck(context.Background(), check, 3*time.Hour))
		assert.Equal(t, int32(900), client.input.DelaySeconds)
	})

	t.Run("Negative Delay Sends Immediately", func(t *testing.T) {
		client := &capturingSQS{}
		s := NewSQSScheduler(client, "q")

		require.NoError(t, s.ScheduleConditionCheck(context.Background(), check, -time.Minute))
		assert.Equal(t, int32(0), client.input.DelaySeconds)
	})

	t.Run("Client Error", func(t *testing.T) {
		client := &capturingSQS{err: errors.New("queue gone")}
		s := NewSQSScheduler(client, "q")

		err := s.ScheduleConditionCheck(context.Background(), check, 0)
		assert.Error(t, err)
	})
}
