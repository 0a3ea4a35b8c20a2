package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewPublisher_RejectsNonAMQPURL(t *testing.T) {
	p, err := NewPublisher("http://localhost:5672/", zap.NewNop())

	require.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "mq: dial broker")
}

func TestPublisher_PublishAfterClose(t *testing.T) {
	p := &Publisher{logger: zap.NewNop()}
	p.Close()

	assert.False(t, p.IsConnected())
	assert.ErrorIs(t, p.Publish(context.Background(), "user.blocked", map[string]int64{"user_id": 7}), ErrPublisherClosed)
}

func TestPublisher_PublishRejectsUnencodablePayload(t *testing.T) {
	p := &Publisher{logger: zap.NewNop()}

	err := p.Publish(context.Background(), "user.blocked", make(chan int))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPublisherClosed)
}
