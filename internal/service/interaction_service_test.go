package service

import (
	"context"
	"testing"
	"time"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/pkg/logger"
	"content-discovery-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInteractionTopic = "CONTENT_INTERACTION"

func newInteractionPipeline(t *testing.T) (IInteractionService, *memory.InteractionCounterRepository) {
	t.Helper()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	counters := memory.NewInteractionCounterRepository()
	consumer := NewConsumerService(pubSub, testInteractionTopic, counters, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(testInteractionTopic, pubSub)
	return NewInteractionService(publisher, logger.NewNopLogger()), counters
}

func TestRecordRejectsUnknownType(t *testing.T) {
	svc, _ := newInteractionPipeline(t)

	_, err := svc.Record(context.Background(), "user-1", "content-1", &dto.InteractionRequest{Type: "explode"})
	assert.ErrorIs(t, err, ErrInvalidInteraction)
}

func TestRecordAcknowledgesValidTypes(t *testing.T) {
	svc, _ := newInteractionPipeline(t)
	ctx := context.Background()

	for _, kind := range []string{"view", "save", "share", "dismiss", "report", "like"} {
		resp, err := svc.Record(ctx, "user-1", "content-1", &dto.InteractionRequest{Type: kind})
		require.NoError(t, err, kind)
		assert.Equal(t, kind+" interaction recorded successfully", resp.Message)
	}
}

func TestInteractionEventsAggregateIntoCounters(t *testing.T) {
	svc, counters := newInteractionPipeline(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, "user-1", "content-9", &dto.InteractionRequest{Type: "view"})
	require.NoError(t, err)
	_, err = svc.Record(ctx, "user-2", "content-9", &dto.InteractionRequest{Type: "view"})
	require.NoError(t, err)
	_, err = svc.Record(ctx, "user-1", "content-9", &dto.InteractionRequest{Type: "like"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		counts, err := counters.Counts(ctx, "content-9")
		return err == nil && counts.Views == 2 && counts.Likes == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Other content ids stay at zero.
	counts, err := counters.Counts(ctx, "content-1")
	require.NoError(t, err)
	assert.Zero(t, counts.Views)
}

// Unknown content ids are accepted and counted; the catalog is not consulted.
func TestRecordUnknownContentIsSilentlyCounted(t *testing.T) {
	svc, counters := newInteractionPipeline(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, "user-1", "no-such-content", &dto.InteractionRequest{Type: "save"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		counts, err := counters.Counts(ctx, "no-such-content")
		return err == nil && counts.Saves == 1
	}, 2*time.Second, 10*time.Millisecond)
}
