package service

import (
	"context"
	"encoding/json"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/pkg/logger"
	"content-discovery-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the interaction topic and folds events into the
// per-content counters served by GET /content/:id.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	counters  contract.IInteractionCounterRepository
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	counters contract.IInteractionCounterRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		counters:  counters,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event dto.ContentInteractionEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal interaction event", map[string]interface{}{"error": err.Error()})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	if err := cs.counters.Increment(ctx, event.ContentId, event.Type); err != nil {
		cs.logger.Error("consumer", "failed to increment interaction counter", map[string]interface{}{
			"error":      err.Error(),
			"content_id": event.ContentId,
		})
	}
	msg.Ack()
}
