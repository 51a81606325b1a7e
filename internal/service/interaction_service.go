package service

import (
	"context"
	"errors"
	"fmt"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/internal/pkg/logger"
)

var ErrInvalidInteraction = errors.New("invalid interaction type")

type IInteractionService interface {
	Record(ctx context.Context, userId, contentId string, req *dto.InteractionRequest) (*dto.MessageResponse, error)
}

type interactionService struct {
	publisher IPublisherService
	logger    logger.ILogger
}

func NewInteractionService(publisher IPublisherService, log logger.ILogger) IInteractionService {
	return &interactionService{publisher: publisher, logger: log}
}

// Record acknowledges every valid interaction, even for content ids the
// catalog never produced. Aggregation happens asynchronously in the consumer.
func (s *interactionService) Record(ctx context.Context, userId, contentId string, req *dto.InteractionRequest) (*dto.MessageResponse, error) {
	if !entity.InteractionType(req.Type).Valid() {
		return nil, ErrInvalidInteraction
	}

	event := dto.ContentInteractionEvent{
		ContentId: contentId,
		UserId:    userId,
		Type:      req.Type,
		Metadata:  req.Metadata,
	}
	if err := s.publisher.Publish(event); err != nil {
		return nil, err
	}

	s.logger.Info("interaction", "interaction recorded", map[string]interface{}{
		"content_id": contentId,
		"type":       req.Type,
	})

	return &dto.MessageResponse{
		Message: fmt.Sprintf("%s interaction recorded successfully", req.Type),
	}, nil
}
