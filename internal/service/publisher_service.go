package service

import (
	"encoding/json"

	"bookshelf-be/internal/pkg/logger"
	"bookshelf-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	PublishChange(topic string, event events.ChangeEvent)
}

type publisherService struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		logger:    log,
	}
}

// PublishChange emits a change event after a successful commit. Delivery is
// best effort: the commit already happened, so a publish failure is logged
// and never surfaced to the caller.
func (s *publisherService) PublishChange(topic string, event events.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("publisher", "failed to encode change event", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(topic, msg); err != nil {
		s.logger.Warn("publisher", "failed to publish change event", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
	}
}
